// Package report renders the result of a mutation analysis, either as
// a self-contained HTML page showing the mutated site on a reference
// structure, or as a plain text summary.
package report

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/feliixx/gomutimpact/impact"
	"github.com/feliixx/gomutimpact/structure"
	"github.com/pkg/browser"
)

// Options struct to store report command line args
type Options struct {
	HTML   string `long:"html" value-name:"<filename>" description:"HTML report filename, default is a new temporary file"`
	NoOpen bool   `long:"no-open" description:"Do not open the HTML report in a browser"`
}

// Report bundles everything displayed for one mutation
type Report struct {
	Analysis impact.Analysis
	// name of the genetic code used for the analysis
	Code string
	// may be nil when no structure is available
	Structure *structure.Structure
}

type deltaRow struct {
	Name  string
	Value string
}

type siteRow struct {
	Chain   string
	Residue string
	Matches bool
}

type structureView struct {
	ID      string
	Residue int
	Data    string
	Sites   []siteRow
}

type view struct {
	OriginalCodon string
	MutatedCodon  string
	OriginalAA    string
	MutatedAA     string
	Type          string
	Code          string
	Deltas        []deltaRow
	Structure     *structureView
}

func formatDelta(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func newView(r Report) view {

	a := r.Analysis
	v := view{
		OriginalCodon: a.OriginalCodon,
		MutatedCodon:  a.MutatedCodon,
		OriginalAA:    string(a.Original),
		MutatedAA:     string(a.Mutated),
		Type:          a.Type.String(),
		Code:          r.Code,
	}

	for _, name := range impact.PropertyNames {
		value, ok := a.Delta[name]
		if !ok {
			continue
		}
		v.Deltas = append(v.Deltas, deltaRow{Name: string(name), Value: formatDelta(value)})
	}

	if s := r.Structure; s != nil {
		v.Structure = &structureView{
			ID:      s.ID,
			Residue: s.Residue,
			Data:    string(s.Data),
		}
		for _, site := range s.Sites {
			v.Structure.Sites = append(v.Structure.Sites, siteRow{
				Chain:   string(site.Chain),
				Residue: string(rune(site.Residue)),
				Matches: site.Matches(a.Original),
			})
		}
	}
	return v
}

// Write renders r as an HTML page
func Write(w io.Writer, r Report) error {
	if err := page.Execute(w, newView(r)); err != nil {
		return fmt.Errorf("fail to render report: %v", err)
	}
	return nil
}

// Save writes the HTML report to fileName, or to a new temporary
// file if fileName is empty, and returns the name of the file written
func Save(fileName string, r Report) (string, error) {

	var (
		f   *os.File
		err error
	)
	if fileName == "" {
		f, err = os.CreateTemp("", "mutation-report-*.html")
	} else {
		f, err = os.Create(fileName)
	}
	if err != nil {
		return "", err
	}

	if err := Write(f, r); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return f.Name(), nil
}

// Open displays the HTML report in the default browser
func Open(fileName string) error {
	if err := browser.OpenFile(fileName); err != nil {
		return fmt.Errorf("fail to open %s in a browser: %v", fileName, err)
	}
	return nil
}
