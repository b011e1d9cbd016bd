// Package structure retrieves the reference 3D structure a mutation
// report is drawn on, and locates the mutated residue in it.
package structure

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/TuftsBCB/io/pdb"
	"github.com/TuftsBCB/seq"
)

// Options struct to store structure command line args
type Options struct {
	ID      string        `short:"p" long:"pdb" value-name:"<id>" description:"PDB identifier of the reference structure" default:"1A3N"`
	Residue int           `short:"r" long:"residue" value-name:"<n>" description:"Residue number to highlight in the structure" default:"6"`
	File    string        `long:"pdb-file" value-name:"<filename>" description:"Read the reference structure from a local PDB file (optionally gzipped) instead of downloading it"`
	URL     string        `long:"url" value-name:"<url>" description:"Base URL to download PDB files from" default:"https://files.rcsb.org/download"`
	Timeout time.Duration `long:"timeout" value-name:"<duration>" description:"Timeout for downloading the reference structure" default:"30s"`
}

// Structure is a reference structure ready to be displayed
type Structure struct {
	ID      string
	Residue int
	// raw PDB text, handed as is to the viewer
	Data []byte
	// residues numbered Residue, one per chain
	Sites []Site
	// set when Data could not be parsed; the viewer may still
	// be able to display it
	ParseErr error
}

// Site is a residue of a chain
type Site struct {
	Chain   byte
	Residue seq.Residue
}

// Matches reports whether the residue of the site is aa
func (s Site) Matches(aa byte) bool {
	return s.Residue == seq.Residue(aa)
}

func (s Site) String() string {
	return fmt.Sprintf("%c:%c", s.Chain, s.Residue)
}

// Load reads the structure from options.File if set, or downloads it
func Load(ctx context.Context, options Options) (*Structure, error) {

	var (
		data []byte
		err  error
		name = options.ID
	)
	if options.File != "" {
		name = options.File
		data, err = ReadFile(options.File)
	} else {
		data, err = NewFetcher(options.URL, options.Timeout).Fetch(ctx, options.ID)
	}
	if err != nil {
		return nil, err
	}

	s := &Structure{
		ID:      options.ID,
		Residue: options.Residue,
		Data:    data,
	}

	entry, err := Parse(data, name)
	if err != nil {
		s.ParseErr = err
		return s, nil
	}
	s.Sites = SitesAt(entry, options.Residue)
	return s, nil
}

// Parse reads PDB text
func Parse(data []byte, name string) (*pdb.Entry, error) {
	entry, err := pdb.Read(bytes.NewReader(data), name)
	if err != nil {
		return nil, fmt.Errorf("fail to parse structure %s: %v", name, err)
	}
	return entry, nil
}

// SitesAt returns, for each chain with ATOM records, the residue
// whose sequence number is number. Only the first model is used.
func SitesAt(entry *pdb.Entry, number int) []Site {

	var sites []Site
	for _, chain := range entry.Chains {

		if len(chain.Models) == 0 {
			continue
		}
		for _, r := range chain.Models[0].Residues {
			if r.SequenceNum == number {
				sites = append(sites, Site{Chain: chain.Ident, Residue: r.Name})
				break
			}
		}
	}
	return sites
}
