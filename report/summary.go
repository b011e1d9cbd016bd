package report

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteSummary writes r as aligned plain text
func WriteSummary(w io.Writer, r Report) error {

	v := newView(r)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "Original codon\t%s\n", v.OriginalCodon)
	fmt.Fprintf(tw, "Mutated codon\t%s\n", v.MutatedCodon)
	fmt.Fprintf(tw, "Original AA\t%s\n", v.OriginalAA)
	fmt.Fprintf(tw, "Mutated AA\t%s\n", v.MutatedAA)
	fmt.Fprintf(tw, "Type\t%s\n", v.Type)
	if v.Code != "" {
		fmt.Fprintf(tw, "Genetic code\t%s\n", v.Code)
	}

	if len(v.Deltas) == 0 {
		fmt.Fprintf(tw, "Delta\tunavailable\n")
	}
	for _, d := range v.Deltas {
		fmt.Fprintf(tw, "Delta %s\t%s\n", d.Name, d.Value)
	}

	if s := v.Structure; s != nil {
		fmt.Fprintf(tw, "Structure\t%s, residue %d\n", s.ID, s.Residue)
		for _, site := range s.Sites {
			note := ""
			if !site.Matches {
				note = fmt.Sprintf(" (expected %s)", v.OriginalAA)
			}
			fmt.Fprintf(tw, "Chain %s\t%s%s\n", site.Chain, site.Residue, note)
		}
	}
	return tw.Flush()
}
