// internal/output/bed.go
package output

import (
	"fmt"
	"io"

	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/bedmethyl"
)

// WriteGroupText renders a batch bedMethyl analysis: a run header, then one
// table per (sample, methylase, modification) result.
func WriteGroupText(w io.Writer, g *bedmethyl.Group) error {
	if _, err := fmt.Fprintf(w, "Project %s (run %s), %d sample(s)\n", g.Project, g.RunID, len(g.Items)); err != nil {
		return err
	}
	for _, it := range g.Items {
		if _, err := fmt.Fprintf(w, "\nSample %s (reference %s, %d bp)\n",
			it.Sample, it.Reference.ID, len(it.Reference.Seq)); err != nil {
			return err
		}
		for _, res := range it.Results {
			if _, err := fmt.Fprintf(w, "\n%s (%s) x %s [%s]\n",
				res.Methylase.Name, res.Methylase.Site,
				res.Modification.Abbreviation, res.Modification.Name); err != nil {
				return err
			}
			if len(res.Rows) == 0 {
				if _, err := fmt.Fprintln(w, "no calls on pattern positions"); err != nil {
					return err
				}
				continue
			}
			if _, err := fmt.Fprintln(w, "pos\tstrand\tcov\t%mod\tstatus"); err != nil {
				return err
			}
			for _, row := range res.Rows {
				if _, err := fmt.Fprintf(w, "%d\t%s\t%d\t%.1f\t%s\n",
					row.Start, row.Strand, row.NValid, row.Percent, row.Status); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
