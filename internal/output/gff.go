// internal/output/gff.go
package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/annotate"
)

// WriteGFF streams methylation features as GFF3 (version header + one line
// per feature). Coordinates are converted to 1-based closed as GFF expects.
func WriteGFF(w io.Writer, seqID string, feats []annotate.Feature) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString("##gff-version 3\n"); err != nil {
		return err
	}
	for i, f := range feats {
		ftype := "modified_DNA_base"
		if f.Type == annotate.TypeSite {
			ftype = "recognition_site"
		}
		start := f.Start + 1 // 1-based
		end := f.End         // half-open -> closed
		if _, err := fmt.Fprintf(
			bw,
			"%s\tepijinn\t%s\t%d\t%d\t.\t%s\t.\tID=met%d;Name=%s;Note=%s\n",
			seqID, ftype, start, end, f.Strand, i+1, f.Label, f.Enzyme,
		); err != nil {
			return err
		}
	}
	return bw.Flush()
}
