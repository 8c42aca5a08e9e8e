// internal/output/tsv.go
package output

import (
	"fmt"
	"io"

	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/motif"
	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/resolve"
)

const tsvHeader = "methylase\tsite\tregion\tplus_match\tminus_match\tmethylated_in_plus\tmethylated_in_minus\tblocked"

// WriteTSV prints one line per methylase result. Absent matches render "-".
func WriteTSV(w io.Writer, rep resolve.Report, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, tsvHeader); err != nil {
			return err
		}
	}
	for _, res := range rep.Results {
		_, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%t\t%t\t%t\n",
			res.Methylase.Name, res.Methylase.Site,
			interval(res.Region), interval(res.PlusMatch), interval(res.MinusMatch),
			res.MethylatedInPlusSite, res.MethylatedInMinusSite, res.Blocked(),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func interval(o *motif.Occurrence) string {
	if o == nil {
		return "-"
	}
	return fmt.Sprintf("%d-%d(%s)", o.Start, o.End, o.Strand)
}
