// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/motif"
	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/resolve"
)

// WriteText renders the human-readable overlap report: a restriction-site
// summary, then one underlined block per methylase in catalog order.
func WriteText(w io.Writer, rep resolve.Report) error {
	if !rep.SiteFound() {
		if _, err := fmt.Fprintf(w, "Restriction site %s: not found in sequence\n", rep.Site); err != nil {
			return err
		}
	} else {
		occs := make([]string, 0, len(rep.SiteOccurrences))
		for _, o := range rep.SiteOccurrences {
			occs = append(occs, fmt.Sprintf("%d-%d(%s)", o.Start, o.End, o.Strand))
		}
		if _, err := fmt.Fprintf(w, "Restriction site %s: %s\n", rep.Site, strings.Join(occs, ", ")); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "\nMatches against methylase enzyme sites:\n\n"); err != nil {
		return err
	}

	for _, res := range rep.Results {
		if err := writeResult(w, rep, res); err != nil {
			return err
		}
	}
	return nil
}

func writeResult(w io.Writer, rep resolve.Report, res resolve.Result) error {
	name := res.Methylase.Name
	if _, err := fmt.Fprintf(w, "%s\n%s\n", name, strings.Repeat("=", len(name))); err != nil {
		return err
	}
	if res.Region != nil {
		if _, err := fmt.Fprintf(w, "Region: %d-%d(%s)\n", res.Region.Start, res.Region.End, res.Region.Strand); err != nil {
			return err
		}
		if ctx := rep.Context(res); ctx != "" {
			if _, err := fmt.Fprintf(w, "Context: %s\n", ctx); err != nil {
				return err
			}
		}
	}
	if err := writeStrand(w, rep, "positive", res.PlusMatch, res.MethylatedInPlusSite); err != nil {
		return err
	}
	if err := writeStrand(w, rep, "negative", res.MinusMatch, res.MethylatedInMinusSite); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

func writeStrand(w io.Writer, rep resolve.Report, strand string, m *motif.Occurrence, blocked bool) error {
	if m == nil {
		_, err := fmt.Fprintf(w, "%s strand: -\n", title(strand))
		return err
	}
	if _, err := fmt.Fprintf(w, "Match in %s strand: %s (%d-%d)\n", strand, rep.MatchText(*m), m.Start, m.End); err != nil {
		return err
	}
	if blocked {
		_, err := fmt.Fprintf(w, "Methylated base inside restriction site (%s strand): site blocked\n", strand)
		return err
	}
	return nil
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
