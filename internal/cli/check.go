// internal/cli/check.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/fasta"
	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/logger"
	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/output"
	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/resolve"
)

var checkOpts struct {
	Sequence string
	SeqFile  string
	Site     string
	Enzymes  []string
	Dnd      bool
	Output   string
	NoHeader bool
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a restriction site for overlapping methylation",
	Long: `Matches every methylase motif of the catalog against the sequence on both
strands and reports which occurrences overlap the restriction site, and
whether the methylated base itself falls inside it (which blocks the cut).`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	f := checkCmd.Flags()
	f.StringVar(&checkOpts.Sequence, "sequence", "", "subject sequence (ACGT) given inline")
	f.StringVar(&checkOpts.SeqFile, "sequences", "", "FASTA file of subject sequence(s); '-' for stdin")
	f.StringVar(&checkOpts.Site, "site", "", "restriction site, IUPAC symbols allowed (required)")
	f.StringSliceVar(&checkOpts.Enzymes, "enzymes", nil, "restrict the catalog to these methylases")
	f.BoolVar(&checkOpts.Dnd, "dnd", false, "use the phosphorothioate (Dnd) catalog")
	f.StringVar(&checkOpts.Output, "output", "text", "output format: text | json | tsv")
	f.BoolVar(&checkOpts.NoHeader, "no-header", false, "suppress header line in tsv output")
	_ = checkCmd.MarkFlagRequired("site")
}

func runCheck(cmd *cobra.Command, args []string) error {
	if (checkOpts.Sequence == "") == (checkOpts.SeqFile == "") {
		return fmt.Errorf("exactly one of --sequence and --sequences is required")
	}

	cat, err := catalogFor(checkOpts.Dnd, checkOpts.Enzymes)
	if err != nil {
		return err
	}

	recs := []fasta.Record{{ID: "sequence", Seq: upper(checkOpts.Sequence)}}
	if checkOpts.SeqFile != "" {
		if recs, err = fasta.ReadFile(checkOpts.SeqFile); err != nil {
			return err
		}
	}

	w := cmd.OutOrStdout()
	header := !checkOpts.NoHeader
	for _, rec := range recs {
		rep, err := resolve.Resolve(rec.Seq, checkOpts.Site, cat)
		if err != nil {
			return fmt.Errorf("%s: %w", rec.ID, err)
		}
		if !rep.SiteFound() {
			logger.Warn("restriction site not found",
				zap.String("sequence", rec.ID), zap.String("site", rep.Site))
		}

		switch checkOpts.Output {
		case "text":
			if len(recs) > 1 {
				if _, err := fmt.Fprintf(w, ">%s\n", rec.ID); err != nil {
					return err
				}
			}
			err = output.WriteText(w, rep)
		case "json":
			err = output.WriteJSON(w, rep, rec.ID)
		case "tsv":
			err = output.WriteTSV(w, rep, header)
			header = false // once per run
		default:
			err = fmt.Errorf("unknown output format %q", checkOpts.Output)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func upper(s string) string {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		out[i] = c
	}
	return string(out)
}
