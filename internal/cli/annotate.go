// internal/cli/annotate.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/annotate"
	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/fasta"
	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/logger"
	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/output"
)

var annotateOpts struct {
	SeqFile string
	Enzymes []string
	Dnd     bool
}

var annotateCmd = &cobra.Command{
	Use:   "annotate",
	Short: "Annotate methylase sites and methylated bases as GFF3",
	Long: `Finds every methylase motif occurrence in the sequence(s) and writes one
GFF3 feature per recognition site plus one per methylated base, strands
included.`,
	RunE: runAnnotate,
}

func init() {
	rootCmd.AddCommand(annotateCmd)

	f := annotateCmd.Flags()
	f.StringVar(&annotateOpts.SeqFile, "sequences", "", "FASTA file of subject sequence(s); '-' for stdin (required)")
	f.StringSliceVar(&annotateOpts.Enzymes, "enzymes", nil, "restrict the catalog to these methylases")
	f.BoolVar(&annotateOpts.Dnd, "dnd", false, "use the phosphorothioate (Dnd) catalog")
	_ = annotateCmd.MarkFlagRequired("sequences")
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	cat, err := catalogFor(annotateOpts.Dnd, annotateOpts.Enzymes)
	if err != nil {
		return err
	}
	recs, err := fasta.ReadFile(annotateOpts.SeqFile)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, rec := range recs {
		feats, err := annotate.Run(rec.Seq, cat)
		if err != nil {
			return fmt.Errorf("%s: %w", rec.ID, err)
		}
		logger.Debug("annotated sequence",
			zap.String("sequence", rec.ID), zap.Int("features", len(feats)))
		if err := output.WriteGFF(w, rec.ID, feats); err != nil {
			return err
		}
	}
	return nil
}
