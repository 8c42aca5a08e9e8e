// internal/cli/bedmethyl.go
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/bedmethyl"
	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/config"
	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/logger"
	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/output"
)

var bedOpts struct {
	Samples    string
	Parameters string
	Dnd        bool
}

var bedmethylCmd = &cobra.Command{
	Use:   "bedmethyl",
	Short: "Analyze sequenced methylation calls against methylase patterns",
	Long: `Reads a sample sheet of (project, sample, reference, bedMethyl file) rows,
restricts each sample's per-base modification calls to the positions the
requested methylases would modify, and classifies every call as
methylated / unmethylated / undetermined by the configured cutoffs.`,
	RunE: runBedmethyl,
}

func init() {
	rootCmd.AddCommand(bedmethylCmd)

	f := bedmethylCmd.Flags()
	f.StringVar(&bedOpts.Samples, "samples", "", "CSV sample sheet: project,sample,reference,bedmethyl (required)")
	f.StringVar(&bedOpts.Parameters, "parameters", "", "parameter sheet (YAML) with methylases, cutoffs, dirs")
	f.BoolVar(&bedOpts.Dnd, "dnd", false, "use the phosphorothioate (Dnd) catalog")
	_ = bedmethylCmd.MarkFlagRequired("samples")
}

func runBedmethyl(cmd *cobra.Command, args []string) error {
	params, err := config.Load(bedOpts.Parameters)
	if err != nil {
		return err
	}
	cat, err := catalogFor(bedOpts.Dnd, nil)
	if err != nil {
		return err
	}

	group, err := bedmethyl.ReadSampleSheet(bedOpts.Samples, params)
	if err != nil {
		return err
	}
	logger.Info("sample sheet loaded",
		zap.String("run", group.RunID),
		zap.String("project", group.Project),
		zap.Int("samples", len(group.Items)))

	if err := group.Analyze(cat); err != nil {
		return err
	}
	return output.WriteGroupText(cmd.OutOrStdout(), group)
}
