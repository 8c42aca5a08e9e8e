// Package cli wires the epijinn commands. Commands write to the cobra
// output streams so tests can capture them.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/methylase"
	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/version"
)

// rootCmd is the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "epijinn",
	Short: `Check DNA methylation against restriction sites.
Methylated restriction sites cannot be cut; epijinn reports which
methylase motifs overlap a site and whether the modified base disables it`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and runs it. Called
// by main.main().
func Execute() error {
	return rootCmd.Execute()
}

// catalogFor picks the built-in catalog, optionally restricted to names.
func catalogFor(dnd bool, names []string) (*methylase.Catalog, error) {
	cat := methylase.Default()
	if dnd {
		cat = methylase.Dnd()
	}
	if len(names) == 0 {
		return cat, nil
	}
	return cat.Select(names)
}
