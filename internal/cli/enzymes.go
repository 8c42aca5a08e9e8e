// internal/cli/enzymes.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var enzymesDnd bool

// enzymesCmd lists the methylases available for checking. Useful when the
// user doesn't know which catalog names are valid.
var enzymesCmd = &cobra.Command{
	Use:   "enzymes",
	Short: "List the methylases in the built-in catalog",
	Long: `Lists every methylase by name along with its recognition site and the
0-based offsets of the methylated base on each strand.

	<Name>: <Site> (pos=<index_pos> neg=<index_neg>)`,
	RunE: runEnzymes,
}

func init() {
	rootCmd.AddCommand(enzymesCmd)
	enzymesCmd.Flags().BoolVar(&enzymesDnd, "dnd", false, "list the phosphorothioate (Dnd) catalog")
}

func runEnzymes(cmd *cobra.Command, args []string) error {
	cat, err := catalogFor(enzymesDnd, nil)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	for _, m := range cat.Entries() {
		neg := "none"
		if m.IndexNeg >= 0 {
			neg = fmt.Sprintf("%d", m.IndexNeg)
		}
		if _, err := fmt.Fprintf(w, "%s: %s (pos=%d neg=%s)\n", m.Name, m.Site, m.IndexPos, neg); err != nil {
			return err
		}
	}
	return nil
}
