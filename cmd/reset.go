package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete a user's saved results",
	Long: `Remove every topic score saved for one user from the results file.

The attempt history database is left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := identityFromFlags(cmd)
		if err != nil {
			return err
		}
		rs, err := loadResults(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !rs.Remove(id.Key()) {
			fmt.Fprintf(out, "No results saved for %s.\n", id.DisplayName())
			return nil
		}
		if err := rs.Save(); err != nil {
			return fmt.Errorf("save results: %w", err)
		}
		fmt.Fprintf(out, "Results for %s deleted.\n", id.DisplayName())
		return nil
	},
}

func init() {
	identityFlags(resetCmd)
}
