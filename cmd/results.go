package cmd

import (
	"fmt"

	"github.com/abhisek/smarttest/internal/results"
	"github.com/spf13/cobra"
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Print a user's results per topic",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := identityFromFlags(cmd)
		if err != nil {
			return err
		}
		bank, err := loadBank(cmd)
		if err != nil {
			return err
		}
		rs, err := loadResults(cmd)
		if err != nil {
			return err
		}

		report := results.BuildReport(rs, id, bank.Topics())
		fmt.Fprintln(cmd.OutOrStdout(), report.String())
		return nil
	},
}

func init() {
	identityFlags(resultsCmd)
}
