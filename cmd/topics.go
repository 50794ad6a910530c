package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List topics in the question bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		bank, err := loadBank(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		topics := bank.Topics()
		if len(topics) == 0 {
			fmt.Fprintln(out, "No topics found.")
			return nil
		}

		fmt.Fprintf(out, "%-40s  %9s  %8s\n", "Topic", "Questions", "Multiple")
		fmt.Fprintln(out, strings.Repeat("─", 61))

		for _, t := range topics {
			multiple := 0
			for _, q := range bank.ByTopic(t) {
				if q.Multiple {
					multiple++
				}
			}
			name := t
			if len([]rune(name)) > 40 {
				name = string([]rune(name)[:37]) + "..."
			}
			fmt.Fprintf(out, "%-40s  %9d  %8d\n", name, bank.Count(t), multiple)
		}

		fmt.Fprintf(out, "\n%d topics, %d questions\n", len(topics), len(bank.Questions()))
		return nil
	},
}
