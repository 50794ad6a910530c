package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/abhisek/smarttest/internal/app"
	"github.com/abhisek/smarttest/internal/session"
	"github.com/spf13/cobra"
)

// runApp loads the bank and results, opens the journal, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	bank, err := loadBank(cmd)
	if err != nil {
		return err
	}
	if len(bank.Topics()) == 0 {
		return fmt.Errorf("question bank has no questions")
	}

	rs, err := loadResults(cmd)
	if err != nil {
		return err
	}

	opts := session.Options{Bank: bank, Results: rs}

	st, err := openJournal(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Attempt history unavailable:", err)
		slog.Warn("journal disabled", "err", err)
	} else {
		defer st.Close()
		opts.Journal = st.AttemptRepo()
	}

	slog.Info("starting", "questions", len(bank.Questions()), "topics", len(bank.Topics()),
		"results", rs.Path())

	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	noSplash, _ := cmd.Flags().GetBool("no-splash")

	return app.Run(app.Options{
		Controller:  session.NewController(opts),
		MaxWidth:    width,
		MaxHeight:   height,
		SkipWelcome: noSplash,
	})
}
