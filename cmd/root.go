package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/abhisek/smarttest/internal/quiz"
	"github.com/abhisek/smarttest/internal/results"
	"github.com/abhisek/smarttest/internal/store"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "smarttest",
	Short: "Terminal quiz by topic",
	Long:  "SmartTest: answer multiple-choice questions topic by topic and keep track of your scores.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A .env in the working directory may set SMARTTEST_RESULTS and
		// SMARTTEST_DB. Variables already in the environment win.
		_ = godotenv.Load()
		return setupLogging(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Finalizers run even when RunE fails, unlike PersistentPostRun.
	cobra.OnFinalize(closeLog)

	rootCmd.PersistentFlags().String("questions", "questions.json", "Path to the question bank (.json, .yaml or .yml)")
	rootCmd.PersistentFlags().String("results", "", "Path to the results file (default: SMARTTEST_RESULTS, else ./results.json if present, else the data dir)")
	rootCmd.PersistentFlags().String("db", "", "Path to the attempt history database (overrides SMARTTEST_DB env var)")
	rootCmd.PersistentFlags().String("log", "", "Write debug logs to this file")

	rootCmd.Flags().Int("width", 0, "Maximum frame width (0 = terminal width)")
	rootCmd.Flags().Int("height", 0, "Maximum frame height (0 = terminal height)")
	rootCmd.Flags().Bool("no-splash", false, "Skip the welcome screen")

	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

var logFile *os.File

// setupLogging routes slog to the --log file, or discards it. The TUI owns
// the terminal, so logs never go to stderr.
func setupLogging(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("log")
	if path == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logFile = f
	slog.SetDefault(slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return nil
}

func closeLog() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// loadBank reads the question bank named by --questions.
func loadBank(cmd *cobra.Command) (*quiz.Bank, error) {
	path, _ := cmd.Flags().GetString("questions")
	return quiz.LoadBank(path)
}

// resolveResultsPath returns the results file path using --results flag
// (highest priority), then results.DefaultPath.
func resolveResultsPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("results"); p != "" {
		return p, nil
	}
	return results.DefaultPath()
}

// loadResults opens the results file. A corrupt file yields an empty store.
func loadResults(cmd *cobra.Command) (*results.Store, error) {
	path, err := resolveResultsPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve results path: %w", err)
	}
	return results.Load(path)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SMARTTEST_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openJournal opens the attempt history database.
func openJournal(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return st, nil
}

// identityFlags registers --surname, --name and --patronymic on c.
func identityFlags(c *cobra.Command) {
	c.Flags().String("surname", "", "Surname (required)")
	c.Flags().String("name", "", "Name (required)")
	c.Flags().String("patronymic", "", "Patronymic (required)")
	_ = c.MarkFlagRequired("surname")
	_ = c.MarkFlagRequired("name")
	_ = c.MarkFlagRequired("patronymic")
}

func identityFromFlags(cmd *cobra.Command) (results.Identity, error) {
	surname, _ := cmd.Flags().GetString("surname")
	name, _ := cmd.Flags().GetString("name")
	patronymic, _ := cmd.Flags().GetString("patronymic")
	id := results.Identity{Name: name, Surname: surname, Patronymic: patronymic}
	if !id.Complete() {
		return id, fmt.Errorf("--surname, --name and --patronymic must not be blank")
	}
	return id, nil
}
