package cmd

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/abhisek/smarttest/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List finished attempts, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := historyQuery(cmd)
		if err != nil {
			return err
		}

		s, err := openJournal(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		attempts, err := s.AttemptRepo().Query(cmd.Context(), opts)
		if err != nil {
			return fmt.Errorf("query attempts: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(attempts) == 0 {
			fmt.Fprintln(out, "No attempts found.")
			return nil
		}

		// Header.
		fmt.Fprintf(out, "%-8s  %-19s  %-32s  %-20s  %7s  %8s  %s\n",
			"ID", "Finished", "User", "Topic", "Score", "Time", "Shuffled")
		fmt.Fprintln(out, strings.Repeat("─", 110))

		for _, a := range attempts {
			shuffled := ""
			if a.Randomized {
				shuffled = "✓"
			}
			fmt.Fprintf(out, "%-8s  %-19s  %-32s  %-20s  %7s  %8s  %s\n",
				a.ID[:min(8, len(a.ID))],
				a.FinishedAt.Local().Format("2006-01-02 15:04:05"),
				truncate(a.UserKey, 32),
				truncate(a.Topic, 20),
				fmt.Sprintf("%d/%d", a.Correct, a.Total),
				a.Duration().Round(time.Second).String(),
				shuffled,
			)
		}
		return nil
	},
}

var historyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show attempt counts and average scores per topic",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := historyQuery(cmd)
		if err != nil {
			return err
		}
		opts.Limit = 0

		s, err := openJournal(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		attempts, err := s.AttemptRepo().Query(cmd.Context(), opts)
		if err != nil {
			return fmt.Errorf("query attempts: %w", err)
		}

		out := cmd.OutOrStdout()
		stats := topicStats(attempts)
		if len(stats) == 0 {
			fmt.Fprintln(out, "No attempts recorded yet.")
			return nil
		}

		fmt.Fprintf(out, "%-32s  %8s  %8s  %8s\n", "Topic", "Attempts", "Average", "Best")
		fmt.Fprintln(out, strings.Repeat("─", 62))
		for _, st := range stats {
			fmt.Fprintf(out, "%-32s  %8d  %7.0f%%  %7.0f%%\n",
				truncate(st.Topic, 32), st.Attempts, st.Average*100, st.Best*100)
		}
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{historyCmd, historyStatsCmd} {
		c.Flags().String("user", "", "Filter by user key (surname_name_patronymic)")
		c.Flags().String("topic", "", "Filter by topic")
	}
	historyCmd.Flags().IntP("limit", "n", 20, "Maximum number of attempts to show (0 = all)")

	historyCmd.AddCommand(historyStatsCmd)
}

func historyQuery(cmd *cobra.Command) (store.QueryOpts, error) {
	user, _ := cmd.Flags().GetString("user")
	topic, _ := cmd.Flags().GetString("topic")
	var limit int
	if f := cmd.Flags().Lookup("limit"); f != nil {
		limit, _ = cmd.Flags().GetInt("limit")
	}
	if limit < 0 {
		return store.QueryOpts{}, fmt.Errorf("invalid limit %d", limit)
	}
	return store.QueryOpts{UserKey: user, Topic: topic, Limit: limit}, nil
}

// topicStat aggregates journaled attempts for one topic.
type topicStat struct {
	Topic    string
	Attempts int
	Average  float64
	Best     float64
}

func topicStats(attempts []store.AttemptRecord) []topicStat {
	byTopic := make(map[string]*topicStat)
	for _, a := range attempts {
		st, ok := byTopic[a.Topic]
		if !ok {
			st = &topicStat{Topic: a.Topic}
			byTopic[a.Topic] = st
		}
		var ratio float64
		if a.Total > 0 {
			ratio = float64(a.Correct) / float64(a.Total)
		}
		st.Average = (st.Average*float64(st.Attempts) + ratio) / float64(st.Attempts+1)
		st.Attempts++
		st.Best = max(st.Best, ratio)
	}

	out := make([]topicStat, 0, len(byTopic))
	for _, st := range byTopic {
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Topic < out[j].Topic })
	return out
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
