package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/smarttest/internal/results"
	"github.com/abhisek/smarttest/internal/router"
	"github.com/abhisek/smarttest/internal/screen"
	"github.com/abhisek/smarttest/internal/store"
	"github.com/abhisek/smarttest/internal/ui/layout"
	"github.com/abhisek/smarttest/internal/ui/theme"
)

const pageSize = 50

type historyLoadedMsg struct {
	Attempts []store.AttemptRecord
	Err      error
}

// HistoryScreen lists journaled attempts of one user, newest first.
type HistoryScreen struct {
	repo     store.AttemptRepo
	identity results.Identity
	attempts []store.AttemptRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)
var _ screen.StatusProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen for id. An incomplete identity lists every
// user's attempts. repo may be nil when the journal is unavailable.
func New(repo store.AttemptRepo, id results.Identity) *HistoryScreen {
	return &HistoryScreen{
		repo:     repo,
		identity: id,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	if s.repo == nil {
		s.loaded = true
		s.errMsg = "Attempt history is unavailable."
		return nil
	}
	repo := s.repo
	opts := store.QueryOpts{Limit: pageSize}
	if s.identity.Complete() {
		opts.UserKey = s.identity.Key()
	}
	return func() tea.Msg {
		attempts, err := repo.Query(context.Background(), opts)
		return historyLoadedMsg{Attempts: attempts, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) Status() string {
	if s.identity.Complete() {
		return s.identity.DisplayName() + "  "
	}
	return "All users  "
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.attempts = msg.Attempts
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.attempts)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render("\n\n" + s.errMsg)
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.attempts) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No finished tests yet.")
	}

	var b strings.Builder
	b.WriteString("\n")

	showUser := !s.identity.Complete()
	for i, a := range s.attempts {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-20s  %d/%d  %s",
			prefix, a.FinishedAt.Local().Format("Jan 02, 2006 15:04"),
			a.Topic, a.Correct, a.Total, formatDuration(a))
		if showUser {
			line += "  " + a.UserKey
		}

		style := theme.Unselected
		switch {
		case i == s.selected:
			style = style.Foreground(theme.Primary).Bold(true)
		case a.Total > 0 && a.Correct == a.Total:
			style = style.Foreground(theme.Success)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			order := "file order"
			if a.Randomized {
				order = "shuffled"
			}
			detail := fmt.Sprintf("    %s %s %s · started %s · %s · id %s",
				a.Surname, a.Name, a.Patronymic,
				a.StartedAt.Local().Format("15:04:05"), order, a.ID)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(detail)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func formatDuration(a store.AttemptRecord) string {
	d := a.Duration()
	if d < 0 {
		d = 0
	}
	secs := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
