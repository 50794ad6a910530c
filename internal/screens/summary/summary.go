package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/smarttest/internal/router"
	"github.com/abhisek/smarttest/internal/screen"
	"github.com/abhisek/smarttest/internal/screens/history"
	"github.com/abhisek/smarttest/internal/session"
	"github.com/abhisek/smarttest/internal/ui/layout"
	"github.com/abhisek/smarttest/internal/ui/theme"
)

// SummaryScreen displays the score of a finished attempt.
type SummaryScreen struct {
	ctrl    *session.Controller
	summary *session.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen for the controller's finished attempt.
func New(ctrl *session.Controller) *SummaryScreen {
	s := &SummaryScreen{ctrl: ctrl}
	if res, ok := ctrl.State().(session.Results); ok {
		s.summary = session.BuildSummary(res)
	}
	return s
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Take again"},
		{Key: "H", Description: "History"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "r":
			if err := s.ctrl.Retake(); err != nil {
				return s, nil
			}
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "h":
			next := history.New(s.ctrl.Journal(), s.ctrl.Identity())
			return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	center := func(style lipgloss.Style, text string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(text))
	}

	var b strings.Builder

	b.WriteString(center(theme.Title,
		"Results for "+sum.Identity.DisplayName()))
	b.WriteString("\n\n")

	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim),
		fmt.Sprintf("Topic: %s", sum.Topic)))
	b.WriteString("\n")

	scoreStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	if sum.Total > 0 && sum.Correct == sum.Total {
		scoreStyle = theme.Correct
	}
	b.WriteString(center(scoreStyle,
		fmt.Sprintf("Correct answers: %d/%d   (%.0f%%)", sum.Correct, sum.Total, sum.Accuracy*100)))
	b.WriteString("\n")

	if sum.Duration > 0 {
		mins := int(sum.Duration.Minutes())
		secs := int(sum.Duration.Seconds()) % 60
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim),
			fmt.Sprintf("Time: %d:%02d", mins, secs)))
		b.WriteString("\n")
	}

	if sum.SaveErr != nil {
		b.WriteString("\n")
		b.WriteString(center(theme.Warning, "Results could not be saved: "+sum.SaveErr.Error()))
		b.WriteString("\n")
	}

	if len(sum.Answers) > 0 {
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
			strings.Repeat("─", min(width-8, 60)))
		b.WriteString("\n")
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim), "Answers"))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for i, a := range sum.Answers {
			mark, style := "✓", theme.Correct
			if !a.Correct {
				mark, style = "✗", theme.Incorrect
			}
			line := fmt.Sprintf("%s %d. %s — %s", mark, i+1, truncate(a.Question, 50), strings.Join(a.Chosen, ", "))
			b.WriteString(center(style, line))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
