package question

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/smarttest/internal/router"
	"github.com/abhisek/smarttest/internal/screen"
	"github.com/abhisek/smarttest/internal/screens/summary"
	"github.com/abhisek/smarttest/internal/session"
	"github.com/abhisek/smarttest/internal/ui/components"
	"github.com/abhisek/smarttest/internal/ui/layout"
	"github.com/abhisek/smarttest/internal/ui/theme"
)

// QuestionScreen shows one question at a time and collects the answer.
type QuestionScreen struct {
	ctrl    *session.Controller
	choices components.ChoiceList
	next    components.Button
	index   int
}

var _ screen.Screen = (*QuestionScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionScreen)(nil)
var _ screen.StatusProvider = (*QuestionScreen)(nil)

// New creates a QuestionScreen for the controller's running attempt.
func New(ctrl *session.Controller) *QuestionScreen {
	s := &QuestionScreen{ctrl: ctrl}
	s.next = components.NewButton("Next", false, nil)
	s.loadQuestion()
	return s
}

func (s *QuestionScreen) loadQuestion() {
	st, ok := s.ctrl.State().(session.InProgress)
	if !ok {
		return
	}
	q := st.Current()
	s.index = st.Index
	s.choices = components.NewChoiceList(q.Answers, q.Multiple)
	s.next.Active = false
}

func (s *QuestionScreen) Init() tea.Cmd {
	return nil
}

func (s *QuestionScreen) Title() string {
	return "Question"
}

func (s *QuestionScreen) Status() string {
	st, ok := s.ctrl.State().(session.InProgress)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s  %d/%d", s.ctrl.Topic(), st.Index+1, st.Total())
}

func (s *QuestionScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Space", Description: "Select"},
	}
	if s.next.Active {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Next"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func (s *QuestionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if kmsg.String() == "enter" {
		if !s.next.Active {
			return s, nil
		}
		return s.submit()
	}

	s.choices, _ = s.choices.Update(msg)
	s.next.Active = s.ctrl.CanSubmit(s.choices.Chosen())
	return s, nil
}

func (s *QuestionScreen) submit() (screen.Screen, tea.Cmd) {
	err := s.ctrl.Submit(context.Background(), s.choices.Chosen())
	var pe *session.PersistError
	if err != nil && !errors.As(err, &pe) {
		slog.Warn("submit rejected", "err", err)
		return s, nil
	}

	switch s.ctrl.State().(type) {
	case session.InProgress:
		s.loadQuestion()
		return s, nil
	case session.Results:
		next := summary.New(s.ctrl)
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}
	return s, nil
}

func (s *QuestionScreen) View(width, height int) string {
	st, ok := s.ctrl.State().(session.InProgress)
	if !ok {
		return ""
	}
	q := st.Current()

	innerWidth := min(width-4, 100)
	var b strings.Builder

	bar := components.NewProgressBar(st.Index, st.Total(), min(innerWidth, 60))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	card := theme.FocusedCard.
		Width(innerWidth).
		Inherit(theme.Body).
		Bold(true).
		Render(q.Text)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n\n")

	hint := "Choose one answer"
	if q.Multiple {
		hint = "Choose all correct answers"
	}
	b.WriteString("  " + theme.Hint.Render(hint))
	b.WriteString("\n\n")
	b.WriteString(indent(s.choices.View(), "  "))

	if s.next.Active {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.next.View()))
	}

	return b.String()
}

func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n") + "\n"
}
