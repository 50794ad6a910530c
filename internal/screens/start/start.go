package start

import (
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/smarttest/internal/results"
	"github.com/abhisek/smarttest/internal/router"
	"github.com/abhisek/smarttest/internal/screen"
	"github.com/abhisek/smarttest/internal/screens/history"
	"github.com/abhisek/smarttest/internal/screens/question"
	"github.com/abhisek/smarttest/internal/session"
	"github.com/abhisek/smarttest/internal/ui/components"
	"github.com/abhisek/smarttest/internal/ui/layout"
	"github.com/abhisek/smarttest/internal/ui/theme"
)

// Focus order of the form.
const (
	focusName = iota
	focusSurname
	focusPatronymic
	focusTopic
	focusShuffle
	focusBegin
	focusCount
)

const maxFieldLen = 64

// StartScreen collects the identity triple and topic and shows the user's
// previous results.
type StartScreen struct {
	ctrl    *session.Controller
	inputs  [3]components.TextInput
	topics  components.Picker
	shuffle components.Checkbox
	begin   components.Button
	focus   int
	errMsg  string

	// panel is recomputed whenever the identity changes.
	panel    string
	watching results.Identity
}

var _ screen.Screen = (*StartScreen)(nil)
var _ screen.KeyHintProvider = (*StartScreen)(nil)
var _ screen.Resumer = (*StartScreen)(nil)

// New creates the start screen.
func New(ctrl *session.Controller) *StartScreen {
	s := &StartScreen{
		ctrl: ctrl,
		inputs: [3]components.TextInput{
			components.NewTextInput("Name:", "Ivan", maxFieldLen),
			components.NewTextInput("Surname:", "Ivanov", maxFieldLen),
			components.NewTextInput("Patronymic:", "Ivanovich", maxFieldLen),
		},
		topics:  components.NewPicker("Topic:", ctrl.Bank().Topics()),
		shuffle: components.Checkbox{Label: "Shuffle questions and answers"},
		begin:   components.NewButton("Begin", false, nil),
	}
	s.begin.OnPress = s.startAttempt

	id := ctrl.Identity()
	s.inputs[0].SetValue(id.Name)
	s.inputs[1].SetValue(id.Surname)
	s.inputs[2].SetValue(id.Patronymic)

	s.refreshPanel()
	return s
}

func (s *StartScreen) Init() tea.Cmd {
	return s.setFocus(focusName)
}

// Resume refreshes the results panel after an attempt.
func (s *StartScreen) Resume() tea.Cmd {
	s.errMsg = ""
	s.panel = ""
	s.refreshPanel()
	return s.setFocus(s.focus)
}

func (s *StartScreen) Title() string {
	return "Start"
}

func (s *StartScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Tab", Description: "Next field"}}
	switch s.focus {
	case focusTopic:
		hints = append(hints,
			layout.KeyHint{Key: "↑↓", Description: "Browse"},
			layout.KeyHint{Key: "Space", Description: "Choose"})
	case focusShuffle:
		hints = append(hints, layout.KeyHint{Key: "Space", Description: "Toggle"})
	}
	return append(hints,
		layout.KeyHint{Key: "Enter", Description: "Begin"},
		layout.KeyHint{Key: "F2", Description: "History"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

// Identity returns the identity currently typed in.
func (s *StartScreen) Identity() results.Identity {
	return results.Identity{
		Name:       strings.TrimSpace(s.inputs[0].Value()),
		Surname:    strings.TrimSpace(s.inputs[1].Value()),
		Patronymic: strings.TrimSpace(s.inputs[2].Value()),
	}
}

func (s *StartScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, s.updateFocused(msg)
	}

	switch kmsg.String() {
	case "tab":
		return s, s.setFocus((s.focus + 1) % focusCount)
	case "shift+tab":
		return s, s.setFocus((s.focus + focusCount - 1) % focusCount)
	case "down":
		if s.focus != focusTopic {
			return s, s.setFocus((s.focus + 1) % focusCount)
		}
	case "up":
		if s.focus != focusTopic {
			return s, s.setFocus((s.focus + focusCount - 1) % focusCount)
		}
	case "enter":
		return s, s.handleEnter()
	case "f2":
		next := history.New(s.ctrl.Journal(), s.Identity())
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
	}

	return s, s.updateFocused(msg)
}

func (s *StartScreen) handleEnter() tea.Cmd {
	switch s.focus {
	case focusBegin:
		// OnPress may move focus; keep the button state it leaves behind.
		_, cmd := s.begin.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
		return cmd
	case focusTopic:
		if s.topics.Value() == "" && len(s.topics.Items) > 0 {
			s.topics.Picked = s.topics.Cursor
		}
	}
	return s.startAttempt()
}

func (s *StartScreen) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s.focus {
	case focusName, focusSurname, focusPatronymic:
		s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
		s.refreshPanel()
	case focusTopic:
		s.topics, cmd = s.topics.Update(msg)
	case focusShuffle:
		s.shuffle, cmd = s.shuffle.Update(msg)
	}
	return cmd
}

func (s *StartScreen) setFocus(f int) tea.Cmd {
	s.focus = f
	var cmd tea.Cmd
	for i := range s.inputs {
		if i == f {
			cmd = s.inputs[i].Focus()
		} else {
			s.inputs[i].Blur()
		}
	}
	s.topics.Focused = f == focusTopic
	s.shuffle.Focused = f == focusShuffle
	s.begin.Active = f == focusBegin
	return cmd
}

// refreshPanel rebuilds the results panel when the identity has changed
// since the last build. Clearing panel forces a rebuild.
func (s *StartScreen) refreshPanel() {
	id := s.Identity()
	if s.panel != "" && id == s.watching {
		return
	}
	s.watching = id
	report := results.BuildReport(s.ctrl.Results(), id, s.ctrl.Bank().Topics())
	s.panel = report.String()
}

func (s *StartScreen) startAttempt() tea.Cmd {
	err := s.ctrl.Begin(s.Identity(), s.topics.Value(), s.shuffle.Checked)
	if err != nil {
		var ve *session.ValidationError
		if errors.As(err, &ve) {
			s.errMsg = ve.Message
			return s.setFocus(fieldFocus(ve.Field))
		}
		s.errMsg = err.Error()
		return nil
	}

	s.errMsg = ""
	next := question.New(s.ctrl)
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func fieldFocus(field string) int {
	switch field {
	case "name":
		return focusName
	case "surname":
		return focusSurname
	case "patronymic":
		return focusPatronymic
	case "topic":
		return focusTopic
	}
	return focusName
}

func (s *StartScreen) View(width, height int) string {
	var form strings.Builder
	for _, in := range s.inputs {
		form.WriteString(in.View())
		form.WriteString("\n")
	}
	form.WriteString("\n")
	form.WriteString(s.topics.View())
	form.WriteString("\n\n")
	form.WriteString(s.shuffle.View())
	form.WriteString("\n\n")
	form.WriteString("  " + s.begin.View())
	if s.errMsg != "" {
		form.WriteString("\n\n")
		form.WriteString("  " + theme.Warning.Render(s.errMsg))
	}

	panelWidth := max(width*2/5, 30)
	formWidth := max(width-panelWidth-4, 20)

	left := lipgloss.NewStyle().Width(formWidth).Render(form.String())
	right := theme.Panel.Width(panelWidth).Render(s.panel)

	content := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
