package welcome

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/smarttest/internal/quiz"
	"github.com/abhisek/smarttest/internal/router"
	"github.com/abhisek/smarttest/internal/screen"
	"github.com/abhisek/smarttest/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	revealEnd    = 600 * time.Millisecond
	totalDur     = 1500 * time.Millisecond
)

type tickMsg time.Time

// WelcomeScreen shows the banner and bank statistics, then hands over to
// the start screen on the first key press.
type WelcomeScreen struct {
	bank         *quiz.Bank
	next         func() screen.Screen
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that replaces itself with the screen built by next.
func New(bank *quiz.Bank, next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{bank: bank, next: next}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed >= totalDur {
			return w, nil
		}
		w.elapsed += tickInterval
		return w, tick()

	case tea.KeyPressMsg:
		// Any key skips the animation.
		return w, w.transition()
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

// stats describes the loaded bank.
func (w *WelcomeScreen) stats() string {
	if w.bank == nil {
		return ""
	}
	questions := len(w.bank.Questions())
	topics := len(w.bank.Topics())
	return fmt.Sprintf("%d %s in %d %s",
		questions, plural(questions, "question", "questions"),
		topics, plural(topics, "topic", "topics"))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func (w *WelcomeScreen) View(width, height int) string {
	banner := RenderBanner(width, height)
	if w.elapsed < revealEnd {
		// Reveal the banner line by line.
		lines := strings.Split(banner, "\n")
		shown := int(float64(len(lines)) * float64(w.elapsed) / float64(revealEnd))
		banner = strings.Join(lines[:max(shown, 1)], "\n")
	}

	sections := []string{banner}
	if w.elapsed >= revealEnd {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Check what you know, one topic at a time."))
		if s := w.stats(); s != "" {
			sections = append(sections, theme.Subtitle.Render(s))
		}
	}
	if w.elapsed >= totalDur {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("press any key to continue"))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
