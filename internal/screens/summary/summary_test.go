package summary

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/smarttest/internal/quiz"
	"github.com/abhisek/smarttest/internal/results"
	"github.com/abhisek/smarttest/internal/router"
	"github.com/abhisek/smarttest/internal/screens/history"
	"github.com/abhisek/smarttest/internal/session"
	"github.com/abhisek/smarttest/internal/ui/theme"
)

func finishedController(t *testing.T) *session.Controller {
	t.Helper()
	bank := quiz.NewBank([]quiz.Question{
		{Topic: "Go", Text: "Zero value of int?", Answers: []string{"0", "nil"}, CorrectAnswers: []string{"0"}},
		{Topic: "Go", Text: "Reference types?", Answers: []string{"map", "int"}, Multiple: true, CorrectAnswers: []string{"map"}},
	})
	c := session.NewController(session.Options{
		Bank:    bank,
		Results: results.New(filepath.Join(t.TempDir(), "results.json")),
	})
	id := results.Identity{Name: "Ivan", Surname: "Ivanov", Patronymic: "Ivanovich"}
	if err := c.Begin(id, "Go", false); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := c.Submit(context.Background(), []string{"0"}); err != nil {
		t.Fatalf("submit 1: %v", err)
	}
	if err := c.Submit(context.Background(), []string{"map", "int"}); err != nil {
		t.Fatalf("submit 2: %v", err)
	}
	return c
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(finishedController(t))
	if s.Title() != "Results" {
		t.Errorf("Title = %q, want %q", s.Title(), "Results")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(finishedController(t))
	view := s.View(100, 30)
	for _, want := range []string{"Ivan Ivanov Ivanovich", "1/2", "Zero value of int?"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_HeadingUsesTitleStyle(t *testing.T) {
	s := New(finishedController(t))
	view := s.View(100, 30)
	want := theme.Title.Render("Results for Ivan Ivanov Ivanovich")
	if !strings.Contains(view, want) {
		t.Errorf("heading not rendered with the title style:\n%q", view)
	}
}

func TestSummaryScreen_EnterRetakes(t *testing.T) {
	c := finishedController(t)
	s := New(c)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter (pop)")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
	if c.State().Phase() != session.PhaseStart {
		t.Errorf("phase = %v, want start", c.State().Phase())
	}
}

func TestSummaryScreen_Esc(t *testing.T) {
	s := New(finishedController(t))
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(finishedController(t))
	hints := s.KeyHints()
	if len(hints) != 3 {
		t.Errorf("KeyHints length = %d, want 3", len(hints))
	}
}

func TestSummaryScreen_HistoryKeepsResults(t *testing.T) {
	c := finishedController(t)
	s := New(c)
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'h', Text: "h"})
	if cmd == nil {
		t.Fatal("expected a command on h")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := msg.Screen.(*history.HistoryScreen); !ok {
		t.Errorf("pushed %T, want *history.HistoryScreen", msg.Screen)
	}
	if c.State().Phase() != session.PhaseResults {
		t.Errorf("phase = %v, want results", c.State().Phase())
	}
}
