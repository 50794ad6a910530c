package question

import (
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/smarttest/internal/quiz"
	"github.com/abhisek/smarttest/internal/results"
	"github.com/abhisek/smarttest/internal/router"
	"github.com/abhisek/smarttest/internal/screens/summary"
	"github.com/abhisek/smarttest/internal/session"
)

var ivan = results.Identity{Name: "Ivan", Surname: "Ivanov", Patronymic: "Ivanovich"}

func startedController(t *testing.T) (*session.Controller, *results.Store) {
	t.Helper()
	bank := quiz.NewBank([]quiz.Question{
		{Topic: "Letters", Text: "Pick B", Answers: []string{"A", "B", "C"}, CorrectAnswers: []string{"B"}},
		{Topic: "Letters", Text: "Pick A and C", Answers: []string{"A", "B", "C"}, Multiple: true, CorrectAnswers: []string{"A", "C"}},
	})
	store := results.New(filepath.Join(t.TempDir(), "results.json"))
	c := session.NewController(session.Options{Bank: bank, Results: store})
	if err := c.Begin(ivan, "Letters", false); err != nil {
		t.Fatalf("begin: %v", err)
	}
	return c, store
}

func key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code, Text: string(code)}
}

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func TestEnterWithoutSelectionDoesNothing(t *testing.T) {
	c, _ := startedController(t)
	s := New(c)

	_, cmd := s.Update(enter())
	if cmd != nil {
		t.Error("expected no command without a selection")
	}
	if st := c.State().(session.InProgress); st.Index != 0 {
		t.Errorf("index = %d, want 0", st.Index)
	}
	if strings.Contains(s.View(100, 30), "Next") {
		t.Error("Next should be hidden until an answer is selected")
	}
}

func TestSelectionShowsNext(t *testing.T) {
	c, _ := startedController(t)
	s := New(c)
	s.Update(key('2'))

	if !s.next.Active {
		t.Fatal("expected Next to be active after selecting")
	}
	if !strings.Contains(s.View(100, 30), "Next") {
		t.Error("Next should be visible after selecting")
	}
}

func TestFullAttemptReplacesWithSummary(t *testing.T) {
	c, store := startedController(t)
	s := New(c)

	s.Update(key('2'))
	if _, cmd := s.Update(enter()); cmd != nil {
		t.Fatal("expected no navigation before the last question")
	}
	if st := c.State().(session.InProgress); st.Index != 1 || st.Correct != 1 {
		t.Fatalf("unexpected state after first answer: %+v", st)
	}
	if s.choices.HasSelection() {
		t.Error("selection should reset for the next question")
	}

	s.Update(key('1'))
	s.Update(key('3'))
	_, cmd := s.Update(enter())
	if cmd == nil {
		t.Fatal("expected navigation to results")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*summary.SummaryScreen); !ok {
		t.Errorf("expected summary screen, got %T", msg.Screen)
	}

	got, ok := store.Get(ivan.Key(), "Letters")
	if !ok || got.Correct != 2 || got.Total != 2 {
		t.Errorf("stored attempt = %+v (found=%v), want 2/2", got, ok)
	}
}

func TestStatusShowsPosition(t *testing.T) {
	c, _ := startedController(t)
	s := New(c)
	if got := s.Status(); got != "Letters  1/2" {
		t.Errorf("Status = %q", got)
	}
}

func TestViewShowsQuestion(t *testing.T) {
	c, _ := startedController(t)
	s := New(c)
	v := s.View(100, 30)
	for _, want := range []string{"Pick B", "Choose one answer", "1. A", "3. C"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
