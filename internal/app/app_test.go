package app

import (
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/smarttest/internal/quiz"
	"github.com/abhisek/smarttest/internal/results"
	"github.com/abhisek/smarttest/internal/screens/start"
	"github.com/abhisek/smarttest/internal/screens/welcome"
	"github.com/abhisek/smarttest/internal/session"
)

func testOptions(t *testing.T) Options {
	t.Helper()
	bank := quiz.NewBank([]quiz.Question{
		{Topic: "Go", Text: "Zero value of int?", Answers: []string{"0", "nil"}, CorrectAnswers: []string{"0"}},
	})
	store := results.New(filepath.Join(t.TempDir(), "results.json"))
	return Options{Controller: session.NewController(session.Options{Bank: bank, Results: store})}
}

func resize(m AppModel, w, h int) AppModel {
	next, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return next.(AppModel)
}

func TestInitialScreen(t *testing.T) {
	opts := testOptions(t)
	m := newAppModel(opts)
	assert.IsType(t, &welcome.WelcomeScreen{}, m.router.Active())

	opts.SkipWelcome = true
	m = newAppModel(opts)
	assert.IsType(t, &start.StartScreen{}, m.router.Active())
}

func TestWindowSizeIsCapped(t *testing.T) {
	opts := testOptions(t)
	opts.MaxWidth = 100
	opts.MaxHeight = 30
	m := resize(newAppModel(opts), 200, 60)
	assert.Equal(t, 100, m.width)
	assert.Equal(t, 30, m.height)

	m = resize(m, 90, 25)
	assert.Equal(t, 90, m.width)
	assert.Equal(t, 25, m.height)
}

func TestViewTooSmall(t *testing.T) {
	m := resize(newAppModel(testOptions(t)), 40, 10)
	assert.Contains(t, m.render(), "Terminal too small")
}

func TestViewShowsStartScreenFrame(t *testing.T) {
	opts := testOptions(t)
	opts.SkipWelcome = true
	m := resize(newAppModel(opts), 120, 40)

	content := m.render()
	require.NotEmpty(t, content)
	assert.Contains(t, content, "Start")
	assert.Contains(t, content, "Begin")
	assert.True(t, strings.Contains(content, "Quit"), "footer hints should be rendered")
}

func TestCtrlCQuits(t *testing.T) {
	m := newAppModel(testOptions(t))
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
