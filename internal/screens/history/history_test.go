package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/smarttest/internal/results"
	"github.com/abhisek/smarttest/internal/router"
	"github.com/abhisek/smarttest/internal/store"
)

type fakeRepo struct {
	records []store.AttemptRecord
	lastOpt store.QueryOpts
	err     error
}

func (f *fakeRepo) Append(ctx context.Context, rec *store.AttemptRecord) error {
	f.records = append(f.records, *rec)
	return nil
}

func (f *fakeRepo) Query(ctx context.Context, opts store.QueryOpts) ([]store.AttemptRecord, error) {
	f.lastOpt = opts
	return f.records, f.err
}

var anna = results.Identity{Name: "Anna", Surname: "Petrova", Patronymic: "Sergeevna"}

func load(t *testing.T, s *HistoryScreen) {
	t.Helper()
	cmd := s.Init()
	require.NotNil(t, cmd)
	s.Update(cmd())
}

func TestQueriesByUserKey(t *testing.T) {
	repo := &fakeRepo{}
	s := New(repo, anna)
	load(t, s)

	assert.Equal(t, anna.Key(), repo.lastOpt.UserKey)
	assert.Equal(t, pageSize, repo.lastOpt.Limit)
	assert.Contains(t, s.View(100, 30), "No finished tests yet.")
}

func TestIncompleteIdentityListsEveryone(t *testing.T) {
	repo := &fakeRepo{records: []store.AttemptRecord{
		{UserKey: "a_b_c", Topic: "Go", Correct: 1, Total: 2, FinishedAt: time.Now()},
	}}
	s := New(repo, results.Identity{})
	load(t, s)

	assert.Empty(t, repo.lastOpt.UserKey)
	assert.Equal(t, "All users  ", s.Status())
	assert.Contains(t, s.View(120, 30), "a_b_c")
}

func TestNavigateAndExpand(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	repo := &fakeRepo{records: []store.AttemptRecord{
		{ID: "first", UserKey: anna.Key(), Surname: "Petrova", Name: "Anna", Patronymic: "Sergeevna",
			Topic: "Go", Correct: 2, Total: 2, StartedAt: start, FinishedAt: start.Add(75 * time.Second)},
		{ID: "second", UserKey: anna.Key(), Topic: "SQL", Correct: 0, Total: 3,
			StartedAt: start, FinishedAt: start.Add(time.Minute), Randomized: true},
	}}
	s := New(repo, anna)
	load(t, s)

	view := s.View(120, 30)
	assert.Contains(t, view, "2/2")
	assert.Contains(t, view, "1:15")
	assert.NotContains(t, view, "id first")

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Contains(t, s.View(120, 30), "id first")

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 1, s.selected)
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 1, s.selected, "cursor stops at the last row")

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Contains(t, s.View(120, 30), "shuffled")
}

func TestLoadError(t *testing.T) {
	s := New(&fakeRepo{err: errors.New("disk on fire")}, anna)
	load(t, s)
	assert.True(t, strings.Contains(s.View(100, 30), "disk on fire"))
}

func TestNilRepo(t *testing.T) {
	s := New(nil, anna)
	assert.Nil(t, s.Init())
	assert.Contains(t, s.View(100, 30), "unavailable")
}

func TestEscPops(t *testing.T) {
	s := New(&fakeRepo{}, anna)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}
