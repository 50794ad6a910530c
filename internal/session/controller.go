package session

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/abhisek/smarttest/internal/quiz"
	"github.com/abhisek/smarttest/internal/results"
	"github.com/abhisek/smarttest/internal/store"
)

// Options configures a Controller.
type Options struct {
	Bank    *quiz.Bank
	Results *results.Store

	// Journal records every finished attempt. Optional.
	Journal store.AttemptRepo

	// Shuffle reorders n items; defaults to math/rand/v2.Shuffle.
	Shuffle func(n int, swap func(i, j int))

	// Now defaults to time.Now.
	Now func() time.Time
}

// Controller drives the start → questions → results flow for one user.
type Controller struct {
	bank    *quiz.Bank
	results *results.Store
	journal store.AttemptRepo
	shuffle func(n int, swap func(i, j int))
	now     func() time.Time

	state      State
	identity   results.Identity
	topic      string
	randomized bool
	startedAt  time.Time
}

// NewController returns a Controller in the Start state.
func NewController(opts Options) *Controller {
	c := &Controller{
		bank:    opts.Bank,
		results: opts.Results,
		journal: opts.Journal,
		shuffle: opts.Shuffle,
		now:     opts.Now,
		state:   Start{},
	}
	if c.shuffle == nil {
		c.shuffle = rand.Shuffle
	}
	if c.now == nil {
		c.now = time.Now
	}
	return c
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Identity returns the identity of the running or finished attempt.
func (c *Controller) Identity() results.Identity {
	return c.identity
}

// Topic returns the topic of the running or finished attempt.
func (c *Controller) Topic() string {
	return c.topic
}

// Bank returns the question bank.
func (c *Controller) Bank() *quiz.Bank {
	return c.bank
}

// Results returns the result store.
func (c *Controller) Results() *results.Store {
	return c.results
}

// Journal returns the attempt journal, or nil when history is disabled.
func (c *Controller) Journal() store.AttemptRepo {
	return c.journal
}

// Begin starts an attempt on topic. On invalid input it returns a
// *ValidationError and the state is unchanged.
func (c *Controller) Begin(id results.Identity, topic string, randomize bool) error {
	if _, ok := c.state.(Start); !ok {
		return fmt.Errorf("begin: %w", ErrWrongPhase)
	}
	if err := validateStart(id, topic); err != nil {
		return err
	}
	if !c.bank.HasTopic(topic) {
		return &ValidationError{Field: "topic", Message: fmt.Sprintf("Topic %q has no questions.", topic)}
	}

	questions := c.bank.ByTopic(topic)
	if randomize {
		c.shuffle(len(questions), func(i, j int) {
			questions[i], questions[j] = questions[j], questions[i]
		})
		for k := range questions {
			answers := questions[k].Answers
			c.shuffle(len(answers), func(i, j int) {
				answers[i], answers[j] = answers[j], answers[i]
			})
		}
	}

	c.identity = id
	c.topic = topic
	c.randomized = randomize
	c.startedAt = c.now()
	c.state = InProgress{Questions: questions}

	slog.Debug("attempt started", "user", id.Key(), "topic", topic,
		"questions", len(questions), "randomized", randomize)
	return nil
}

func validateStart(id results.Identity, topic string) error {
	if !id.Complete() {
		field := "patronymic"
		switch {
		case strings.TrimSpace(id.Name) == "":
			field = "name"
		case strings.TrimSpace(id.Surname) == "":
			field = "surname"
		}
		return &ValidationError{Field: field, Message: "Please enter your name, surname and patronymic."}
	}
	if topic == "" {
		return &ValidationError{Field: "topic", Message: "Please choose a topic."}
	}
	return nil
}

// CanSubmit reports whether chosen is an acceptable selection for the
// current question. The advance action is only offered when it is.
func (c *Controller) CanSubmit(chosen []string) bool {
	s, ok := c.state.(InProgress)
	if !ok || len(chosen) == 0 {
		return false
	}
	if !s.Current().Multiple && len(chosen) != 1 {
		return false
	}
	return true
}

// Submit grades chosen against the current question and advances. After the
// last question the attempt is recorded and saved; a save failure is returned
// as *PersistError but the controller still moves to Results.
func (c *Controller) Submit(ctx context.Context, chosen []string) error {
	s, ok := c.state.(InProgress)
	if !ok {
		return fmt.Errorf("submit: %w", ErrWrongPhase)
	}
	if !c.CanSubmit(chosen) {
		return ErrNoSelection
	}

	q := s.Current()
	correct := quiz.Grade(q, chosen)
	if correct {
		s.Correct++
	}
	s.Answers = append(s.Answers, AnswerRecord{
		Question: q.Text,
		Chosen:   append([]string(nil), chosen...),
		Correct:  correct,
	})

	if !s.IsLast() {
		s.Index++
		c.state = s
		return nil
	}

	return c.finish(ctx, s)
}

func (c *Controller) finish(ctx context.Context, s InProgress) error {
	attempt := results.Attempt{Correct: s.Correct, Total: s.Total()}
	res := Results{
		Identity:   c.identity,
		Topic:      c.topic,
		Attempt:    attempt,
		Answers:    s.Answers,
		Randomized: c.randomized,
		StartedAt:  c.startedAt,
		FinishedAt: c.now(),
	}

	c.results.Record(c.identity.Key(), c.topic, attempt)
	var saveErr error
	if err := c.results.Save(); err != nil {
		saveErr = &PersistError{Path: c.results.Path(), Err: err}
		res.SaveErr = saveErr
		slog.Error("save results failed", "path", c.results.Path(), "err", err)
	}

	if c.journal != nil {
		rec := &store.AttemptRecord{
			UserKey:    c.identity.Key(),
			Surname:    c.identity.Surname,
			Name:       c.identity.Name,
			Patronymic: c.identity.Patronymic,
			Topic:      c.topic,
			Correct:    attempt.Correct,
			Total:      attempt.Total,
			Randomized: c.randomized,
			StartedAt:  res.StartedAt,
			FinishedAt: res.FinishedAt,
		}
		if err := c.journal.Append(ctx, rec); err != nil {
			slog.Warn("journal attempt failed", "err", err)
		}
	}

	c.state = res
	slog.Info("attempt finished", "user", c.identity.Key(), "topic", c.topic,
		"correct", attempt.Correct, "total", attempt.Total)
	return saveErr
}

// Retake discards the finished attempt and returns to Start. The identity
// is kept so the start screen can prefill it.
func (c *Controller) Retake() error {
	if _, ok := c.state.(Results); !ok {
		return fmt.Errorf("retake: %w", ErrWrongPhase)
	}
	c.state = Start{}
	c.topic = ""
	c.randomized = false
	c.startedAt = time.Time{}
	return nil
}
