package session

import (
	"time"

	"github.com/abhisek/smarttest/internal/results"
)

// Summary holds the data displayed on the results screen.
type Summary struct {
	Identity results.Identity
	Topic    string
	Correct  int
	Total    int
	Accuracy float64
	Duration time.Duration
	Answers  []AnswerRecord
	SaveErr  error
}

// BuildSummary creates a Summary from a finished attempt.
func BuildSummary(r Results) *Summary {
	var accuracy float64
	if r.Attempt.Total > 0 {
		accuracy = float64(r.Attempt.Correct) / float64(r.Attempt.Total)
	}

	var d time.Duration
	if !r.StartedAt.IsZero() && r.FinishedAt.After(r.StartedAt) {
		d = r.FinishedAt.Sub(r.StartedAt)
	}

	return &Summary{
		Identity: r.Identity,
		Topic:    r.Topic,
		Correct:  r.Attempt.Correct,
		Total:    r.Attempt.Total,
		Accuracy: accuracy,
		Duration: d,
		Answers:  r.Answers,
		SaveErr:  r.SaveErr,
	}
}
