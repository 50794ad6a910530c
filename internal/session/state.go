package session

import (
	"time"

	"github.com/abhisek/smarttest/internal/quiz"
	"github.com/abhisek/smarttest/internal/results"
)

// Phase identifies which screen the controller is on.
type Phase int

const (
	PhaseStart      Phase = iota // Collecting identity and topic
	PhaseInProgress              // Serving questions
	PhaseResults                 // Showing the final score
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseInProgress:
		return "in-progress"
	case PhaseResults:
		return "results"
	default:
		return "unknown"
	}
}

// State is the controller's current state. The concrete types are
// Start, InProgress and Results.
type State interface {
	Phase() Phase
	isState()
}

// Start is the identity and topic entry state.
type Start struct{}

func (Start) Phase() Phase { return PhaseStart }
func (Start) isState()     {}

// InProgress is an attempt being answered.
type InProgress struct {
	// Index is the position of the current question in Questions.
	Index int

	// Questions is the topic's question list, fixed (and shuffled if
	// requested) when the attempt began.
	Questions []quiz.Question

	// Correct counts fully correct answers so far.
	Correct int

	// Answers logs each submitted answer in order.
	Answers []AnswerRecord
}

func (InProgress) Phase() Phase { return PhaseInProgress }
func (InProgress) isState()     {}

// Current returns the question being answered.
func (s InProgress) Current() quiz.Question {
	return s.Questions[s.Index]
}

// Total returns the number of questions in the attempt.
func (s InProgress) Total() int {
	return len(s.Questions)
}

// IsLast reports whether the current question is the final one.
func (s InProgress) IsLast() bool {
	return s.Index+1 == len(s.Questions)
}

// Results is the finished attempt.
type Results struct {
	Identity   results.Identity
	Topic      string
	Attempt    results.Attempt
	Answers    []AnswerRecord
	Randomized bool
	StartedAt  time.Time
	FinishedAt time.Time

	// SaveErr is set when the score could not be written to disk. The
	// in-memory store still holds it.
	SaveErr error
}

func (Results) Phase() Phase { return PhaseResults }
func (Results) isState()     {}

// AnswerRecord is one graded answer.
type AnswerRecord struct {
	Question string
	Chosen   []string
	Correct  bool
}
