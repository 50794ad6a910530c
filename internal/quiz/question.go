package quiz

import "sort"

// Question is a single quiz item as stored in the question file.
type Question struct {
	Topic          string   `json:"topic"`
	Text           string   `json:"question"`
	Answers        []string `json:"answers"`
	Multiple       bool     `json:"multiple"`
	CorrectAnswers []string `json:"correct_answers"`
}

// Clone returns a deep copy so callers can reorder answers freely.
func (q Question) Clone() Question {
	c := q
	c.Answers = append([]string(nil), q.Answers...)
	c.CorrectAnswers = append([]string(nil), q.CorrectAnswers...)
	return c
}

// IsCorrect reports whether answer is one of the accepted answers.
func (q Question) IsCorrect(answer string) bool {
	for _, c := range q.CorrectAnswers {
		if c == answer {
			return true
		}
	}
	return false
}

// Bank is the immutable set of questions loaded at startup.
type Bank struct {
	questions []Question
	topics    []string
	counts    map[string]int
}

// NewBank builds a Bank over questions. The slice is copied.
func NewBank(questions []Question) *Bank {
	qs := make([]Question, len(questions))
	counts := make(map[string]int)
	for i, q := range questions {
		qs[i] = q.Clone()
		counts[q.Topic]++
	}
	return &Bank{
		questions: qs,
		topics:    Topics(qs),
		counts:    counts,
	}
}

// Questions returns a copy of every question in file order.
func (b *Bank) Questions() []Question {
	out := make([]Question, len(b.questions))
	for i, q := range b.questions {
		out[i] = q.Clone()
	}
	return out
}

// Topics returns the sorted distinct topics.
func (b *Bank) Topics() []string {
	return append([]string(nil), b.topics...)
}

// HasTopic reports whether at least one question belongs to topic.
func (b *Bank) HasTopic(topic string) bool {
	return b.counts[topic] > 0
}

// Count returns the number of questions in topic.
func (b *Bank) Count(topic string) int {
	return b.counts[topic]
}

// ByTopic returns copies of the questions in topic, in file order.
func (b *Bank) ByTopic(topic string) []Question {
	return ByTopic(b.questions, topic)
}

// Topics returns the distinct topics of questions, sorted.
func Topics(questions []Question) []string {
	seen := make(map[string]bool)
	var topics []string
	for _, q := range questions {
		if seen[q.Topic] {
			continue
		}
		seen[q.Topic] = true
		topics = append(topics, q.Topic)
	}
	sort.Strings(topics)
	return topics
}

// ByTopic filters questions to topic, preserving order. Returned
// questions are deep copies.
func ByTopic(questions []Question, topic string) []Question {
	var out []Question
	for _, q := range questions {
		if q.Topic == topic {
			out = append(out, q.Clone())
		}
	}
	return out
}
