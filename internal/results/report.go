package results

import (
	"fmt"
	"strings"
)

// TopicLine is one row of a user's report.
type TopicLine struct {
	Topic     string
	Attempted bool
	Attempt   Attempt
}

// Report summarises a user's results across every topic.
type Report struct {
	Identity    Identity
	Incomplete  bool
	Attempted   int
	TotalTopics int
	Lines       []TopicLine
}

// BuildReport builds the report for id over topics from the in-memory store.
func BuildReport(s *Store, id Identity, topics []string) Report {
	r := Report{Identity: id, TotalTopics: len(topics)}
	if !id.Complete() {
		r.Incomplete = true
		return r
	}

	user := s.User(id.Key())
	for _, t := range topics {
		a, ok := user[t]
		if ok {
			r.Attempted++
		}
		r.Lines = append(r.Lines, TopicLine{Topic: t, Attempted: ok, Attempt: a})
	}
	return r
}

// Summary renders the "attempted/total" header line.
func (r Report) Summary() string {
	return fmt.Sprintf("Test results %d/%d", r.Attempted, r.TotalTopics)
}

// String renders the full report as plain text.
func (r Report) String() string {
	if r.Incomplete {
		return "Enter your name, surname and patronymic."
	}

	var b strings.Builder
	b.WriteString(r.Summary())
	b.WriteString("\n\n")

	who := r.Identity.DisplayName()
	if r.Attempted == 0 {
		fmt.Fprintf(&b, "%s has not taken any tests yet.", who)
		return b.String()
	}
	for i, l := range r.Lines {
		if i > 0 {
			b.WriteString("\n")
		}
		if l.Attempted {
			fmt.Fprintf(&b, "%s %d/%d test %s", who, l.Attempt.Correct, l.Attempt.Total, l.Topic)
		} else {
			fmt.Fprintf(&b, "%s has not taken test %s yet", who, l.Topic)
		}
	}
	return b.String()
}
