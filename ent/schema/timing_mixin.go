package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// TimingMixin provides the start and finish instants of a timed run.
type TimingMixin struct {
	mixin.Schema
}

func (TimingMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Time("started_at").
			Immutable().
			Comment("UTC instant the first question was shown"),
		field.Time("finished_at").
			Immutable().
			Comment("UTC instant the result was recorded"),
	}
}

func (TimingMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("finished_at"),
	}
}
