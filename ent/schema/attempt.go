package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Attempt records one finished test attempt in the journal.
type Attempt struct {
	ent.Schema
}

func (Attempt) Mixin() []ent.Mixin {
	return []ent.Mixin{TimingMixin{}}
}

func (Attempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("UUID of the attempt"),
		field.String("user_key").
			NotEmpty().
			Comment("Identity key: surname_name_patronymic"),
		field.String("surname"),
		field.String("name"),
		field.String("patronymic"),
		field.String("topic").
			NotEmpty(),
		field.Int("correct").
			NonNegative(),
		field.Int("total").
			NonNegative(),
		field.Bool("randomized").
			Default(false).
			Comment("Questions were shuffled for this run"),
	}
}

func (Attempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_key"),
		index.Fields("topic"),
		index.Fields("user_key", "topic"),
	}
}
