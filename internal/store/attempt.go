package store

import (
	"context"
	"database/sql"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Attempt columns.
const (
	fieldAttemptID  = "attempt_id"
	fieldUserKey    = "user_key"
	fieldSurname    = "surname"
	fieldName       = "name"
	fieldPatronymic = "patronymic"
	fieldTopic      = "topic"
	fieldCorrect    = "correct"
	fieldTotal      = "total"
	fieldRandomized = "randomized"
	fieldStartedAt  = "started_at"
	fieldFinishedAt = "finished_at"
)

// attemptRepo implements AttemptRepo on ent's sqlgraph layer.
type attemptRepo struct {
	drv    dialect.Driver
	fields map[string]*field.Descriptor
}

func (r *attemptRepo) Append(ctx context.Context, rec *AttemptRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.Correct > rec.Total {
		return fmt.Errorf("append attempt: correct %d exceeds total %d", rec.Correct, rec.Total)
	}

	spec := sqlgraph.NewCreateSpec(attemptsTableName, sqlgraph.NewFieldSpec(columnID, field.TypeInt))
	values := []struct {
		column string
		value  any
	}{
		{fieldAttemptID, rec.ID},
		{fieldUserKey, rec.UserKey},
		{fieldSurname, rec.Surname},
		{fieldName, rec.Name},
		{fieldPatronymic, rec.Patronymic},
		{fieldTopic, rec.Topic},
		{fieldCorrect, rec.Correct},
		{fieldTotal, rec.Total},
		{fieldRandomized, rec.Randomized},
		{fieldStartedAt, rec.StartedAt.UTC()},
		{fieldFinishedAt, rec.FinishedAt.UTC()},
	}
	for _, v := range values {
		d, ok := r.fields[v.column]
		if !ok {
			return fmt.Errorf("append attempt: unknown column %q", v.column)
		}
		if err := validate(d, v.value); err != nil {
			return fmt.Errorf("append attempt: %w", err)
		}
		spec.SetField(v.column, d.Info.Type, v.value)
	}

	if err := sqlgraph.CreateNode(ctx, r.drv, spec); err != nil {
		return fmt.Errorf("append attempt: %w", err)
	}
	return nil
}

func (r *attemptRepo) Query(ctx context.Context, opts QueryOpts) ([]AttemptRecord, error) {
	var preds []func(*entsql.Selector)
	if opts.UserKey != "" {
		preds = append(preds, entsql.FieldEQ(fieldUserKey, opts.UserKey))
	}
	if opts.Topic != "" {
		preds = append(preds, entsql.FieldEQ(fieldTopic, opts.Topic))
	}
	if !opts.From.IsZero() {
		preds = append(preds, entsql.FieldGTE(fieldFinishedAt, opts.From.UTC()))
	}
	if !opts.To.IsZero() {
		preds = append(preds, entsql.FieldLTE(fieldFinishedAt, opts.To.UTC()))
	}

	spec := sqlgraph.NewQuerySpec(attemptsTableName, attemptColumns(), sqlgraph.NewFieldSpec(columnID, field.TypeInt))
	if len(preds) > 0 {
		spec.Predicate = entsql.AndPredicates(preds...)
	}
	spec.Order = func(s *entsql.Selector) {
		s.OrderBy(entsql.Desc(s.C(fieldFinishedAt)), entsql.Desc(s.C(columnID)))
	}
	if opts.Limit > 0 {
		spec.Limit = opts.Limit
	}

	var out []AttemptRecord
	spec.ScanValues = r.scanValues
	spec.Assign = func(columns []string, values []any) error {
		rec, err := assignAttempt(columns, values)
		if err != nil {
			return err
		}
		out = append(out, rec)
		return nil
	}
	if err := sqlgraph.QueryNodes(ctx, r.drv, spec); err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	return out, nil
}

// scanValues returns scan targets typed after the schema fields.
func (r *attemptRepo) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i, c := range columns {
		if c == columnID {
			values[i] = new(sql.NullInt64)
			continue
		}
		d, ok := r.fields[c]
		if !ok {
			return nil, fmt.Errorf("unexpected column %q for type Attempt", c)
		}
		switch d.Info.Type {
		case field.TypeBool:
			values[i] = new(sql.NullBool)
		case field.TypeInt, field.TypeInt64:
			values[i] = new(sql.NullInt64)
		case field.TypeTime:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.NullString)
		}
	}
	return values, nil
}

func assignAttempt(columns []string, values []any) (AttemptRecord, error) {
	var rec AttemptRecord
	if len(columns) != len(values) {
		return rec, fmt.Errorf("mismatch number of scan values: %d != %d", len(values), len(columns))
	}
	for i, c := range columns {
		switch v := values[i].(type) {
		case *sql.NullString:
			switch c {
			case fieldAttemptID:
				rec.ID = v.String
			case fieldUserKey:
				rec.UserKey = v.String
			case fieldSurname:
				rec.Surname = v.String
			case fieldName:
				rec.Name = v.String
			case fieldPatronymic:
				rec.Patronymic = v.String
			case fieldTopic:
				rec.Topic = v.String
			}
		case *sql.NullInt64:
			switch c {
			case fieldCorrect:
				rec.Correct = int(v.Int64)
			case fieldTotal:
				rec.Total = int(v.Int64)
			}
		case *sql.NullBool:
			if c == fieldRandomized {
				rec.Randomized = v.Bool
			}
		case *sql.NullTime:
			switch c {
			case fieldStartedAt:
				rec.StartedAt = v.Time.UTC()
			case fieldFinishedAt:
				rec.FinishedAt = v.Time.UTC()
			}
		default:
			return rec, fmt.Errorf("unexpected type %T for field %s", values[i], c)
		}
	}
	return rec, nil
}

// validate runs the schema validators declared for d against v.
func validate(d *field.Descriptor, v any) error {
	for _, fn := range d.Validators {
		var err error
		switch fn := fn.(type) {
		case func(string) error:
			if s, ok := v.(string); ok {
				err = fn(s)
			}
		case func(int) error:
			if n, ok := v.(int); ok {
				err = fn(n)
			}
		}
		if err != nil {
			return fmt.Errorf("validator failed for field %q: %w", d.Name, err)
		}
	}
	return nil
}
