package store

import (
	"strings"

	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	entschema "github.com/abhisek/smarttest/ent/schema"
)

const (
	attemptsTableName = "attempts"
	columnID          = "id"
)

// attemptFields returns the Attempt field descriptors, mixin fields first.
func attemptFields() []*field.Descriptor {
	s := entschema.Attempt{}
	var out []*field.Descriptor
	for _, m := range s.Mixin() {
		for _, f := range m.Fields() {
			out = append(out, f.Descriptor())
		}
	}
	for _, f := range s.Fields() {
		out = append(out, f.Descriptor())
	}
	return out
}

func attemptFieldsByName() map[string]*field.Descriptor {
	byName := make(map[string]*field.Descriptor)
	for _, d := range attemptFields() {
		byName[d.Name] = d
	}
	return byName
}

func attemptIndexes() []*index.Descriptor {
	s := entschema.Attempt{}
	var out []*index.Descriptor
	for _, m := range s.Mixin() {
		for _, i := range m.Indexes() {
			out = append(out, i.Descriptor())
		}
	}
	for _, i := range s.Indexes() {
		out = append(out, i.Descriptor())
	}
	return out
}

// attemptColumns lists every selectable column, id first.
func attemptColumns() []string {
	cols := []string{columnID}
	for _, d := range attemptFields() {
		cols = append(cols, d.Name)
	}
	return cols
}

// attemptsTable builds the migration table for the Attempt schema.
func attemptsTable() *schema.Table {
	t := schema.NewTable(attemptsTableName).
		AddPrimary(&schema.Column{Name: columnID, Type: field.TypeInt, Increment: true})
	for _, d := range attemptFields() {
		col := &schema.Column{
			Name:     d.Name,
			Type:     d.Info.Type,
			Unique:   d.Unique,
			Nullable: d.Optional,
		}
		switch v := d.Default.(type) {
		case bool, int, string:
			col.Default = v
		}
		t.AddColumn(col)
	}
	for _, i := range attemptIndexes() {
		t.AddIndex("attempt_"+strings.Join(i.Fields, "_"), i.Unique, i.Fields)
	}
	return t
}
