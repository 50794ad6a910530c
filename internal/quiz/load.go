package quiz

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// utf8BOM is stripped from the start of question files saved by some editors.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// LoadError reports a question file that could not be used.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load questions from %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads and validates the question file at path. Files ending in
// .yaml or .yml are read as YAML, anything else as JSON.
func Load(path string) ([]Question, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	parse := Parse
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parse = ParseYAML
	}
	qs, err := parse(raw)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return qs, nil
}

// LoadBank is Load followed by NewBank.
func LoadBank(path string) (*Bank, error) {
	qs, err := Load(path)
	if err != nil {
		return nil, err
	}
	return NewBank(qs), nil
}

// Parse decodes and validates question file contents.
func Parse(raw []byte) ([]Question, error) {
	raw = bytes.TrimPrefix(raw, utf8BOM)

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	sch, err := fileSchema()
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var qs []Question
	if err := json.Unmarshal(raw, &qs); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}
	for i, q := range qs {
		if err := validate(q); err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	return qs, nil
}

// ParseYAML converts a YAML question file to JSON and parses it with Parse,
// so both formats go through the same schema.
func ParseYAML(raw []byte) ([]Question, error) {
	raw = bytes.TrimPrefix(raw, utf8BOM)

	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	converted, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("convert YAML: %w", err)
	}
	return Parse(converted)
}

// validate enforces the rules the schema cannot express.
func validate(q Question) error {
	offered := make(map[string]bool, len(q.Answers))
	for _, a := range q.Answers {
		if offered[a] {
			return fmt.Errorf("duplicate answer %q", a)
		}
		offered[a] = true
	}
	for _, c := range q.CorrectAnswers {
		if !offered[c] {
			return fmt.Errorf("correct answer %q is not among the answers", c)
		}
	}
	return nil
}
