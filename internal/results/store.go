package results

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
)

// Attempt is the score of one completed attempt on a topic.
type Attempt struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// Results maps user key to topic to the latest attempt.
type Results map[string]map[string]Attempt

// Store holds the results mapping for the process lifetime and
// persists it to a JSON file.
type Store struct {
	path string
	data Results
}

// New returns an empty Store that saves to path.
func New(path string) *Store {
	return &Store{path: path, data: make(Results)}
}

// Load reads the results file at path. A missing or unparseable file yields
// an empty store; only other read failures are returned.
func Load(path string) (*Store, error) {
	s := New(path)

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("read results: %w", err)
	}

	var data Results
	if err := json.Unmarshal(raw, &data); err != nil {
		slog.Warn("results file is corrupt, starting empty", "path", path, "err", err)
		return s, nil
	}
	for key, topics := range data {
		if topics == nil {
			delete(data, key)
		}
	}
	if data != nil {
		s.data = data
	}
	return s, nil
}

// Path returns the file the store saves to.
func (s *Store) Path() string {
	return s.path
}

// Save rewrites the results file with the full mapping.
func (s *Store) Save() error {
	b, err := json.MarshalIndent(s.data, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	b = append(b, '\n')

	if err := ensureDir(s.path); err != nil {
		return fmt.Errorf("create results dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".results-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("chmod results: %w", err)
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write results: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close results: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace results: %w", err)
	}
	return nil
}

// Record stores a as the latest attempt of user key on topic.
func (s *Store) Record(key, topic string, a Attempt) {
	topics, ok := s.data[key]
	if !ok {
		topics = make(map[string]Attempt)
		s.data[key] = topics
	}
	topics[topic] = a
}

// Get returns the latest attempt of key on topic.
func (s *Store) Get(key, topic string) (Attempt, bool) {
	a, ok := s.data[key][topic]
	return a, ok
}

// User returns a copy of the topic results for key, or nil if the user has
// no results.
func (s *Store) User(key string) map[string]Attempt {
	topics, ok := s.data[key]
	if !ok {
		return nil
	}
	out := make(map[string]Attempt, len(topics))
	for t, a := range topics {
		out[t] = a
	}
	return out
}

// Remove deletes all results of key and reports whether there were any.
func (s *Store) Remove(key string) bool {
	if _, ok := s.data[key]; !ok {
		return false
	}
	delete(s.data, key)
	return true
}

// Users returns the known user keys, sorted.
func (s *Store) Users() []string {
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Snapshot returns a deep copy of the whole mapping.
func (s *Store) Snapshot() Results {
	out := make(Results, len(s.data))
	for k := range s.data {
		out[k] = s.User(k)
	}
	return out
}
