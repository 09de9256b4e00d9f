package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// JSON-backed key/value storage. Single file, human-readable, portable.
// The file holds one object mapping keys to string values. Every Get and Set
// takes an advisory lock on a sibling ".lock" file, so a CLI command and a
// running TUI never interleave writes.

const DefaultFileName = "tada.json"

type Store struct {
	path string
	lock *flock.Flock
}

// Open prepares a store at path. An empty path means DefaultFileName in the
// working directory. The file itself is created on the first Set.
func Open(path string) (*Store, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getwd: %w", err)
		}
		path = filepath.Join(wd, DefaultFileName)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir: %w", err)
		}
	}
	return &Store{path: path, lock: flock.New(path + ".lock")}, nil
}

func (s *Store) Path() string { return s.path }

func (s *Store) Get(key string) (string, bool, error) {
	if err := s.lock.RLock(); err != nil {
		return "", false, fmt.Errorf("lock: %w", err)
	}
	defer s.lock.Unlock()

	m, err := s.read()
	if err != nil {
		return "", false, err
	}
	v, ok := m[key]
	return v, ok, nil
}

// Set rewrites the whole file with key updated. A file that no longer parses
// is moved aside to "<path>.corrupt" and replaced, so a damaged file never
// blocks new writes.
func (s *Store) Set(key, value string) error {
	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("lock: %w", err)
	}
	defer s.lock.Unlock()

	m, err := s.read()
	if err != nil {
		var se *json.SyntaxError
		var te *json.UnmarshalTypeError
		if !errors.As(err, &se) && !errors.As(err, &te) {
			return err
		}
		if err := os.Rename(s.path, s.path+".corrupt"); err != nil {
			return fmt.Errorf("move corrupt file: %w", err)
		}
		m = map[string]string{}
	}
	m[key] = value
	return s.write(m)
}

func (s *Store) Close() error {
	return s.lock.Close()
}

func (s *Store) read() (map[string]string, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	m := map[string]string{}
	if len(b) == 0 {
		return m, nil
	}
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return m, nil
}

func (s *Store) write(m map[string]string) error {
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
