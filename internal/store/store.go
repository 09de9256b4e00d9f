// Package store defines the string key/value persistence the todo list is
// mirrored to, plus a factory over the concrete backends.
package store

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/Makepad-fr/tada/internal/store/jsonstore"
	"github.com/Makepad-fr/tada/internal/store/sqlstore"
)

// KV is a string-keyed store surviving process restarts.
// Get reports ok=false when the key has never been set.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Backend is a KV that owns resources.
type Backend interface {
	KV
	Close() error
}

// Backend names accepted by Open.
const (
	BackendJSON    = "json"
	BackendSQLite  = "sqlite"
	BackendSQLite3 = "sqlite3"
	BackendMemory  = "memory"
)

// Backends lists every name Open understands.
func Backends() []string {
	return []string{BackendJSON, BackendSQLite, BackendSQLite3, BackendMemory}
}

// DefaultPath is the data file used when none is configured.
func DefaultPath(backend string) string {
	switch backend {
	case BackendSQLite, BackendSQLite3:
		return sqlstore.DefaultFileName
	case BackendMemory:
		return ""
	default:
		return jsonstore.DefaultFileName
	}
}

// Open returns the backend registered under name, rooted at path.
func Open(name, path string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case BackendJSON, "":
		return nonNil(jsonstore.Open(path))
	case BackendSQLite:
		return nonNil(sqlstore.Open(sqlstore.DriverPureGo, path))
	case BackendSQLite3:
		return nonNil(sqlstore.Open(sqlstore.DriverCgo, path))
	case BackendMemory:
		return NewMemory(), nil
	}
	return nil, fmt.Errorf("unknown backend %q (want one of %s)", name, strings.Join(Backends(), ", "))
}

// nonNil keeps a failed open from yielding a typed-nil Backend.
func nonNil[B Backend](b B, err error) (Backend, error) {
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Memory is an in-process KV. Nothing survives the process.
type Memory struct {
	mu sync.Mutex
	m  map[string]string
}

func NewMemory() *Memory {
	return &Memory{m: make(map[string]string)}
}

func (s *Memory) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *Memory) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return nil
}

// Keys returns the stored keys in sorted order.
func (s *Memory) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.m))
	for k := range s.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s *Memory) Close() error { return nil }
