package store

import (
	"path/filepath"
	"testing"
)

func TestMemoryGetSet(t *testing.T) {
	m := NewMemory()
	if _, ok, _ := m.Get("todos"); ok {
		t.Fatal("expected empty memory store")
	}
	if err := m.Set("todos", "[]"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := m.Set("darkMode", "true"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if v, ok, _ := m.Get("todos"); !ok || v != "[]" {
		t.Errorf("Get(todos) = %q ok=%v", v, ok)
	}
	keys := m.Keys()
	if len(keys) != 2 || keys[0] != "darkMode" || keys[1] != "todos" {
		t.Errorf("Keys() = %v", keys)
	}
}

func TestOpenBackends(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		path string
	}{
		{BackendJSON, filepath.Join(dir, "a.json")},
		{BackendSQLite, filepath.Join(dir, "a.db")},
		{BackendMemory, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Open(tt.name, tt.path)
			if err != nil {
				t.Fatalf("Open(%q): %v", tt.name, err)
			}
			defer b.Close()

			if err := b.Set("k", "v"); err != nil {
				t.Fatalf("Set: %v", err)
			}
			if v, ok, err := b.Get("k"); err != nil || !ok || v != "v" {
				t.Errorf("Get = %q ok=%v err=%v", v, ok, err)
			}
		})
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	if _, err := Open("redis", ""); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestDefaultPath(t *testing.T) {
	if DefaultPath(BackendJSON) != "tada.json" {
		t.Errorf("json default = %q", DefaultPath(BackendJSON))
	}
	if DefaultPath(BackendSQLite3) != "tada.db" {
		t.Errorf("sqlite3 default = %q", DefaultPath(BackendSQLite3))
	}
	if DefaultPath(BackendMemory) != "" {
		t.Errorf("memory default = %q", DefaultPath(BackendMemory))
	}
}
