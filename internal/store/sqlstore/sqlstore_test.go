package sqlstore

import (
	"path/filepath"
	"testing"
)

func setupTestDB(t *testing.T, driver string) *Store {
	t.Helper()
	s, err := Open(driver, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		if driver == DriverCgo {
			t.Skipf("cgo sqlite driver unavailable: %v", err)
		}
		t.Fatalf("failed to create test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestGetMissingKey(t *testing.T) {
	s := setupTestDB(t, DriverPureGo)

	v, ok, err := s.Get("todos")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok || v != "" {
		t.Errorf("expected absent key, got %q (ok=%v)", v, ok)
	}
}

func TestSetThenGet(t *testing.T) {
	for _, driver := range []string{DriverPureGo, DriverCgo} {
		t.Run(driver, func(t *testing.T) {
			s := setupTestDB(t, driver)

			if err := s.Set("darkMode", "true"); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			if err := s.Set("darkMode", "false"); err != nil {
				t.Fatalf("Set (overwrite) failed: %v", err)
			}

			v, ok, err := s.Get("darkMode")
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if !ok || v != "false" {
				t.Errorf("expected %q, got %q (ok=%v)", "false", v, ok)
			}
		})
	}
}

func TestValuesSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")

	s, err := Open(DriverPureGo, path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	payload := `[{"id":1,"text":"a","isComplete":false}]`
	if err := s.Set("todos", payload); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	s.Close()

	s2, err := Open(DriverPureGo, path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s2.Close()

	v, ok, err := s2.Get("todos")
	if err != nil || !ok {
		t.Fatalf("Get after reopen: ok=%v err=%v", ok, err)
	}
	if v != payload {
		t.Errorf("expected %q, got %q", payload, v)
	}
	if s2.Driver() != DriverPureGo {
		t.Errorf("expected driver %q, got %q", DriverPureGo, s2.Driver())
	}
}
