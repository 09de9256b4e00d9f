package model

import "testing"

func TestFilterModeMatch(t *testing.T) {
	open := Item{ID: 1, Text: "open"}
	done := Item{ID: 2, Text: "done", IsComplete: true}

	tests := []struct {
		mode     FilterMode
		wantOpen bool
		wantDone bool
	}{
		{FilterAll, true, true},
		{FilterActive, true, false},
		{FilterCompleted, false, true},
		{FilterMode("bogus"), true, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			if got := tt.mode.Match(open); got != tt.wantOpen {
				t.Errorf("Match(open) = %v, want %v", got, tt.wantOpen)
			}
			if got := tt.mode.Match(done); got != tt.wantDone {
				t.Errorf("Match(done) = %v, want %v", got, tt.wantDone)
			}
		})
	}
}

func TestFilterModeNextCycles(t *testing.T) {
	f := FilterAll
	seen := []FilterMode{f}
	for i := 0; i < 3; i++ {
		f = f.Next()
		seen = append(seen, f)
	}
	want := []FilterMode{FilterAll, FilterActive, FilterCompleted, FilterAll}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("cycle = %v, want %v", seen, want)
		}
	}
}

func TestParseFilterMode(t *testing.T) {
	if f, err := ParseFilterMode(" Active "); err != nil || f != FilterActive {
		t.Errorf("ParseFilterMode(Active) = %q, %v", f, err)
	}
	if f, err := ParseFilterMode(""); err != nil || f != FilterAll {
		t.Errorf("ParseFilterMode(\"\") = %q, %v", f, err)
	}
	if _, err := ParseFilterMode("done"); err == nil {
		t.Error("expected error for unknown filter")
	}
}

func TestThemeMode(t *testing.T) {
	if ThemeLight.Toggled() != ThemeDark || ThemeDark.Toggled() != ThemeLight {
		t.Error("Toggled should swap light and dark")
	}
	if ThemeFromDark(true) != ThemeDark || ThemeFromDark(false) != ThemeLight {
		t.Error("ThemeFromDark mismatch")
	}
	if _, err := ParseThemeMode("sepia"); err == nil {
		t.Error("expected error for unknown theme")
	}
	if m, err := ParseThemeMode("DARK"); err != nil || m != ThemeDark {
		t.Errorf("ParseThemeMode(DARK) = %q, %v", m, err)
	}
}

func TestFilterModeEmptyMessage(t *testing.T) {
	tests := []struct {
		mode FilterMode
		want string
	}{
		{FilterAll, "No todos yet. Add one above!"},
		{FilterActive, "No active todos!"},
		{FilterCompleted, "No completed todos!"},
		{FilterMode("bogus"), "No todos yet. Add one above!"},
	}
	for _, tt := range tests {
		if got := tt.mode.EmptyMessage(); got != tt.want {
			t.Errorf("%q.EmptyMessage() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}
