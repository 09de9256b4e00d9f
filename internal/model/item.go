package model

import (
	"fmt"
	"strings"
)

// Item is the domain model for a todo entry.
// ID and Text never change after creation; only IsComplete is mutable.
type Item struct {
	ID         int64  `json:"id" yaml:"id" toml:"id"`
	Text       string `json:"text" yaml:"text" toml:"text"`
	IsComplete bool   `json:"isComplete" yaml:"isComplete" toml:"isComplete"`
}

// FilterMode selects which subset of the list is displayed. It is never persisted.
type FilterMode string

const (
	FilterAll       FilterMode = "all"
	FilterActive    FilterMode = "active"
	FilterCompleted FilterMode = "completed"
)

// Match reports whether it belongs in the view selected by f.
// Unknown modes behave like FilterAll.
func (f FilterMode) Match(it Item) bool {
	switch f {
	case FilterActive:
		return !it.IsComplete
	case FilterCompleted:
		return it.IsComplete
	default:
		return true
	}
}

// Next cycles all -> active -> completed -> all.
func (f FilterMode) Next() FilterMode {
	switch f {
	case FilterAll:
		return FilterActive
	case FilterActive:
		return FilterCompleted
	default:
		return FilterAll
	}
}

// EmptyMessage is shown when the view selected by f has no items.
func (f FilterMode) EmptyMessage() string {
	switch f {
	case FilterActive:
		return "No active todos!"
	case FilterCompleted:
		return "No completed todos!"
	default:
		return "No todos yet. Add one above!"
	}
}

func ParseFilterMode(s string) (FilterMode, error) {
	switch FilterMode(strings.ToLower(strings.TrimSpace(s))) {
	case FilterAll, "":
		return FilterAll, nil
	case FilterActive:
		return FilterActive, nil
	case FilterCompleted:
		return FilterCompleted, nil
	}
	return FilterAll, fmt.Errorf("unknown filter %q (want all, active or completed)", s)
}

// ThemeMode is the persisted light/dark preference.
type ThemeMode string

const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)

func (t ThemeMode) IsDark() bool { return t == ThemeDark }

// Toggled returns the opposite mode.
func (t ThemeMode) Toggled() ThemeMode {
	if t.IsDark() {
		return ThemeLight
	}
	return ThemeDark
}

func ThemeFromDark(dark bool) ThemeMode {
	if dark {
		return ThemeDark
	}
	return ThemeLight
}

func ParseThemeMode(s string) (ThemeMode, error) {
	switch ThemeMode(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	}
	return ThemeLight, fmt.Errorf("unknown theme %q (want light or dark)", s)
}
