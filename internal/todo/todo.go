// Package todo holds the authoritative todo list and theme and mirrors every
// change to a string key/value store.
//
// A Store is driven by one caller at a time (a CLI command or the TUI event
// loop) and is not safe for concurrent use. Operations never fail: blank
// text, unknown ids and malformed persisted data degrade to no-ops or
// defaults, and persistence errors are logged rather than returned.
package todo

import (
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/store"
)

type Store struct {
	kv     store.KV
	log    *log.Logger
	now    func() time.Time
	items  []model.Item
	theme  model.ThemeMode
	lastID int64
}

type Option func(*Store)

func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock replaces time.Now as the source of new ids.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// New loads the list and theme from kv once. Missing or malformed values
// start an empty list and the light theme.
func New(kv store.KV, opts ...Option) *Store {
	s := &Store{
		kv:    kv,
		log:   logging.Discard(),
		now:   time.Now,
		items: []model.Item{},
		theme: model.ThemeLight,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.load()
	return s
}

func (s *Store) load() {
	raw, ok, err := s.kv.Get(KeyTodos)
	switch {
	case err != nil:
		s.log.Warn("reading todos failed, starting empty", "err", err)
	case ok:
		items, err := DecodeList(raw)
		if err != nil {
			s.log.Warn("discarding malformed todos", "err", err)
			break
		}
		items, dropped := dedupe(items)
		if len(dropped) > 0 {
			s.log.Warn("dropped todos with duplicate ids", "ids", dropped)
		}
		s.items = items
	}
	s.lastID = maxID(s.items)

	raw, ok, err = s.kv.Get(KeyDarkMode)
	switch {
	case err != nil:
		s.log.Warn("reading theme failed, using light", "err", err)
	case ok:
		theme, err := DecodeTheme(raw)
		if err != nil {
			s.log.Warn("discarding malformed theme", "err", err)
			break
		}
		s.theme = theme
	}
	s.log.Debug("loaded", "items", len(s.items), "theme", s.theme)
}

func (s *Store) persistList() {
	raw, err := EncodeList(s.items)
	if err != nil {
		s.log.Error("encoding todos failed", "err", err)
		return
	}
	if err := s.kv.Set(KeyTodos, raw); err != nil {
		s.log.Error("persisting todos failed", "err", err)
		return
	}
	s.log.Debug("persisted", "key", KeyTodos, "items", len(s.items))
}

func (s *Store) persistTheme() {
	if err := s.kv.Set(KeyDarkMode, EncodeTheme(s.theme)); err != nil {
		s.log.Error("persisting theme failed", "err", err)
		return
	}
	s.log.Debug("persisted", "key", KeyDarkMode, "theme", s.theme)
}

func (s *Store) index(id int64) int {
	return slices.IndexFunc(s.items, func(it model.Item) bool { return it.ID == id })
}

// Add appends a new open item. Text is trimmed; blank text is ignored and
// reported with ok=false.
func (s *Store) Add(text string) (model.Item, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Item{}, false
	}
	it := model.Item{
		ID:   nextID(s.now(), s.lastID, s.items),
		Text: text,
	}
	s.lastID = it.ID
	s.items = append(s.items, it)
	s.persistList()
	return it, true
}

// Toggle flips the completion flag of the item with id.
func (s *Store) Toggle(id int64) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.items[i].IsComplete = !s.items[i].IsComplete
	s.persistList()
	return true
}

// Delete removes the item with id.
func (s *Store) Delete(id int64) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.items = slices.Delete(s.items, i, i+1)
	s.persistList()
	return true
}

// ClearCompleted removes every completed item and returns how many went.
// Open items keep their relative order.
func (s *Store) ClearCompleted() int {
	before := len(s.items)
	s.items = slices.DeleteFunc(s.items, func(it model.Item) bool { return it.IsComplete })
	removed := before - len(s.items)
	if removed > 0 {
		s.persistList()
	}
	return removed
}

// Reorder moves draggedID to the position targetID held before the move.
// The target index is resolved first, then the dragged item is removed and
// reinserted at that index. Dragging downward therefore lands just after the
// target, dragging upward just before it.
func (s *Store) Reorder(draggedID, targetID int64) bool {
	if draggedID == targetID {
		return false
	}
	from, to := s.index(draggedID), s.index(targetID)
	if from < 0 || to < 0 {
		return false
	}
	dragged := s.items[from]
	s.items = slices.Delete(s.items, from, from+1)
	s.items = slices.Insert(s.items, to, dragged)
	s.persistList()
	return true
}

func (s *Store) SetTheme(mode model.ThemeMode) {
	if mode != model.ThemeDark {
		mode = model.ThemeLight
	}
	s.theme = mode
	s.persistTheme()
}

// ToggleTheme switches between light and dark and returns the new mode.
func (s *Store) ToggleTheme() model.ThemeMode {
	s.SetTheme(s.theme.Toggled())
	return s.theme
}

func (s *Store) Theme() model.ThemeMode { return s.theme }

// FilteredView returns the items matching mode in list order. The result is
// a copy.
func (s *Store) FilteredView(mode model.FilterMode) []model.Item {
	out := make([]model.Item, 0, len(s.items))
	for _, it := range s.items {
		if mode.Match(it) {
			out = append(out, it)
		}
	}
	return out
}

// ActiveCount is the number of items not yet complete.
func (s *Store) ActiveCount() int {
	n := 0
	for _, it := range s.items {
		if !it.IsComplete {
			n++
		}
	}
	return n
}

func (s *Store) CompletedCount() int { return len(s.items) - s.ActiveCount() }

func (s *Store) Len() int { return len(s.items) }

// Items returns a copy of the whole list.
func (s *Store) Items() []model.Item { return slices.Clone(s.items) }

func (s *Store) Find(id int64) (model.Item, bool) {
	i := s.index(id)
	if i < 0 {
		return model.Item{}, false
	}
	return s.items[i], true
}
