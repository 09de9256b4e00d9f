// Package tui is the interactive presentation layer over a todo.Store.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/todo"
	"github.com/Makepad-fr/tada/internal/ui"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Model is the Bubble Tea model. Every action goes straight to the store,
// which persists it, and the visible rows are re-read from FilteredView.
type Model struct {
	store *todo.Store
	log   *log.Logger
	keys  keyMap
	state *viewState

	list   list.Model
	filter model.FilterMode

	// Inline add
	adding bool
	ti     textinput.Model
	addErr string

	status        string
	width, height int
}

// New builds the model with FilterMode all; the filter is never persisted.
func New(s *todo.Store, logger *log.Logger) Model {
	if logger == nil {
		logger = logging.Discard()
	}
	state := &viewState{theme: ui.For(s.Theme())}
	keys := newKeyMap()

	l := list.New(nil, itemDelegate{state: state}, defaultWidth-4, defaultHeight-6)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	// f and d are ours; keep paging on arrows.
	l.KeyMap.NextPage = key.NewBinding(key.WithKeys("right", "l", "pgdown"), key.WithHelp("→/l/pgdn", "next page"))
	l.KeyMap.PrevPage = key.NewBinding(key.WithKeys("left", "h", "pgup"), key.WithHelp("←/h/pgup", "prev page"))

	m := Model{
		store:  s,
		log:    logger,
		keys:   keys,
		state:  state,
		list:   l,
		filter: model.FilterAll,
		width:  defaultWidth,
		height: defaultHeight,
	}
	m.list.AdditionalShortHelpKeys = func() []key.Binding { return keys.short(state.grabbing) }
	m.list.AdditionalFullHelpKeys = keys.full

	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.Placeholder = "What needs to be done?"

	m.applyTheme()
	m.refresh()
	return m
}

// Run starts the Bubble Tea program in the alternate screen.
func Run(s *todo.Store, logger *log.Logger) error {
	p := tea.NewProgram(New(s, logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *Model) applyTheme() {
	m.state.theme = ui.For(m.store.Theme())
	t := m.state.theme
	m.list.Styles.Title = t.Title
	m.list.Styles.HelpStyle = t.Help
	m.list.Styles.PaginationStyle = t.Help
	m.ti.PromptStyle = t.Accent
}

// refresh reloads rows from the store and keeps the cursor in range.
func (m *Model) refresh() {
	view := m.store.FilteredView(m.filter)
	rows := make([]list.Item, 0, len(view))
	for _, it := range view {
		rows = append(rows, listItem{Item: it})
	}
	idx := m.list.Index()
	m.list.SetItems(rows)
	if idx >= len(rows) {
		idx = len(rows) - 1
	}
	if idx < 0 {
		idx = 0
	}
	m.list.Select(idx)
	m.list.Title = m.header()
}

func (m *Model) header() string {
	t := m.state.theme
	done, active := m.store.CompletedCount(), m.store.ActiveCount()
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d   %s",
		t.Title.Render("Todos"),
		t.Success.Render(t.SymDone), done,
		t.Pending.Render(t.SymPending), active,
		t.Accent.Render("Total"), m.store.Len(),
		t.Muted.Render("["+string(m.filter)+"]"),
	)
}

func (m *Model) selectID(id int64) {
	for i, it := range m.list.Items() {
		if li, ok := it.(listItem); ok && li.ID == id {
			m.list.Select(i)
			return
		}
	}
}

func (m Model) selected() (listItem, bool) {
	li, ok := m.list.SelectedItem().(listItem)
	return li, ok
}

// Filter reports the current filter mode.
func (m Model) Filter() model.FilterMode { return m.filter }

// Grabbing reports whether an item is picked up for a move.
func (m Model) Grabbing() bool { return m.state.grabbing }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.resize()
		return m, nil
	}

	if m.adding {
		return m.updateAdding(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	if key.Matches(km, m.keys.Quit) {
		return m, tea.Quit
	}
	if m.state.grabbing {
		return m.updateGrabbing(km)
	}

	switch {
	case key.Matches(km, m.keys.Add):
		m.adding = true
		m.addErr = ""
		m.ti.SetValue("")
		m.ti.Focus()
		m.resize()
		return m, textinput.Blink

	case key.Matches(km, m.keys.Toggle):
		if it, ok := m.selected(); ok {
			m.store.Toggle(it.ID)
			m.status = ""
			m.refresh()
		}
		return m, nil

	case key.Matches(km, m.keys.Delete):
		if it, ok := m.selected(); ok {
			m.store.Delete(it.ID)
			m.status = "deleted"
			m.refresh()
		}
		return m, nil

	case key.Matches(km, m.keys.Clear):
		n := m.store.ClearCompleted()
		m.status = fmt.Sprintf("cleared %d", n)
		m.refresh()
		return m, nil

	case key.Matches(km, m.keys.Filter):
		m.filter = m.filter.Next()
		m.list.Select(0)
		m.refresh()
		return m, nil

	case key.Matches(km, m.keys.Theme):
		mode := m.store.ToggleTheme()
		m.applyTheme()
		m.status = string(mode) + " theme"
		m.refresh()
		return m, nil

	case key.Matches(km, m.keys.Grab):
		if it, ok := m.selected(); ok {
			m.state.grabbing = true
			m.state.grabbedID = it.ID
			m.status = "moving: pick a target and press enter"
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// updateGrabbing handles keys while an item is picked up: cursor movement
// chooses the drop target, enter drops, esc cancels.
func (m Model) updateGrabbing(km tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(km, m.keys.Cancel):
		m.state.grabbing = false
		m.status = ""
		return m, nil

	case key.Matches(km, m.keys.Drop):
		dragged := m.state.grabbedID
		m.state.grabbing = false
		target, ok := m.selected()
		if !ok || target.ID == dragged {
			m.status = ""
			return m, nil
		}
		if m.store.Reorder(dragged, target.ID) {
			m.log.Debug("reordered", "dragged", dragged, "target", target.ID)
			m.status = "moved"
		}
		m.refresh()
		m.selectID(dragged)
		return m, nil

	case key.Matches(km, m.list.KeyMap.CursorUp, m.list.KeyMap.CursorDown,
		m.list.KeyMap.NextPage, m.list.KeyMap.PrevPage,
		m.list.KeyMap.GoToStart, m.list.KeyMap.GoToEnd):
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(km)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.Type {
		case tea.KeyEnter:
			it, ok := m.store.Add(m.ti.Value())
			if !ok {
				m.addErr = "Title cannot be empty"
				return m, nil
			}
			m.closeInput()
			m.status = "added"
			m.refresh()
			m.selectID(it.ID)
			return m, nil
		case tea.KeyEsc:
			m.closeInput()
			return m, nil
		case tea.KeyCtrlC:
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *Model) closeInput() {
	m.adding = false
	m.addErr = ""
	m.ti.SetValue("")
	m.ti.Blur()
	m.resize()
}

func (m *Model) resize() {
	h := m.height - 6
	if m.adding {
		h -= 4
	}
	if h < 3 {
		h = 3
	}
	w := m.width - 4
	if w < 10 {
		w = 10
	}
	m.list.SetSize(w, h)
}

func (m Model) View() string {
	t := m.state.theme
	var b strings.Builder
	b.WriteString(m.listView())

	if m.adding {
		title := "Add new item"
		if m.addErr != "" {
			title += " · " + t.Error.Render(m.addErr)
		}
		b.WriteString("\n")
		b.WriteString(ui.PanelWith(t, title+"\n"+m.ti.View()))
	}

	footer := ui.ItemsLeft(m.store.ActiveCount())
	if m.status != "" {
		footer += " · " + m.status
	}
	b.WriteString("\n")
	b.WriteString(t.Muted.Render(footer))
	return ui.PanelWith(t, b.String())
}

// listView swaps the list's generic empty text for one naming the filter.
func (m Model) listView() string {
	if len(m.list.Items()) > 0 {
		return m.list.View()
	}
	return strings.Join([]string{
		m.list.Styles.Title.Render(m.list.Title),
		"",
		m.state.theme.Muted.Render(m.filter.EmptyMessage()),
		"",
		m.list.Help.View(m.list),
	}, "\n")
}
