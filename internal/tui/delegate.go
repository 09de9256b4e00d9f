package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	xansi "github.com/charmbracelet/x/ansi"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/ui"
)

// listItem adapts model.Item to bubbles/list.Item
type listItem struct {
	model.Item
}

func (i listItem) FilterValue() string { return i.Text }

// viewState is shared between the model and the delegate, which the list
// holds by value.
type viewState struct {
	theme     ui.Theme
	grabbing  bool
	grabbedID int64
}

// Custom delegate to control how items render (single line)
type itemDelegate struct {
	state *viewState
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	t := d.state.theme

	box := t.Muted.Render(t.BoxUnchecked)
	text := it.Text
	if it.IsComplete {
		box = t.Success.Render(t.BoxChecked)
		text = t.Done.Render(text)
	}

	prefix := "  "
	grabbed := d.state.grabbing && it.ID == d.state.grabbedID
	switch {
	case grabbed:
		prefix = t.Grabbed.Render("≡ ")
	case index == m.Index():
		prefix = t.Selected.Render("> ")
	}

	line := fmt.Sprintf("%s%s %s", prefix, box, text)
	if width := m.Width(); width > 0 && xansi.StringWidth(line) > width {
		line = xansi.Truncate(line, width, "…")
	}
	fmt.Fprint(w, line)
}
