package cli

import (
	"fmt"

	xansi "github.com/charmbracelet/x/ansi"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/todo"
	"github.com/Makepad-fr/tada/internal/ui"
)

const maxTitleWidth = 80

// row is an item with its 1-based position in the full list, so refs
// printed under a filter still resolve.
type row struct {
	pos  int
	item model.Item
}

func renderList(s *todo.Store, mode model.FilterMode, group bool) string {
	t := ui.Current()

	pos := make(map[int64]int, s.Len())
	for i, it := range s.Items() {
		pos[it.ID] = i + 1
	}
	view := s.FilteredView(mode)
	rows := make([]row, 0, len(view))
	for _, it := range view {
		rows = append(rows, row{pos: pos[it.ID], item: it})
	}

	// Header + progress
	done, pending := s.CompletedCount(), s.ActiveCount()
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render(t.SymDone), done,
		t.Pending.Render(t.SymPending), pending,
		t.Accent.Render("Total"), s.Len(),
	)
	if mode != model.FilterAll {
		header += "  " + t.Muted.Render("["+string(mode)+"]")
	}

	var lines []string
	lines = append(lines, header)
	lines = append(lines, t.Muted.Render(ui.ProgressBar(done, done+pending, 28)))
	lines = append(lines, "")

	switch {
	case len(rows) == 0:
		lines = append(lines, t.Muted.Render(mode.EmptyMessage()))
	case group:
		lines = append(lines, groupLines(rows)...)
	default:
		lines = append(lines, flatLines(rows)...)
	}
	lines = append(lines, "")
	lines = append(lines, t.Muted.Render(ui.ItemsLeft(pending)))
	return ui.Panel(lines)
}

func flatLines(rows []row) []string {
	t := ui.Current()
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		idx := fmt.Sprintf("%2d.", r.pos)
		box := t.Muted.Render(t.BoxUnchecked)
		text := xansi.Truncate(r.item.Text, maxTitleWidth, "...")
		if r.item.IsComplete {
			box = t.Success.Render(t.BoxChecked)
			text = t.Done.Render(text)
		}
		out = append(out, fmt.Sprintf("%s %s %s  %s",
			t.Muted.Render(idx), box, text, t.Muted.Render(idLabel(r.item.ID))))
	}
	return out
}

func groupLines(rows []row) []string {
	t := ui.Current()
	var pend, done []row
	for _, r := range rows {
		if r.item.IsComplete {
			done = append(done, r)
		} else {
			pend = append(pend, r)
		}
	}
	var lines []string
	lines = append(lines, t.Accent.Render("Pending"))
	if len(pend) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(pend)...)
	}
	lines = append(lines, "")
	lines = append(lines, t.Accent.Render("Done"))
	if len(done) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(done)...)
	}
	return lines
}
