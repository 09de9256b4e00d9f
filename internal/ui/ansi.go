package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// SetColorForcing overrides terminal detection. disable wins over force.
// NO_COLOR in the environment always disables color.
func SetColorForcing(force, disable bool) {
	switch {
	case disable || strings.TrimSpace(os.Getenv("NO_COLOR")) != "":
		lipgloss.SetColorProfile(termenv.Ascii)
	case force:
		if termenv.ColorProfile() == termenv.Ascii {
			lipgloss.SetColorProfile(termenv.ANSI256)
		}
	}
}

func OK(w io.Writer, msg string) {
	t := Current()
	fmt.Fprintln(w, t.Success.Render(t.SymDone+" "+msg))
}

func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, Current().Error.Render("✖ "+msg))
}

// Hint prints a muted follow-up line, e.g. after Fail.
func Hint(w io.Writer, msg string) {
	fmt.Fprintln(w, Current().Muted.Render("Hint: "+msg))
}
