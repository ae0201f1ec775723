package tui

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f io.Reader) bool {
	file, ok := f.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

// Profile returns the colour profile to use for w. Writers that are not terminals get
// termenv.Ascii, which disables styling.
func Profile(w io.Writer, color bool) termenv.Profile {
	file, ok := w.(*os.File)
	if !color || !ok || !term.IsTerminal(int(file.Fd())) {
		return termenv.Ascii
	}
	return termenv.NewOutput(file).EnvColorProfile()
}
