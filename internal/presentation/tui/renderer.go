package tui

import (
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

// NewRenderer returns a function that renders markdown using glamour.
// With color disabled it uses the plain "notty" style.
func NewRenderer(color bool, wordWrap int) (func(string) (string, error), error) {
	opts := []glamour.TermRendererOption{
		glamour.WithStandardStyle("notty"),
		glamour.WithColorProfile(termenv.Ascii),
		glamour.WithWordWrap(wordWrap),
	}
	if color {
		opts = []glamour.TermRendererOption{
			glamour.WithAutoStyle(), // Automatically detect light/dark background
			glamour.WithWordWrap(wordWrap),
		}
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, err
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}
