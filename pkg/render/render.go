// Package render formats a machine snapshot as the two-line tape view:
//
//	A| 0 1 1 0
//	-|   ⁰ ^
//
// The first line shows the control state followed by the tape in logical order. The
// second marks the head with ^ and, when the head is elsewhere, logical position zero with ⁰.
package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/turing/pkg/machine"
	"github.com/muesli/termenv"
)

const (
	headMarker = "^"
	zeroMarker = "⁰"
)

// Options controls optional styling.
type Options struct {
	// Color paints the head marker using Profile.
	Color   bool
	Profile termenv.Profile
}

// Text renders s without styling.
func Text[S, A comparable](s machine.Snapshot[S, A]) string {
	return TextWith(s, Options{})
}

// TextWith renders s using opts.
func TextWith[S, A comparable](s machine.Snapshot[S, A], opts Options) string {
	state := fmt.Sprint(s.State)

	var top, bottom strings.Builder
	top.WriteString(state)
	top.WriteString("| ")
	bottom.WriteString(strings.Repeat("-", max(width(state), 1)))
	bottom.WriteString("| ")

	for _, c := range s.Cells {
		sym := fmt.Sprint(c.Symbol)
		w := max(width(sym), 1)
		top.WriteString(pad(sym, w))
		top.WriteByte(' ')

		switch {
		case c.Position == s.Head:
			bottom.WriteString(styleHead(pad(headMarker, w), opts))
		case c.Position == 0:
			bottom.WriteString(pad(zeroMarker, w))
		default:
			bottom.WriteString(strings.Repeat(" ", w))
		}
		bottom.WriteByte(' ')
	}

	return top.String() + "\n" + strings.TrimRight(bottom.String(), " ")
}

// Column returns the rune column of the head marker in the second line of Text.
func Column[S, A comparable](s machine.Snapshot[S, A]) int {
	col := max(width(fmt.Sprint(s.State)), 1) + 2
	for _, c := range s.Cells {
		if c.Position == s.Head {
			return col
		}
		col += max(width(fmt.Sprint(c.Symbol)), 1) + 1
	}
	return -1
}

func styleHead(marker string, opts Options) string {
	if !opts.Color {
		return marker
	}
	return opts.Profile.String(marker).Foreground(opts.Profile.Color("#f472b6")).Bold().String()
}

func width(s string) int {
	return utf8.RuneCountInString(s)
}

func pad(s string, w int) string {
	if n := width(s); n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return s
}
