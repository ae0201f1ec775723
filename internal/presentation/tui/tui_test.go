package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, "1.2.3")
	assert.Contains(t, buf.String(), "v1.2.3")
	assert.GreaterOrEqual(t, strings.Count(buf.String(), "\n"), 7)
}

func TestNewRenderer_Plain(t *testing.T) {
	render, err := NewRenderer(false, 80)
	require.NoError(t, err)

	out, err := render("# oscillator\n\nWrites **1** twice.")
	require.NoError(t, err)
	assert.Contains(t, out, "oscillator")
	assert.Contains(t, out, "Writes")
	assert.NotContains(t, out, "\x1b[")
}

func TestTerminalDetection(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, IsTerminal(&buf))
	assert.Equal(t, termenv.Ascii, Profile(&buf, true))
}
