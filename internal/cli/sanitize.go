package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// DefaultMaxLineSize bounds a REPL command line.
	DefaultMaxLineSize = 256
	// EnvMaxLineSize overrides DefaultMaxLineSize.
	EnvMaxLineSize = "TURING_MAX_LINE_SIZE"
)

var (
	ErrLineTooLarge = errors.New("command line exceeds maximum allowed size")
	ErrInvalidUTF8  = errors.New("command line contains invalid UTF-8 sequences")
)

// sanitizeLine rejects oversized or malformed command lines and strips control
// characters so they never reach the terminal or the logs.
func sanitizeLine(line string) (string, error) {
	limit := maxLineSize()
	if len(line) > limit {
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrLineTooLarge, len(line), limit)
	}
	if !utf8.ValidString(line) {
		return "", ErrInvalidUTF8
	}

	if strings.IndexFunc(line, unicode.IsControl) < 0 {
		return line, nil
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, line), nil
}

func maxLineSize() int {
	if val := os.Getenv(EnvMaxLineSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxLineSize
}
