package tape

import (
	"fmt"
	"strings"
)

// Movement is the head displacement requested by a transition rule.
type Movement int

const (
	Left Movement = iota
	Stop
	Right
)

func (m Movement) String() string {
	switch m {
	case Left:
		return "L"
	case Stop:
		return "S"
	case Right:
		return "R"
	default:
		return fmt.Sprintf("Movement(%d)", int(m))
	}
}

// Valid reports whether m is one of Left, Stop or Right.
func (m Movement) Valid() bool {
	return m == Left || m == Stop || m == Right
}

// ParseMovement accepts "L", "S", "R" or their long forms, ignoring case.
func ParseMovement(s string) (Movement, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "l", "left":
		return Left, nil
	case "s", "stop", "n", "none":
		return Stop, nil
	case "r", "right":
		return Right, nil
	}
	return Stop, fmt.Errorf("invalid movement %q (expected L, S or R)", s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Movement) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("invalid movement %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Movement) UnmarshalText(text []byte) error {
	parsed, err := ParseMovement(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
