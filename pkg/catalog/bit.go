package catalog

import "fmt"

// Bit is the binary tape alphabet. Zero is the blank.
type Bit uint8

const (
	Zero Bit = iota
	One
)

func (b Bit) String() string {
	if b == Zero {
		return "0"
	}
	return "1"
}

// ParseBit accepts "0" or "1".
func ParseBit(s string) (Bit, error) {
	switch s {
	case "0":
		return Zero, nil
	case "1":
		return One, nil
	}
	return Zero, fmt.Errorf("invalid bit %q", s)
}
