package tape

// Resolve returns the storage index reached by applying m to the cell at index.
// ok is false when the head does not move: always for Stop, and for any value
// that is not a declared Movement.
//
// Positions 0 and -1 are the boundaries where a step crosses from the even
// (non-negative) indices to the odd (negative) ones, so they get their own cases.
func Resolve(m Movement, index int) (next int, ok bool) {
	if m != Left && m != Right {
		return index, false
	}

	switch {
	case index == 0:
		if m == Left {
			return 1, true
		}
		return 2, true
	case index%2 == 0:
		if m == Left {
			return index - 2, true
		}
		return index + 2, true
	case index == 1:
		if m == Left {
			return 3, true
		}
		return 0, true
	default:
		if m == Left {
			return index + 2, true
		}
		return index - 2, true
	}
}

// Position converts a storage index to its logical tape position.
func Position(index int) int {
	if index%2 == 0 {
		return index / 2
	}
	return -(index + 1) / 2
}

// Index converts a logical tape position to its storage index.
func Index(position int) int {
	if position >= 0 {
		return 2 * position
	}
	return -2*position - 1
}

// Order lists the storage indices of a tape holding length cells in logical
// order: negative positions from the most negative up, then 0, 1, 2, ….
func Order(length int) []int {
	if length <= 0 {
		return nil
	}
	order := make([]int, 0, length)
	last := length - 1
	if last%2 == 0 {
		last--
	}
	for i := last; i >= 1; i -= 2 {
		order = append(order, i)
	}
	for i := 0; i < length; i += 2 {
		order = append(order, i)
	}
	return order
}
