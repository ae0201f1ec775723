package tape_test

import (
	"testing"

	"github.com/aretw0/turing/pkg/tape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func walk(t *testing.T, start, n int, m tape.Movement) []int {
	t.Helper()
	got := make([]int, 0, n)
	index := start
	for i := 0; i < n; i++ {
		next, ok := tape.Resolve(m, index)
		require.True(t, ok, "resolve %v from %d", m, index)
		index = next
		got = append(got, index)
	}
	return got
}

func TestResolve_Sequences(t *testing.T) {
	tests := []struct {
		name  string
		start int
		move  tape.Movement
		want  []int
	}{
		{"right from zero", 0, tape.Right, []int{2, 4, 6, 8}},
		{"left from zero", 0, tape.Left, []int{1, 3, 5, 7}},
		{"left across zero", 4, tape.Left, []int{2, 0, 1, 3}},
		{"right back from negatives", 5, tape.Right, []int{3, 1, 0, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, walk(t, tt.start, len(tt.want), tt.move))
		})
	}
}

func TestResolve_Stop(t *testing.T) {
	for _, index := range []int{0, 1, 2, 3, 10, 11} {
		next, ok := tape.Resolve(tape.Stop, index)
		assert.False(t, ok, "stop must not move from %d", index)
		assert.Equal(t, index, next)
	}
}

func TestResolve_UndeclaredMovement(t *testing.T) {
	_, ok := tape.Resolve(tape.Movement(42), 4)
	assert.False(t, ok)
}

func TestResolve_MatchesLogicalNeighbour(t *testing.T) {
	for index := 0; index < 64; index++ {
		p := tape.Position(index)

		left, ok := tape.Resolve(tape.Left, index)
		require.True(t, ok)
		assert.Equal(t, p-1, tape.Position(left), "left of index %d", index)

		right, ok := tape.Resolve(tape.Right, index)
		require.True(t, ok)
		assert.Equal(t, p+1, tape.Position(right), "right of index %d", index)
	}
}

func TestPositionIndex_RoundTrip(t *testing.T) {
	// Every index reachable by walking in either direction from the origin.
	seen := map[int]bool{0: true}
	for _, m := range []tape.Movement{tape.Left, tape.Right} {
		for _, i := range walk(t, 0, 50, m) {
			seen[i] = true
		}
	}

	for i := range seen {
		assert.Equal(t, i, tape.Index(tape.Position(i)), "index %d", i)
	}
	for p := -50; p <= 50; p++ {
		assert.Equal(t, p, tape.Position(tape.Index(p)), "position %d", p)
	}
}

func TestPosition_Layout(t *testing.T) {
	want := []int{0, -1, 1, -2, 2, -3, 3}
	for i, p := range want {
		assert.Equal(t, p, tape.Position(i))
	}
}

func TestOrder(t *testing.T) {
	tests := []struct {
		length int
		want   []int
	}{
		{0, nil},
		{1, []int{0}},
		{2, []int{1, 0}},
		{3, []int{1, 0, 2}},
		{4, []int{3, 1, 0, 2}},
		{7, []int{5, 3, 1, 0, 2, 4, 6}},
	}

	for _, tt := range tests {
		got := tape.Order(tt.length)
		assert.Equal(t, tt.want, got, "length %d", tt.length)

		prev := 0
		for k, i := range got {
			if k > 0 {
				assert.Equal(t, prev+1, tape.Position(i), "positions must be contiguous")
			}
			prev = tape.Position(i)
		}
	}
}
