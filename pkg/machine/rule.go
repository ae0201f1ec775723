package machine

import (
	"errors"
	"fmt"

	"github.com/aretw0/turing/pkg/tape"
)

// ErrInvalidRule is returned when a rule carries a movement outside Left, Stop and Right.
var ErrInvalidRule = errors.New("invalid rule")

// Rule is a single quintuple of the transition table.
type Rule[S, A comparable] struct {
	State S             `json:"state"`
	Read  A             `json:"read"`
	Write A             `json:"write"`
	Move  tape.Movement `json:"move"`
	Next  S             `json:"next"`
}

// Matches reports whether the rule applies to the given state and symbol.
func (r Rule[S, A]) Matches(state S, symbol A) bool {
	return r.State == state && r.Read == symbol
}

func (r Rule[S, A]) String() string {
	return fmt.Sprintf("(%v, %v) -> (%v, %v, %v)", r.State, r.Read, r.Write, r.Move, r.Next)
}

// Validate checks every rule of a table and reports the first invalid one.
func Validate[S, A comparable](rules []Rule[S, A]) error {
	for i, r := range rules {
		if !r.Move.Valid() {
			return fmt.Errorf("%w: rule %d %v: undeclared movement", ErrInvalidRule, i, r)
		}
	}
	return nil
}
