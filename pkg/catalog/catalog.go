package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/aretw0/turing/pkg/dsl"
	"github.com/aretw0/turing/pkg/machine"
)

// ErrProgramNotFound is returned by Lookup for unknown names.
var ErrProgramNotFound = errors.New("program not found")

// Program is a named transition table with its initial state.
type Program struct {
	Name    string                      `json:"name"`
	Summary string                      `json:"summary"`
	Initial string                      `json:"initial"`
	Rules   []machine.Rule[string, Bit] `json:"rules"`

	// Description is Markdown.
	Description string `json:"description,omitempty"`
}

// New builds a fresh machine running the program. The program name is used as the
// machine name unless opts override it.
func (p Program) New(opts ...machine.Option) *machine.Machine[string, Bit] {
	opts = append([]machine.Option{machine.WithName(p.Name)}, opts...)
	return machine.New(p.Initial, p.Rules, opts...)
}

// States lists the control states mentioned by the program, initial state first.
func (p Program) States() []string {
	seen := map[string]bool{p.Initial: true}
	states := []string{p.Initial}
	for _, r := range p.Rules {
		for _, s := range []string{r.State, r.Next} {
			if !seen[s] {
				seen[s] = true
				states = append(states, s)
			}
		}
	}
	return states
}

var programs = map[string]Program{}

func register(p Program) {
	if _, exists := programs[p.Name]; exists {
		panic(fmt.Sprintf("catalog: duplicate program %q", p.Name))
	}
	programs[p.Name] = p
}

// Lookup returns the program with the given name.
func Lookup(name string) (Program, error) {
	p, ok := programs[name]
	if !ok {
		return Program{}, fmt.Errorf("%w: %q", ErrProgramNotFound, name)
	}
	p.Rules = append([]machine.Rule[string, Bit](nil), p.Rules...)
	return p, nil
}

// Names returns the registered program names in lexical order.
func Names() []string {
	names := make([]string, 0, len(programs))
	for name := range programs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every program ordered by name.
func All() []Program {
	names := Names()
	all := make([]Program, 0, len(names))
	for _, name := range names {
		p, _ := Lookup(name)
		all = append(all, p)
	}
	return all
}

func table() *dsl.Builder[string, Bit] {
	return dsl.New[string, Bit]()
}
