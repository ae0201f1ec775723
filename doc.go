/*
Package turing simulates single-tape Turing machines.

A machine is a finite transition table of quintuples driving read, write and move
steps over a tape that is infinite in both directions. The tape is stored in a
plain slice that only grows: storage index 0 holds position 0, even indices hold
the positive positions and odd indices the negative ones.

# Packages

  - pkg/tape maps head movements onto storage indices.
  - pkg/machine is the execution engine, generic over state and symbol types.
  - pkg/dsl builds rule tables fluently.
  - pkg/catalog holds the built-in programs.
  - pkg/render draws the two-line tape view.
  - pkg/session keeps running machines in memory for the HTTP and MCP servers.

# Usage

	rules := dsl.New[string, catalog.Bit]()
	rules.On("0", catalog.Zero).Write(catalog.One).Right().Goto("1")
	rules.On("1", catalog.Zero).Write(catalog.One).Left().Goto("0")

	m := machine.New("0", rules.MustBuild())
	for m.Step() == machine.Stepped {
		fmt.Println(render.Text(m.Snapshot()))
	}

A machine halts when no rule matches its state and the symbol under the head.
Further steps leave it unchanged.
*/
package turing
