/*
Package dsl provides a fluent builder for Turing machine transition tables.

Rules are declared in order and Build preserves that order, so when two rules share a
(state, symbol) pair the one declared first wins, exactly as in machine.Machine.

Example usage:

	b := dsl.New[string, catalog.Bit]()

	b.On("A", catalog.Zero).Write(catalog.One).Right().Goto("B")
	b.On("A", catalog.One).Write(catalog.One).Left().Goto("B")
	b.On("B", catalog.Zero).Write(catalog.One).Left().Goto("A")
	b.On("B", catalog.One).Write(catalog.One).Right().Goto("H")

	rules, err := b.Build()
	if err != nil {
		log.Fatal(err)
	}
	m := machine.New("A", rules)

Unset parts of a rule take neutral defaults: the written symbol is the one read, the head
stays put and the state does not change.
*/
package dsl
