/*
Package tape maps the logical positions of a bi-infinite tape onto the indices of an
append-only, zero-indexed slice.

Storage index 0 holds logical position 0. Even indices hold the non-negative positions in
increasing order and odd indices hold the negative ones:

	index:    0  1  2  3  4  5  6  …
	position: 0 -1  1 -2  2 -3  3  …

Because both directions grow towards higher indices, a tape only ever needs to be appended to.
*/
package tape
