// Package catalog holds the built-in example machines over a binary alphabet.
package catalog
