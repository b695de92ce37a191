// Package builder provides internal helper functions and types
// for configuring ID schemes in graph constructors.
package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a vertex identifier from its zero-based index.
// It must be a pure, deterministic function: given the same idx, it always
// returns the same string. Panics in implementations indicate programmer
// error in configuration.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
// Complexity: O(d) time where d = number of digits in idx, O(1) extra space.
// Never panics.
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolNumberIDFn returns prefix + decimal index, e.g. "v0", "v1", ...
// Complexity: O(d) where d is the number of decimal digits in idx.
// Panics if idx < 0.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// WithSymbNumb sets the ID scheme to SymbolNumberIDFn(prefix).
// Example: WithSymbNumb("v") → "v0","v1",...
// Complexity: O(1).
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithDefaultIDs resets the ID scheme to DefaultIDFn.
// Complexity: O(1).
func WithDefaultIDs() BuilderOption {
	return WithIDScheme(DefaultIDFn)
}
