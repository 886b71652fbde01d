package slicetree_test

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlslice/slicetree"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleSlice
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A flat snapshot mixing a sliceable series with a scalar. One call
//	keeps positions 1..3 of every leaf whose axis has length 5.
//
// Use case:
//
//	Trimming a time window out of heterogeneous telemetry without writing
//	per-field plumbing.
func ExampleSlice() {
	data := map[string]any{
		"a":      []float64{1, 2, 3, 4, 5},
		"scalar": 42,
	}

	out, err := slicetree.Slice(data, slicetree.NewRange(1, 4), 5)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	m := out.(map[string]any)
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%s: %v\n", k, m[k])
	}
	// Output:
	// a: [2 3 4]
	// scalar: 42
}

// ExampleSlice_override shows a path-keyed rule replacing one subtree
// while the rest of the structure slices normally.
func ExampleSlice_override() {
	data := map[string]any{
		"keep":    []float64{1, 2, 3, 4, 5},
		"special": []float64{9, 9, 9, 9, 9},
	}
	special := slicetree.NewPath().Key("special")

	out, err := slicetree.Slice(data, slicetree.Reversed(), 5,
		slicetree.WithOverride(
			func(c slicetree.Context) bool { return c.Path.Equal(special) },
			func(c slicetree.Context) (any, error) { return "redacted", nil },
		))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	m := out.(map[string]any)
	fmt.Println(m["keep"])
	fmt.Println(m["special"])
	// Output:
	// [5 4 3 2 1]
	// redacted
}

// ExampleSelectorFor demonstrates the slicing-vs-indexing guard.
func ExampleSelectorFor() {
	if _, err := slicetree.SelectorFor(2); err != nil {
		fmt.Println(err)
	}
	// Output:
	// slicetree: got single position 2: slicetree: selector must be slice-like, not an index
}
