// Package sample builds batches of synthetic items for demos and tests.
package sample

import (
	"fmt"

	"github.com/flarebyte/abacus/internal/arith"
)

// ValueFactor scales an item's ID into its Value.
const ValueFactor = 1.5

// Item is one synthetic record.
type Item struct {
	ID    int     `json:"id" yaml:"id"`
	Name  string  `json:"name" yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
}

// String is the debug form printed by `abacus generate`.
func (it Item) String() string {
	return fmt.Sprintf("Item{ID: %d, Name: %q, Value: %s}", it.ID, it.Name, arith.FormatNumber(it.Value))
}

// Items returns n items with IDs 1..n.
func Items(n int) []Item {
	if n <= 0 {
		return []Item{}
	}
	out := make([]Item, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, Item{
			ID:    i,
			Name:  fmt.Sprintf("Item %d", i),
			Value: arith.Multiply(float64(i), ValueFactor),
		})
	}
	return out
}
