// Copyright (c) 2026 Durafone. All rights reserved.

package catalog

import "github.com/durafone/storefront/pkg/slice"

// # Comparison Set

// MaxCompare is the maximum number of products in a comparison selection.
// The comparison page renders selections side by side, and three columns is
// the widest layout the storefront supports.
const MaxCompare = 3

// Selection is an ordered set of products chosen for side-by-side comparison.
//
// # Invariants
//
//   - At most [MaxCompare] entries.
//   - No two entries share an ID.
//   - Insertion order is preserved.
//
// All operations are value-semantic: they return the resulting selection and
// never mutate the receiver's backing array in observable ways. A full
// Selection is small enough that copying is free.
type Selection []Product

// Add returns the selection with product appended.
//
// Adding is idempotent: if the product's ID is already selected, or the
// selection is full, the selection is returned unchanged.
func (s Selection) Add(product Product) Selection {
	if len(s) >= MaxCompare || s.Contains(product.ID) {
		return s
	}

	out := make(Selection, len(s), len(s)+1)
	copy(out, s)
	return append(out, product)
}

// Remove returns the selection without the product carrying the given ID.
// Removing an absent ID is a no-op.
func (s Selection) Remove(id int) Selection {
	if !s.Contains(id) {
		return s
	}

	out := make(Selection, 0, len(s)-1)
	for _, product := range s {
		if product.ID != id {
			out = append(out, product)
		}
	}
	return out
}

// Clear returns the empty selection.
func (s Selection) Clear() Selection {
	return Selection{}
}

// Contains reports whether the selection holds a product with the given ID.
func (s Selection) Contains(id int) bool {
	for _, product := range s {
		if product.ID == id {
			return true
		}
	}
	return false
}

// IDs returns the selected product IDs in selection order.
func (s Selection) IDs() []int {
	return slice.Map(s, func(p Product) int { return p.ID })
}

// Candidates returns the catalog entries not yet selected, in catalog order.
// It feeds the "pick a product to compare" chooser.
func Candidates(products []Product, selected []int) []Product {
	chosen := make(map[int]struct{}, len(selected))
	for _, id := range selected {
		chosen[id] = struct{}{}
	}

	return slice.Filter(products, func(p Product) bool {
		_, ok := chosen[p.ID]
		return !ok
	})
}
