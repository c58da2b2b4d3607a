// Copyright (c) 2026 Durafone. All rights reserved.

package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/durafone/storefront/internal/catalog"
)

/*
TestSelection_AddIsIdempotent verifies that re-adding a selected product
changes nothing.
*/
func TestSelection_AddIsIdempotent(t *testing.T) {
	products := fixtureProducts()

	selection := catalog.Selection{}.Add(products[0])
	require.Len(t, selection, 1)

	// Same ID again, even with different field values.
	duplicate := products[0]
	duplicate.Price = 999
	selection = selection.Add(duplicate)

	require.Len(t, selection, 1)
	assert.Equal(t, products[0].Price, selection[0].Price)
}

/*
TestSelection_AddStopsAtCapacity verifies the three-product ceiling.
*/
func TestSelection_AddStopsAtCapacity(t *testing.T) {
	products := fixtureProducts()

	selection := catalog.Selection{}
	for _, product := range products {
		selection = selection.Add(product)
	}

	// The fourth add is a no-op.
	require.Len(t, selection, catalog.MaxCompare)
	assert.Equal(t, []int{1, 2, 3}, selection.IDs())
	assert.False(t, selection.Contains(4))
}

/*
TestSelection_Remove covers removal and the absent-ID no-op.
*/
func TestSelection_Remove(t *testing.T) {
	products := fixtureProducts()

	selection := catalog.Selection{}.Add(products[0]).Add(products[1])

	// 1. Remove a selected product.
	selection = selection.Remove(products[0].ID)
	assert.Equal(t, []int{2}, selection.IDs())

	// 2. Removing an absent ID changes nothing.
	selection = selection.Remove(42)
	assert.Equal(t, []int{2}, selection.IDs())
}

/*
TestSelection_ValueSemantics verifies that Add on a shared prefix never
bleeds into a sibling selection.
*/
func TestSelection_ValueSemantics(t *testing.T) {
	products := fixtureProducts()

	base := catalog.Selection{}.Add(products[0])
	left := base.Add(products[1])
	right := base.Add(products[2])

	assert.Equal(t, []int{1, 2}, left.IDs())
	assert.Equal(t, []int{1, 3}, right.IDs())
	assert.Equal(t, []int{1}, base.IDs())
}

/*
TestSelection_Clear verifies that clearing empties the selection.
*/
func TestSelection_Clear(t *testing.T) {
	products := fixtureProducts()

	selection := catalog.Selection{}.Add(products[0]).Add(products[1]).Clear()
	assert.Empty(t, selection)
}

/*
TestCandidates verifies the chooser feed: unselected products, in catalog
order, ignoring IDs the catalog does not know.
*/
func TestCandidates(t *testing.T) {
	products := fixtureProducts()

	tests := []struct {
		name     string
		selected []int
		ids      []int
	}{
		{"nothing_selected", nil, []int{1, 2, 3, 4}},
		{"some_selected", []int{2, 4}, []int{1, 3}},
		{"all_selected", []int{1, 2, 3, 4}, []int{}},
		{"unknown_ids_ignored", []int{99}, []int{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := catalog.Candidates(products, tt.selected)

			ids := make([]int, len(result))
			for i, product := range result {
				ids[i] = product.ID
			}
			assert.Equal(t, tt.ids, ids)
		})
	}
}
