// Copyright (c) 2026 Durafone. All rights reserved.

package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/durafone/storefront/internal/catalog"
)

// fixtureProducts builds a small catalog with deliberate ordering traps:
// source order is not name order, prices collide, and one name is accented.
func fixtureProducts() []catalog.Product {
	return []catalog.Product{
		{ID: 1, Name: "Bravo", Category: "Aventura", Price: 10},
		{ID: 2, Name: "Alfa", Category: "Trabalho Pesado", Price: 20},
		{ID: 3, Name: "Âncora", Category: "Aventura", Price: 20},
		{ID: 4, Name: "Delta", Category: "Custo-Benefício", Price: 5},
	}
}

/*
TestFilterSort_DefaultIsFullCatalogByName verifies the zero query: every
product is visible and ordered by name.
*/
func TestFilterSort_DefaultIsFullCatalogByName(t *testing.T) {
	result := catalog.FilterSort(fixtureProducts(), catalog.Query{})

	require.Len(t, result, 4)

	names := make([]string, len(result))
	for i, product := range result {
		names[i] = product.Name
	}

	// Locale-aware: "Âncora" sorts with the As, not after "Delta".
	assert.Equal(t, []string{"Alfa", "Âncora", "Bravo", "Delta"}, names)
}

/*
TestFilterSort_PriceOrders checks both price orderings.
*/
func TestFilterSort_PriceOrders(t *testing.T) {
	products := fixtureProducts()

	asc := catalog.FilterSort(products, catalog.Query{Order: catalog.SortPriceAsc})
	require.Len(t, asc, 4)
	assert.Equal(t, 4, asc[0].ID)
	assert.Equal(t, 1, asc[1].ID)

	desc := catalog.FilterSort(products, catalog.Query{Order: catalog.SortPriceDesc})
	require.Len(t, desc, 4)
	assert.Equal(t, 5.0, desc[3].Price)
}

/*
TestFilterSort_StableOnEqualKeys verifies that equal sort keys keep
catalog order (IDs 2 and 3 both cost 20).
*/
func TestFilterSort_StableOnEqualKeys(t *testing.T) {
	result := catalog.FilterSort(fixtureProducts(), catalog.Query{Order: catalog.SortPriceAsc})

	require.Len(t, result, 4)
	assert.Equal(t, 2, result[2].ID)
	assert.Equal(t, 3, result[3].ID)
}

/*
TestFilterSort_TextAndCategory tests the two filters, combined and alone.
*/
func TestFilterSort_TextAndCategory(t *testing.T) {
	products := fixtureProducts()

	tests := []struct {
		name  string
		query catalog.Query
		ids   []int
	}{
		{"text_case_insensitive", catalog.Query{Text: "alfa"}, []int{2}},
		{"text_substring", catalog.Query{Text: "a"}, []int{2, 3, 1, 4}},
		{"category_exact", catalog.Query{Category: "Aventura"}, []int{3, 1}},
		{"text_plus_category", catalog.Query{Text: "bravo", Category: "Aventura"}, []int{1}},
		{"no_match", catalog.Query{Text: "zulu"}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := catalog.FilterSort(products, tt.query)

			ids := make([]int, len(result))
			for i, product := range result {
				ids[i] = product.ID
			}
			assert.Equal(t, tt.ids, ids)
		})
	}
}

/*
TestFilterSort_DoesNotMutateInput verifies purity: the caller's slice
keeps its original order after any derived view.
*/
func TestFilterSort_DoesNotMutateInput(t *testing.T) {
	products := fixtureProducts()

	_ = catalog.FilterSort(products, catalog.Query{Order: catalog.SortPriceDesc})

	assert.Equal(t, 1, products[0].ID)
	assert.Equal(t, 2, products[1].ID)
	assert.Equal(t, 3, products[2].ID)
	assert.Equal(t, 4, products[3].ID)
}

/*
TestParseSortOrder verifies the fallback to name ordering.
*/
func TestParseSortOrder(t *testing.T) {
	assert.Equal(t, catalog.SortPriceAsc, catalog.ParseSortOrder("price_asc"))
	assert.Equal(t, catalog.SortPriceDesc, catalog.ParseSortOrder("price_desc"))
	assert.Equal(t, catalog.SortNameAsc, catalog.ParseSortOrder("name"))
	assert.Equal(t, catalog.SortNameAsc, catalog.ParseSortOrder(""))
	assert.Equal(t, catalog.SortNameAsc, catalog.ParseSortOrder("rating"))
}
