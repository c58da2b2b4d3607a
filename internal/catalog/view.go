// Copyright (c) 2026 Durafone. All rights reserved.

package catalog

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// # Derived Views

// SortOrder enumerates the catalog orderings the storefront offers.
// Exactly one order is active per query.
type SortOrder string

const (
	// SortNameAsc orders by product name ascending, pt-BR collation.
	SortNameAsc SortOrder = "name"
	// SortPriceAsc orders by price, cheapest first.
	SortPriceAsc SortOrder = "price_asc"
	// SortPriceDesc orders by price, most expensive first.
	SortPriceDesc SortOrder = "price_desc"
)

// ParseSortOrder maps a query-string value onto a [SortOrder],
// falling back to name ordering for unknown or empty input.
func ParseSortOrder(raw string) SortOrder {
	switch SortOrder(raw) {
	case SortPriceAsc, SortPriceDesc, SortNameAsc:
		return SortOrder(raw)
	default:
		return SortNameAsc
	}
}

// Query captures the visitor's listing parameters.
//
// Zero values are the "show everything" sentinels: empty Text matches all
// names and empty Category disables the category filter.
type Query struct {
	// Text is matched case-insensitively as a substring of the product name.
	Text string
	// Category must match exactly; empty means all categories.
	Category string
	// Order is the active sort; zero value falls back to [SortNameAsc].
	Order SortOrder
}

// FilterSort derives the visible product list from the catalog and a query.
//
// # Contract
//
//   - Pure: the input slice is never modified; a new slice is returned.
//   - Stable: products with equal sort keys keep their catalog order.
//   - Unbuffered: recomputed in full on every call. At catalog sizes of a
//     few dozen items this is cheaper than any cache; revisit only if the
//     catalog grows by orders of magnitude.
func FilterSort(products []Product, query Query) []Product {
	needle := strings.ToLower(strings.TrimSpace(query.Text))

	filtered := make([]Product, 0, len(products))
	for _, product := range products {
		if needle != "" && !strings.Contains(strings.ToLower(product.Name), needle) {
			continue
		}
		if query.Category != "" && product.Category != query.Category {
			continue
		}
		filtered = append(filtered, product)
	}

	sortProducts(filtered, query.Order)
	return filtered
}

// sortProducts orders the slice in place according to the active sort.
func sortProducts(products []Product, order SortOrder) {
	switch order {
	case SortPriceAsc:
		slices.SortStableFunc(products, func(a, b Product) int {
			return compareFloat(a.Price, b.Price)
		})
	case SortPriceDesc:
		slices.SortStableFunc(products, func(a, b Product) int {
			return compareFloat(b.Price, a.Price)
		})
	default:
		// Locale-aware name ordering: the catalog is pt-BR and accented
		// names must not sort after 'z'. A collator buffers internally and
		// is not safe for concurrent use, so each call builds its own.
		collator := collate.New(language.BrazilianPortuguese)
		slices.SortStableFunc(products, func(a, b Product) int {
			return collator.CompareString(a.Name, b.Name)
		})
	}
}

// compareFloat is a three-way comparison for float64 sort keys.
func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
