// Copyright (c) 2026 Durafone. All rights reserved.

package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/durafone/storefront/pkg/pointer"
	"github.com/durafone/storefront/pkg/slice"
	"github.com/durafone/storefront/pkg/slug"
)

// Store holds the immutable product catalog.
//
// # Lifecycle
//
// The catalog is read once at startup from a static JSON file. There is no
// mutation path: replacing the catalog means restarting the process with a
// new source file. Because nothing writes after construction, the Store is
// safe for unbounded concurrent reads without locking.
type Store struct {
	products []Product
	byID     map[int]int
	bySlug   map[string]int
}

// NewStoreFromFile reads the static product source and builds the catalog.
//
// # Validation
//
// The loader fails fast on data errors so the process never serves a broken
// catalog: duplicate IDs and an OldPrice below the current Price are both
// rejected at startup. Product slugs are derived from names here.
func NewStoreFromFile(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: failed to read source %s: %w", path, err)
	}

	var products []Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("catalog: failed to parse source %s: %w", path, err)
	}

	return NewStore(products)
}

// NewStore builds a catalog store from an already-decoded product list.
// Exposed separately so tests can construct fixtures without touching disk.
func NewStore(products []Product) (*Store, error) {
	store := &Store{
		products: make([]Product, len(products)),
		byID:     make(map[int]int, len(products)),
		bySlug:   make(map[string]int, len(products)),
	}

	for i, product := range products {
		if _, exists := store.byID[product.ID]; exists {
			return nil, fmt.Errorf("catalog: duplicate product id %d", product.ID)
		}

		// An absent OldPrice counts as equal to Price, which passes.
		if pointer.Fallback(product.OldPrice, product.Price) < product.Price {
			return nil, fmt.Errorf("catalog: product %d has old_price below price", product.ID)
		}

		if product.Slug == "" {
			product.Slug = slug.From(product.Name)
		}

		store.products[i] = product
		store.byID[product.ID] = i
		store.bySlug[product.Slug] = i
	}

	return store, nil
}

// All returns the full catalog in source order.
//
// A fresh slice header over copied elements is returned so callers can
// sort/filter freely without aliasing the store's backing array.
func (store *Store) All() []Product {
	out := make([]Product, len(store.products))
	copy(out, store.products)
	return out
}

// Len returns the number of products in the catalog.
func (store *Store) Len() int {
	return len(store.products)
}

// ByID returns the product with the given ID, or false if absent.
func (store *Store) ByID(id int) (Product, bool) {
	index, ok := store.byID[id]
	if !ok {
		return Product{}, false
	}
	return store.products[index], true
}

// BySlug returns the product with the given slug, or false if absent.
func (store *Store) BySlug(productSlug string) (Product, bool) {
	index, ok := store.bySlug[productSlug]
	if !ok {
		return Product{}, false
	}
	return store.products[index], true
}

// Categories returns the distinct product categories in catalog order.
func (store *Store) Categories() []string {
	return slice.Unique(slice.Map(store.products, func(p Product) string {
		return p.Category
	}))
}
