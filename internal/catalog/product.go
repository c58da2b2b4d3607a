// Copyright (c) 2026 Durafone. All rights reserved.

/*
Package catalog implements the product catalog and its derived views.

The catalog is an immutable, in-memory list of rugged-smartphone records,
loaded once at process start from a static JSON source. Everything the API
serves from it — filtered listings, category sets, comparison candidates —
is a pure function over that list.

# Architecture

  - Store: owns the immutable product list and its lookup indexes.
  - View: pure filter/sort functions (no caching; recomputed per request).
  - Selection: the bounded comparison set and its operations.
*/
package catalog

// Product represents a single rugged smartphone in the catalog.
//
// # Immutability
//
// Products are never mutated after load. Optional commercial fields
// (OldPrice, Discount) are pointers so "absent" is distinguishable from zero.
// Discount is informational only: the source data does not guarantee it is
// consistent with Price/OldPrice, and the loader does not reconcile them.
type Product struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Slug     string   `json:"slug"`
	Brand    string   `json:"brand"`
	Category string   `json:"category"`
	Price    float64  `json:"price"`
	OldPrice *float64 `json:"old_price,omitempty"`
	Discount *int     `json:"discount,omitempty"`
	Rating   float64  `json:"rating"`
	Features []string `json:"features"`
	Image    string   `json:"image"`

	Description string `json:"description,omitempty"`
}

// # Field Identifiers

// Field names shared between validation and JSON payloads in the catalog domain.
const (
	FieldCategory = "category"
	FieldSort     = "sort"
	FieldSelected = "selected"
)
