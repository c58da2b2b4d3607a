// Copyright (c) 2026 Durafone. All rights reserved.

package catalog

import (
	"strconv"

	"github.com/durafone/storefront/internal/platform/apperr"
)

// Service exposes catalog use cases to the transport layer.
//
// It is a thin orchestration layer: all real work happens in the pure view
// functions, which keeps every operation trivially testable.
type Service struct {
	store *Store
}

// NewService constructs a catalog [Service] around an immutable store.
func NewService(store *Store) *Service {
	return &Service{store: store}
}

// List returns the catalog filtered and ordered by the visitor's query.
func (service *Service) List(query Query) []Product {
	return FilterSort(service.store.All(), query)
}

// Get resolves a product by numeric ID or URL slug.
func (service *Service) Get(identifier string) (*Product, error) {
	if id, err := strconv.Atoi(identifier); err == nil {
		if product, ok := service.store.ByID(id); ok {
			return &product, nil
		}
		return nil, apperr.NotFound("Product")
	}

	if product, ok := service.store.BySlug(identifier); ok {
		return &product, nil
	}

	return nil, apperr.NotFound("Product")
}

// Categories returns the distinct categories available for filtering.
func (service *Service) Categories() []string {
	return service.store.Categories()
}

// CompareCandidates returns the products still available for a comparison
// selection holding the given IDs, in catalog order.
//
// IDs that don't exist in the catalog are ignored rather than rejected: the
// chooser only needs to know what is left to offer.
func (service *Service) CompareCandidates(selected []int) []Product {
	return Candidates(service.store.All(), selected)
}

// Count returns the catalog size. The admin dashboard reports it as the
// "total products" statistic.
func (service *Service) Count() int {
	return service.store.Len()
}
