// Copyright (c) 2026 Durafone. All rights reserved.

package siteconfig

import (
	"context"
	"fmt"

	"github.com/durafone/storefront/internal/platform/apperr"
)

// Service implements the site-configuration use cases.
//
// Reads fall back to the factory default when nothing was ever saved, so
// the public endpoint never 404s. Targeted edits are load-edit-save cycles
// over the whole document.
type Service struct {
	repository Repository
}

// NewService constructs a siteconfig [Service] with its repository.
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

// Get returns the current configuration, or the factory default when no
// document has been saved yet.
func (service *Service) Get(ctx context.Context) (Document, error) {
	document, err := service.repository.Load(ctx)
	if err != nil {
		if appError := apperr.As(err); appError != nil && appError.Code == "NOT_FOUND" {
			return Default(), nil
		}
		return nil, fmt.Errorf("siteconfig_service_get_failed: %w", err)
	}

	return document, nil
}

// Replace overwrites the whole configuration document.
func (service *Service) Replace(ctx context.Context, document Document) error {
	if err := service.repository.Save(ctx, document); err != nil {
		return fmt.Errorf("siteconfig_service_replace_failed: %w", err)
	}
	return nil
}

// UpdateField edits a single scalar leaf (by dot path) and persists the
// resulting document.
func (service *Service) UpdateField(ctx context.Context, path string, value any) (Document, error) {
	document, err := service.Get(ctx)
	if err != nil {
		return nil, err
	}

	if err := NewEditor(document).UpdateField(path, value); err != nil {
		return nil, err
	}

	if err := service.repository.Save(ctx, document); err != nil {
		return nil, fmt.Errorf("siteconfig_service_update_field_failed: %w", err)
	}

	return document, nil
}

// UpdateListItem edits one field of one list element and persists the
// resulting document.
func (service *Service) UpdateListItem(ctx context.Context, list string, index int, field string, value any) (Document, error) {
	document, err := service.Get(ctx)
	if err != nil {
		return nil, err
	}

	if err := NewEditor(document).UpdateListItem(list, index, field, value); err != nil {
		return nil, err
	}

	if err := service.repository.Save(ctx, document); err != nil {
		return nil, fmt.Errorf("siteconfig_service_update_item_failed: %w", err)
	}

	return document, nil
}

// Reset restores and persists the factory default document.
func (service *Service) Reset(ctx context.Context) (Document, error) {
	document := Default()
	if err := service.repository.Save(ctx, document); err != nil {
		return nil, fmt.Errorf("siteconfig_service_reset_failed: %w", err)
	}
	return document, nil
}
