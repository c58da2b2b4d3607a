// Copyright (c) 2026 Durafone. All rights reserved.

package siteconfig

import "context"

// # Configuration Persistence

// Repository defines the persistence contract for the configuration document.
//
// The document lives whole under a single key: Save always overwrites,
// and concurrent saves resolve as last writer wins.
type Repository interface {

	// Load returns the stored document, or a NotFound error when no
	// document has ever been saved.
	Load(ctx context.Context) (Document, error)

	// Save overwrites the stored document with the given one.
	Save(ctx context.Context, document Document) error
}
