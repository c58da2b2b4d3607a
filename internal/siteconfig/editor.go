// Copyright (c) 2026 Durafone. All rights reserved.

package siteconfig

import (
	"fmt"
	"strings"

	"github.com/durafone/storefront/internal/platform/apperr"
)

// # Editing Errors

var (
	// ErrInvalidPath rejects a field path that does not resolve to an
	// existing scalar leaf. Edits never create structure.
	ErrInvalidPath = apperr.Unprocessable("Configuration path does not exist")

	// ErrUnknownList rejects a list name outside the editable lists.
	ErrUnknownList = apperr.Unprocessable("Unknown configuration list")

	// ErrIndexOutOfRange rejects a list index past the current bounds.
	ErrIndexOutOfRange = apperr.Unprocessable("List index is out of range")
)

// # Editor

// Editor applies validated mutations to a configuration document.
//
// All edits fail closed: a path that does not resolve to an existing leaf
// leaves the document untouched and returns an error. The editor never
// invents keys, grows lists, or changes a leaf into a subtree.
type Editor struct {
	document Document
}

// NewEditor wraps a document for editing. The document is mutated in place.
func NewEditor(document Document) *Editor {
	return &Editor{document: document}
}

// Document returns the (possibly edited) underlying document.
func (editor *Editor) Document() Document {
	return editor.document
}

// UpdateField sets the scalar leaf at a dot-separated path, such as
// "company.name" or "hero.title".
//
// Every intermediate segment must be an existing nested object and the
// final segment an existing scalar; otherwise [ErrInvalidPath].
func (editor *Editor) UpdateField(path string, value any) error {
	if !isScalar(value) {
		return ErrInvalidPath
	}

	segments := strings.Split(path, ".")
	if len(segments) == 0 || segments[0] == "" {
		return ErrInvalidPath
	}

	// Walk down to the parent of the leaf.
	node := map[string]any(editor.document)
	for _, segment := range segments[:len(segments)-1] {
		child, ok := node[segment].(map[string]any)
		if !ok {
			return ErrInvalidPath
		}
		node = child
	}

	leaf := segments[len(segments)-1]
	current, ok := node[leaf]
	if !ok || !isScalar(current) {
		return ErrInvalidPath
	}

	node[leaf] = value
	return nil
}

// UpdateListItem sets one field of one element of an editable list
// (features or featuredProducts).
//
// The list must be known, the index in bounds, and the field an existing
// scalar on that element.
func (editor *Editor) UpdateListItem(list string, index int, field string, value any) error {
	if list != ListFeatures && list != ListFeaturedProducts {
		return ErrUnknownList
	}

	items, ok := editor.document[list].([]any)
	if !ok {
		return ErrUnknownList
	}

	if index < 0 || index >= len(items) {
		return ErrIndexOutOfRange
	}

	item, ok := items[index].(map[string]any)
	if !ok {
		return fmt.Errorf("siteconfig_malformed_list_item: %s[%d]", list, index)
	}

	if !isScalar(value) {
		return ErrInvalidPath
	}

	current, ok := item[field]
	if !ok || !isScalar(current) {
		return ErrInvalidPath
	}

	item[field] = value
	return nil
}

// isScalar reports whether a decoded JSON value is a leaf.
func isScalar(value any) bool {
	switch value.(type) {
	case string, float64, int, bool:
		return true
	default:
		return false
	}
}
