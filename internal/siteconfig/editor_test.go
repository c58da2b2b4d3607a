// Copyright (c) 2026 Durafone. All rights reserved.

package siteconfig_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/durafone/storefront/internal/siteconfig"
)

/*
TestEditor_UpdateField_Success verifies a nested scalar edit that leaves
every sibling untouched.
*/
func TestEditor_UpdateField_Success(t *testing.T) {
	document := siteconfig.Default()
	editor := siteconfig.NewEditor(document)

	err := editor.UpdateField("company.name", "Durafone Pro")
	require.NoError(t, err)

	company := document["company"].(map[string]any)
	assert.Equal(t, "Durafone Pro", company["name"])

	// Siblings and the rest of the tree are untouched.
	assert.Equal(t, siteconfig.Default()["company"].(map[string]any)["tagline"], company["tagline"])
	assert.Equal(t, siteconfig.Default()["hero"], document["hero"])
}

/*
TestEditor_UpdateField_DeepPath verifies a three-segment path.
*/
func TestEditor_UpdateField_DeepPath(t *testing.T) {
	document := siteconfig.Default()

	err := siteconfig.NewEditor(document).UpdateField("company.contact.email", "suporte@durafone.com.br")
	require.NoError(t, err)

	contact := document["company"].(map[string]any)["contact"].(map[string]any)
	assert.Equal(t, "suporte@durafone.com.br", contact["email"])
}

/*
TestEditor_UpdateField_FailsClosed verifies that invalid paths reject the
edit and leave the document byte-for-byte identical.
*/
func TestEditor_UpdateField_FailsClosed(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"unknown_root", "missing.name"},
		{"unknown_leaf", "company.missing"},
		{"leaf_used_as_branch", "company.name.deeper"},
		{"branch_as_leaf", "company.contact"},
		{"list_as_leaf", "features"},
		{"empty_path", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			document := siteconfig.Default()

			err := siteconfig.NewEditor(document).UpdateField(tt.path, "x")

			require.ErrorIs(t, err, siteconfig.ErrInvalidPath)
			assert.Equal(t, siteconfig.Default(), document)
		})
	}
}

/*
TestEditor_UpdateField_RejectsNonScalarValue verifies that a leaf cannot
be replaced with a subtree.
*/
func TestEditor_UpdateField_RejectsNonScalarValue(t *testing.T) {
	document := siteconfig.Default()

	err := siteconfig.NewEditor(document).UpdateField("company.name", map[string]any{"evil": true})

	require.ErrorIs(t, err, siteconfig.ErrInvalidPath)
	assert.Equal(t, siteconfig.Default(), document)
}

/*
TestEditor_UpdateListItem covers list-element edits and their guards.
*/
func TestEditor_UpdateListItem(t *testing.T) {
	// 1. Happy path.
	document := siteconfig.Default()
	err := siteconfig.NewEditor(document).UpdateListItem(siteconfig.ListFeatures, 1, "title", "Bateria gigante")
	require.NoError(t, err)

	features := document[siteconfig.ListFeatures].([]any)
	assert.Equal(t, "Bateria gigante", features[1].(map[string]any)["title"])

	// Neighbours are untouched.
	assert.Equal(t, siteconfig.Default()[siteconfig.ListFeatures].([]any)[0], features[0])

	// 2. Unknown list.
	err = siteconfig.NewEditor(siteconfig.Default()).UpdateListItem("company", 0, "name", "x")
	assert.ErrorIs(t, err, siteconfig.ErrUnknownList)

	// 3. Index out of range (both directions).
	err = siteconfig.NewEditor(siteconfig.Default()).UpdateListItem(siteconfig.ListFeatures, 99, "title", "x")
	assert.ErrorIs(t, err, siteconfig.ErrIndexOutOfRange)

	err = siteconfig.NewEditor(siteconfig.Default()).UpdateListItem(siteconfig.ListFeatures, -1, "title", "x")
	assert.ErrorIs(t, err, siteconfig.ErrIndexOutOfRange)

	// 4. Unknown field on the element.
	err = siteconfig.NewEditor(siteconfig.Default()).UpdateListItem(siteconfig.ListFeatures, 0, "missing", "x")
	assert.ErrorIs(t, err, siteconfig.ErrInvalidPath)
}

/*
TestDefault_ReturnsIsolatedCopies verifies that two Default documents do
not share mutable structure.
*/
func TestDefault_ReturnsIsolatedCopies(t *testing.T) {
	first := siteconfig.Default()
	second := siteconfig.Default()

	require.NoError(t, siteconfig.NewEditor(first).UpdateField("company.name", "Changed"))

	assert.Equal(t, "Durafone", second["company"].(map[string]any)["name"])
}
