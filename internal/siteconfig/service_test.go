// Copyright (c) 2026 Durafone. All rights reserved.

package siteconfig_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/durafone/storefront/internal/platform/apperr"
	"github.com/durafone/storefront/internal/siteconfig"
)

// fakeRepository is an in-memory Repository double.
type fakeRepository struct {
	document  siteconfig.Document
	saveCalls int
	loadErr   error
	saveErr   error
}

func (f *fakeRepository) Load(ctx context.Context) (siteconfig.Document, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	if f.document == nil {
		return nil, apperr.NotFound("Site configuration")
	}
	return f.document, nil
}

func (f *fakeRepository) Save(ctx context.Context, document siteconfig.Document) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.document = document
	f.saveCalls++
	return nil
}

/*
TestService_Get_FallsBackToDefault verifies that an empty store serves
the factory document instead of a 404.
*/
func TestService_Get_FallsBackToDefault(t *testing.T) {
	service := siteconfig.NewService(&fakeRepository{})

	document, err := service.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, siteconfig.Default(), document)
}

/*
TestService_Get_PropagatesStorageFailure verifies that a real storage
error is not masked by the default fallback.
*/
func TestService_Get_PropagatesStorageFailure(t *testing.T) {
	service := siteconfig.NewService(&fakeRepository{loadErr: errors.New("connection refused")})

	_, err := service.Get(context.Background())

	assert.Error(t, err)
}

/*
TestService_UpdateField_PersistsWholeDocument verifies the
load-edit-save cycle.
*/
func TestService_UpdateField_PersistsWholeDocument(t *testing.T) {
	repository := &fakeRepository{}
	service := siteconfig.NewService(repository)

	document, err := service.UpdateField(context.Background(), "hero.title", "Novo título")

	require.NoError(t, err)
	assert.Equal(t, 1, repository.saveCalls)
	assert.Equal(t, "Novo título", document["hero"].(map[string]any)["title"])

	// The stored document is the edited one, whole.
	stored, err := service.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, document, stored)
}

/*
TestService_UpdateField_InvalidPathSavesNothing verifies fail-closed
editing: a rejected edit never touches storage.
*/
func TestService_UpdateField_InvalidPathSavesNothing(t *testing.T) {
	repository := &fakeRepository{}
	service := siteconfig.NewService(repository)

	_, err := service.UpdateField(context.Background(), "hero.missing", "x")

	assert.ErrorIs(t, err, siteconfig.ErrInvalidPath)
	assert.Equal(t, 0, repository.saveCalls)
}

/*
TestService_UpdateListItem verifies the list edit path end to end.
*/
func TestService_UpdateListItem(t *testing.T) {
	repository := &fakeRepository{}
	service := siteconfig.NewService(repository)

	document, err := service.UpdateListItem(context.Background(), siteconfig.ListFeaturedProducts, 0, "badge", "Oferta")

	require.NoError(t, err)
	featured := document[siteconfig.ListFeaturedProducts].([]any)
	assert.Equal(t, "Oferta", featured[0].(map[string]any)["badge"])
	assert.Equal(t, 1, repository.saveCalls)
}

/*
TestService_Reset verifies that reset stores and returns the factory
document.
*/
func TestService_Reset(t *testing.T) {
	repository := &fakeRepository{document: siteconfig.Document{"company": map[string]any{"name": "Edited"}}}
	service := siteconfig.NewService(repository)

	document, err := service.Reset(context.Background())

	require.NoError(t, err)
	assert.Equal(t, siteconfig.Default(), document)
	assert.Equal(t, siteconfig.Default(), repository.document)
}
