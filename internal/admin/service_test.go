// Copyright (c) 2026 Durafone. All rights reserved.

package admin_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/durafone/storefront/internal/admin"
	"github.com/durafone/storefront/internal/catalog"
	"github.com/durafone/storefront/internal/users/auth"
	"github.com/durafone/storefront/pkg/pagination"
)

// countOnlyRepository stubs the slice of auth.UserRepository the admin
// service touches.
type countOnlyRepository struct {
	auth.UserRepository

	users    []*auth.User
	countErr error
}

func (f *countOnlyRepository) Count(ctx context.Context) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return len(f.users), nil
}

func (f *countOnlyRepository) List(ctx context.Context, limit, offset int) ([]*auth.User, int, error) {
	if offset >= len(f.users) {
		return nil, len(f.users), nil
	}

	end := offset + limit
	if end > len(f.users) {
		end = len(f.users)
	}
	return f.users[offset:end], len(f.users), nil
}

func newCatalogService(t *testing.T) *catalog.Service {
	t.Helper()

	store, err := catalog.NewStore([]catalog.Product{
		{ID: 1, Name: "Armor X12"},
		{ID: 2, Name: "Trilha Lite"},
	})
	require.NoError(t, err)

	return catalog.NewService(store)
}

/*
TestService_Stats verifies the happy path: both counters fetched and
marked ok.
*/
func TestService_Stats(t *testing.T) {
	repository := &countOnlyRepository{users: []*auth.User{{ID: "a"}, {ID: "b"}, {ID: "c"}}}
	service := admin.NewService(repository, newCatalogService(t))

	stats, err := service.Stats(context.Background())

	require.NoError(t, err)
	assert.True(t, stats.Users.OK)
	assert.Equal(t, 3, stats.Users.Value)
	assert.True(t, stats.Products.OK)
	assert.Equal(t, 2, stats.Products.Value)
}

/*
TestService_Stats_PartialFailure verifies that one failing source is
reported as failed without hiding the other counter — a dead user store
must not render as "0 users".
*/
func TestService_Stats_PartialFailure(t *testing.T) {
	repository := &countOnlyRepository{countErr: errors.New("connection refused")}
	service := admin.NewService(repository, newCatalogService(t))

	stats, err := service.Stats(context.Background())

	require.NoError(t, err)

	// The failed counter is explicit about it.
	assert.False(t, stats.Users.OK)
	assert.Error(t, stats.Users.Err)
	assert.Zero(t, stats.Users.Value)

	// The healthy counter is unaffected.
	assert.True(t, stats.Products.OK)
	assert.Equal(t, 2, stats.Products.Value)
}

/*
TestService_ListUsers verifies pagination math on the account listing.
*/
func TestService_ListUsers(t *testing.T) {
	repository := &countOnlyRepository{users: []*auth.User{
		{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}, {ID: "e"},
	}}
	service := admin.NewService(repository, newCatalogService(t))

	page, err := service.ListUsers(context.Background(), pagination.Params{Page: 2, Limit: 2})

	require.NoError(t, err)
	require.Len(t, page.Users, 2)
	assert.Equal(t, "c", page.Users[0].ID)
	assert.Equal(t, 5, page.Meta.Total)
	assert.Equal(t, 3, page.Meta.TotalPages)
	assert.Equal(t, 2, page.Meta.Page)
}
