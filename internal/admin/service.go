// Copyright (c) 2026 Durafone. All rights reserved.

/*
Package admin implements the dashboard backing the store's back office.

# Architecture

The package owns no storage of its own: it aggregates over the auth user
repository and the in-memory product catalog. Dashboard statistics are
gathered concurrently, and each source reports its own success or failure
so the dashboard can render partial data honestly instead of showing a
silent zero.
*/
package admin

import (
	"context"
	"fmt"
	"sync"

	"github.com/durafone/storefront/internal/catalog"
	"github.com/durafone/storefront/internal/users/auth"
	"github.com/durafone/storefront/pkg/pagination"
)

// # Types

// StatResult is one dashboard figure plus the outcome of fetching it.
//
// A failed fetch keeps Value at zero and carries the failure in Err; the
// delivery layer renders it as unavailable rather than as a real zero.
type StatResult struct {
	Value int   `json:"value"`
	OK    bool  `json:"ok"`
	Err   error `json:"-"`
}

// Stats aggregates the dashboard counters, each with its own outcome.
type Stats struct {
	Users    StatResult `json:"users"`
	Products StatResult `json:"products"`
}

// UserPage is one page of accounts plus its pagination metadata.
type UserPage struct {
	Users []*auth.User
	Meta  pagination.Meta
}

// # Service

// Service implements the admin dashboard use cases.
type Service struct {
	userRepository auth.UserRepository
	catalogService *catalog.Service
}

// NewService constructs an admin [Service] with its dependencies.
func NewService(userRepo auth.UserRepository, catalogSvc *catalog.Service) *Service {
	return &Service{
		userRepository: userRepo,
		catalogService: catalogSvc,
	}
}

// Stats gathers the dashboard counters.
//
// The two sources are independent, so they are fetched concurrently and
// one failing never hides the other. The call itself only errors when the
// context is already dead.
func (service *Service) Stats(ctx context.Context) (*Stats, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("admin_stats_cancelled: %w", err)
	}

	stats := &Stats{}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		total, err := service.userRepository.Count(ctx)
		stats.Users = newStatResult(total, err)
	}()

	go func() {
		defer wg.Done()
		stats.Products = newStatResult(service.catalogService.Count(), nil)
	}()

	wg.Wait()

	return stats, nil
}

// ListUsers returns one page of registered accounts, newest first.
func (service *Service) ListUsers(ctx context.Context, params pagination.Params) (*UserPage, error) {
	users, total, err := service.userRepository.List(ctx, params.Limit, params.Offset())
	if err != nil {
		return nil, fmt.Errorf("admin_list_users_failed: %w", err)
	}

	return &UserPage{
		Users: users,
		Meta:  pagination.NewMeta(params.Page, params.Limit, total),
	}, nil
}

func newStatResult(value int, err error) StatResult {
	if err != nil {
		return StatResult{Err: err}
	}
	return StatResult{Value: value, OK: true}
}
