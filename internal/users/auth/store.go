// Copyright (c) 2026 Durafone. All rights reserved.

package auth

import "context"

// # User Data Access

// UserRepository defines the data access contract for customer accounts.
type UserRepository interface {

	// FindByID returns the account with the given ID, or a NotFound error.
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByEmail returns the account with the given email, or a NotFound error.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindByCPF returns the account registered under the given CPF,
	// or a NotFound error.
	FindByCPF(ctx context.Context, cpf string) (*User, error)

	// Create persists a brand-new account.
	Create(ctx context.Context, user *User) error

	// List returns a page of accounts (newest first) plus the total count.
	List(ctx context.Context, limit, offset int) ([]*User, int, error)

	// Count returns the total number of accounts.
	Count(ctx context.Context) (int, error)
}
