// Copyright (c) 2026 Durafone. All rights reserved.

/*
PostgreSQL implementation of the auth storage contracts.

# Error Mapping

Storage-specific errors (like pgx.ErrNoRows) are mapped to domain-friendly
[apperr.AppError] types to avoid leaking storage implementation details.
*/
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/durafone/storefront/internal/platform/apperr"
	"github.com/durafone/storefront/internal/platform/dberr"
)

// userColumns is the canonical scan order shared by every SELECT below.
const userColumns = "id, name, email, cpf, phone, password_hash, role, created_at, updated_at"

// PostgresUserRepository implements [UserRepository] using pgx.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates the PostgreSQL implementation of the UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

// Create persists a new account row.
func (repository *PostgresUserRepository) Create(ctx context.Context, user *User) error {
	const query = `
		INSERT INTO users (id, name, email, cpf, phone, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	_, err := repository.pool.Exec(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.CPF,
		user.Phone,
		user.PasswordHash,
		user.Role,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		return dberr.Wrap(err, "user_create")
	}

	return nil
}

// FindByID retrieves an account by primary key.
func (repository *PostgresUserRepository) FindByID(ctx context.Context, id string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)
	return repository.findOne(ctx, query, id, "User")
}

// FindByEmail retrieves an account by its unique email address.
func (repository *PostgresUserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1`, userColumns)
	return repository.findOne(ctx, query, email, "User with this email")
}

// FindByCPF retrieves an account by its unique CPF.
func (repository *PostgresUserRepository) FindByCPF(ctx context.Context, cpf string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE cpf = $1`, userColumns)
	return repository.findOne(ctx, query, cpf, "User with this CPF")
}

// List returns a page of accounts, newest first, plus the total count.
func (repository *PostgresUserRepository) List(ctx context.Context, limit, offset int) ([]*User, int, error) {
	total, err := repository.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT %s FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2`, userColumns)

	rows, err := repository.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "user_list")
	}
	defer rows.Close()

	users := make([]*User, 0, limit)
	for rows.Next() {
		user := &User{}
		if err := scanUser(rows, user); err != nil {
			return nil, 0, dberr.Wrap(err, "user_list_scan")
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "user_list_rows")
	}

	return users, total, nil
}

// Count returns the total number of accounts.
func (repository *PostgresUserRepository) Count(ctx context.Context) (int, error) {
	var total int
	err := repository.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&total)
	if err != nil {
		return 0, dberr.Wrap(err, "user_count")
	}
	return total, nil
}

// findOne runs a single-row user query with NotFound mapping.
func (repository *PostgresUserRepository) findOne(ctx context.Context, query, arg, resource string) (*User, error) {
	user := &User{}
	err := scanUser(repository.pool.QueryRow(ctx, query, arg), user)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound(resource)
		}
		return nil, dberr.Wrap(err, "user_find")
	}

	return user, nil
}

// scanUser hydrates a User from any row honoring the userColumns order.
func scanUser(row pgx.Row, user *User) error {
	return row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.CPF,
		&user.Phone,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
}
