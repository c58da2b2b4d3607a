// Copyright (c) 2026 Durafone. All rights reserved.

/*
Package auth implements customer identity for the storefront.

It defines the User entity and the login/registration lifecycle behind the
bearer credential the web client stores. Identity here is deliberately
simple: one opaque access token per login, no refresh rotation, with
GET /auth/me as the silent-restore validation point.
*/
package auth

import (
	"encoding/json"
	"time"

	"github.com/durafone/storefront/internal/platform/sec"
)

// # Domain Entities

// User represents a registered customer (or administrator) of the store.
type User struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	CPF          string       `json:"cpf"`
	Phone        string       `json:"phone"`
	PasswordHash string       `json:"-"` // Never serialized.
	Role         sec.UserRole `json:"role"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// IsAdmin reports whether the user may access the admin dashboard and site editor.
func (u *User) IsAdmin() bool {
	return u.Role.AtLeast(sec.RoleAdmin)
}

// MarshalJSON adds the derived "is_admin" flag the storefront client keys
// its access gating on, without storing it redundantly.
func (u *User) MarshalJSON() ([]byte, error) {
	type alias User
	return json.Marshal(struct {
		*alias
		IsAdmin bool `json:"is_admin"`
	}{
		alias:   (*alias)(u),
		IsAdmin: u.IsAdmin(),
	})
}

// # Field Identifiers

// Field names for validation and payload mapping in the authentication domain.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldCPF      = "cpf"
	FieldPhone    = "phone"
	FieldPassword = "password"
	FieldToken    = "token"
	FieldUser     = "user"
	FieldMessage  = "message"
)
