// Copyright (c) 2026 Durafone. All rights reserved.

package sec

// # User Roles

// UserRole represents the authorization level granted to an account.
type UserRole string

const (
	// Unrestricted access: site editor, admin dashboard, user listing
	RoleAdmin UserRole = "admin"

	// Default role for registered shoppers
	RoleCustomer UserRole = "customer"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r UserRole) level() int {

	// Sparse scale leaves room for intermediate roles (e.g. content editors)
	switch r {
	case RoleAdmin:
		return 40
	case RoleCustomer:
		return 10
	default:
		return 0
	}
}
