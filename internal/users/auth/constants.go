// Copyright (c) 2026 Durafone. All rights reserved.

package auth

import "time"

// # Authentication Constraints

const (
	// AccessTokenTTL is the duration a bearer token remains valid.
	// The web client persists the token across page reloads and revalidates
	// it on startup via GET /auth/me, so a week keeps shoppers signed in
	// without an unbounded credential.
	AccessTokenTTL = 7 * 24 * time.Hour

	// MinPasswordLength mirrors the storefront's registration rule.
	// It is enforced server-side; the client's own check is a convenience.
	MinPasswordLength = 6
)
