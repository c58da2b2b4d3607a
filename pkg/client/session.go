// Copyright (c) 2026 Durafone. All rights reserved.

package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// # Session Manager

// SessionManager owns the authenticated session on top of a [Client].
//
// It holds two pieces of state that always move together: the bearer
// credential and the identity it resolved to. No code path sets one
// without the other, and no failure path leaves a half-cleared session.
type SessionManager struct {
	client      *Client
	credentials CredentialStore

	mu        sync.RWMutex
	token     string
	user      *User
	restoring bool
}

// NewSessionManager creates a signed-out session over the given transport
// and credential store.
func NewSessionManager(apiClient *Client, credentials CredentialStore) *SessionManager {
	return &SessionManager{
		client:      apiClient,
		credentials: credentials,
	}
}

// # Restore

// Restore silently resumes a previous session from the credential store.
//
// The stored token is revalidated against the server before it is trusted.
// Any validation failure — rejected token, unreachable server, malformed
// response — discards the stored credential and the in-memory identity
// together, and no error is returned: ending up signed out is a normal
// outcome, not a failure. A credential that could not be proven valid is
// never kept; the user signs in again instead of replaying a broken
// restore on every start.
func (manager *SessionManager) Restore(ctx context.Context) error {
	manager.mu.Lock()
	manager.restoring = true
	manager.mu.Unlock()

	// Whatever happens below, restore must terminate.
	defer func() {
		manager.mu.Lock()
		manager.restoring = false
		manager.mu.Unlock()
	}()

	token, err := manager.credentials.Load()
	if err != nil {
		if errors.Is(err, ErrNoCredential) {
			return nil
		}
		return fmt.Errorf("session: load credential: %w", err)
	}

	user, err := manager.client.Me(ctx, token)
	if err != nil {
		// The token could not be validated, whatever the reason. An
		// unvalidated credential is not trusted past this point.
		_ = manager.credentials.Clear()
		manager.clearSession()
		return nil
	}

	manager.setSession(token, user)
	return nil
}

// # Authentication

// Login signs in with email and password.
//
// On success the credential is persisted and the session switches to the
// new identity in one step. On failure nothing changes: an existing
// session (if any) stays intact.
func (manager *SessionManager) Login(ctx context.Context, email, password string) (*User, error) {
	token, user, err := manager.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if err := manager.credentials.Save(token); err != nil {
		return nil, fmt.Errorf("session: persist credential: %w", err)
	}

	manager.setSession(token, user)
	return cloneUser(user), nil
}

// Register creates a new account. Session state is never touched: the
// caller signs in explicitly afterwards.
func (manager *SessionManager) Register(ctx context.Context, input RegisterInput) error {
	return manager.client.Register(ctx, input)
}

// Logout ends the session locally: the stored credential and the identity
// are discarded together. The server is not called — the token simply
// stops being used and expires on its own.
func (manager *SessionManager) Logout() error {
	err := manager.credentials.Clear()
	manager.clearSession()

	if err != nil {
		return fmt.Errorf("session: clear credential: %w", err)
	}
	return nil
}

// # Accessors

// CurrentUser returns a copy of the signed-in identity, or nil.
func (manager *SessionManager) CurrentUser() *User {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return cloneUser(manager.user)
}

// Token returns the active bearer credential, or "".
func (manager *SessionManager) Token() string {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return manager.token
}

// IsAuthenticated reports whether a validated session is active.
func (manager *SessionManager) IsAuthenticated() bool {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return manager.token != "" && manager.user != nil
}

// IsRestoring reports whether a silent restore is in flight. Callers use
// it to hold rendering decisions until the session settles.
func (manager *SessionManager) IsRestoring() bool {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return manager.restoring
}

// IsAdmin reports whether the signed-in identity has the admin role.
func (manager *SessionManager) IsAdmin() bool {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return manager.user != nil && manager.user.IsAdmin
}

// # Internal State Transitions

// setSession installs credential and identity atomically.
func (manager *SessionManager) setSession(token string, user *User) {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	manager.token = token
	manager.user = cloneUser(user)
}

// clearSession drops credential and identity atomically.
func (manager *SessionManager) clearSession() {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	manager.token = ""
	manager.user = nil
}

func cloneUser(user *User) *User {
	if user == nil {
		return nil
	}
	clone := *user
	return &clone
}
