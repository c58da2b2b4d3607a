// Copyright (c) 2026 Durafone. All rights reserved.

package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/durafone/storefront/pkg/client"
)

const (
	testToken = "valid-token"
	testEmail = "maria@example.com"
)

// newBackend spins up a stub API implementing the auth endpoints the
// session manager touches, in the server's envelope format.
func newBackend(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()

	writeJSON := func(w http.ResponseWriter, status int, payload any) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(payload)
	}

	profile := map[string]any{
		"id":       "user-1",
		"name":     "Maria Souza",
		"email":    testEmail,
		"role":     "customer",
		"is_admin": false,
	}

	mux.HandleFunc("GET /api/v1/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+testToken {
			writeJSON(w, http.StatusUnauthorized, map[string]any{
				"error": "Invalid or expired token",
				"code":  "UNAUTHORIZED",
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"data": map[string]any{"user": profile},
		})
	})

	mux.HandleFunc("POST /api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)

		if body["email"] != testEmail || body["password"] != "s3cret" {
			writeJSON(w, http.StatusUnauthorized, map[string]any{
				"error": "Invalid email or password",
				"code":  "UNAUTHORIZED",
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"data": map[string]any{"token": testToken, "user": profile},
		})
	})

	mux.HandleFunc("POST /api/v1/auth/register", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, map[string]any{
			"data": map[string]any{"message": "Account created successfully"},
		})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newManager(t *testing.T, baseURL string) (*client.SessionManager, *client.MemoryCredentialStore) {
	t.Helper()
	store := client.NewMemoryCredentialStore()
	return client.NewSessionManager(client.New(baseURL), store), store
}

/*
TestSessionManager_Restore_WithValidCredential verifies that a stored
token is revalidated and the identity installed.
*/
func TestSessionManager_Restore_WithValidCredential(t *testing.T) {
	backend := newBackend(t)
	manager, store := newManager(t, backend.URL)
	require.NoError(t, store.Save(testToken))

	err := manager.Restore(context.Background())

	require.NoError(t, err)
	assert.False(t, manager.IsRestoring())
	assert.True(t, manager.IsAuthenticated())
	assert.Equal(t, testToken, manager.Token())

	user := manager.CurrentUser()
	require.NotNil(t, user)
	assert.Equal(t, testEmail, user.Email)
}

/*
TestSessionManager_Restore_WithoutCredential verifies the cold start:
no call, no error, signed out.
*/
func TestSessionManager_Restore_WithoutCredential(t *testing.T) {
	backend := newBackend(t)
	manager, _ := newManager(t, backend.URL)

	err := manager.Restore(context.Background())

	require.NoError(t, err)
	assert.False(t, manager.IsRestoring())
	assert.False(t, manager.IsAuthenticated())
	assert.Nil(t, manager.CurrentUser())
}

/*
TestSessionManager_Restore_RejectedCredential verifies that a stale
token is discarded from both the store and memory, silently.
*/
func TestSessionManager_Restore_RejectedCredential(t *testing.T) {
	backend := newBackend(t)
	manager, store := newManager(t, backend.URL)
	require.NoError(t, store.Save("stale-token"))

	err := manager.Restore(context.Background())

	// A dead token is a normal outcome, not an error.
	require.NoError(t, err)
	assert.False(t, manager.IsRestoring())
	assert.False(t, manager.IsAuthenticated())
	assert.Empty(t, manager.Token())
	assert.Nil(t, manager.CurrentUser())

	// The credential is gone from durable storage too.
	_, loadErr := store.Load()
	assert.ErrorIs(t, loadErr, client.ErrNoCredential)
}

/*
TestSessionManager_Restore_TransportFailure verifies that an unreachable
server is handled like any other failed validation: the credential is
discarded everywhere and the restore ends silently signed out.
*/
func TestSessionManager_Restore_TransportFailure(t *testing.T) {
	backend := newBackend(t)
	backendURL := backend.URL
	backend.Close()

	manager, store := newManager(t, backendURL)
	require.NoError(t, store.Save(testToken))

	err := manager.Restore(context.Background())

	// Failures are swallowed; the session just ends signed out.
	require.NoError(t, err)
	assert.False(t, manager.IsRestoring())
	assert.False(t, manager.IsAuthenticated())
	assert.Empty(t, manager.Token())
	assert.Nil(t, manager.CurrentUser())

	// No who-am-I failure leaves a credential behind.
	_, loadErr := store.Load()
	assert.ErrorIs(t, loadErr, client.ErrNoCredential)
}

/*
TestSessionManager_Restore_MalformedResponse verifies that a response the
SDK cannot decode also discards the credential.
*/
func TestSessionManager_Restore_MalformedResponse(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte("not json"))
	}))
	t.Cleanup(backend.Close)

	manager, store := newManager(t, backend.URL)
	require.NoError(t, store.Save(testToken))

	err := manager.Restore(context.Background())

	require.NoError(t, err)
	assert.False(t, manager.IsAuthenticated())

	_, loadErr := store.Load()
	assert.ErrorIs(t, loadErr, client.ErrNoCredential)
}

/*
TestSessionManager_Login verifies success and the no-mutation-on-failure
guarantee.
*/
func TestSessionManager_Login(t *testing.T) {
	backend := newBackend(t)
	manager, store := newManager(t, backend.URL)

	// 1. Failure: nothing is stored, nothing is set.
	_, err := manager.Login(context.Background(), testEmail, "wrong")
	require.Error(t, err)
	assert.False(t, manager.IsAuthenticated())
	_, loadErr := store.Load()
	assert.ErrorIs(t, loadErr, client.ErrNoCredential)

	var apiError *client.APIError
	require.ErrorAs(t, err, &apiError)
	assert.True(t, apiError.IsUnauthorized())
	assert.Equal(t, "Invalid email or password", apiError.Message)

	// 2. Success: credential and identity arrive together.
	user, err := manager.Login(context.Background(), testEmail, "s3cret")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.True(t, manager.IsAuthenticated())
	assert.Equal(t, testToken, manager.Token())

	token, loadErr := store.Load()
	require.NoError(t, loadErr)
	assert.Equal(t, testToken, token)
}

/*
TestSessionManager_Register_DoesNotSignIn verifies that account creation
leaves the session untouched.
*/
func TestSessionManager_Register_DoesNotSignIn(t *testing.T) {
	backend := newBackend(t)
	manager, store := newManager(t, backend.URL)

	err := manager.Register(context.Background(), client.RegisterInput{
		Name:     "Maria Souza",
		Email:    testEmail,
		CPF:      "52998224725",
		Phone:    "11987654321",
		Password: "s3cret",
	})

	require.NoError(t, err)
	assert.False(t, manager.IsAuthenticated())
	_, loadErr := store.Load()
	assert.ErrorIs(t, loadErr, client.ErrNoCredential)
}

/*
TestSessionManager_Logout verifies the local sign-out: credential and
identity are dropped together, with no server round trip.
*/
func TestSessionManager_Logout(t *testing.T) {
	backend := newBackend(t)
	manager, store := newManager(t, backend.URL)

	_, err := manager.Login(context.Background(), testEmail, "s3cret")
	require.NoError(t, err)
	require.True(t, manager.IsAuthenticated())

	// The server can be gone; logout is purely local.
	backend.Close()

	require.NoError(t, manager.Logout())
	assert.False(t, manager.IsAuthenticated())
	assert.Empty(t, manager.Token())
	assert.Nil(t, manager.CurrentUser())

	_, loadErr := store.Load()
	assert.ErrorIs(t, loadErr, client.ErrNoCredential)
}
