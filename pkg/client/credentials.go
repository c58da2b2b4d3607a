// Copyright (c) 2026 Durafone. All rights reserved.

package client

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// # Credential Storage

// ErrNoCredential reports that no bearer token has been stored.
var ErrNoCredential = errors.New("client: no stored credential")

// CredentialStore persists the bearer token between process runs.
//
// Implementations must treat the token as a secret: whatever the medium,
// it must not be readable by other users of the machine.
type CredentialStore interface {

	// Load returns the stored token, or [ErrNoCredential].
	Load() (string, error)

	// Save overwrites the stored token.
	Save(token string) error

	// Clear removes the stored token. Clearing an empty store is not an error.
	Clear() error
}

// # File Store

// FileCredentialStore keeps the token in a mode-0600 file, typically under
// the user's home directory.
type FileCredentialStore struct {
	path string
}

// NewFileCredentialStore creates a store backed by the given file path.
func NewFileCredentialStore(path string) *FileCredentialStore {
	return &FileCredentialStore{path: path}
}

// Load reads the stored token.
func (store *FileCredentialStore) Load() (string, error) {
	payload, err := os.ReadFile(store.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNoCredential
		}
		return "", fmt.Errorf("client: read credential: %w", err)
	}

	token := strings.TrimSpace(string(payload))
	if token == "" {
		return "", ErrNoCredential
	}

	return token, nil
}

// Save writes the token, creating parent directories as needed.
func (store *FileCredentialStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(store.path), 0o700); err != nil {
		return fmt.Errorf("client: prepare credential dir: %w", err)
	}

	if err := os.WriteFile(store.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("client: write credential: %w", err)
	}

	return nil
}

// Clear deletes the credential file.
func (store *FileCredentialStore) Clear() error {
	if err := os.Remove(store.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("client: remove credential: %w", err)
	}
	return nil
}

// # Memory Store

// MemoryCredentialStore keeps the token in process memory only.
//
// Useful in tests and in callers that handle persistence themselves.
type MemoryCredentialStore struct {
	mu    sync.Mutex
	token string
}

// NewMemoryCredentialStore creates an empty in-memory store.
func NewMemoryCredentialStore() *MemoryCredentialStore {
	return &MemoryCredentialStore{}
}

// Load returns the stored token, or [ErrNoCredential].
func (store *MemoryCredentialStore) Load() (string, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if store.token == "" {
		return "", ErrNoCredential
	}
	return store.token, nil
}

// Save overwrites the stored token.
func (store *MemoryCredentialStore) Save(token string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.token = token
	return nil
}

// Clear removes the stored token.
func (store *MemoryCredentialStore) Clear() error {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.token = ""
	return nil
}
