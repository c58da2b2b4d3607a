// Copyright (c) 2026 Durafone. All rights reserved.

/*
Redis implementation of the site-configuration persistence contract.

# Storage Model

The whole document is serialized to JSON and stored under one key with no
expiration. Saves are single SET commands, so concurrent editors resolve
as last writer wins without partial states.
*/
package siteconfig

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/durafone/storefront/internal/platform/apperr"
	"github.com/durafone/storefront/internal/platform/constants"
)

// RedisRepository implements [Repository] on a Redis client.
type RedisRepository struct {
	client *redis.Client
}

// NewRepository creates the Redis implementation of the Repository.
func NewRepository(client *redis.Client) *RedisRepository {
	return &RedisRepository{client: client}
}

// Load fetches and decodes the stored document.
func (repository *RedisRepository) Load(ctx context.Context) (Document, error) {
	payload, err := repository.client.Get(ctx, constants.RedisKeySiteConfig).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperr.NotFound("Site configuration")
		}
		return nil, fmt.Errorf("siteconfig_load_failed: %w", err)
	}

	var document Document
	if err := json.Unmarshal(payload, &document); err != nil {
		return nil, fmt.Errorf("siteconfig_decode_failed: %w", err)
	}

	return document, nil
}

// Save serializes and overwrites the stored document.
func (repository *RedisRepository) Save(ctx context.Context, document Document) error {
	payload, err := json.Marshal(document)
	if err != nil {
		return fmt.Errorf("siteconfig_encode_failed: %w", err)
	}

	// No TTL: the configuration is permanent state, not a cache entry.
	if err := repository.client.Set(ctx, constants.RedisKeySiteConfig, payload, 0).Err(); err != nil {
		return fmt.Errorf("siteconfig_save_failed: %w", err)
	}

	return nil
}
