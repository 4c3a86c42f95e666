// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/elementadmin/internal/platform/constants"
)

// RedisStore implements [Store] using Redis string keys holding JSON.
type RedisStore struct {
	client redis.UniversalClient
}

// NewRedisStore creates a new Redis-backed session [Store].
func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client}
}

func key(token string) string {
	return constants.RedisPrefixSession + token
}

/*
Save serializes the session and stores it with a TTL.

Parameters:
  - context: context.Context
  - session: *Session
  - ttl: time.Duration

Returns:
  - error: Encoding or execution errors
*/
func (repository *RedisStore) Save(context context.Context, session *Session, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("redis_session_encode_failed: %w", err)
	}

	if err := repository.client.Set(context, key(session.Token), payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis_session_set_failed: %w", err)
	}

	return nil
}

/*
Get retrieves and decodes the session for a token.

Description: Returns ErrExpired if the token is absent or expired.

Parameters:
  - context: context.Context
  - token: string

Returns:
  - *Session: Decoded snapshot
  - error: ErrExpired or connectivity errors
*/
func (repository *RedisStore) Get(context context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrExpired
	}

	payload, err := repository.client.Get(context, key(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrExpired
		}
		return nil, fmt.Errorf("redis_session_get_failed: %w", err)
	}

	session := &Session{}
	if err := json.Unmarshal(payload, session); err != nil {
		return nil, fmt.Errorf("redis_session_decode_failed: %w", err)
	}

	return session, nil
}

/*
Delete removes the session from Redis.

Parameters:
  - context: context.Context
  - token: string

Returns:
  - error: Deletion failures
*/
func (repository *RedisStore) Delete(context context.Context, token string) error {
	if err := repository.client.Del(context, key(token)).Err(); err != nil {
		return fmt.Errorf("redis_session_delete_failed: %w", err)
	}
	return nil
}
