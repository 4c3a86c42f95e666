// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/elementadmin/internal/platform/constants"
	"github.com/taibuivan/elementadmin/internal/system/session"
)

func setupStore(t *testing.T) (*session.RedisStore, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return session.NewRedisStore(client), server
}

/*
TestRedisStore_SaveGet verifies the round trip and the key layout.
*/
func TestRedisStore_SaveGet(t *testing.T) {
	store, server := setupStore(t)
	ctx := context.Background()

	current := &session.Session{
		Token:     "abc",
		ID:        7,
		LoginTime: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Username:  "alice",
		Nickname:  "Alice",
		Roles:     []int64{1, 3},
		Tags:      []string{"ops"},
	}

	// 1. Save under the session prefix with the TTL
	require.NoError(t, store.Save(ctx, current, constants.SessionTTL))
	assert.True(t, server.Exists(constants.RedisPrefixSession+"abc"))
	assert.Equal(t, constants.SessionTTL, server.TTL(constants.RedisPrefixSession+"abc"))

	// 2. Read back
	loaded, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, current.LoginTime.Equal(loaded.LoginTime))
	assert.Equal(t, current.ID, loaded.ID)
	assert.Equal(t, current.Nickname, loaded.Nickname)
	assert.Equal(t, current.Roles, loaded.Roles)
	assert.Equal(t, current.Tags, loaded.Tags)
}

/*
TestRedisStore_Expired checks absent and TTL-expired tokens.
*/
func TestRedisStore_Expired(t *testing.T) {
	store, server := setupStore(t)
	ctx := context.Background()

	// 1. Unknown token
	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, session.ErrExpired)

	// 2. Empty token never hits redis
	_, err = store.Get(ctx, "")
	assert.ErrorIs(t, err, session.ErrExpired)

	// 3. TTL elapses
	require.NoError(t, store.Save(ctx, &session.Session{Token: "short", ID: 1}, time.Minute))
	server.FastForward(2 * time.Minute)

	_, err = store.Get(ctx, "short")
	assert.ErrorIs(t, err, session.ErrExpired)
}

/*
TestRedisStore_Delete verifies logout removal is idempotent.
*/
func TestRedisStore_Delete(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &session.Session{Token: "t1", ID: 1}, time.Hour))
	require.NoError(t, store.Delete(ctx, "t1"))
	require.NoError(t, store.Delete(ctx, "t1"))

	_, err := store.Get(ctx, "t1")
	assert.ErrorIs(t, err, session.ErrExpired)
}
