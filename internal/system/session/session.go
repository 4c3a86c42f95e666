// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package session holds the login session snapshot and its cache-backed store.

A session is created at login, lives in Redis under a fixed time-to-live, and is
deleted at logout. It is a derived, best-effort copy of the user record: the
durable source of truth stays in PostgreSQL.
*/
package session

import (
	"context"
	"time"

	"github.com/taibuivan/elementadmin/internal/platform/apperr"
)

// ErrExpired is returned when a token has no live session.
var ErrExpired = apperr.Unauthorized("token expired")

// Session is the denormalized user snapshot taken at login time.
type Session struct {
	Token     string    `json:"token"`
	ID        int64     `json:"id"`
	LoginTime time.Time `json:"login_time"`
	Username  string    `json:"username"`
	Nickname  string    `json:"nickname"`
	Roles     []int64   `json:"roles"`
	Tags      []string  `json:"tags"`
}

// Store defines the data access contract for login sessions.
type Store interface {

	/*
		Save writes the session under its token with the given TTL.

		Parameters:
		  - context: context.Context
		  - session: *Session
		  - ttl: time.Duration

		Returns:
		  - error: Persistence failures
	*/
	Save(context context.Context, session *Session, ttl time.Duration) error

	/*
		Get returns the live session for a token.

		Returns:
		  - *Session: Decoded snapshot
		  - error: [ErrExpired] when absent, otherwise connectivity errors
	*/
	Get(context context.Context, token string) (*Session, error)

	// Delete removes the session. Deleting an absent token is not an error.
	Delete(context context.Context, token string) error
}
