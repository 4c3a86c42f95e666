// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth handles password login, logout and token checks.

A login issues an opaque random token and caches a session snapshot under it
for a fixed lifetime. The durable login record is written in the background:
a failing audit write is logged and counted, never returned to the caller.
*/
package auth

import (
	"context"
	"time"

	"github.com/taibuivan/elementadmin/internal/platform/apperr"
	"github.com/taibuivan/elementadmin/internal/platform/validate"
	"github.com/taibuivan/elementadmin/internal/system/loginrecord"
	"github.com/taibuivan/elementadmin/internal/system/user"
)

var (
	ErrCredentialsRequired = validate.RequiredError("username", "Username and password are required")
	ErrInvalidCredentials  = apperr.Unauthorized("Incorrect username or password")
	ErrDisabled            = apperr.Forbidden("This account is disabled, contact an administrator")
)

// Login outcomes reported to the metrics observer.
const (
	ResultSuccess  = "success"
	ResultInvalid  = "invalid"
	ResultDisabled = "disabled"
	ResultError    = "error"
)

// LoginInput is the payload of the login endpoint.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenInfo is the answer of a token check.
type TokenInfo struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// # Collaborators

// UserFinder is the login lookup.
type UserFinder interface {
	FindByUsername(context context.Context, username string) (*user.User, error)
}

// Recorder persists the login audit trail.
type Recorder interface {
	Create(context context.Context, record *loginrecord.Record) error
	StampLogout(context context.Context, token string, at time.Time) error
}

// Observer counts login outcomes and dropped audit writes.
type Observer interface {
	ObserveLogin(result string)
	ObserveAuditFailure(kind string)
}
