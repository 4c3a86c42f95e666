// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package user

import (
	"context"

	"github.com/taibuivan/elementadmin/internal/platform/apperr"
)

// ErrNotFound is returned by lookups of absent or soft-deleted users.
var ErrNotFound = apperr.NotFound("User")

// Repository defines the data access contract for accounts.
//
// Reads ignore soft-deleted rows.
type Repository interface {

	/*
		FindByID retrieves a live user.

		Returns:
		  - *User: The account, password hash included
		  - error: [ErrNotFound] if missing
	*/
	FindByID(context context.Context, id int64) (*User, error)

	// FindByUsername is the login lookup. Returns [ErrNotFound] if missing.
	FindByUsername(context context.Context, username string) (*User, error)

	// NicknameTaken reports whether another live user (not excludeID) uses nickname.
	NicknameTaken(context context.Context, nickname string, excludeID int64) (bool, error)

	List(context context.Context, filter Filter, limit, offset int) ([]*User, int, error)

	Create(context context.Context, user *User, actorID int64) error

	// Update writes every editable column, password hash included.
	Update(context context.Context, user *User, actorID int64) error

	UpdatePassword(context context.Context, id int64, hash string, actorID int64) error
	UpdateAvatar(context context.Context, id int64, avatar string, actorID int64) error

	Delete(context context.Context, id int64, actorID int64) error
}
