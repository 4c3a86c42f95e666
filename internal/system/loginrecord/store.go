// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package loginrecord

import (
	"context"
	"time"
)

type Repository interface {
	Create(context context.Context, record *Record) error

	// StampLogout sets the logout time of the record opened by token.
	// An unknown token is not an error.
	StampLogout(context context.Context, token string, at time.Time) error

	// List returns records newest first.
	List(context context.Context, filter Filter, limit, offset int) ([]*Record, int, error)
}
