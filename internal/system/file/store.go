// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package file

import "context"

// Repository defines the data access contract for file metadata.
type Repository interface {
	Create(context context.Context, file *File) error

	// FindByID returns a NOT_FOUND error for unknown or deleted ids.
	FindByID(context context.Context, id string) (*File, error)

	// List pages the live files newest first, filtered on the original name.
	List(context context.Context, name string, limit, offset int) ([]*File, int, error)

	Delete(context context.Context, id string) error
}
