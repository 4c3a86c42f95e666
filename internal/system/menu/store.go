// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package menu

import "context"

// Repository defines the data access contract for the menu catalog.
//
// Every read excludes soft-deleted entries and orders by (sort, id).
type Repository interface {

	// FindAll returns the whole catalog.
	FindAll(context context.Context) ([]*Menu, error)

	// FindByIDs returns the entries among ids. Unknown ids are skipped.
	FindByIDs(context context.Context, ids []int64) ([]*Menu, error)

	// FindParents returns the (id, parent_id) pair of each known id.
	FindParents(context context.Context, ids []int64) ([]ParentRef, error)

	// FindByID returns one entry or a NOT_FOUND error.
	FindByID(context context.Context, id int64) (*Menu, error)

	Create(context context.Context, entry *Menu, userID int64) error
	Update(context context.Context, entry *Menu, userID int64) error

	// CountChildren counts the live entries directly under id.
	CountChildren(context context.Context, id int64) (int, error)

	// Delete soft-deletes the entry.
	Delete(context context.Context, id int64, userID int64) error
}
