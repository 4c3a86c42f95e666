// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package role

import "context"

type Repository interface {

	// FindByIDs returns the live roles among ids, skipping unknown ids.
	FindByIDs(context context.Context, ids []int64) ([]*Role, error)

	List(context context.Context, name string, limit, offset int) ([]*Role, int, error)

	// NameTaken reports whether another live role (not excludeID) uses name.
	NameTaken(context context.Context, name string, excludeID int64) (bool, error)

	Create(context context.Context, role *Role, userID int64) error
	Update(context context.Context, role *Role, userID int64) error

	// CountHolders counts the live users holding the role.
	CountHolders(context context.Context, id int64) (int, error)

	Delete(context context.Context, id int64, userID int64) error
}
