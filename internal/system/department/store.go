// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package department

import "context"

// Repository defines the data access contract for departments.
type Repository interface {

	// FindAll returns every live department ordered by (sort, id).
	FindAll(context context.Context) ([]*Department, error)

	FindByID(context context.Context, id int64) (*Department, error)

	// NameTaken reports whether another live department, other than excludeID, uses name.
	NameTaken(context context.Context, name string, excludeID int64) (bool, error)

	Create(context context.Context, dept *Department, userID int64) error
	Update(context context.Context, dept *Department, userID int64) error

	CountChildren(context context.Context, id int64) (int, error)

	// CountMembers counts the live users assigned to id.
	CountMembers(context context.Context, id int64) (int, error)

	Delete(context context.Context, id int64, userID int64) error
}
