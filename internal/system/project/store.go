// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package project

import "context"

// Repository defines the data access contract for projects.
type Repository interface {

	/*
		List returns a page of live projects, newest first.

		Parameters:
		  - context: context.Context
		  - name: Case-insensitive substring filter, empty for all
		  - limit, offset: int

		Returns:
		  - []*Project: The page rows
		  - int: Total matching rows
		  - error: Database failures
	*/
	List(context context.Context, name string, limit, offset int) ([]*Project, int, error)

	FindByID(context context.Context, id int64) (*Project, error)
	NameTaken(context context.Context, name string, excludeID int64) (bool, error)
	Create(context context.Context, project *Project, userID int64) error
	Update(context context.Context, project *Project, userID int64) error

	// CountModules counts the live modules that belong to id.
	CountModules(context context.Context, id int64) (int, error)

	Delete(context context.Context, id int64, userID int64) error
}
