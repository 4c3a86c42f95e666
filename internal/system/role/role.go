// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package role manages named bundles of granted menu ids.
package role

import (
	"time"

	"github.com/taibuivan/elementadmin/pkg/idlist"
	"github.com/taibuivan/elementadmin/pkg/pagination"
)

// Role grants its menu ids to every user holding it.
//
// Menus may reference deleted catalog entries; readers skip stale ids.
type Role struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	RoleType    int         `json:"role_type"`
	Menus       idlist.List `json:"menus"`
	DeptID      *int64      `json:"dept_id"`
	Description *string     `json:"description"`
	Status      int         `json:"status"`
	CreatedAt   time.Time   `json:"creation_date"`
	UpdatedAt   time.Time   `json:"updation_date"`
}

// ListQuery is the payload of the list endpoint.
type ListQuery struct {
	pagination.Query
	Name string `json:"name"`
}

type DeleteInput struct {
	ID int64 `json:"id"`
}

const (
	FieldName = "name"
)
