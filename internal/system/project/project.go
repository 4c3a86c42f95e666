// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package project manages the projects that group the admin's modules.
package project

import (
	"time"

	"github.com/taibuivan/elementadmin/pkg/pagination"
)

// Project carries the nicknames of its creator and last editor, joined at read time.
type Project struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   *string   `json:"description"`
	CreatedBy     *int64    `json:"created_by"`
	UpdatedBy     *int64    `json:"updated_by"`
	CreatedByName *string   `json:"created_by_name"`
	UpdatedByName *string   `json:"updated_by_name"`
	CreatedAt     time.Time `json:"creation_date"`
	UpdatedAt     time.Time `json:"updation_date"`
}

type ListQuery struct {
	pagination.Query
	Name string `json:"name"`
}

type DeleteInput struct {
	ID int64 `json:"id"`
}

const FieldName = "name"
