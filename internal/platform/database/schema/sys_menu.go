// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// SysMenuTable represents the 'sys_menu' table
type SysMenuTable struct {
	Table        string
	ID           string
	ParentID     string
	Title        string
	Name         string
	Path         string
	Component    string
	Icon         string
	Permission   string
	MenuType     string
	Sort         string
	Status       string
	EnabledFlag  string
	CreatedBy    string
	UpdatedBy    string
	CreationDate string
	UpdationDate string
}

// SysMenu is the schema definition for sys_menu
var SysMenu = SysMenuTable{
	Table:        "sys_menu",
	ID:           "id",
	ParentID:     "parent_id",
	Title:        "title",
	Name:         "name",
	Path:         "path",
	Component:    "component",
	Icon:         "icon",
	Permission:   "permission",
	MenuType:     "menu_type",
	Sort:         "sort",
	Status:       "status",
	EnabledFlag:  colEnabledFlag,
	CreatedBy:    colCreatedBy,
	UpdatedBy:    colUpdatedBy,
	CreationDate: colCreationDate,
	UpdationDate: colUpdationDate,
}

func (t SysMenuTable) Columns() []string {
	return []string{
		t.ID, t.ParentID, t.Title, t.Name, t.Path, t.Component, t.Icon, t.Permission,
		t.MenuType, t.Sort, t.Status, t.CreationDate, t.UpdationDate,
	}
}
