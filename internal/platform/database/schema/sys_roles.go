// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// SysRolesTable represents the 'sys_roles' table
type SysRolesTable struct {
	Table        string
	ID           string
	Name         string
	RoleType     string
	Menus        string
	DeptID       string
	Description  string
	Status       string
	EnabledFlag  string
	CreatedBy    string
	UpdatedBy    string
	CreationDate string
	UpdationDate string
}

// SysRoles is the schema definition for sys_roles
var SysRoles = SysRolesTable{
	Table:        "sys_roles",
	ID:           "id",
	Name:         "name",
	RoleType:     "role_type",
	Menus:        "menus",
	DeptID:       "dept_id",
	Description:  "description",
	Status:       "status",
	EnabledFlag:  colEnabledFlag,
	CreatedBy:    colCreatedBy,
	UpdatedBy:    colUpdatedBy,
	CreationDate: colCreationDate,
	UpdationDate: colUpdationDate,
}

func (t SysRolesTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.RoleType, t.Menus, t.DeptID, t.Description, t.Status,
		t.CreationDate, t.UpdationDate,
	}
}
