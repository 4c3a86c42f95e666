// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// SysUserTable represents the 'sys_user' table
type SysUserTable struct {
	Table        string
	ID           string
	Username     string
	Nickname     string
	Password     string
	Avatar       string
	UserType     string
	Status       string
	Roles        string
	Tags         string
	DeptID       string
	Remarks      string
	EnabledFlag  string
	CreatedBy    string
	UpdatedBy    string
	CreationDate string
	UpdationDate string
}

// SysUser is the schema definition for sys_user
var SysUser = SysUserTable{
	Table:        "sys_user",
	ID:           "id",
	Username:     "username",
	Nickname:     "nickname",
	Password:     "password",
	Avatar:       "avatar",
	UserType:     "user_type",
	Status:       "status",
	Roles:        "roles",
	Tags:         "tags",
	DeptID:       "dept_id",
	Remarks:      "remarks",
	EnabledFlag:  colEnabledFlag,
	CreatedBy:    colCreatedBy,
	UpdatedBy:    colUpdatedBy,
	CreationDate: colCreationDate,
	UpdationDate: colUpdationDate,
}

func (t SysUserTable) Columns() []string {
	return []string{
		t.ID, t.Username, t.Nickname, t.Password, t.Avatar, t.UserType, t.Status,
		t.Roles, t.Tags, t.DeptID, t.Remarks, t.CreationDate, t.UpdationDate,
	}
}
