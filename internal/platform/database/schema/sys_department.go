// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// SysDepartmentTable represents the 'sys_department' table
type SysDepartmentTable struct {
	Table        string
	ID           string
	Name         string
	ParentID     string
	Sort         string
	Status       string
	Description  string
	EnabledFlag  string
	CreatedBy    string
	UpdatedBy    string
	CreationDate string
	UpdationDate string
}

// SysDepartment is the schema definition for sys_department
var SysDepartment = SysDepartmentTable{
	Table:        "sys_department",
	ID:           "id",
	Name:         "name",
	ParentID:     "parent_id",
	Sort:         "sort",
	Status:       "status",
	Description:  "description",
	EnabledFlag:  colEnabledFlag,
	CreatedBy:    colCreatedBy,
	UpdatedBy:    colUpdatedBy,
	CreationDate: colCreationDate,
	UpdationDate: colUpdationDate,
}

func (t SysDepartmentTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.ParentID, t.Sort, t.Status, t.Description,
		t.CreationDate, t.UpdationDate,
	}
}
