// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// ProjectInfoTable represents the 'project_info' table
type ProjectInfoTable struct {
	Table        string
	ID           string
	Name         string
	Description  string
	EnabledFlag  string
	CreatedBy    string
	UpdatedBy    string
	CreationDate string
	UpdationDate string
}

// ProjectInfo is the schema definition for project_info
var ProjectInfo = ProjectInfoTable{
	Table:        "project_info",
	ID:           "id",
	Name:         "name",
	Description:  "description",
	EnabledFlag:  colEnabledFlag,
	CreatedBy:    colCreatedBy,
	UpdatedBy:    colUpdatedBy,
	CreationDate: colCreationDate,
	UpdationDate: colUpdationDate,
}

func (t ProjectInfoTable) Columns() []string {
	return []string{t.ID, t.Name, t.Description, t.CreatedBy, t.UpdatedBy, t.CreationDate, t.UpdationDate}
}

// ModuleInfoTable represents the 'module_info' table
type ModuleInfoTable struct {
	Table       string
	ID          string
	Name        string
	ProjectID   string
	Description string
	EnabledFlag string
}

// ModuleInfo is the schema definition for module_info
var ModuleInfo = ModuleInfoTable{
	Table:       "module_info",
	ID:          "id",
	Name:        "name",
	ProjectID:   "project_id",
	Description: "description",
	EnabledFlag: colEnabledFlag,
}
