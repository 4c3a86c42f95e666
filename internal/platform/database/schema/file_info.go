// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// FileInfoTable represents the 'file_info' table
type FileInfoTable struct {
	Table        string
	ID           string
	Name         string
	FilePath     string
	ExtendName   string
	OriginalName string
	ContentType  string
	FileSize     string
	EnabledFlag  string
	CreatedBy    string
	CreationDate string
}

// FileInfo is the schema definition for file_info
var FileInfo = FileInfoTable{
	Table:        "file_info",
	ID:           "id",
	Name:         "name",
	FilePath:     "file_path",
	ExtendName:   "extend_name",
	OriginalName: "original_name",
	ContentType:  "content_type",
	FileSize:     "file_size",
	EnabledFlag:  colEnabledFlag,
	CreatedBy:    colCreatedBy,
	CreationDate: colCreationDate,
}

func (t FileInfoTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.FilePath, t.ExtendName, t.OriginalName, t.ContentType,
		t.FileSize, t.CreatedBy, t.CreationDate,
	}
}
