// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package file stores uploaded attachments in a [storage.Bucket] and keeps their
metadata in the file_info table.

A stored object is named by a random upper-case hex id plus the original
extension, so user-supplied names never reach the bucket.
*/
package file

import (
	"time"

	"github.com/taibuivan/elementadmin/internal/platform/constants"
	"github.com/taibuivan/elementadmin/pkg/pagination"
)

// File is the metadata of one stored object.
type File struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	FilePath     string    `json:"file_path"`
	ExtendName   *string   `json:"extend_name"`
	OriginalName string    `json:"original_name"`
	ContentType  *string   `json:"content_type"`
	FileSize     *string   `json:"file_size"`
	CreatedBy    *int64    `json:"created_by"`
	CreatedAt    time.Time `json:"creation_date"`
}

// URL is the download location of the file.
func (f *File) URL() string {
	return constants.FileDownloadPath + f.ID
}

// Uploaded is the answer of an upload.
type Uploaded struct {
	ID           string `json:"id"`
	URL          string `json:"url"`
	Name         string `json:"name"`
	OriginalName string `json:"original_name"`
}

// Ref is the short form returned by id lookups.
type Ref struct {
	ID   string `json:"id"`
	URL  string `json:"url"`
	Name string `json:"name"`
}

// ListQuery filters on the original file name.
type ListQuery struct {
	pagination.Query
	Name string `json:"name"`
}

// IDInput is the payload of the delete endpoint.
type IDInput struct {
	ID string `json:"id"`
}

const (
	FieldFile = "file"
	FieldID   = "id"
)
