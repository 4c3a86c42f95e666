// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/taibuivan/elementadmin/internal/platform/apperr"
	"github.com/taibuivan/elementadmin/internal/platform/dberr"
	"github.com/taibuivan/elementadmin/internal/platform/storage"
	"github.com/taibuivan/elementadmin/internal/platform/validate"
	"github.com/taibuivan/elementadmin/pkg/pagination"
	"github.com/taibuivan/elementadmin/pkg/uuid"
)

var (
	ErrNotFound = apperr.NotFound("File")
	ErrNoFile   = validate.RequiredError(FieldFile, "Select a file to upload")
)

// Upload is one incoming object.
type Upload struct {
	OriginalName string
	ContentType  string
	Size         int64
	Body         io.Reader
}

type Service struct {
	repo   Repository
	bucket storage.Bucket
	logger *slog.Logger

	newID func() string
}

func NewService(repo Repository, bucket storage.Bucket, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		bucket: bucket,
		logger: logger,
		newID:  uuid.Hex,
	}
}

/*
Upload writes the object to the bucket, then records its metadata.

Description: The object is named "<HEX>.<ext>". When the metadata insert
fails the object is removed again.

Parameters:
  - context: context.Context
  - userID: int64 (the uploader)
  - upload: Upload

Returns:
  - *Uploaded: id, download url and names
  - error: ErrNoFile, storage or database failures
*/
func (service *Service) Upload(context context.Context, userID int64, upload Upload) (*Uploaded, error) {
	original := norm.NFC.String(path.Base(strings.ReplaceAll(upload.OriginalName, "\\", "/")))
	if upload.Body == nil || original == "" || original == "." || original == "/" {
		return nil, ErrNoFile
	}

	name := service.newID()
	var extension *string
	if ext := strings.TrimPrefix(path.Ext(original), "."); ext != "" {
		extension = &ext
		name += "." + ext
	}

	counted := &countingReader{reader: upload.Body}
	if err := service.bucket.Put(context, name, counted, upload.Size, upload.ContentType); err != nil {
		return nil, fmt.Errorf("file_store_failed: %w", err)
	}

	size := fmt.Sprintf("%.2f", float64(counted.n)/1024)
	record := &File{
		ID:           service.newID(),
		Name:         name,
		FilePath:     name,
		ExtendName:   extension,
		OriginalName: original,
		FileSize:     &size,
		CreatedBy:    &userID,
	}
	if upload.ContentType != "" {
		record.ContentType = &upload.ContentType
	}

	if err := service.repo.Create(context, record); err != nil {
		if cleanupErr := service.bucket.Delete(context, name); cleanupErr != nil {
			service.logger.Error("file_orphan_cleanup_failed", slog.String("name", name), slog.Any("error", cleanupErr))
		}
		return nil, err
	}

	service.logger.Info("file_uploaded",
		slog.String("file_id", record.ID),
		slog.String("name", name),
		slog.String("backend", service.bucket.Backend()),
		slog.Int64("bytes", counted.n),
	)

	return &Uploaded{
		ID:           record.ID,
		URL:          record.URL(),
		Name:         original,
		OriginalName: original,
	}, nil
}

func (service *Service) List(context context.Context, query ListQuery) (pagination.Page[*File], error) {
	page := query.Query.Normalize()

	files, total, err := service.repo.List(context, strings.TrimSpace(query.Name), page.Limit(), page.Offset())
	if err != nil {
		return pagination.Page[*File]{}, err
	}
	return pagination.NewPage(page, total, files), nil
}

// Get returns the download reference of a file.
func (service *Service) Get(context context.Context, id string) (*Ref, error) {
	f, err := service.find(context, id)
	if err != nil {
		return nil, err
	}
	return &Ref{ID: f.ID, URL: f.URL(), Name: f.OriginalName}, nil
}

/*
Open returns the metadata and a stream of the stored object.

The caller closes the reader. A record whose object is gone is reported as
ErrNotFound.
*/
func (service *Service) Open(context context.Context, id string) (*File, io.ReadCloser, error) {
	f, err := service.find(context, id)
	if err != nil {
		return nil, nil, err
	}

	reader, err := service.bucket.Open(context, f.FilePath)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			service.logger.Warn("file_object_missing", slog.String("file_id", id), slog.String("name", f.Name))
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("file_open_failed: %w", err)
	}
	return f, reader, nil
}

// Delete removes the object and its record. A failing object removal is
// logged; the record is deleted regardless.
func (service *Service) Delete(context context.Context, userID int64, id string) error {
	f, err := service.find(context, id)
	if err != nil {
		return err
	}

	if err := service.bucket.Delete(context, f.FilePath); err != nil {
		service.logger.Error("file_object_delete_failed", slog.String("file_id", id), slog.Any("error", err))
	}

	if err := service.repo.Delete(context, id); err != nil {
		if dberr.IsNotFound(err) {
			return ErrNotFound
		}
		return err
	}

	service.logger.Warn("file_deleted", slog.String("file_id", id), slog.Int64("user_id", userID))
	return nil
}

func (service *Service) find(context context.Context, id string) (*File, error) {
	if strings.TrimSpace(id) == "" {
		return nil, validate.RequiredError(FieldID, "File id is required")
	}

	f, err := service.repo.FindByID(context, id)
	if err != nil {
		if dberr.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

// countingReader records how many bytes the bucket consumed.
type countingReader struct {
	reader io.Reader
	n      int64
}

func (r *countingReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	r.n += int64(n)
	return n, err
}
