// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package storage provides the object storage behind uploaded files.

Two backends implement [Bucket]:

  - [LocalBucket]: a directory on the server's filesystem.
  - [S3Bucket]: any S3-compatible bucket (AWS, MinIO, R2).

Keys are flat object names generated by the file service. Callers never pass
user-supplied paths as keys.
*/
package storage

import (
	"context"
	"errors"
	"io"
)

// Backend names reported by [Bucket.Backend] and used as metric labels.
const (
	BackendLocal = "local"
	BackendS3    = "s3"
)

// ErrNotFound is returned by [Bucket.Open] when the object does not exist.
var ErrNotFound = errors.New("storage: object not found")

// Bucket is the contract every storage backend fulfils.
type Bucket interface {

	/*
		Put stores the body under key, replacing any existing object.

		Parameters:
		  - context: context.Context
		  - key: string (flat object name)
		  - body: io.Reader
		  - size: int64 (content length, -1 when unknown)
		  - contentType: string

		Returns:
		  - error: Write failures
	*/
	Put(context context.Context, key string, body io.Reader, size int64, contentType string) error

	// Open streams the object. The caller closes the reader.
	Open(context context.Context, key string) (io.ReadCloser, error)

	// Delete removes the object. Deleting an absent object is not an error.
	Delete(context context.Context, key string) error

	// Backend names the implementation.
	Backend() string
}

// Observer receives one call per storage operation.
type Observer interface {
	ObserveStorage(operation, backend string, err error)
}

// Instrument wraps bucket so that every operation is reported to observer.
func Instrument(bucket Bucket, observer Observer) Bucket {
	if observer == nil {
		return bucket
	}
	return &instrumented{next: bucket, observer: observer}
}

type instrumented struct {
	next     Bucket
	observer Observer
}

func (bucket *instrumented) Put(context context.Context, key string, body io.Reader, size int64, contentType string) error {
	err := bucket.next.Put(context, key, body, size, contentType)
	bucket.observer.ObserveStorage("put", bucket.next.Backend(), err)
	return err
}

func (bucket *instrumented) Open(context context.Context, key string) (io.ReadCloser, error) {
	reader, err := bucket.next.Open(context, key)

	// A missing object is an answer, not a backend failure.
	observed := err
	if errors.Is(err, ErrNotFound) {
		observed = nil
	}
	bucket.observer.ObserveStorage("open", bucket.next.Backend(), observed)
	return reader, err
}

func (bucket *instrumented) Delete(context context.Context, key string) error {
	err := bucket.next.Delete(context, key)
	bucket.observer.ObserveStorage("delete", bucket.next.Backend(), err)
	return err
}

func (bucket *instrumented) Backend() string {
	return bucket.next.Backend()
}
