// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// LocalBucket stores objects as files in a single directory.
type LocalBucket struct {
	dir string
}

// NewLocalBucket creates the directory if needed and returns a bucket rooted at it.
func NewLocalBucket(dir string) (*LocalBucket, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create %s: %w", dir, err)
	}
	return &LocalBucket{dir: dir}, nil
}

func (bucket *LocalBucket) Backend() string { return BackendLocal }

// path resolves key inside the bucket directory, refusing anything that is
// not a plain file name.
func (bucket *LocalBucket) path(key string) (string, error) {
	if key == "" || key != filepath.Base(key) || key == "." || key == ".." {
		return "", fmt.Errorf("storage: invalid key %q", key)
	}
	return filepath.Join(bucket.dir, key), nil
}

/*
Put writes the object through a temporary file and renames it into place, so
readers never observe a partially written object.
*/
func (bucket *LocalBucket) Put(context context.Context, key string, body io.Reader, _ int64, _ string) error {
	target, err := bucket.path(key)
	if err != nil {
		return err
	}

	temp, err := os.CreateTemp(bucket.dir, ".upload-*")
	if err != nil {
		return fmt.Errorf("local_put_failed: %w", err)
	}
	defer os.Remove(temp.Name())

	if _, err := io.Copy(temp, readerWithContext(context, body)); err != nil {
		temp.Close()
		return fmt.Errorf("local_put_failed: %w", err)
	}
	if err := temp.Close(); err != nil {
		return fmt.Errorf("local_put_failed: %w", err)
	}

	if err := os.Rename(temp.Name(), target); err != nil {
		return fmt.Errorf("local_put_failed: %w", err)
	}
	return nil
}

func (bucket *LocalBucket) Open(_ context.Context, key string) (io.ReadCloser, error) {
	target, err := bucket.path(key)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("local_open_failed: %w", err)
	}
	return file, nil
}

func (bucket *LocalBucket) Delete(_ context.Context, key string) error {
	target, err := bucket.path(key)
	if err != nil {
		return err
	}

	if err := os.Remove(target); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("local_delete_failed: %w", err)
	}
	return nil
}

// contextReader stops a copy once the request is cancelled.
type contextReader struct {
	context context.Context
	reader  io.Reader
}

func readerWithContext(context context.Context, reader io.Reader) io.Reader {
	return &contextReader{context: context, reader: reader}
}

func (r *contextReader) Read(p []byte) (int, error) {
	if err := r.context.Err(); err != nil {
		return 0, err
	}
	return r.reader.Read(p)
}
