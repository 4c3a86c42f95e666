// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Options configures an [S3Bucket].
type S3Options struct {
	Bucket    string
	Region    string
	Endpoint  string // Custom endpoint for MinIO or R2; empty means AWS
	AccessKey string
	SecretKey string
}

// S3Bucket stores objects in an S3-compatible bucket.
type S3Bucket struct {
	client *s3.Client
	bucket string
}

/*
NewS3Bucket builds the S3 client.

Static credentials are used when both keys are set, otherwise the default AWS
credential chain applies. A custom endpoint switches to path-style addressing,
which MinIO requires.
*/
func NewS3Bucket(context context.Context, options S3Options) (*S3Bucket, error) {
	loaders := []func(*config.LoadOptions) error{
		config.WithRegion(options.Region),
	}
	if options.AccessKey != "" && options.SecretKey != "" {
		loaders = append(loaders, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(options.AccessKey, options.SecretKey, ""),
		))
	}

	awsConfig, err := config.LoadDefaultConfig(context, loaders...)
	if err != nil {
		return nil, fmt.Errorf("storage: load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if options.Endpoint != "" {
			o.BaseEndpoint = aws.String(options.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Bucket{client: client, bucket: options.Bucket}, nil
}

func (bucket *S3Bucket) Backend() string { return BackendS3 }

func (bucket *S3Bucket) Put(context context.Context, key string, body io.Reader, size int64, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket: aws.String(bucket.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if size >= 0 {
		input.ContentLength = aws.Int64(size)
	}

	if _, err := bucket.client.PutObject(context, input); err != nil {
		return fmt.Errorf("s3_put_failed: %w", err)
	}
	return nil
}

func (bucket *S3Bucket) Open(context context.Context, key string) (io.ReadCloser, error) {
	result, err := bucket.client.GetObject(context, &s3.GetObjectInput{
		Bucket: aws.String(bucket.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var missing *types.NoSuchKey
		if errors.As(err, &missing) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("s3_open_failed: %w", err)
	}
	return result.Body, nil
}

func (bucket *S3Bucket) Delete(context context.Context, key string) error {
	_, err := bucket.client.DeleteObject(context, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("s3_delete_failed: %w", err)
	}
	return nil
}
