// Copyright 2025 Lincoln Institute of Land Policy
// SPDX-License-Identifier: Apache-2.0

package sink

import (
	"context"
	"fmt"
	"io"

	"github.com/internetofwater/healthdcat/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"
)

// Wrapper to allow us to extend the minio client struct with new methods
type MinioClientWrapper struct {
	// Base client for accessing minio
	Client *minio.Client
	// Bucket that all objects are written to
	DefaultBucket string
}

// NewMinioClientWrapper sets up a minio client for a single bucket
func NewMinioClientWrapper(mcfg config.MinioConfig, bucket string) (*MinioClientWrapper, error) {
	var endpoint string
	if mcfg.Port == 0 {
		endpoint = mcfg.Address
	} else {
		endpoint = fmt.Sprintf("%s:%d", mcfg.Address, mcfg.Port)
	}

	options := &minio.Options{
		Creds:  credentials.NewStaticV4(mcfg.Accesskey, mcfg.Secretkey, ""),
		Secure: mcfg.SSL,
	}
	if mcfg.Region == "" {
		log.Debug("Minio client created with no region set")
	} else {
		options.Region = mcfg.Region
	}

	minioClient, err := minio.New(endpoint, options)
	if err != nil {
		return nil, err
	}
	return &MinioClientWrapper{Client: minioClient, DefaultBucket: bucket}, nil
}

// Create the default bucket if it does not already exist
func (m *MinioClientWrapper) MakeDefaultBucket(ctx context.Context) error {
	exists, err := m.Client.BucketExists(ctx, m.DefaultBucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return m.Client.MakeBucket(ctx, m.DefaultBucket, minio.MakeBucketOptions{})
}

// Store the contents of data under key with the given content type
func (m *MinioClientWrapper) Store(ctx context.Context, key string, data io.Reader, size int64, contentType string) error {
	_, err := m.Client.PutObject(ctx, m.DefaultBucket, key, data, size, minio.PutObjectOptions{ContentType: contentType})
	return err
}

// Get returns a reader for an object in the bucket
func (m *MinioClientWrapper) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	return m.Client.GetObject(ctx, m.DefaultBucket, key, minio.GetObjectOptions{})
}

// Exists checks whether an object is in the bucket
func (m *MinioClientWrapper) Exists(ctx context.Context, key string) (bool, error) {
	_, err := m.Client.StatObject(ctx, m.DefaultBucket, key, minio.StatObjectOptions{})
	if err == nil {
		return true, nil
	}
	// This is a string from the s3 spec, not an arbitrary magic val
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return false, nil
	}
	return false, err
}
