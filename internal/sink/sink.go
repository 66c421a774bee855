// Copyright 2025 Lincoln Institute of Land Policy
// SPDX-License-Identifier: Apache-2.0

// Package sink writes serialized graphs to local files or object storage
package sink

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/internetofwater/healthdcat/internal/config"
	"github.com/internetofwater/healthdcat/internal/graph"
	"github.com/internetofwater/healthdcat/internal/opentelemetry"
	log "github.com/sirupsen/logrus"
)

const s3Scheme = "s3://"

// A place a serialized graph can be written to
type Destination interface {
	Write(ctx context.Context, data []byte, format graph.Format) error
	String() string
}

// A file on the local filesystem. Parent directories
// must already exist
type LocalFile struct {
	Path string
}

func (l LocalFile) Write(_ context.Context, data []byte, _ graph.Format) error {
	f, err := os.Create(l.Path)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func (l LocalFile) String() string {
	return l.Path
}

// An object in an s3 compatible bucket
type S3Object struct {
	Client *MinioClientWrapper
	Key    string
}

func (s S3Object) Write(ctx context.Context, data []byte, format graph.Format) error {
	contentType := "application/octet-stream"
	if info, ok := format.Info(); ok {
		contentType = info.MIMEType
	}
	return s.Client.Store(ctx, s.Key, bytes.NewReader(data), int64(len(data)), contentType)
}

func (s S3Object) String() string {
	return s3Scheme + s.Client.DefaultBucket + "/" + s.Key
}

// ParseS3URL splits s3://bucket/key into its bucket and key
func ParseS3URL(output string) (bucket string, key string, err error) {
	trimmed, ok := strings.CutPrefix(output, s3Scheme)
	if !ok {
		return "", "", fmt.Errorf("%s is not an s3 url", output)
	}
	bucket, key, _ = strings.Cut(trimmed, "/")
	if bucket == "" || key == "" || strings.HasSuffix(key, "/") {
		return "", "", fmt.Errorf("s3 output %s must have the form s3://bucket/key", output)
	}
	return bucket, key, nil
}

// Open picks a destination for an output path; s3:// paths
// are uploaded with the minio config and anything else is a local file
func Open(output string, minioConfig config.MinioConfig) (Destination, error) {
	if !strings.HasPrefix(output, s3Scheme) {
		return LocalFile{Path: output}, nil
	}
	bucket, key, err := ParseS3URL(output)
	if err != nil {
		return nil, err
	}
	client, err := NewMinioClientWrapper(minioConfig, bucket)
	if err != nil {
		return nil, err
	}
	return S3Object{Client: client, Key: key}, nil
}

// WriteGraph serializes the whole store and then writes it out in one piece
func WriteGraph(ctx context.Context, store *graph.Store, format graph.Format, destination Destination) error {
	span, ctx := opentelemetry.SubSpanFromCtxWithName(ctx, "write_graph")
	defer span.End()

	var buf bytes.Buffer
	if err := store.Serialize(&buf, format); err != nil {
		return fmt.Errorf("failed to serialize graph: %w", err)
	}
	log.Debugf("writing %d bytes of %s to %s", buf.Len(), format, destination)
	if err := destination.Write(ctx, buf.Bytes(), format); err != nil {
		return fmt.Errorf("failed to write %s: %w", destination, err)
	}
	return nil
}
