// Copyright 2025 Lincoln Institute of Land Policy
// SPDX-License-Identifier: Apache-2.0

package sink

import (
	"context"
	"fmt"

	"github.com/internetofwater/healthdcat/internal/config"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// A struct to represent the minio container
type MinioContainer struct {
	// the container itself. used for testcontainer cleanup
	Container testcontainers.Container
	// config that points at the container
	Config config.MinioConfig
	// client bound to the default bucket
	ClientWrapper *MinioClientWrapper
}

// Spin up a local minio container with a bucket already created, mainly for testing
func NewMinioContainer(ctx context.Context, bucket string) (MinioContainer, error) {
	const user, password = "minioadmin", "minioadmin"
	req := testcontainers.ContainerRequest{
		Image:        "minio/minio:latest",
		ExposedPorts: []string{"9000/tcp"},
		WaitingFor:   wait.ForHTTP("/minio/health/live").WithPort("9000"),
		Env: map[string]string{
			"MINIO_ROOT_USER":     user,
			"MINIO_ROOT_PASSWORD": password,
		},
		Cmd: []string{"server", "/data"},
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return MinioContainer{}, fmt.Errorf("generic container: %w", err)
	}

	hostname, err := container.Host(ctx)
	if err != nil {
		return MinioContainer{}, fmt.Errorf("get hostname: %w", err)
	}
	apiPort, err := container.MappedPort(ctx, "9000/tcp")
	if err != nil {
		return MinioContainer{}, fmt.Errorf("get api port: %w", err)
	}

	minioConfig := config.MinioConfig{
		Address:   hostname,
		Port:      apiPort.Int(),
		Accesskey: user,
		Secretkey: password,
	}
	client, err := NewMinioClientWrapper(minioConfig, bucket)
	if err != nil {
		return MinioContainer{}, fmt.Errorf("minio client: %w", err)
	}
	if err := client.MakeDefaultBucket(ctx); err != nil {
		return MinioContainer{}, fmt.Errorf("make bucket: %w", err)
	}

	return MinioContainer{
		Container:     container,
		Config:        minioConfig,
		ClientWrapper: client,
	}, nil
}
