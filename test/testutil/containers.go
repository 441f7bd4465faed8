package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"

	"github.com/fhuszti/showcase-ms-go/internal/logger"
	"github.com/fhuszti/showcase-ms-go/internal/storage"
)

// ContainerInfo describes a started backing service. Addr is a DSN for
// MariaDB and a host:port for the others.
type ContainerInfo struct {
	Addr    string
	Cleanup func()
}

// startContainer runs opts and waits until ready succeeds against the mapped
// port. The container is purged if it never becomes ready.
func startContainer(opts *dockertest.RunOptions, internalPort string, ready func(hostPort string) error) (*ContainerInfo, string, error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, "", fmt.Errorf("could not connect to docker: %w", err)
	}

	resource, err := pool.RunWithOptions(opts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, "", fmt.Errorf("could not start %s container: %w", opts.Repository, err)
	}

	hostPort := resource.GetPort(internalPort)
	if err := pool.Retry(func() error { return ready(hostPort) }); err != nil {
		_ = pool.Purge(resource)
		return nil, "", fmt.Errorf("%s did not become ready: %w", opts.Repository, err)
	}

	return &ContainerInfo{
		Cleanup: func() {
			if err := pool.Purge(resource); err != nil {
				logger.Warnf(context.Background(), "could not purge %s container: %s", opts.Repository, err)
			}
		},
	}, hostPort, nil
}

// StartMariaDBContainer returns a root DSN. Tests create their own schemas
// through SetupTestDB.
func StartMariaDBContainer() (*ContainerInfo, error) {
	const rootPassword = "root"

	ci, port, err := startContainer(&dockertest.RunOptions{
		Repository: "mariadb",
		Tag:        "10.11",
		Env:        []string{"MARIADB_ROOT_PASSWORD=" + rootPassword},
	}, "3306/tcp", func(port string) error {
		db, err := sql.Open("mysql", fmt.Sprintf("root:%s@(localhost:%s)/mysql", rootPassword, port))
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return db.Ping()
	})
	if err != nil {
		return nil, err
	}

	ci.Addr = fmt.Sprintf("root:%s@(localhost:%s)/showcase?parseTime=true", rootPassword, port)
	return ci, nil
}

func StartRedisContainer() (*ContainerInfo, error) {
	ci, port, err := startContainer(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7",
	}, "6379/tcp", func(port string) error {
		rdb := redis.NewClient(&redis.Options{Addr: "localhost:" + port})
		defer func() { _ = rdb.Close() }()
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return rdb.Ping(ctx).Err()
	})
	if err != nil {
		return nil, err
	}

	ci.Addr = "localhost:" + port
	return ci, nil
}

// MinIOContainerInfo carries the service storage and a raw client used to
// reset buckets between tests.
type MinIOContainerInfo struct {
	ContainerInfo
	Strg   *storage.MinioStorage
	Client *minio.Client
}

// NewMinIOClients builds both the service storage and a raw client.
func NewMinIOClients(endpoint, accessKey, secretKey string, useSSL bool) (*storage.MinioStorage, *minio.Client, error) {
	strg, err := storage.NewMinioStorage(endpoint, accessKey, secretKey, useSSL)
	if err != nil {
		return nil, nil, fmt.Errorf("could not create minio storage: %w", err)
	}
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("could not create minio client: %w", err)
	}
	return strg, client, nil
}

func StartMinIOContainer() (*MinIOContainerInfo, error) {
	const (
		rootUser     = "minioadmin"
		rootPassword = "minioadmin"
	)

	var strg *storage.MinioStorage
	var client *minio.Client
	ci, port, err := startContainer(&dockertest.RunOptions{
		Repository: "minio/minio",
		Tag:        "latest",
		Env: []string{
			"MINIO_ROOT_USER=" + rootUser,
			"MINIO_ROOT_PASSWORD=" + rootPassword,
		},
		Cmd: []string{"server", "/data"},
	}, "9000/tcp", func(port string) error {
		var err error
		strg, client, err = NewMinIOClients("localhost:"+port, rootUser, rootPassword, false)
		if err != nil {
			return err
		}
		// ListBuckets is a light operation to check health
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_, err = client.ListBuckets(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	ci.Addr = "localhost:" + port
	return &MinIOContainerInfo{ContainerInfo: *ci, Strg: strg, Client: client}, nil
}
