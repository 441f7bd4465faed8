package testutil

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
)

const (
	StagingBucket = "staging"
	GalleryBucket = "gallery"
)

// SetupTestBuckets recreates the staging and gallery buckets empty. The
// returned func empties and drops them again.
func SetupTestBuckets(client *minio.Client) (func() error, error) {
	buckets := []string{StagingBucket, GalleryBucket}
	ctx := context.Background()

	for _, b := range buckets {
		emptyBucket(ctx, client, b)
		_ = client.RemoveBucket(ctx, b)
		if err := client.MakeBucket(ctx, b, minio.MakeBucketOptions{}); err != nil {
			exists, err2 := client.BucketExists(ctx, b)
			if err2 != nil || !exists {
				return nil, fmt.Errorf("could not create bucket %q: %w", b, err)
			}
		}
	}

	cleanup := func() error {
		for _, b := range buckets {
			emptyBucket(ctx, client, b)
			if err := client.RemoveBucket(ctx, b); err != nil {
				return fmt.Errorf("could not remove bucket %q: %w", b, err)
			}
		}
		return nil
	}

	return cleanup, nil
}

func emptyBucket(ctx context.Context, client *minio.Client, bucket string) {
	for obj := range client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Recursive: true}) {
		if obj.Err != nil {
			continue
		}
		_ = client.RemoveObject(ctx, bucket, obj.Key, minio.RemoveObjectOptions{})
	}
}
