package urlsync

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strconv"
	"sync/atomic"
	"time"

	"sitemap-sync/core/reconcile"
	"sitemap-sync/core/storage"

	"github.com/goccy/go-json"
	"github.com/minio/minio-go/v7"
)

// Archiver keeps a copy of every URL list written to the store.
type Archiver interface {
	Save(ctx context.Context, metadata reconcile.SyncMetadata, urls []string) (string, error)
}

// Snapshot is the document uploaded for each write.
type Snapshot struct {
	Metadata reconcile.SyncMetadata `json:"metadata"`
	URLs     []string               `json:"urls"`
}

// Archive uploads snapshots to an object storage bucket.
type Archive struct {
	client storage.Client
	bucket string
	prefix string
	now    func() time.Time
	ready  atomic.Bool
}

// NewArchive creates an archive writing to bucket under prefix.
func NewArchive(client storage.Client, bucket, prefix string) *Archive {
	return &Archive{
		client: client,
		bucket: bucket,
		prefix: prefix,
		now:    time.Now,
	}
}

// Save uploads {metadata, urls} and returns the object key.
// The bucket is created the first time it is found missing.
func (a *Archive) Save(ctx context.Context, metadata reconcile.SyncMetadata, urls []string) (string, error) {
	if err := a.ensureBucket(ctx); err != nil {
		return "", err
	}

	if urls == nil {
		urls = []string{}
	}
	body, err := json.Marshal(Snapshot{Metadata: metadata, URLs: urls})
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}

	key := path.Join(a.prefix, strconv.FormatInt(a.now().UnixNano(), 10)+"-"+metadata.URLsHash+".json")
	_, err = a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload snapshot %s: %w", key, err)
	}
	return key, nil
}

func (a *Archive) ensureBucket(ctx context.Context) error {
	if a.ready.Load() {
		return nil
	}

	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", a.bucket, err)
	}
	if !exists {
		if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", a.bucket, err)
		}
	}

	a.ready.Store(true)
	return nil
}
