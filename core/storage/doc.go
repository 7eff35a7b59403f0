// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to archive snapshots of the URL lists written
// to the KV namespace. Both AWS S3 and self-hosted MinIO are supported.
//
// # Client Interface
//
// The Client interface exposes only the operations the archive needs, making it
// easy to mock storage interactions in unit tests (see core/storage/mocks).
//
//   - BucketExists: Verifies access to the target bucket.
//   - MakeBucket: Creates the bucket on first use.
//   - PutObject: Uploads a snapshot.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
