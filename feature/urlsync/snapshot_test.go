package urlsync

import (
	"context"
	"encoding/json"
	"io"
	"testing"

	"sitemap-sync/core/reconcile"
	"sitemap-sync/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestArchive(client *mocks.Client) *Archive {
	a := NewArchive(client, "sitemap-sync", "snapshots")
	a.now = clock
	return a
}

func TestArchive_Save(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "sitemap-sync").Return(true, nil).Once()

	var uploaded Snapshot
	client.On("PutObject", mock.Anything, "sitemap-sync", "snapshots/1714564800000000000-abc.json",
		mock.Anything,
		mock.AnythingOfType("int64"),
		mock.MatchedBy(func(opts minio.PutObjectOptions) bool { return opts.ContentType == "application/json" }),
	).Run(func(args mock.Arguments) {
		uploaded = Snapshot{}
		require.NoError(t, json.NewDecoder(args.Get(3).(io.Reader)).Decode(&uploaded))
	}).Return(minio.UploadInfo{}, nil).Twice()

	archive := newTestArchive(client)
	md := reconcile.SyncMetadata{URLsCount: 2, URLsHash: "abc"}

	key, err := archive.Save(context.Background(), md, []string{"/a/", "/b/"})
	require.NoError(t, err)
	assert.Equal(t, "snapshots/1714564800000000000-abc.json", key)
	assert.Equal(t, md, uploaded.Metadata)
	assert.Equal(t, []string{"/a/", "/b/"}, uploaded.URLs)

	// The bucket is only checked once.
	_, err = archive.Save(context.Background(), md, []string{"/a/", "/b/"})
	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestArchive_CreatesBucket(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "sitemap-sync").Return(false, nil).Once()
	client.On("MakeBucket", mock.Anything, "sitemap-sync", mock.Anything).Return(nil).Once()
	client.On("PutObject", mock.Anything, "sitemap-sync", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	_, err := newTestArchive(client).Save(context.Background(), reconcile.SyncMetadata{URLsHash: "abc"}, nil)
	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestArchive_Errors(t *testing.T) {
	t.Run("Bucket Check", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "sitemap-sync").Return(false, assert.AnError)

		_, err := newTestArchive(client).Save(context.Background(), reconcile.SyncMetadata{}, nil)
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("Upload", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "sitemap-sync").Return(true, nil)
		client.On("PutObject", mock.Anything, "sitemap-sync", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, assert.AnError)

		_, err := newTestArchive(client).Save(context.Background(), reconcile.SyncMetadata{URLsHash: "abc"}, nil)
		assert.ErrorIs(t, err, assert.AnError)
	})
}
