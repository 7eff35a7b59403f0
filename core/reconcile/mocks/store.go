package mocks

import (
	"context"

	"sitemap-sync/core/reconcile"

	"github.com/stretchr/testify/mock"
)

// Store is a mock implementation of reconcile.Store
type Store struct {
	mock.Mock
}

func (m *Store) GetMetadata(ctx context.Context) (*reconcile.SyncMetadata, error) {
	args := m.Called(ctx)
	if md, ok := args.Get(0).(*reconcile.SyncMetadata); ok {
		return md, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) PutURLs(ctx context.Context, urls []string) error {
	args := m.Called(ctx, urls)
	return args.Error(0)
}

func (m *Store) PutMetadata(ctx context.Context, metadata reconcile.SyncMetadata) error {
	args := m.Called(ctx, metadata)
	return args.Error(0)
}
