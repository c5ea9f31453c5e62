// Package storage pushes database snapshots to Backblaze B2 for off-site
// backup. Nothing in the data core depends on it.
package storage

import (
	"context"
	"fmt"

	"github.com/kurin/blazer/b2"

	"github.com/harshitaS19/Student-Attendance-management-System/database"
)

type B2Storage struct {
	Client *b2.Client
	Bucket *b2.Bucket
}

func Init(ctx context.Context, accountId, appKey, bucketName string) (*B2Storage, error) {
	client, err := b2.NewClient(ctx, accountId, appKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create b2 client: %w", err)
	}

	bucket, err := client.Bucket(ctx, bucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to get bucket: %w", err)
	}

	return &B2Storage{Client: client, Bucket: bucket}, nil
}

// UploadSnapshot streams a consistent snapshot of the store to the bucket
// under key. The store stays usable while the snapshot is taken.
func (s *B2Storage) UploadSnapshot(ctx context.Context, key string, store *database.Store) error {
	obj := s.Bucket.Object(key)
	w := obj.NewWriter(ctx)

	if _, err := store.Snapshot(w); err != nil {
		w.Close()
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close writer: %w", err)
	}
	return nil
}
