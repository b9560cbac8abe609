package storage

import (
	"context"

	"github.com/iudanet/kodrf/internal/models"
)

//go:generate moq -out snapshot_mock.go . SnapshotStorage

// Snapshot is the cached profile used for fast cold start
type Snapshot struct {
	Person    *models.Person
	Companies []models.Company
}

// SnapshotStorage defines interface for the Person/Companies cache
type SnapshotStorage interface {
	// SaveSnapshot overwrites both cached values in one transaction (last writer wins)
	SaveSnapshot(ctx context.Context, snapshot Snapshot) error

	// GetSnapshot returns the cached values.
	// Returns ErrSnapshotNotFound if nothing was cached yet
	GetSnapshot(ctx context.Context) (Snapshot, error)

	// DeleteSnapshot removes cached values
	DeleteSnapshot(ctx context.Context) error
}
