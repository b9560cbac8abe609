package storage

import "errors"

// Common client storage errors
var (
	// ErrTokenNotFound indicates that no session token is stored
	ErrTokenNotFound = errors.New("session token not found")

	// ErrSnapshotNotFound indicates that no cached Person/Companies snapshot exists
	ErrSnapshotNotFound = errors.New("cached snapshot not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
