package storage

import (
	"context"

	"github.com/iudanet/kodrf/internal/models"
)

//go:generate moq -out session_mock.go . SessionStorage

// SessionStorage defines interface for storing the session token on client.
// This is the lowest storage layer: the token is opaque and stored as-is.
type SessionStorage interface {
	// SaveSession stores token and admin marker, overwriting prior values.
	// An empty admin marker removes a previously stored one.
	SaveSession(ctx context.Context, session models.Session) error

	// GetSession retrieves stored session.
	// Returns ErrTokenNotFound if no token exists
	GetSession(ctx context.Context) (models.Session, error)

	// DeleteSession removes token and admin marker (logout).
	// Deleting an absent session is not an error.
	DeleteSession(ctx context.Context) error
}
