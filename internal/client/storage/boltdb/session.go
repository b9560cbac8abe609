package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/kodrf/internal/client/storage"
	"github.com/iudanet/kodrf/internal/models"
)

var (
	keyToken = []byte("jwt")
	keyAdmin = []byte("admin")
)

// SaveSession stores token and admin marker
func (s *Storage) SaveSession(ctx context.Context, session models.Session) error {
	return s.update(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketSession)
		if err != nil {
			return err
		}

		if err := b.Put(keyToken, []byte(session.Token)); err != nil {
			return fmt.Errorf("failed to save token: %w", err)
		}

		// Пустой admin удаляет маркер от предыдущей сессии
		if session.Admin == "" {
			if err := b.Delete(keyAdmin); err != nil {
				return fmt.Errorf("failed to delete admin marker: %w", err)
			}
			return nil
		}
		if err := b.Put(keyAdmin, []byte(session.Admin)); err != nil {
			return fmt.Errorf("failed to save admin marker: %w", err)
		}

		return nil
	})
}

// GetSession retrieves stored session
func (s *Storage) GetSession(ctx context.Context) (models.Session, error) {
	var session models.Session

	err := s.view(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketSession)
		if err != nil {
			return err
		}

		token := b.Get(keyToken)
		if len(token) == 0 {
			return storage.ErrTokenNotFound
		}

		// Значения bbolt валидны только внутри транзакции, копируем через string()
		session.Token = string(token)
		session.Admin = string(b.Get(keyAdmin))
		return nil
	})
	if err != nil {
		return models.Session{}, err
	}

	return session, nil
}

// DeleteSession removes token and admin marker
func (s *Storage) DeleteSession(ctx context.Context) error {
	return s.update(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketSession)
		if err != nil {
			return err
		}

		for _, key := range [][]byte{keyToken, keyAdmin} {
			if err := b.Delete(key); err != nil {
				return fmt.Errorf("failed to delete %s: %w", key, err)
			}
		}
		return nil
	})
}
