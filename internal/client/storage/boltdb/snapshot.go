package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/kodrf/internal/client/storage"
	"github.com/iudanet/kodrf/internal/models"
)

var (
	keyPerson    = []byte("cached_person")
	keyCompanies = []byte("cached_companies")
)

// SaveSnapshot перезаписывает кэш профиля и компаний одной транзакцией
func (s *Storage) SaveSnapshot(ctx context.Context, snapshot storage.Snapshot) error {
	personData, err := json.Marshal(snapshot.Person)
	if err != nil {
		return fmt.Errorf("failed to marshal person: %w", err)
	}

	companies := snapshot.Companies
	if companies == nil {
		companies = []models.Company{}
	}
	companiesData, err := json.Marshal(companies)
	if err != nil {
		return fmt.Errorf("failed to marshal companies: %w", err)
	}

	return s.update(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketCache)
		if err != nil {
			return err
		}

		if err := b.Put(keyPerson, personData); err != nil {
			return fmt.Errorf("failed to save person: %w", err)
		}
		if err := b.Put(keyCompanies, companiesData); err != nil {
			return fmt.Errorf("failed to save companies: %w", err)
		}
		return nil
	})
}

// GetSnapshot возвращает закэшированные профиль и компании
func (s *Storage) GetSnapshot(ctx context.Context) (storage.Snapshot, error) {
	var snapshot storage.Snapshot

	err := s.view(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketCache)
		if err != nil {
			return err
		}

		personData := b.Get(keyPerson)
		companiesData := b.Get(keyCompanies)
		if personData == nil && companiesData == nil {
			return storage.ErrSnapshotNotFound
		}

		// Десериализуем; json.Unmarshal копирует данные, так что выход из транзакции безопасен
		if personData != nil {
			if err := json.Unmarshal(personData, &snapshot.Person); err != nil {
				return fmt.Errorf("failed to unmarshal person: %w", err)
			}
		}
		if companiesData != nil {
			if err := json.Unmarshal(companiesData, &snapshot.Companies); err != nil {
				return fmt.Errorf("failed to unmarshal companies: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return storage.Snapshot{}, err
	}

	if snapshot.Companies == nil {
		snapshot.Companies = []models.Company{}
	}
	return snapshot, nil
}

// DeleteSnapshot удаляет кэш
func (s *Storage) DeleteSnapshot(ctx context.Context) error {
	return s.update(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketCache)
		if err != nil {
			return err
		}

		for _, key := range [][]byte{keyPerson, keyCompanies} {
			if err := b.Delete(key); err != nil {
				return fmt.Errorf("failed to delete %s: %w", key, err)
			}
		}
		return nil
	})
}
