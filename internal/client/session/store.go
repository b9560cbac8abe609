package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/kodrf/internal/client/storage"
	"github.com/iudanet/kodrf/internal/models"
)

// Store единственная точка доступа к сохранённому токену.
// Остальные компоненты не обращаются к хранилищу сессии напрямую.
type Store struct {
	storage storage.SessionStorage
	logger  *slog.Logger
}

// NewStore creates a new session store over the given storage
func NewStore(storage storage.SessionStorage, logger *slog.Logger) *Store {
	return &Store{
		storage: storage,
		logger:  logger,
	}
}

// Read возвращает сохранённую сессию.
// Ошибка хранилища не возвращается: сессия считается отсутствующей, ошибка логируется.
func (s *Store) Read(ctx context.Context) (models.Session, bool) {
	session, err := s.storage.GetSession(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrTokenNotFound) {
			s.logger.Warn("Failed to read session", "error", err)
		}
		return models.Session{}, false
	}
	if !session.Authenticated() {
		return models.Session{}, false
	}
	return session, true
}

// Write сохраняет сессию, перезаписывая предыдущую
func (s *Store) Write(ctx context.Context, session models.Session) error {
	if !session.Authenticated() {
		return s.Clear(ctx)
	}
	if err := s.storage.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Clear удаляет токен и признак администратора
func (s *Store) Clear(ctx context.Context) error {
	if err := s.storage.DeleteSession(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
