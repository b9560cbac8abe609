package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	httpClient "github.com/iudanet/kodrf/internal/client/api"
	"github.com/iudanet/kodrf/internal/models"
	"github.com/iudanet/kodrf/internal/validation"
	"github.com/iudanet/kodrf/pkg/api"
)

var (
	// ErrRejected сервер отклонил вход или регистрацию (header == "error")
	ErrRejected = errors.New("rejected by server")

	// ErrRequestFailed сетевая ошибка или неразборчивый ответ; причина в логе
	ErrRequestFailed = errors.New("authentication request failed")
)

// RejectedError отказ сервера с текстом для пользователя
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return ErrRejected.Error()
	}
	return e.Message
}

func (e *RejectedError) Is(target error) bool {
	return target == ErrRejected
}

// SessionSetter принимает новую сессию; обычно appdata.Cache
type SessionSetter interface {
	SetJwt(ctx context.Context, session models.Session) error
}

// Service вход и регистрация
type Service struct {
	apiClient httpClient.ClientAPI
	sessions  SessionSetter
	logger    *slog.Logger
}

// NewService создает новый сервис авторизации
func NewService(apiClient httpClient.ClientAPI, sessions SessionSetter, logger *slog.Logger) *Service {
	return &Service{
		apiClient: apiClient,
		sessions:  sessions,
		logger:    logger,
	}
}

// Login выполняет вход по email и паролю
func (s *Service) Login(ctx context.Context, email, password string) (models.Session, error) {
	email = strings.TrimSpace(email)
	if err := validation.ValidateEmail(email); err != nil {
		return models.Session{}, fmt.Errorf("invalid email: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return models.Session{}, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.apiClient.Login(ctx, api.AuthRequest{Email: email, Password: password})
	if err != nil {
		s.logger.Error("Login request failed", "error", err)
		return models.Session{}, ErrRequestFailed
	}

	return s.accept(ctx, resp)
}

// Register регистрирует пользователя и сразу входит
func (s *Service) Register(ctx context.Context, name, email, password string) (models.Session, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if err := validation.ValidateName(name); err != nil {
		return models.Session{}, fmt.Errorf("invalid name: %w", err)
	}
	if err := validation.ValidateEmail(email); err != nil {
		return models.Session{}, fmt.Errorf("invalid email: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return models.Session{}, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.apiClient.Register(ctx, api.AuthRequest{Name: name, Email: email, Password: password})
	if err != nil {
		s.logger.Error("Registration request failed", "error", err)
		return models.Session{}, ErrRequestFailed
	}

	return s.accept(ctx, resp)
}

// accept разбирает ответ авторизации и передаёт сессию в кэш
func (s *Service) accept(ctx context.Context, resp *api.AuthResponse) (models.Session, error) {
	if resp == nil {
		s.logger.Error("Empty authentication response")
		return models.Session{}, ErrRequestFailed
	}
	if resp.Header == api.HeaderError {
		return models.Session{}, &RejectedError{Message: resp.Content}
	}

	session := models.ParseSessionContent(resp.Content)
	if !session.Authenticated() {
		s.logger.Error("Authentication response has no token")
		return models.Session{}, ErrRequestFailed
	}

	if err := s.sessions.SetJwt(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.Info("Authenticated", "admin", session.Admin != "")
	return session, nil
}
