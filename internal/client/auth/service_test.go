package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/iudanet/kodrf/internal/client/api"
	"github.com/iudanet/kodrf/internal/models"
	"github.com/iudanet/kodrf/pkg/api"
)

type recordingSetter struct {
	sessions []models.Session
	err      error
}

func (r *recordingSetter) SetJwt(ctx context.Context, session models.Session) error {
	r.sessions = append(r.sessions, session)
	return r.err
}

func newTestService(apiMock *httpClient.ClientAPIMock, setter *recordingSetter) *Service {
	return NewService(apiMock, setter, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestService_Login(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    models.Session
	}{
		{name: "token only", content: "jwt-token", want: models.Session{Token: "jwt-token"}},
		{name: "token with admin", content: "jwt-token*admin", want: models.Session{Token: "jwt-token", Admin: "admin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiMock := &httpClient.ClientAPIMock{
				LoginFunc: func(ctx context.Context, req api.AuthRequest) (*api.AuthResponse, error) {
					assert.Equal(t, "seller@example.com", req.Email)
					assert.Equal(t, "secret", req.Password)
					return &api.AuthResponse{Header: "ok", Content: tt.content}, nil
				},
			}
			setter := &recordingSetter{}

			session, err := newTestService(apiMock, setter).Login(context.Background(), " seller@example.com ", "secret")

			require.NoError(t, err)
			assert.Equal(t, tt.want, session)
			assert.Equal(t, []models.Session{tt.want}, setter.sessions)
		})
	}
}

func TestService_LoginRejected(t *testing.T) {
	apiMock := &httpClient.ClientAPIMock{
		LoginFunc: func(ctx context.Context, req api.AuthRequest) (*api.AuthResponse, error) {
			return &api.AuthResponse{Header: api.HeaderError, Content: "Неверный пароль"}, nil
		},
	}
	setter := &recordingSetter{}

	_, err := newTestService(apiMock, setter).Login(context.Background(), "a@b.ru", "bad")

	assert.ErrorIs(t, err, ErrRejected)
	var rejected *RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, "Неверный пароль", rejected.Error())
	assert.Empty(t, setter.sessions)
}

func TestService_LoginLocalChecks(t *testing.T) {
	apiMock := &httpClient.ClientAPIMock{}
	svc := newTestService(apiMock, &recordingSetter{})

	_, err := svc.Login(context.Background(), "", "secret")
	assert.Error(t, err)

	_, err = svc.Login(context.Background(), "not-an-email", "secret")
	assert.Error(t, err)

	_, err = svc.Login(context.Background(), "a@b.ru", "")
	assert.Error(t, err)

	assert.Empty(t, apiMock.LoginCalls())
}

func TestService_LoginTransportError(t *testing.T) {
	apiMock := &httpClient.ClientAPIMock{
		LoginFunc: func(ctx context.Context, req api.AuthRequest) (*api.AuthResponse, error) {
			return nil, errors.New("dial tcp: connection refused")
		},
	}

	_, err := newTestService(apiMock, &recordingSetter{}).Login(context.Background(), "a@b.ru", "p")
	assert.ErrorIs(t, err, ErrRequestFailed)
}

func TestService_LoginEmptyToken(t *testing.T) {
	apiMock := &httpClient.ClientAPIMock{
		LoginFunc: func(ctx context.Context, req api.AuthRequest) (*api.AuthResponse, error) {
			return &api.AuthResponse{Content: "*admin"}, nil
		},
	}
	setter := &recordingSetter{}

	_, err := newTestService(apiMock, setter).Login(context.Background(), "a@b.ru", "p")
	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.Empty(t, setter.sessions)
}

func TestService_Register(t *testing.T) {
	apiMock := &httpClient.ClientAPIMock{
		RegisterFunc: func(ctx context.Context, req api.AuthRequest) (*api.AuthResponse, error) {
			assert.Equal(t, "Иван Петров", req.Name)
			return &api.AuthResponse{Content: "new-token"}, nil
		},
	}
	setter := &recordingSetter{}
	svc := newTestService(apiMock, setter)

	session, err := svc.Register(context.Background(), "Иван Петров", "a@b.ru", "p")
	require.NoError(t, err)
	assert.Equal(t, "new-token", session.Token)

	// Имя обязательно при регистрации
	_, err = svc.Register(context.Background(), "", "a@b.ru", "p")
	assert.Error(t, err)
	_, err = svc.Register(context.Background(), "R2D2", "a@b.ru", "p")
	assert.Error(t, err)
	assert.Len(t, apiMock.RegisterCalls(), 1)
}

func TestService_SetJwtError(t *testing.T) {
	apiMock := &httpClient.ClientAPIMock{
		LoginFunc: func(ctx context.Context, req api.AuthRequest) (*api.AuthResponse, error) {
			return &api.AuthResponse{Content: "tok"}, nil
		},
	}
	setter := &recordingSetter{err: errors.New("storage is closed")}

	_, err := newTestService(apiMock, setter).Login(context.Background(), "a@b.ru", "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save session")
}
