package boltdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/kodrf/internal/client/storage"
	"github.com/iudanet/kodrf/internal/models"
)

func TestStorage_SaveGetDeleteSession(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	// Проверяем что GetSession до сохранения выдаст ErrTokenNotFound
	_, err := store.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)

	err = store.SaveSession(ctx, models.Session{Token: "token-1", Admin: "admin"})
	require.NoError(t, err)

	got, err := store.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-1", got.Token)
	assert.Equal(t, "admin", got.Admin)

	// Перезапись без admin убирает старый маркер
	err = store.SaveSession(ctx, models.Session{Token: "token-2"})
	require.NoError(t, err)

	got, err = store.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-2", got.Token)
	assert.Empty(t, got.Admin)

	require.NoError(t, store.DeleteSession(ctx))
	_, err = store.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)

	// Удаление отсутствующей сессии не ошибка
	assert.NoError(t, store.DeleteSession(ctx))
}

func TestStorage_SaveSession_EmptyToken(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	require.NoError(t, store.SaveSession(ctx, models.Session{Token: ""}))

	// Пустой токен считается отсутствующим
	_, err := store.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)
}
