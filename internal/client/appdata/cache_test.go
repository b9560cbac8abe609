package appdata

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/iudanet/kodrf/internal/client/api"
	"github.com/iudanet/kodrf/internal/client/session"
	"github.com/iudanet/kodrf/internal/client/storage"
	"github.com/iudanet/kodrf/internal/client/storage/boltdb"
	"github.com/iudanet/kodrf/internal/models"
)

type fixture struct {
	api   *httpClient.ClientAPIMock
	db    *boltdb.Storage
	cache *Cache
}

// профиль и компании зависят от токена, чтобы было видно, каким токеном они получены
func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	apiMock := &httpClient.ClientAPIMock{
		GetPersonFunc: func(ctx context.Context, token string) (*models.Person, error) {
			return &models.Person{Name: "person-" + token}, nil
		},
		GetCompaniesFunc: func(ctx context.Context, token string) ([]models.Company, error) {
			return []models.Company{{Name: "company-" + token, INN: "7707083893"}}, nil
		},
	}

	return &fixture{
		api:   apiMock,
		db:    db,
		cache: NewCache(apiMock, session.NewStore(db, logger), db, logger),
	}
}

func (f *fixture) networkCalls() int {
	return len(f.api.GetPersonCalls()) + len(f.api.GetCompaniesCalls())
}

func TestCache_InitWithoutToken(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, StateUninitialized, f.cache.State())

	f.cache.Init(context.Background())
	f.cache.Wait()

	assert.Equal(t, StateReady, f.cache.State())
	assert.Empty(t, f.cache.Token())
	assert.Nil(t, f.cache.Person())
	assert.NotNil(t, f.cache.Companies())
	assert.Empty(t, f.cache.Companies())
	assert.Zero(t, f.networkCalls())
}

func TestCache_InitFromSnapshotThenReconcile(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.db.SaveSession(ctx, models.Session{Token: "tok", Admin: "1"}))
	require.NoError(t, f.db.SaveSnapshot(ctx, storage.Snapshot{
		Person:    &models.Person{Name: "cached"},
		Companies: []models.Company{{Name: "cached-company"}},
	}))

	release := make(chan struct{})
	f.api.GetPersonFunc = func(ctx context.Context, token string) (*models.Person, error) {
		<-release
		return &models.Person{Name: "person-" + token}, nil
	}

	f.cache.Init(ctx)

	// Сразу после Init видны данные из снимка
	assert.Equal(t, "cached", f.cache.Person().Name)
	assert.Equal(t, "cached-company", f.cache.Companies()[0].Name)
	assert.True(t, f.cache.IsAdmin())
	assert.False(t, f.cache.Fresh())

	close(release)
	f.cache.Wait()

	assert.Equal(t, StateReady, f.cache.State())
	assert.False(t, f.cache.Loading())
	assert.True(t, f.cache.Fresh())
	assert.Equal(t, "person-tok", f.cache.Person().Name)
	assert.Equal(t, "company-tok", f.cache.Companies()[0].Name)

	// Снимок перезаписан свежими данными
	snapshot, err := f.db.GetSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "person-tok", snapshot.Person.Name)
}

func TestCache_FetchFailureKeepsPreviousData(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.cache.SetJwt(ctx, models.Session{Token: "tok"}))
	require.Equal(t, "person-tok", f.cache.Person().Name)

	// Профиль приходит, а компании нет: коммит всё-или-ничего
	f.api.GetPersonFunc = func(ctx context.Context, token string) (*models.Person, error) {
		return &models.Person{Name: "new"}, nil
	}
	f.api.GetCompaniesFunc = func(ctx context.Context, token string) ([]models.Company, error) {
		return nil, errors.New("connection refused")
	}

	f.cache.RefreshPersonAndCompanies(ctx, "")

	assert.Equal(t, "person-tok", f.cache.Person().Name)
	assert.Equal(t, "company-tok", f.cache.Companies()[0].Name)
	assert.Equal(t, StateReady, f.cache.State())
}

func TestCache_SetJwtFetchesWithThatToken(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.cache.Init(ctx)

	require.NoError(t, f.cache.SetJwt(ctx, models.Session{Token: "first"}))
	require.NoError(t, f.cache.SetJwt(ctx, models.Session{Token: "second"}))

	assert.Equal(t, "second", f.cache.Token())
	assert.Equal(t, "person-second", f.cache.Person().Name)
	assert.Equal(t, "company-second", f.cache.Companies()[0].Name)

	for _, call := range f.api.GetPersonCalls() {
		assert.Contains(t, []string{"first", "second"}, call.Token)
	}

	stored, err := f.db.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", stored.Token)
}

// Медленный ответ для старого токена не перетирает профиль нового
func TestCache_StaleFetchDropped(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	started := make(chan struct{})
	release := make(chan struct{})
	f.api.GetPersonFunc = func(ctx context.Context, token string) (*models.Person, error) {
		if token == "old" {
			close(started)
			<-release
		}
		return &models.Person{Name: "person-" + token}, nil
	}

	var wg sync.WaitGroup
	wg.Go(func() {
		assert.NoError(t, f.cache.SetJwt(ctx, models.Session{Token: "old"}))
	})

	<-started
	require.NoError(t, f.cache.SetJwt(ctx, models.Session{Token: "new"}))
	close(release)
	wg.Wait()

	assert.Equal(t, "new", f.cache.Token())
	assert.Equal(t, "person-new", f.cache.Person().Name)
	assert.Equal(t, "company-new", f.cache.Companies()[0].Name)
}

// Сверка при старте, завершившаяся после обновления с тем же токеном, не должна
// перезаписать более свежий список компаний ни в памяти, ни на диске
func TestCache_OlderFetchWithSameTokenDropped(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.db.SaveSession(ctx, models.Session{Token: "tok"}))

	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})
	f.api.GetCompaniesFunc = func(ctx context.Context, token string) ([]models.Company, error) {
		if calls.Add(1) == 1 {
			close(started)
			<-release
			return []models.Company{}, nil
		}
		return []models.Company{{Name: "new-co", INN: "7707083893"}}, nil
	}

	f.cache.Init(ctx)
	<-started
	f.cache.RefreshPersonAndCompanies(ctx, "")
	close(release)
	f.cache.Wait()

	require.Len(t, f.cache.Companies(), 1)
	assert.Equal(t, "new-co", f.cache.Companies()[0].Name)

	snapshot, err := f.db.GetSnapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snapshot.Companies, 1)
	assert.Equal(t, "new-co", snapshot.Companies[0].Name)
}

// Снимок, запись которого застала выход, не должен остаться на диске
func TestCache_LogoutDuringSnapshotWrite(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	saving := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	snapshots := &storage.SnapshotStorageMock{
		SaveSnapshotFunc: func(ctx context.Context, snapshot storage.Snapshot) error {
			once.Do(func() {
				close(saving)
				<-release
			})
			return f.db.SaveSnapshot(ctx, snapshot)
		},
		GetSnapshotFunc:    f.db.GetSnapshot,
		DeleteSnapshotFunc: f.db.DeleteSnapshot,
	}
	cache := NewCache(f.api, session.NewStore(f.db, logger), snapshots, logger)

	var wg sync.WaitGroup
	wg.Go(func() {
		assert.NoError(t, cache.SetJwt(ctx, models.Session{Token: "alice"}))
	})
	<-saving

	wg.Go(func() {
		assert.NoError(t, cache.Logout(ctx))
	})
	require.Eventually(t, func() bool { return cache.Token() == "" }, time.Second, time.Millisecond)
	close(release)
	wg.Wait()

	_, err := f.db.GetSnapshot(ctx)
	require.ErrorIs(t, err, storage.ErrSnapshotNotFound)
	assert.Nil(t, cache.Person())
	assert.Empty(t, cache.Companies())
}

func TestCache_RefreshWithOverride(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.cache.SetJwt(ctx, models.Session{Token: "held"}))

	f.cache.RefreshPersonAndCompanies(ctx, "override")

	calls := f.api.GetPersonCalls()
	require.NotEmpty(t, calls)
	assert.Equal(t, "override", calls[len(calls)-1].Token)
	assert.Equal(t, "person-override", f.cache.Person().Name)
}

func TestCache_EmptyTokenNoNetwork(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.cache.FetchPersonAndCompanies(ctx, "")

	assert.Zero(t, f.networkCalls())
	assert.Nil(t, f.cache.Person())
	assert.Empty(t, f.cache.Companies())
}

func TestCache_Logout(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.cache.SetJwt(ctx, models.Session{Token: "tok", Admin: "1"}))
	callsBefore := f.networkCalls()

	require.NoError(t, f.cache.Logout(ctx))

	assert.Equal(t, callsBefore, f.networkCalls())
	assert.Empty(t, f.cache.Token())
	assert.False(t, f.cache.IsAdmin())
	assert.Nil(t, f.cache.Person())
	assert.NotNil(t, f.cache.Companies())
	assert.Empty(t, f.cache.Companies())
	assert.Equal(t, StateReady, f.cache.State())

	_, err := f.db.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)
	_, err = f.db.GetSnapshot(ctx)
	assert.ErrorIs(t, err, storage.ErrSnapshotNotFound)
}

func TestCache_NilCompaniesNormalized(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.api.GetCompaniesFunc = func(ctx context.Context, token string) ([]models.Company, error) {
		return nil, nil
	}
	f.api.GetPersonFunc = func(ctx context.Context, token string) (*models.Person, error) {
		return nil, nil
	}

	require.NoError(t, f.cache.SetJwt(ctx, models.Session{Token: "tok"}))

	assert.Nil(t, f.cache.Person())
	assert.NotNil(t, f.cache.Companies())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "cache-loaded", StateCacheLoaded.String())
	assert.Equal(t, "State(9)", State(9).String())
}
