package appdata

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	httpClient "github.com/iudanet/kodrf/internal/client/api"
	"github.com/iudanet/kodrf/internal/client/session"
	"github.com/iudanet/kodrf/internal/client/storage"
	"github.com/iudanet/kodrf/internal/models"
)

// State стадия жизненного цикла кэша
type State int

const (
	StateUninitialized State = iota
	StateCacheLoaded
	StateReconciling
	StateReady
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateCacheLoaded:
		return "cache-loaded"
	case StateReconciling:
		return "reconciling"
	case StateReady:
		return "ready"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Cache единственный владелец токена, профиля и списка компаний в процессе.
// Данные из кэша на диске показываются сразу, затем сверяются с сервером.
type Cache struct {
	apiClient httpClient.ClientAPI
	sessions  *session.Store
	snapshots storage.SnapshotStorage
	logger    *slog.Logger

	mu        sync.RWMutex
	state     State
	session   models.Session
	person    *models.Person
	companies []models.Company
	// generation растёт при каждой смене токена; fetch, начатый при старом токене, не коммитится
	generation uint64
	// started номер последнего начатого fetch, committed номер последнего закоммиченного.
	// fetch, начатый раньше уже закоммиченного, не коммитится.
	started   uint64
	committed uint64
	inflight  int
	fresh     bool

	// snapshotMu упорядочивает запись и удаление снимка на диске
	snapshotMu sync.Mutex
	background sync.WaitGroup
}

// NewCache creates a new App Data Cache
func NewCache(apiClient httpClient.ClientAPI, sessions *session.Store, snapshots storage.SnapshotStorage, logger *slog.Logger) *Cache {
	return &Cache{
		apiClient: apiClient,
		sessions:  sessions,
		snapshots: snapshots,
		logger:    logger,
		state:     StateUninitialized,
		companies: []models.Company{},
	}
}

// Init читает сохранённую сессию и снимок профиля, затем запускает сверку в фоне.
// Без токена кэш сразу готов в состоянии "не авторизован".
func (c *Cache) Init(ctx context.Context) {
	sess, ok := c.sessions.Read(ctx)

	var snapshot storage.Snapshot
	if ok {
		var err error
		snapshot, err = c.snapshots.GetSnapshot(ctx)
		if err != nil && !errors.Is(err, storage.ErrSnapshotNotFound) {
			c.logger.Warn("Failed to read cached profile", "error", err)
		}
	}

	c.mu.Lock()
	c.generation++
	gen := c.generation
	c.session = sess
	c.person = snapshot.Person
	c.companies = normalize(snapshot.Companies)
	c.fresh = false
	if !ok {
		c.state = StateReady
		c.mu.Unlock()
		return
	}
	c.state = StateCacheLoaded
	c.mu.Unlock()

	c.background.Go(func() {
		c.fetch(ctx, sess.Token, gen)
	})
}

// Wait дожидается фоновой сверки, запущенной Init
func (c *Cache) Wait() {
	c.background.Wait()
}

// FetchPersonAndCompanies загружает профиль и компании параллельно.
// Пустой токен означает выход: профиль сбрасывается без сетевых запросов.
// Коммит всё-или-ничего; ошибки логируются и не возвращаются, прежние данные остаются.
func (c *Cache) FetchPersonAndCompanies(ctx context.Context, token string) {
	c.mu.RLock()
	gen := c.generation
	c.mu.RUnlock()
	c.fetch(ctx, token, gen)
}

// fetch коммитит результат только если поколение токена не сменилось с момента gen
func (c *Cache) fetch(ctx context.Context, token string, gen uint64) {
	if token == "" {
		c.mu.Lock()
		c.generation++
		c.person = nil
		c.companies = []models.Company{}
		c.fresh = true
		if c.inflight == 0 {
			c.state = StateReady
		}
		c.mu.Unlock()
		return
	}

	c.mu.Lock()
	c.inflight++
	c.started++
	seq := c.started
	c.state = StateReconciling
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.inflight--
		if c.inflight == 0 {
			c.state = StateReady
		}
		c.mu.Unlock()
	}()

	var (
		person    *models.Person
		companies []models.Company
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := c.apiClient.GetPerson(gctx, token)
		if err != nil {
			return fmt.Errorf("failed to get person: %w", err)
		}
		person = p
		return nil
	})
	g.Go(func() error {
		list, err := c.apiClient.GetCompanies(gctx, token)
		if err != nil {
			return fmt.Errorf("failed to get companies: %w", err)
		}
		companies = list
		return nil
	})

	if err := g.Wait(); err != nil {
		c.logger.Warn("Failed to refresh profile, keeping cached data", "error", err)
		return
	}

	companies = normalize(companies)

	c.mu.Lock()
	if gen != c.generation {
		c.mu.Unlock()
		c.logger.Debug("Token changed during refresh, result dropped")
		return
	}
	if seq < c.committed {
		c.mu.Unlock()
		c.logger.Debug("Newer refresh already committed, result dropped")
		return
	}
	c.committed = seq
	c.person = person
	c.companies = companies
	c.fresh = true
	c.mu.Unlock()

	c.saveSnapshot(ctx, gen, seq, storage.Snapshot{Person: person, Companies: companies})
}

// saveSnapshot пишет снимок, только если за время записи не сменился токен
// и не закоммичен более новый fetch
func (c *Cache) saveSnapshot(ctx context.Context, gen, seq uint64, snapshot storage.Snapshot) {
	c.snapshotMu.Lock()
	defer c.snapshotMu.Unlock()

	c.mu.RLock()
	current := gen == c.generation && seq == c.committed
	c.mu.RUnlock()
	if !current {
		c.logger.Debug("Profile snapshot is outdated, not saved")
		return
	}

	if err := c.snapshots.SaveSnapshot(ctx, snapshot); err != nil {
		c.logger.Warn("Failed to save profile snapshot", "error", err)
	}
}

// SetJwt сохраняет (или очищает) сессию и сразу загружает профиль для неё
func (c *Cache) SetJwt(ctx context.Context, sess models.Session) error {
	if err := c.sessions.Write(ctx, sess); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	c.mu.Lock()
	c.generation++
	gen := c.generation
	c.session = sess
	c.fresh = false
	c.mu.Unlock()

	c.fetch(ctx, sess.Token, gen)
	return nil
}

// RefreshPersonAndCompanies повторяет загрузку с override токеном или текущим
func (c *Cache) RefreshPersonAndCompanies(ctx context.Context, override string) {
	token := override
	if token == "" {
		token = c.Token()
	}
	c.FetchPersonAndCompanies(ctx, token)
}

// Logout очищает сессию и сбрасывает профиль синхронно, без сети
func (c *Cache) Logout(ctx context.Context) error {
	c.mu.Lock()
	c.generation++
	c.session = models.Session{}
	c.person = nil
	c.companies = []models.Company{}
	c.fresh = true
	c.state = StateReady
	c.mu.Unlock()

	var errs []error
	if err := c.sessions.Clear(ctx); err != nil {
		errs = append(errs, err)
	}
	c.snapshotMu.Lock()
	if err := c.snapshots.DeleteSnapshot(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to delete profile snapshot: %w", err))
	}
	c.snapshotMu.Unlock()
	return errors.Join(errs...)
}

// Token текущий токен, пустая строка если не авторизован
func (c *Cache) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session.Token
}

// IsAdmin сообщает о наличии признака администратора
func (c *Cache) IsAdmin() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session.Admin != ""
}

// Person копия профиля или nil
func (c *Cache) Person() *models.Person {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.person == nil {
		return nil
	}
	p := *c.person
	p.Companies = slices.Clone(c.person.Companies)
	return &p
}

// Companies копия списка компаний, никогда не nil
func (c *Cache) Companies() []models.Company {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return normalize(slices.Clone(c.companies))
}

func (c *Cache) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Loading true пока идёт хотя бы одна сверка
func (c *Cache) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.inflight > 0
}

// Fresh true если данные получены от сервера для текущего токена, а не из снимка
func (c *Cache) Fresh() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fresh
}

func normalize(companies []models.Company) []models.Company {
	if companies == nil {
		return []models.Company{}
	}
	return companies
}
