package services

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/hikekeeper/internal/server/config"
	"github.com/dmitrijs2005/hikekeeper/internal/server/models"
	"github.com/dmitrijs2005/hikekeeper/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/hikekeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/hikekeeper/internal/server/repositories/trails"
	"github.com/dmitrijs2005/hikekeeper/internal/server/repositories/users"
)

// --- helpers ---

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:                   "k",
		AccessTokenValidityDuration: time.Hour,
		PasswordHashCost:            4, // bcrypt.MinCost
	}
}

type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func newManualClock(t time.Time) *manualClock { return &manualClock{now: t} }

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// fakeManager overrides selected parts of an otherwise in-memory manager.
type fakeManager struct {
	*repomanager.MemoryRepositoryManager
	users  users.Repository
	trails trails.Repository
	txErr  error
}

func newFakeManager() *fakeManager {
	return &fakeManager{MemoryRepositoryManager: repomanager.NewMemoryRepositoryManager()}
}

func (m *fakeManager) Users() users.Repository {
	if m.users != nil {
		return m.users
	}
	return m.MemoryRepositoryManager.Users()
}

func (m *fakeManager) Trails() trails.Repository {
	if m.trails != nil {
		return m.trails
	}
	return m.MemoryRepositoryManager.Trails()
}

func (m *fakeManager) Profiles() profiles.Repository { return m.MemoryRepositoryManager.Profiles() }

func (m *fakeManager) WithinTx(ctx context.Context, fn func(ctx context.Context, repos repomanager.Repositories) error) error {
	if m.txErr != nil {
		return m.txErr
	}
	return fn(ctx, m)
}

type fakeTrailsRepo struct {
	mu sync.Mutex

	appendOut bool
	appendErr error
	updateOut bool
	updateErr error
	getOut    *models.TrailLog
	getErr    error

	appendCalls int
	updateCalls int
}

func (f *fakeTrailsRepo) AppendIfAbsent(ctx context.Context, ownerID string, hike models.HikeRecord) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appendCalls++
	return f.appendOut, f.appendErr
}

func (f *fakeTrailsRepo) UpdateMatching(ctx context.Context, ownerID, trailID string, fields models.HikeFields, now time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateCalls++
	return f.updateOut, f.updateErr
}

func (f *fakeTrailsRepo) Get(ctx context.Context, ownerID string) (*models.TrailLog, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type failingPasswordRepo struct {
	users.Repository
	err error
}

func (f *failingPasswordRepo) UpdatePasswordHash(ctx context.Context, id, hash string) error {
	return f.err
}

type failingLookupRepo struct {
	users.Repository
	err error
}

func (f *failingLookupRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return nil, f.err
}
