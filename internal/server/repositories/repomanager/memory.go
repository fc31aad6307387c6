package repomanager

import (
	"context"

	"github.com/dmitrijs2005/hikekeeper/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/hikekeeper/internal/server/repositories/trails"
	"github.com/dmitrijs2005/hikekeeper/internal/server/repositories/users"
)

// MemoryRepositoryManager serves in-process repositories for development
// and tests. WithinTx gives no rollback.
type MemoryRepositoryManager struct {
	users    *users.MemoryRepository
	profiles *profiles.MemoryRepository
	trails   *trails.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		users:    users.NewMemoryRepository(),
		profiles: profiles.NewMemoryRepository(),
		trails:   trails.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) Users() users.Repository       { return m.users }
func (m *MemoryRepositoryManager) Profiles() profiles.Repository { return m.profiles }
func (m *MemoryRepositoryManager) Trails() trails.Repository      { return m.trails }

func (m *MemoryRepositoryManager) RunMigrations(context.Context) error { return nil }

func (m *MemoryRepositoryManager) WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error {
	return fn(ctx, m)
}

func (m *MemoryRepositoryManager) Ping(context.Context) error  { return nil }
func (m *MemoryRepositoryManager) Close(context.Context) error { return nil }
