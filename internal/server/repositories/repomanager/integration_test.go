package repomanager_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/dmitrijs2005/hikekeeper/internal/server/repositories/contracttest"
	"github.com/dmitrijs2005/hikekeeper/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/hikekeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/hikekeeper/internal/server/repositories/trails"
	"github.com/dmitrijs2005/hikekeeper/internal/server/repositories/users"
)

// openIntegration returns managers for the live backends configured through
// HIKEKEEPER_TEST_DATABASE_DSN and HIKEKEEPER_TEST_MONGO_URI.
func openIntegration(t *testing.T) map[string]repomanager.RepositoryManager {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	out := map[string]repomanager.RepositoryManager{}

	if dsn := os.Getenv("HIKEKEEPER_TEST_DATABASE_DSN"); dsn != "" {
		m, err := repomanager.OpenPostgres(ctx, dsn)
		if err != nil {
			t.Fatalf("open postgres: %v", err)
		}
		if err := m.RunMigrations(ctx); err != nil {
			t.Fatalf("migrate postgres: %v", err)
		}
		out["postgres"] = m
	}

	if uri := os.Getenv("HIKEKEEPER_TEST_MONGO_URI"); uri != "" {
		m, err := repomanager.OpenMongo(ctx, uri, repomanager.MongoOptions{
			AuthDatabase: "hikekeeper_test_auth",
			DataDatabase: "hikekeeper_test_data",
		})
		if err != nil {
			t.Fatalf("open mongo: %v", err)
		}
		if err := m.RunMigrations(ctx); err != nil {
			t.Fatalf("migrate mongo: %v", err)
		}
		out["mongo"] = m
	}

	if len(out) == 0 {
		t.Skip("no live backend configured")
	}
	for _, m := range out {
		m := m
		t.Cleanup(func() { _ = m.Close(context.Background()) })
	}
	return out
}

func TestContract_LiveBackends(t *testing.T) {
	for name, m := range openIntegration(t) {
		m := m
		t.Run(name, func(t *testing.T) {
			contracttest.RunUserRepo(t, func(t *testing.T) (users.Repository, func()) { return m.Users(), nil })
			contracttest.RunProfileRepo(t, func(t *testing.T) (profiles.Repository, func()) { return m.Profiles(), nil })
			contracttest.RunTrailRepo(t, func(t *testing.T) (trails.Repository, func()) { return m.Trails(), nil })
		})
	}
}

func TestContract_MemoryBackend(t *testing.T) {
	m := repomanager.NewMemoryRepositoryManager()
	contracttest.RunUserRepo(t, func(t *testing.T) (users.Repository, func()) { return m.Users(), nil })
	contracttest.RunProfileRepo(t, func(t *testing.T) (profiles.Repository, func()) { return m.Profiles(), nil })
	contracttest.RunTrailRepo(t, func(t *testing.T) (trails.Repository, func()) { return m.Trails(), nil })
}
