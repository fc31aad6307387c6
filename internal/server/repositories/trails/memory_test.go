package trails_test

import (
	"testing"

	"github.com/dmitrijs2005/hikekeeper/internal/server/repositories/contracttest"
	"github.com/dmitrijs2005/hikekeeper/internal/server/repositories/trails"
)

func TestContract_MemoryRepository(t *testing.T) {
	contracttest.RunTrailRepo(t, func(t *testing.T) (trails.Repository, func()) {
		t.Helper()
		return trails.NewMemoryRepository(), nil
	})
}
