package profiles_test

import (
	"testing"

	"github.com/dmitrijs2005/hikekeeper/internal/server/repositories/contracttest"
	"github.com/dmitrijs2005/hikekeeper/internal/server/repositories/profiles"
)

func TestContract_MemoryRepository(t *testing.T) {
	contracttest.RunProfileRepo(t, func(t *testing.T) (profiles.Repository, func()) {
		t.Helper()
		return profiles.NewMemoryRepository(), nil
	})
}
