package repomanager

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepositoryManager(t *testing.T) {
	m := NewMemoryRepositoryManager()
	ctx := context.Background()

	require.NoError(t, m.RunMigrations(ctx))
	require.NoError(t, m.Ping(ctx))

	var seen Repositories
	err := m.WithinTx(ctx, func(ctx context.Context, repos Repositories) error {
		seen = repos
		return errors.New("stop")
	})
	assert.EqualError(t, err, "stop")
	assert.Same(t, m.Users(), seen.Users())
	assert.Same(t, m.Trails(), seen.Trails())

	require.NoError(t, m.Close(ctx))
}
