package persistence

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"accounts/config"
	"accounts/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewRepositories_Memory(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	repos, err := NewRepositories(Params{
		Lc:     lc,
		Config: &config.Config{Storage: &config.StorageConfig{Driver: config.StorageDriverMemory}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	roles, err := repos.Roles.ListRoles(context.Background())
	require.NoError(t, err)
	assert.Len(t, roles, len(entity.Catalog()))
}

func TestNewRepositories_UnknownDriver(t *testing.T) {
	_, err := NewRepositories(Params{
		Lc:     fxtest.NewLifecycle(t),
		Config: &config.Config{Storage: &config.StorageConfig{Driver: "cassandra"}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	assert.ErrorContains(t, err, "unknown storage driver")
}
