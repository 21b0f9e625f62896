package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/calculadora-promedio/internal/infrastructure/storage"
	"github.com/jhoicas/calculadora-promedio/pkg/config"
)

func TestOpen_Drivers(t *testing.T) {
	ctx := context.Background()

	mem, err := storage.Open(ctx, config.StorageConfig{}, config.DBConfig{})
	require.NoError(t, err)
	assert.Equal(t, config.StorageMemory, mem.Driver)
	mem.Close()

	lite, err := storage.Open(ctx, config.StorageConfig{
		Driver:     config.StorageSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "x.db"),
	}, config.DBConfig{})
	require.NoError(t, err)
	assert.Equal(t, config.StorageSQLite, lite.Driver)
	n, err := lite.Calculations.CountByUser(ctx, "nadie")
	require.NoError(t, err)
	assert.Zero(t, n)
	lite.Close()

	_, err = storage.Open(ctx, config.StorageConfig{Driver: "mongo"}, config.DBConfig{})
	assert.Error(t, err)
}
