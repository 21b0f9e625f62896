package config_test

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/calculadora-promedio/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, config.StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, 5, cfg.Calc.DecimalPlaces)
	assert.Equal(t, 16, cfg.Calc.MaxLength)
	assert.Equal(t, "filter", cfg.Calc.InputMode)
	assert.Equal(t, "ko-KR", cfg.Calc.Locale)
	assert.Equal(t, 2, cfg.Calc.FractionDigits)
	assert.Equal(t, "원", cfg.Calc.CurrencySuffix)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "0.0.0.0:8081", cfg.Live.Addr())
	assert.Empty(t, cfg.Live.AllowedOrigins)
}

func TestLoad_OrigenesPermitidos(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("LIVE_ALLOWED_ORIGINS", " https://app.example.com, ,http://localhost:5173 ")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://app.example.com", "http://localhost:5173"}, cfg.Live.AllowedOrigins)
}

func TestLoad_EnvTienePrioridad(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CALC_DECIMAL_PLACES=3\nHTTP_PORT=9000\n"), 0o600))
	t.Setenv("HTTP_PORT", "9100")
	t.Setenv("STORAGE_DRIVER", "SQLite")
	t.Setenv("CALC_MAX_LENGTH", "no-es-numero")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Calc.DecimalPlaces, "valor del archivo .env")
	assert.Equal(t, 9100, cfg.HTTP.Port, "env var sobre archivo")
	assert.Equal(t, config.StorageSQLite, cfg.Storage.Driver)
	assert.Equal(t, 16, cfg.Calc.MaxLength, "entero inválido usa el default")
}

func TestDBConfig_DSN(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "calc", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/calc?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}

func TestWatch_RecargaAlCambiarArchivo(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("CALC_DECIMAL_PLACES: 4\n"), 0o600))

	var places atomic.Int64
	cfg, err := config.Watch(func(c *config.Config, _ fsnotify.Event) {
		places.Store(int64(c.Calc.DecimalPlaces))
	})
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Calc.DecimalPlaces)

	require.NoError(t, os.WriteFile(path, []byte("CALC_DECIMAL_PLACES: 2\n"), 0o600))
	assert.Eventually(t, func() bool { return places.Load() == 2 }, 5*time.Second, 50*time.Millisecond)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
