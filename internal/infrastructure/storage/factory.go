// Package storage elige el adaptador de persistencia según STORAGE_DRIVER.
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/calculadora-promedio/internal/domain/repository"
	"github.com/jhoicas/calculadora-promedio/internal/infrastructure/memory"
	"github.com/jhoicas/calculadora-promedio/internal/infrastructure/postgres"
	"github.com/jhoicas/calculadora-promedio/internal/infrastructure/sqlite"
	"github.com/jhoicas/calculadora-promedio/pkg/config"
)

// Repositories repositorios del driver elegido. Close libera la conexión (no-op en memoria).
type Repositories struct {
	Driver       string
	Calculations repository.CalculationRepository
	Users        repository.UserRepository
	Close        func()
}

// Open construye los repositorios. Para postgres aplica las migraciones embebidas.
func Open(ctx context.Context, storage config.StorageConfig, db config.DBConfig) (*Repositories, error) {
	switch storage.Driver {
	case config.StorageMemory, "":
		return &Repositories{
			Driver:       config.StorageMemory,
			Calculations: memory.NewCalculationRepository(),
			Users:        memory.NewUserRepository(),
			Close:        func() {},
		}, nil
	case config.StorageSQLite:
		path := storage.SQLitePath
		if path == "" {
			path = "calculadora.db"
		}
		sqlDB, err := sqlite.Open(ctx, path)
		if err != nil {
			return nil, err
		}
		return &Repositories{
			Driver:       config.StorageSQLite,
			Calculations: sqlite.NewCalculationRepository(sqlDB),
			Users:        sqlite.NewUserRepository(sqlDB),
			Close:        func() { _ = sqlDB.Close() },
		}, nil
	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, db)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &Repositories{
			Driver:       config.StoragePostgres,
			Calculations: postgres.NewCalculationRepository(pool),
			Users:        postgres.NewUserRepository(pool),
			Close:        pool.Close,
		}, nil
	default:
		return nil, fmt.Errorf("driver de almacenamiento no soportado: %s", storage.Driver)
	}
}
