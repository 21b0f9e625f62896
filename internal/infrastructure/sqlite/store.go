// Package sqlite adaptadores de persistencia sobre SQLite (driver puro Go, sin cgo).
// Los montos se guardan como TEXT para no perder precisión y las fechas como unix nanos.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/glebarez/go-sqlite"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		name          TEXT NOT NULL,
		role          TEXT NOT NULL,
		status        TEXT NOT NULL,
		created_at    INTEGER NOT NULL,
		updated_at    INTEGER NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS calculations (
		id             TEXT PRIMARY KEY,
		user_id        TEXT NOT NULL,
		label          TEXT NOT NULL DEFAULT '',
		current_price  TEXT NOT NULL,
		current_qty    TEXT NOT NULL,
		add_price      TEXT NOT NULL,
		add_qty        TEXT NOT NULL,
		current_total  TEXT NOT NULL,
		add_total      TEXT NOT NULL,
		total_qty      TEXT NOT NULL,
		total_invested TEXT NOT NULL,
		avg_price      TEXT NOT NULL,
		created_at     INTEGER NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_calculations_user_created ON calculations (user_id, created_at DESC);`,
}

// Open abre (o crea) la base en path con WAL activado y aplica el esquema.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	// Un solo escritor evita SQLITE_BUSY entre conexiones del pool.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA foreign_keys=ON;",
	}
	for _, pragma := range append(pragmas, schema...) {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("sqlite %q: %w", firstLine(pragma), err)
		}
	}
	return db, nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
