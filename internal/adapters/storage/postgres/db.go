package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	// defaults razonables, ajustables luego
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// seq da el orden de inserción; created_at sólo tiene precisión de microsegundos.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS calendar_events (
	id         TEXT PRIMARY KEY,
	seq        BIGSERIAL NOT NULL,
	event_date DATE NOT NULL UNIQUE,
	title      TEXT NOT NULL,
	body       TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
)`,
	// tablas creadas antes de la columna seq
	`ALTER TABLE calendar_events ADD COLUMN IF NOT EXISTS seq BIGSERIAL`,
}

// EnsureSchema crea la tabla si no existe.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
