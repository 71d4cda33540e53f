package profiles

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/HassanIT2003/Planting-Optimisation-Tool/internal/client/migrations"
	"github.com/pressly/goose/v3"
)

// SessionDSN opens an in-memory database shared between all connections of
// the process; it disappears when the process exits.
const SessionDSN = "file:session?mode=memory&cache=shared"

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens the SQLite database at dsn and applies migrations.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
