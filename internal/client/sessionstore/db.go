package sessionstore

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/dmitrijs2005/craftconnect/internal/client/migrations"
	"github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// RunMigrations applies the embedded metadata schema for dialect
// ("sqlite3" or "postgres"). It is idempotent.
func RunMigrations(ctx context.Context, db *sql.DB, dialect string) error {
	var (
		fsys fs.FS
		dir  string
	)
	switch dialect {
	case "sqlite3":
		fsys, dir = migrations.SQLite, "sqlite"
	case "postgres":
		fsys, dir = migrations.Postgres, "postgres"
	default:
		return fmt.Errorf("unsupported migration dialect %q", dialect)
	}

	goose.SetBaseFS(fsys)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, dir)
}

// OpenSQLite opens (creating if needed) the SQLite file at dsn and migrates it.
func OpenSQLite(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// One writer keeps SQLITE_BUSY away from the pair transactions.
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db, "sqlite3"); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// OpenPostgres connects through the pgx database/sql driver and migrates.
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}
	if err := RunMigrations(ctx, db, "postgres"); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
