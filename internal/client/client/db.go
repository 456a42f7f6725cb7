package client

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/iceandfire/internal/client/migrations"
	"github.com/dmitrijs2005/iceandfire/internal/filex"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

// InitDatabase opens the SQLite database at dsn, creating the parent
// directory of file-backed databases first. The pool is limited to a single
// connection: the cache has one sequential user, and in-memory databases
// exist per connection.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	if path, ok := filePath(dsn); ok {
		if _, err := filex.EnsureParentDir(path); err != nil {
			return nil, fmt.Errorf("prepare database dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// versionTable is goose's bookkeeping table.
const versionTable = "goose_db_version"

// EnsureSchema applies the embedded migrations. The characters table is
// created with IF NOT EXISTS, so running it again is a no-op.
//
// goose retries its version-table bootstrap for several seconds before giving
// up, so an unreadable version table is rejected up front.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return ErrStoreNotReady
	}

	if err := checkVersionTable(ctx, db); err != nil {
		return err
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.Migrations)
	if err != nil {
		return fmt.Errorf("init migrations: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// checkVersionTable fails when the version table exists but lacks the
// columns goose reads. A missing table is fine; goose creates it.
func checkVersionTable(ctx context.Context, db *sql.DB) error {
	var n int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, versionTable).Scan(&n)
	if err != nil {
		return fmt.Errorf("inspect migrations table: %w", err)
	}
	if n == 0 {
		return nil
	}

	rows, err := db.QueryContext(ctx, `SELECT id, version_id, is_applied, tstamp FROM `+versionTable+` LIMIT 0`)
	if err != nil {
		return fmt.Errorf("unreadable migrations table: %w", err)
	}
	return rows.Close()
}

// filePath extracts the filesystem path from a SQLite DSN. In-memory DSNs
// report false.
func filePath(dsn string) (string, bool) {
	if dsn == "" || dsn == ":memory:" || strings.Contains(dsn, "mode=memory") {
		return "", false
	}
	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == "" || path == ":memory:" {
		return "", false
	}
	return path, true
}
