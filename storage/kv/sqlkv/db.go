// Package sqlkv is a store.KV kept in a single SQL table, on SQLite or PostgreSQL.
package sqlkv

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"

	"github.com/trezcool/portal/core"
	"github.com/trezcool/portal/core/store"
)

// Drivers
const (
	SQLite   = "sqlite3"
	Postgres = "postgres"
)

//go:embed migrations/*.sql
var migrations embed.FS

type DB struct {
	db *sqlx.DB
}

var _ store.KV = (*DB)(nil) // interface compliance check

// Open connects to the database and applies the pending migrations.
func Open(driver, dsn string, logger core.Logger) (*DB, error) {
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s database", driver)
	}
	if driver == SQLite {
		db.SetMaxOpenConns(1) // single writer; also keeps a :memory: database alive
	}
	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "pinging %s database", driver)
	}
	if err = Migrate(db.DB, driver, logger); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &DB{db: db}, nil
}

// Migrate applies every pending migration.
func Migrate(db *sql.DB, driver string, logger core.Logger) error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(gooseLogger{logger})
	if err := goose.SetDialect(driver); err != nil {
		return errors.Wrap(err, "setting migration dialect")
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return errors.Wrap(err, "migrating database")
	}
	return nil
}

func (db *DB) Close() error {
	return db.db.Close()
}

func (db *DB) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var data string
	err := db.db.GetContext(ctx, &data, db.db.Rebind(`SELECT data FROM kv_store WHERE name = ?`), key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "selecting %q", key)
	}
	return []byte(data), true, nil
}

func (db *DB) Set(ctx context.Context, key string, value []byte) error {
	q := db.db.Rebind(`INSERT INTO kv_store (name, data) VALUES (?, ?)
		ON CONFLICT (name) DO UPDATE SET data = excluded.data`)
	if _, err := db.db.ExecContext(ctx, q, key, string(value)); err != nil {
		return errors.Wrapf(err, "upserting %q", key)
	}
	return nil
}

func (db *DB) Delete(ctx context.Context, key string) error {
	if _, err := db.db.ExecContext(ctx, db.db.Rebind(`DELETE FROM kv_store WHERE name = ?`), key); err != nil {
		return errors.Wrapf(err, "deleting %q", key)
	}
	return nil
}

// gooseLogger reports migrations through the application logger.
type gooseLogger struct {
	logger core.Logger
}

func (l gooseLogger) Fatal(v ...interface{}) { l.logger.Fatal(fmt.Sprint(v...)) }
func (l gooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Fatal(fmt.Sprintf(format, v...))
}
func (l gooseLogger) Print(v ...interface{})   { l.logger.Debug(fmt.Sprint(v...)) }
func (l gooseLogger) Println(v ...interface{}) { l.logger.Debug(fmt.Sprint(v...)) }
func (l gooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, v...))
}
