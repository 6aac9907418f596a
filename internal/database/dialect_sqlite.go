package database

import (
	"database/sql"
	"strings"

	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteDialect implements Dialect for a local SQLite file
type SQLiteDialect struct{}

// NewSQLiteDialect creates a new SQLite dialect
func NewSQLiteDialect() *SQLiteDialect {
	return &SQLiteDialect{}
}

func (d *SQLiteDialect) Name() string {
	return "sqlite3"
}

func (d *SQLiteDialect) DriverName() string {
	return "sqlite3"
}

func (d *SQLiteDialect) DSN(config DialectConfig) string {
	if strings.Contains(config.Path, "?") {
		return config.Path
	}
	return config.Path + "?_busy_timeout=5000&_journal_mode=WAL"
}

func (d *SQLiteDialect) RewriteQuery(query string) string {
	return query
}

func (d *SQLiteDialect) UpsertWordPairQuery() string {
	return "INSERT OR REPLACE INTO words (english, chinese) VALUES (?, ?)"
}

func (d *SQLiteDialect) UpsertSettingQuery() string {
	return "INSERT OR REPLACE INTO settings (key_name, value) VALUES (?, ?)"
}

func (d *SQLiteDialect) ConfigureConnection(db *sql.DB) error {
	// one writer at a time
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	return nil
}

func (d *SQLiteDialect) MigrationDriver(db *sql.DB) (migratedb.Driver, error) {
	return sqlite3.WithInstance(db, &sqlite3.Config{})
}

func (d *SQLiteDialect) MigrationsSubdir() string {
	return "sqlite"
}

func (d *SQLiteDialect) Networked() bool {
	return false
}
