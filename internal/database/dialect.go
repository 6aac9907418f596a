package database

import (
	"database/sql"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	migratedb "github.com/golang-migrate/migrate/v4/database"
)

// Dialect defines the database specific parts of storage access
type Dialect interface {
	// Name identifies the dialect in logs and migration metadata
	Name() string

	// DriverName returns the driver name for sql.Open
	DriverName() string

	// DSN returns the data source name for the connection
	DSN(config DialectConfig) string

	// RewriteQuery converts placeholder syntax if needed (e.g. ? to $1 for postgres)
	RewriteQuery(query string) string

	// UpsertWordPairQuery inserts or replaces a pair keyed by english. Args: english, chinese.
	UpsertWordPairQuery() string

	// UpsertSettingQuery inserts or replaces a setting. Args: key, value.
	UpsertSettingQuery() string

	// ConfigureConnection applies pool and session settings after connecting
	ConfigureConnection(db *sql.DB) error

	// MigrationDriver wraps db for golang-migrate
	MigrationDriver(db *sql.DB) (migratedb.Driver, error)

	// MigrationsSubdir returns the embedded migrations directory for this dialect
	MigrationsSubdir() string

	// Networked reports whether the database lives behind a server that may not be up yet
	Networked() bool
}

// DialectConfig holds configuration for database connection
type DialectConfig struct {
	// For SQLite
	Path string

	// For PostgreSQL/MySQL
	URL string
}

// DialectFor returns the dialect for a configured database type
func DialectFor(dbType string) (Dialect, error) {
	switch strings.ToLower(dbType) {
	case "sqlite", "sqlite3", "":
		return NewSQLiteDialect(), nil
	case "postgres", "postgresql":
		return NewPostgresDialect(), nil
	case "mysql":
		return NewMySQLDialect(), nil
	default:
		return nil, fmt.Errorf("unsupported database type: %s", dbType)
	}
}

var placeholderRegexp = regexp.MustCompile(`\?`)

// rewritePlaceholdersToNumbered converts ? placeholders to $1, $2, etc.
func rewritePlaceholdersToNumbered(query string) string {
	counter := 0
	return placeholderRegexp.ReplaceAllStringFunc(query, func(string) string {
		counter++
		return "$" + strconv.Itoa(counter)
	})
}
