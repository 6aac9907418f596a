package database

import (
	"database/sql"
	"time"

	_ "github.com/go-sql-driver/mysql"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/mysql"
)

// MySQLDialect implements Dialect for MySQL
type MySQLDialect struct{}

// NewMySQLDialect creates a new MySQL dialect
func NewMySQLDialect() *MySQLDialect {
	return &MySQLDialect{}
}

func (d *MySQLDialect) Name() string {
	return "mysql"
}

func (d *MySQLDialect) DriverName() string {
	return "mysql"
}

func (d *MySQLDialect) DSN(config DialectConfig) string {
	return config.URL
}

func (d *MySQLDialect) RewriteQuery(query string) string {
	return query
}

func (d *MySQLDialect) UpsertWordPairQuery() string {
	return "INSERT INTO words (english, chinese) VALUES (?, ?) " +
		"ON DUPLICATE KEY UPDATE chinese = VALUES(chinese)"
}

func (d *MySQLDialect) UpsertSettingQuery() string {
	return "INSERT INTO settings (key_name, value) VALUES (?, ?) " +
		"ON DUPLICATE KEY UPDATE value = VALUES(value)"
}

func (d *MySQLDialect) ConfigureConnection(db *sql.DB) error {
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(1 * time.Minute)
	return nil
}

func (d *MySQLDialect) MigrationDriver(db *sql.DB) (migratedb.Driver, error) {
	return mysql.WithInstance(db, &mysql.Config{})
}

func (d *MySQLDialect) MigrationsSubdir() string {
	return "mysql"
}

func (d *MySQLDialect) Networked() bool {
	return true
}
