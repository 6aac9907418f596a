package database

import (
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// DB wraps the database connection with dialect support
type DB struct {
	*sql.DB
	Dialect Dialect
}

// RetryPolicy controls how often Open retries a networked database
type RetryPolicy struct {
	Attempts int
	Delay    time.Duration
}

// DefaultRetryPolicy waits up to a minute for a database server to come up
var DefaultRetryPolicy = RetryPolicy{Attempts: 30, Delay: 2 * time.Second}

// Open connects using dialect. Networked databases are retried according to
// retry, local files are opened once.
func Open(dialect Dialect, config DialectConfig, retry RetryPolicy, logger *zap.Logger) (*DB, error) {
	attempts := retry.Attempts
	if !dialect.Networked() || attempts < 1 {
		attempts = 1
	}

	var err error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			time.Sleep(retry.Delay)
		}

		var db *sql.DB
		db, err = sql.Open(dialect.DriverName(), dialect.DSN(config))
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.String("dialect", dialect.Name()),
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			continue
		}

		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.String("dialect", dialect.Name()),
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			continue
		}

		if err = dialect.ConfigureConnection(db); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to configure connection: %w", err)
		}

		return &DB{DB: db, Dialect: dialect}, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, err)
}

// Rewrite adapts a query written with ? placeholders to the dialect
func (db *DB) Rewrite(query string) string {
	return db.Dialect.RewriteQuery(query)
}
