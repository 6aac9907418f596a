package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialectFor(t *testing.T) {
	tests := []struct {
		dbType   string
		expected string
		wantErr  bool
	}{
		{dbType: "", expected: "sqlite3"},
		{dbType: "sqlite", expected: "sqlite3"},
		{dbType: "SQLite3", expected: "sqlite3"},
		{dbType: "postgres", expected: "postgres"},
		{dbType: "postgresql", expected: "postgres"},
		{dbType: "mysql", expected: "mysql"},
		{dbType: "oracle", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.dbType, func(t *testing.T) {
			d, err := DialectFor(tt.dbType)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, d)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, d.DriverName())
		})
	}
}

func TestDialects(t *testing.T) {
	tests := []struct {
		dialect   Dialect
		subdir    string
		networked bool
	}{
		{dialect: NewSQLiteDialect(), subdir: "sqlite"},
		{dialect: NewPostgresDialect(), subdir: "postgres", networked: true},
		{dialect: NewMySQLDialect(), subdir: "mysql", networked: true},
	}

	for _, tt := range tests {
		t.Run(tt.dialect.Name(), func(t *testing.T) {
			assert.Equal(t, tt.subdir, tt.dialect.MigrationsSubdir())
			assert.Equal(t, tt.networked, tt.dialect.Networked())
			assert.Contains(t, tt.dialect.UpsertWordPairQuery(), "words")
			assert.Contains(t, tt.dialect.UpsertSettingQuery(), "key_name")
		})
	}
}

func TestRewriteQuery(t *testing.T) {
	query := "SELECT value FROM settings WHERE key_name = ? AND value <> ?"

	assert.Equal(t, query, NewSQLiteDialect().RewriteQuery(query))
	assert.Equal(t, query, NewMySQLDialect().RewriteQuery(query))
	assert.Equal(t,
		"SELECT value FROM settings WHERE key_name = $1 AND value <> $2",
		NewPostgresDialect().RewriteQuery(query),
	)
}

func TestPostgresUpsertPlaceholders(t *testing.T) {
	d := NewPostgresDialect()
	q := d.RewriteQuery(d.UpsertWordPairQuery())

	assert.Contains(t, q, "VALUES ($1, $2)")
	assert.NotContains(t, q, "?")
}

func TestSQLiteDSN(t *testing.T) {
	d := NewSQLiteDialect()

	assert.Equal(t, "game.db?_busy_timeout=5000&_journal_mode=WAL", d.DSN(DialectConfig{Path: "game.db"}))
	assert.Equal(t, "file:game.db?mode=ro", d.DSN(DialectConfig{Path: "file:game.db?mode=ro"}))
}

func TestNetworkedDSN(t *testing.T) {
	cfg := DialectConfig{Path: "ignored.db", URL: "user:pass@tcp(localhost:3306)/wordmatch"}

	assert.Equal(t, cfg.URL, NewMySQLDialect().DSN(cfg))
	assert.Equal(t, cfg.URL, NewPostgresDialect().DSN(cfg))
}
