package sqlstore

import (
	"context"
	"database/sql"

	"wordmatch/internal/database"
	"wordmatch/internal/domain"
)

// WordRepo implements repository.WordRepository
type WordRepo struct {
	db      *sql.DB
	dialect database.Dialect
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sql.DB, dialect database.Dialect) *WordRepo {
	return &WordRepo{db: db, dialect: dialect}
}

// ListWordPairs returns every stored pair ordered by english
func (r *WordRepo) ListWordPairs(ctx context.Context) ([]domain.WordPair, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT english, chinese FROM words ORDER BY english ASC`)
	if err != nil {
		return nil, domain.NewPersistenceError("list word pairs", err)
	}
	defer rows.Close()

	pairs := []domain.WordPair{}
	for rows.Next() {
		var p domain.WordPair
		if err := rows.Scan(&p.English, &p.Chinese); err != nil {
			return nil, domain.NewPersistenceError("list word pairs", err)
		}
		pairs = append(pairs, p)
	}

	if err := rows.Err(); err != nil {
		return nil, domain.NewPersistenceError("list word pairs", err)
	}
	return pairs, nil
}

// UpsertWordPair stores a pair, replacing the chinese meaning of an existing english key
func (r *WordRepo) UpsertWordPair(ctx context.Context, english, chinese string) error {
	query := r.dialect.RewriteQuery(r.dialect.UpsertWordPairQuery())
	_, err := r.db.ExecContext(ctx, query, english, chinese)
	return domain.NewPersistenceError("upsert word pair", err)
}

// DeleteWordPair removes the pair keyed by english. Deleting a missing key is not an error.
func (r *WordRepo) DeleteWordPair(ctx context.Context, english string) error {
	query := r.dialect.RewriteQuery(`DELETE FROM words WHERE english = ?`)
	_, err := r.db.ExecContext(ctx, query, english)
	return domain.NewPersistenceError("delete word pair", err)
}

// CountWordPairs returns the number of stored pairs
func (r *WordRepo) CountWordPairs(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM words`).Scan(&count)
	if err != nil {
		return 0, domain.NewPersistenceError("count word pairs", err)
	}
	return count, nil
}
