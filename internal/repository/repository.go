package repository

import (
	"context"

	"wordmatch/internal/domain"
)

// WordRepository defines word pair storage operations
type WordRepository interface {
	ListWordPairs(ctx context.Context) ([]domain.WordPair, error)
	UpsertWordPair(ctx context.Context, english, chinese string) error
	DeleteWordPair(ctx context.Context, english string) error
	CountWordPairs(ctx context.Context) (int, error)
}

// SettingsRepository defines string keyed settings storage
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (value string, found bool, err error)
	SetSetting(ctx context.Context, key, value string) error
}
