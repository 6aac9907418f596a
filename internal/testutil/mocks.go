package testutil

import (
	"context"

	"wordmatch/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockWordRepository is a mock for WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) ListWordPairs(ctx context.Context) ([]domain.WordPair, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WordPair), args.Error(1)
}

func (m *MockWordRepository) UpsertWordPair(ctx context.Context, english, chinese string) error {
	args := m.Called(ctx, english, chinese)
	return args.Error(0)
}

func (m *MockWordRepository) DeleteWordPair(ctx context.Context, english string) error {
	args := m.Called(ctx, english)
	return args.Error(0)
}

func (m *MockWordRepository) CountWordPairs(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockSettingsRepository is a mock for SettingsRepository
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetSetting(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockSettingsRepository) SetSetting(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}
