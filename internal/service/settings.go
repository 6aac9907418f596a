package service

import (
	"context"
	"strconv"
	"sync"

	"wordmatch/internal/domain"
	"wordmatch/internal/repository"

	"go.uber.org/zap"
)

// SettingsService reads and writes the persisted game settings.
// Counter updates are serialized so concurrent writes do not lose increments.
type SettingsService struct {
	repo   repository.SettingsRepository
	logger *zap.Logger
	mu     sync.Mutex
}

// NewSettingsService creates a new settings service
func NewSettingsService(repo repository.SettingsRepository, logger *zap.Logger) *SettingsService {
	return &SettingsService{
		repo:   repo,
		logger: logger,
	}
}

// PairCount returns the configured number of pairs per round
func (s *SettingsService) PairCount(ctx context.Context) (int, error) {
	value, found, err := s.repo.GetSetting(ctx, domain.SettingPairCount)
	if err != nil {
		return domain.DefaultPairCount, err
	}
	if !found {
		return domain.DefaultPairCount, nil
	}
	return domain.ParsePairCount(value), nil
}

// SetPairCount clamps raw user input and persists it. The stored value is returned.
func (s *SettingsService) SetPairCount(ctx context.Context, raw string) (int, error) {
	n := domain.ParsePairCount(raw)
	if err := s.repo.SetSetting(ctx, domain.SettingPairCount, strconv.Itoa(n)); err != nil {
		return n, err
	}
	return n, nil
}

// GamesPlayed returns how many rounds were started
func (s *SettingsService) GamesPlayed(ctx context.Context) (int, error) {
	return s.intSetting(ctx, domain.SettingGamesPlayed)
}

// IncrementGamesPlayed adds one to the rounds counter and returns the new value
func (s *SettingsService) IncrementGamesPlayed(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.intSetting(ctx, domain.SettingGamesPlayed)
	if err != nil {
		return 0, err
	}
	n++
	if err := s.repo.SetSetting(ctx, domain.SettingGamesPlayed, strconv.Itoa(n)); err != nil {
		return 0, err
	}
	return n, nil
}

// HighScore returns the best single-player score
func (s *SettingsService) HighScore(ctx context.Context) (int, error) {
	return s.intSetting(ctx, domain.SettingHighScore)
}

// RecordHighScore stores score if it beats the persisted high score
func (s *SettingsService) RecordHighScore(ctx context.Context, score int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	best, err := s.intSetting(ctx, domain.SettingHighScore)
	if err != nil {
		return false, err
	}
	if score <= best {
		return false, nil
	}
	if err := s.repo.SetSetting(ctx, domain.SettingHighScore, strconv.Itoa(score)); err != nil {
		return false, err
	}
	return true, nil
}

// ConsumeFirstTime reports whether this is the first launch and clears the flag
func (s *SettingsService) ConsumeFirstTime(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, found, err := s.repo.GetSetting(ctx, domain.SettingFirstTime)
	if err != nil {
		return false, err
	}
	if found && value == "false" {
		return false, nil
	}
	if err := s.repo.SetSetting(ctx, domain.SettingFirstTime, "false"); err != nil {
		return true, err
	}
	return true, nil
}

func (s *SettingsService) intSetting(ctx context.Context, key string) (int, error) {
	value, found, err := s.repo.GetSetting(ctx, key)
	if err != nil || !found {
		return 0, err
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		s.logger.Warn("Ignoring malformed setting", zap.String("key", key), zap.String("value", value))
		return 0, nil
	}
	return n, nil
}
