package service

import (
	"context"

	"wordmatch/internal/repository"

	"go.uber.org/zap"
)

// Stats is the home screen summary
type Stats struct {
	TotalWords  int
	GamesPlayed int
	HighScore   int
	PairCount   int
}

// StatsService builds the home screen summary
type StatsService struct {
	wordRepo repository.WordRepository
	settings *SettingsService
	logger   *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(wordRepo repository.WordRepository, settings *SettingsService, logger *zap.Logger) *StatsService {
	return &StatsService{
		wordRepo: wordRepo,
		settings: settings,
		logger:   logger,
	}
}

// Summary collects word and play statistics
func (s *StatsService) Summary(ctx context.Context) (Stats, error) {
	var stats Stats
	var err error

	if stats.TotalWords, err = s.wordRepo.CountWordPairs(ctx); err != nil {
		s.logger.Error("Failed to count word pairs", zap.Error(err))
		return stats, err
	}
	if stats.GamesPlayed, err = s.settings.GamesPlayed(ctx); err != nil {
		s.logger.Error("Failed to read games played", zap.Error(err))
		return stats, err
	}
	if stats.HighScore, err = s.settings.HighScore(ctx); err != nil {
		s.logger.Error("Failed to read high score", zap.Error(err))
		return stats, err
	}
	if stats.PairCount, err = s.settings.PairCount(ctx); err != nil {
		s.logger.Error("Failed to read pair count", zap.Error(err))
		return stats, err
	}

	return stats, nil
}
