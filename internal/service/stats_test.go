package service

import (
	"fmt"
	"testing"

	"wordmatch/internal/domain"
	"wordmatch/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestStatsService_Summary(t *testing.T) {
	tests := []struct {
		name          string
		count         int
		countError    error
		settingsError error
		expected      Stats
		expectedError bool
	}{
		{
			name:     "all values present",
			count:    14,
			expected: Stats{TotalWords: 14, GamesPlayed: 7, HighScore: 80, PairCount: 10},
		},
		{
			name:          "word count fails",
			countError:    fmt.Errorf("db error"),
			expectedError: true,
		},
		{
			name:          "settings read fails",
			count:         14,
			settingsError: fmt.Errorf("db error"),
			expected:      Stats{TotalWords: 14},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wordRepo := new(testutil.MockWordRepository)
			wordRepo.On("CountWordPairs", mock.Anything).Return(tt.count, tt.countError)

			settingsRepo := new(testutil.MockSettingsRepository)
			settingsRepo.On("GetSetting", mock.Anything, domain.SettingGamesPlayed).Return("7", true, tt.settingsError)
			settingsRepo.On("GetSetting", mock.Anything, domain.SettingHighScore).Return("80", true, nil)
			settingsRepo.On("GetSetting", mock.Anything, domain.SettingPairCount).Return("10", true, nil)

			logger := testutil.NewTestLogger()
			service := NewStatsService(wordRepo, NewSettingsService(settingsRepo, logger), logger)

			stats, err := service.Summary(ctx)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, stats)
			wordRepo.AssertExpectations(t)
		})
	}
}
