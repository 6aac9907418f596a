package testutil

import (
	"fmt"

	"wordmatch/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestPairs creates n distinct word pairs ordered by english
func NewTestPairs(n int) []domain.WordPair {
	pairs := make([]domain.WordPair, n)
	for i := range pairs {
		pairs[i] = domain.WordPair{
			English: fmt.Sprintf("word%02d", i),
			Chinese: fmt.Sprintf("词%02d", i),
		}
	}
	return pairs
}
