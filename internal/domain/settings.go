package domain

import (
	"errors"
	"strconv"
	"strings"
)

// Setting keys stored in the settings table
const (
	SettingFirstTime   = "firstTime"
	SettingGamesPlayed = "gamesPlayed"
	SettingHighScore   = "highScore"
	SettingPairCount   = "pairCount"
)

// Pair count bounds
const (
	MinPairCount     = 4
	MaxPairCount     = 50
	DefaultPairCount = 8
)

// ClampPairCount forces n into [MinPairCount, MaxPairCount]
func ClampPairCount(n int) int {
	if n < MinPairCount {
		return MinPairCount
	}
	if n > MaxPairCount {
		return MaxPairCount
	}
	return n
}

// ParsePairCount converts user input to a valid pair count.
// Non-numeric input yields MinPairCount; out-of-range numbers clamp to the nearest bound.
func ParsePairCount(raw string) int {
	raw = strings.TrimSpace(raw)
	n, err := strconv.Atoi(raw)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(raw, "-") {
			return MaxPairCount
		}
		return MinPairCount
	}
	return ClampPairCount(n)
}
