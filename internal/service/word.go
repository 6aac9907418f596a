package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"wordmatch/internal/domain"
	"wordmatch/internal/repository"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ErrInvalidWordPair is returned for input that cannot be stored as a word pair
var ErrInvalidWordPair = errors.New("invalid word pair")

// WordService handles word-related business logic
type WordService struct {
	wordRepo repository.WordRepository
	validate *validator.Validate
	logger   *zap.Logger
}

// NewWordService creates a new word service
func NewWordService(wordRepo repository.WordRepository, logger *zap.Logger) *WordService {
	return &WordService{
		wordRepo: wordRepo,
		validate: validator.New(),
		logger:   logger,
	}
}

// List returns all word pairs ordered by english
func (s *WordService) List(ctx context.Context) ([]domain.WordPair, error) {
	return s.wordRepo.ListWordPairs(ctx)
}

// Save stores a word pair, replacing the meaning of an existing english word
func (s *WordService) Save(ctx context.Context, english, chinese string) (domain.WordPair, error) {
	pair := domain.WordPair{English: english, Chinese: chinese}.Normalize()
	if err := s.validate.Struct(pair); err != nil {
		return pair, fmt.Errorf("%w: english word and chinese meaning are both required", ErrInvalidWordPair)
	}

	if err := s.wordRepo.UpsertWordPair(ctx, pair.English, pair.Chinese); err != nil {
		return pair, err
	}

	s.logger.Debug("Word pair saved", zap.String("english", pair.English))
	return pair, nil
}

// Delete removes the pair for english. Unknown words are not an error.
func (s *WordService) Delete(ctx context.Context, english string) error {
	english = strings.TrimSpace(english)
	if english == "" {
		return fmt.Errorf("%w: english word is required", ErrInvalidWordPair)
	}
	return s.wordRepo.DeleteWordPair(ctx, english)
}

// Count returns the number of stored pairs
func (s *WordService) Count(ctx context.Context) (int, error) {
	return s.wordRepo.CountWordPairs(ctx)
}

// SeedDefaults fills an empty word table with the starter vocabulary.
// It returns how many pairs were inserted.
func (s *WordService) SeedDefaults(ctx context.Context) (int, error) {
	count, err := s.wordRepo.CountWordPairs(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	defaults := domain.DefaultWordPairs()
	for i, p := range defaults {
		if err := s.wordRepo.UpsertWordPair(ctx, p.English, p.Chinese); err != nil {
			return i, err
		}
	}

	s.logger.Info("Seeded default word pairs", zap.Int("count", len(defaults)))
	return len(defaults), nil
}
