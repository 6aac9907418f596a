package service

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"wordmatch/internal/domain"
	"wordmatch/internal/game"
	"wordmatch/internal/repository"

	"go.uber.org/zap"
)

// NoticeKind classifies a user facing notice
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeSuccess
	NoticeWarning
)

// Notifier shows non-blocking messages to the user
type Notifier interface {
	Notify(kind NoticeKind, message string)
}

// UI is a front end following a round
type UI interface {
	game.Listener
	Notifier
}

// GameOptions tune round creation
type GameOptions struct {
	ResolveDelay time.Duration
	Scheduler    game.Scheduler
	Rand         *rand.Rand

	// NewTicker drives the single-player clock. Defaults to a one second time.Ticker.
	NewTicker func() (ticks <-chan time.Time, stop func())
}

const persistTimeout = 5 * time.Second

// GameService starts rounds and records their side effects
type GameService struct {
	wordRepo repository.WordRepository
	settings *SettingsService
	logger   *zap.Logger
	opts     GameOptions

	mu        sync.Mutex
	current   *game.Session
	stopClock context.CancelFunc

	pending sync.WaitGroup
}

// NewGameService creates a new game service
func NewGameService(wordRepo repository.WordRepository, settings *SettingsService, logger *zap.Logger, opts GameOptions) *GameService {
	if opts.NewTicker == nil {
		opts.NewTicker = func() (<-chan time.Time, func()) {
			t := time.NewTicker(time.Second)
			return t.C, t.Stop
		}
	}
	return &GameService{
		wordRepo: wordRepo,
		settings: settings,
		logger:   logger,
		opts:     opts,
	}
}

// Start abandons any active round and starts a new one from the current word set.
// It fails with *domain.InsufficientWordsError when there are fewer pairs than the pair count.
func (s *GameService) Start(ctx context.Context, mode game.Mode, ui UI) (*game.Session, error) {
	s.Leave()

	pairs, err := s.wordRepo.ListWordPairs(ctx)
	if err != nil {
		return nil, err
	}

	pairCount, err := s.settings.PairCount(ctx)
	if err != nil {
		s.logger.Error("Failed to read pair count, using default", zap.Error(err))
		ui.Notify(NoticeWarning, "Could not read the pair count setting, using the default.")
	}

	highScore, err := s.settings.HighScore(ctx)
	if err != nil {
		s.logger.Error("Failed to read high score", zap.Error(err))
	}

	rec := &roundRecorder{svc: s, ui: ui, highScore: highScore}
	session, err := game.NewSession(mode, pairs, pairCount, game.Options{
		ResolveDelay: s.opts.ResolveDelay,
		Scheduler:    s.opts.Scheduler,
		Listener:     game.Listeners{ui, rec},
		Rand:         s.opts.Rand,
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.current = session
	if mode == game.SinglePlayer {
		clockCtx, cancel := context.WithCancel(context.Background())
		ticks, stop := s.opts.NewTicker()
		s.stopClock = cancel
		go func() {
			defer stop()
			session.RunClock(clockCtx, ticks)
		}()
	}
	s.mu.Unlock()

	s.logger.Info("Round started",
		zap.String("session_id", session.ID().String()),
		zap.String("mode", mode.String()),
		zap.Int("pairs", domain.ClampPairCount(pairCount)),
	)
	session.Start()
	return session, nil
}

// Current returns the active round, or nil
func (s *GameService) Current() *game.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Leave cancels the active round, dropping its state and any pending validation
func (s *GameService) Leave() {
	s.mu.Lock()
	session, stop := s.current, s.stopClock
	s.current, s.stopClock = nil, nil
	s.mu.Unlock()

	if stop != nil {
		stop()
	}
	if session != nil {
		session.Cancel()
		s.logger.Debug("Round left", zap.String("session_id", session.ID().String()))
	}
}

// Wait blocks until every background settings write has finished
func (s *GameService) Wait() {
	s.pending.Wait()
}

// persist runs a settings write without blocking the round.
// Failures are logged and shown to the user; round state is never rolled back.
func (s *GameService) persist(op string, ui Notifier, write func(ctx context.Context) error) {
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()

		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()

		if err := write(ctx); err != nil {
			s.logger.Error("Failed to persist", zap.String("op", op), zap.Error(err))
			ui.Notify(NoticeWarning, fmt.Sprintf("Could not save %s: %v", op, err))
		}
	}()
}

// roundRecorder turns round events into persisted statistics
type roundRecorder struct {
	game.NopListener
	svc       *GameService
	ui        Notifier
	highScore int
}

func (r *roundRecorder) RoundStarted(game.RoundInfo) {
	r.svc.persist("games played", r.ui, func(ctx context.Context) error {
		_, err := r.svc.settings.IncrementGamesPlayed(ctx)
		return err
	})
}

func (r *roundRecorder) RoundComplete(c game.Completion) {
	r.svc.logger.Info("Round complete",
		zap.Int("player", int(c.Player)),
		zap.Int("score", c.FinalScore),
		zap.Int("elapsed_seconds", c.ElapsedSeconds),
	)
	// only timed single-player rounds count towards the high score
	if !c.Timed || c.FinalScore <= r.highScore {
		return
	}

	r.highScore = c.FinalScore
	r.ui.Notify(NoticeSuccess, fmt.Sprintf("New high score: %d!", c.FinalScore))
	r.svc.persist("high score", r.ui, func(ctx context.Context) error {
		_, err := r.svc.settings.RecordHighScore(ctx, c.FinalScore)
		return err
	})
}

func (r *roundRecorder) AllComplete(results game.Results) {
	r.svc.logger.Info("Duel finished",
		zap.Int("winner", int(results.Winner)),
		zap.Bool("draw", results.Draw),
	)
}
