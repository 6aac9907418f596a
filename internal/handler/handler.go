package handler

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"wordmatch/internal/domain"
	"wordmatch/internal/middleware"
	"wordmatch/internal/service"

	"go.uber.org/zap"
)

// ErrQuit is returned by a command that ends the console session
var ErrQuit = errors.New("quit")

// Handler manages all console interactions
type Handler struct {
	in     io.Reader
	out    io.Writer
	outMux sync.Mutex

	wordService     *service.WordService
	settingsService *service.SettingsService
	statsService    *service.StatsService
	gameService     *service.GameService
	logger          *zap.Logger

	// Console state (in-memory state machine)
	state    *domain.StateData
	stateMux sync.RWMutex

	// set while a line of round input is being handled
	inCommand atomic.Bool

	dispatch middleware.HandlerFunc
}

// NewHandler creates a new handler instance
func NewHandler(
	in io.Reader,
	out io.Writer,
	wordService *service.WordService,
	settingsService *service.SettingsService,
	statsService *service.StatsService,
	gameService *service.GameService,
	logger *zap.Logger,
) *Handler {
	h := &Handler{
		in:              in,
		out:             out,
		wordService:     wordService,
		settingsService: settingsService,
		statsService:    statsService,
		gameService:     gameService,
		logger:          logger,
		state:           &domain.StateData{State: domain.StateHome},
	}
	h.dispatch = middleware.Chain(h.handleInput,
		middleware.Logging(logger),
		middleware.Recover(logger),
	)
	return h
}

// Run reads commands line by line until quit, end of input or ctx is done
func (h *Handler) Run(ctx context.Context) error {
	defer h.gameService.Leave()

	h.printf("Word Match: pair English words with their Chinese meanings.\n")

	first, err := h.settingsService.ConsumeFirstTime(ctx)
	if err != nil {
		h.logger.Warn("Failed to read first launch flag", zap.Error(err))
	}
	if first {
		h.printTutorial()
	}
	h.showHome(ctx)

	scanner := bufio.NewScanner(h.in)
	for {
		h.printf("%s", h.prompt())
		if !scanner.Scan() {
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		err := h.Handle(ctx, scanner.Text())
		if errors.Is(err, ErrQuit) {
			h.printf("Bye!\n")
			return nil
		}
		if err != nil {
			h.printf("Error: %v\n", err)
		}
	}
}

// Handle processes one line of input through the middleware chain
func (h *Handler) Handle(ctx context.Context, line string) error {
	return h.dispatch(ctx, line)
}

// handleInput routes input based on the console state
func (h *Handler) handleInput(ctx context.Context, line string) error {
	text := cleanInput(line)
	state := h.GetState()

	switch state.State {
	case domain.StateWaitingWord:
		return h.handleWordInput(ctx, text)
	case domain.StateWaitingTranslation:
		return h.handleTranslationInput(ctx, state, text)
	case domain.StateConfirmDelete:
		return h.handleConfirmDelete(ctx, state, text)
	case domain.StateConfirmReset:
		return h.handleConfirmReset(ctx, state, text)
	case domain.StatePlaying:
		return h.handleRoundInput(ctx, state, text)
	default:
		return h.handleCommand(ctx, text)
	}
}

// GetState returns the current console state
func (h *Handler) GetState() *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()
	return h.state
}

// SetState sets the console state
func (h *Handler) SetState(state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.state = state
}

// ResetState returns the console to the home screen state
func (h *Handler) ResetState() {
	h.SetState(&domain.StateData{State: domain.StateHome})
}

func (h *Handler) prompt() string {
	switch h.GetState().State {
	case domain.StateWaitingWord:
		return "english> "
	case domain.StateWaitingTranslation:
		return "chinese> "
	case domain.StateConfirmDelete, domain.StateConfirmReset:
		return "(y/n)> "
	case domain.StatePlaying:
		return "round> "
	default:
		return "> "
	}
}

func (h *Handler) printf(format string, args ...any) {
	h.outMux.Lock()
	defer h.outMux.Unlock()
	fmt.Fprintf(h.out, format, args...)
}

func (h *Handler) write(s string) {
	h.outMux.Lock()
	defer h.outMux.Unlock()
	io.WriteString(h.out, s)
}
