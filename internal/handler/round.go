package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"wordmatch/internal/domain"
	"wordmatch/internal/game"
	"wordmatch/internal/service"

	"go.uber.org/zap"
)

// startRound starts a round, sending the user to the word editor when there are too few words
func (h *Handler) startRound(ctx context.Context, mode game.Mode) error {
	session, err := h.gameService.Start(ctx, mode, h)

	var iwe *domain.InsufficientWordsError
	if errors.As(err, &iwe) {
		h.printf("A round needs %d word pairs but there are only %d.\n", iwe.Required, iwe.Available)
		h.printf("Add some more (or lower the round size with 'pairs <n>').\n")
		h.SetState(&domain.StateData{State: domain.StateWaitingWord})
		h.printf("English word (or 'done' to finish):\n")
		return nil
	}
	if err != nil {
		h.logger.Error("Failed to start round", zap.Error(err))
		return err
	}

	h.SetState(&domain.StateData{
		State:     domain.StatePlaying,
		TwoPlayer: mode == game.TwoPlayer,
	})
	h.renderBoard(session)
	return nil
}

// handleRoundInput handles card selections and round commands
func (h *Handler) handleRoundInput(ctx context.Context, state *domain.StateData, text string) error {
	session := h.gameService.Current()
	if session == nil || session.Cancelled() {
		h.ResetState()
		h.showHome(ctx)
		return nil
	}

	cmd, _ := splitCommand(text)
	switch cmd {
	case "":
		return nil
	case "board", "b":
		h.renderBoard(session)
		return nil
	case "reset", "restart":
		h.SetState(&domain.StateData{State: domain.StateConfirmReset, TwoPlayer: state.TwoPlayer})
		h.printf("Restart the round? Progress will be lost. (y/n)\n")
		return nil
	case "back", "home", "leave":
		h.gameService.Leave()
		h.ResetState()
		h.printf("Round abandoned.\n")
		h.showHome(ctx)
		return nil
	case "help", "?":
		h.printTutorial()
		return nil
	case "quit", "exit":
		return ErrQuit
	}

	h.inCommand.Store(true)
	defer h.inCommand.Store(false)

	for _, token := range strings.Fields(text) {
		player, side, index, err := parseCardToken(token, session.Mode())
		if err != nil {
			h.printf("%v\n", err)
			continue
		}

		err = session.Select(player, side, index)
		switch {
		case err == nil:
		case errors.Is(err, game.ErrNoSuchCard):
			h.printf("There is no card %s.\n", token)
		case errors.Is(err, game.ErrValidationPending):
			h.printf("Player %d: wait until the selected pair is checked.\n", player)
		case errors.Is(err, game.ErrSessionClosed):
			h.ResetState()
			return nil
		default:
			return err
		}
	}

	select {
	case <-session.Done():
	default:
		h.renderBoard(session)
	}
	return nil
}

func (h *Handler) handleConfirmReset(ctx context.Context, state *domain.StateData, text string) error {
	if !isYes(text) {
		h.SetState(&domain.StateData{State: domain.StatePlaying, TwoPlayer: state.TwoPlayer})
		h.printf("Carrying on.\n")
		if session := h.gameService.Current(); session != nil {
			h.renderBoard(session)
		}
		return nil
	}

	mode := game.SinglePlayer
	if state.TwoPlayer {
		mode = game.TwoPlayer
	}
	h.ResetState()
	return h.startRound(ctx, mode)
}

// RoundStarted announces a new round
func (h *Handler) RoundStarted(info game.RoundInfo) {
	if info.Mode == game.TwoPlayer {
		h.printf("\nDuel: %d pairs each. Player 1 types 1e<n>/1c<n>, player 2 types 2e<n>/2c<n>.\n", info.PairCount)
		return
	}
	h.printf("\nNew round: %d pairs. Type e<n> and c<n> to pick cards, 'board' to redraw, 'back' to leave.\n", info.PairCount)
}

// CardStateChanged is shown through the board
func (h *Handler) CardStateChanged(game.Card) {}

// ScoreChanged is shown through PairResolved
func (h *Handler) ScoreChanged(game.PlayerID, int) {}

// PairResolved reports the outcome of a checked pair
func (h *Handler) PairResolved(res game.Resolution) {
	prefix := ""
	if h.GetState().TwoPlayer {
		prefix = fmt.Sprintf("Player %d: ", res.Player)
	}

	if res.Matched {
		h.printf("%s✓ %s = %s  %+d  (score %d)\n", prefix, res.English.Text, res.Chinese.Text, res.Delta, res.Score)
	} else if res.Delta != 0 {
		h.printf("%s✗ %s ≠ %s  %+d  (score %d)\n", prefix, res.English.Text, res.Chinese.Text, res.Delta, res.Score)
	} else {
		h.printf("%s✗ %s ≠ %s  (score %d)\n", prefix, res.English.Text, res.Chinese.Text, res.Score)
	}

	// resolved after the display delay, outside of any command
	if !h.inCommand.Load() && !res.Completed {
		if session := h.gameService.Current(); session != nil {
			h.renderBoard(session)
		}
	}
}

// RoundComplete reports a finished board
func (h *Handler) RoundComplete(c game.Completion) {
	if c.Timed {
		h.printf("\nAll pairs matched! Final score %d in %s.\n", c.FinalScore, formatElapsed(c.ElapsedSeconds))
		h.ResetState()
		h.printf("Type 'play' for another round or 'home' for the menu.\n")
		return
	}
	h.printf("\nPlayer %d cleared the board with %d points.\n", c.Player, c.FinalScore)
}

// AllComplete reports the winner of a duel
func (h *Handler) AllComplete(results game.Results) {
	var b strings.Builder
	b.WriteString("\nFinal scores:")
	for _, p := range results.Players {
		fmt.Fprintf(&b, "  player %d: %d", p.Player, p.Score)
	}
	b.WriteString("\n")
	if results.Draw {
		b.WriteString("It's a draw!\n")
	} else {
		fmt.Fprintf(&b, "Player %d wins!\n", results.Winner)
	}
	b.WriteString("Type 'duel' for a rematch or 'home' for the menu.\n")

	h.ResetState()
	h.write(b.String())
}

// Notify shows a service notice
func (h *Handler) Notify(kind service.NoticeKind, message string) {
	switch kind {
	case service.NoticeSuccess:
		h.printf("★ %s\n", message)
	case service.NoticeWarning:
		h.printf("! %s\n", message)
	default:
		h.printf("%s\n", message)
	}
}

func formatElapsed(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
