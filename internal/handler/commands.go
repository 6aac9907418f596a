package handler

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"wordmatch/internal/game"

	"go.uber.org/zap"
)

// cleanInput removes all non-printable characters from a line of input
func cleanInput(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// splitCommand returns the lowercased first word and the trimmed remainder
func splitCommand(text string) (cmd, arg string) {
	cmd, arg, _ = strings.Cut(text, " ")
	return strings.ToLower(cmd), strings.TrimSpace(arg)
}

func isYes(text string) bool {
	switch strings.ToLower(text) {
	case "y", "yes":
		return true
	}
	return false
}

// handleCommand handles home screen commands
func (h *Handler) handleCommand(ctx context.Context, text string) error {
	cmd, arg := splitCommand(text)

	switch cmd {
	case "":
		return nil
	case "play", "p":
		return h.startRound(ctx, game.SinglePlayer)
	case "duel", "2p":
		return h.startRound(ctx, game.TwoPlayer)
	case "words", "list", "ls":
		return h.listWords(ctx)
	case "add":
		return h.beginAdd(ctx, arg)
	case "del", "delete", "rm":
		h.beginDelete(arg)
		return nil
	case "pairs":
		return h.pairs(ctx, arg)
	case "stats":
		return h.showStats(ctx)
	case "home", "menu":
		h.showHome(ctx)
		return nil
	case "tutorial", "help", "?":
		h.printTutorial()
		return nil
	case "quit", "exit", "q":
		return ErrQuit
	default:
		h.printf("Unknown command %q. Type 'help' for the list of commands.\n", cmd)
		return nil
	}
}

// showHome prints the summary line and the command list
func (h *Handler) showHome(ctx context.Context) {
	stats, err := h.statsService.Summary(ctx)
	if err != nil {
		h.logger.Error("Failed to load home summary", zap.Error(err))
	} else {
		h.printf("\nWords: %d | Games played: %d | High score: %d | Pairs per round: %d\n",
			stats.TotalWords, stats.GamesPlayed, stats.HighScore, stats.PairCount)
	}
	h.printf("Commands: play, duel, words, add, del <word>, pairs [n], stats, help, quit\n")
}

func (h *Handler) showStats(ctx context.Context) error {
	stats, err := h.statsService.Summary(ctx)
	if err != nil {
		return err
	}
	h.printf("Word pairs:      %d\n", stats.TotalWords)
	h.printf("Games played:    %d\n", stats.GamesPlayed)
	h.printf("High score:      %d\n", stats.HighScore)
	h.printf("Pairs per round: %d\n", stats.PairCount)
	return nil
}

// pairs shows the pair count, or sets it when arg is given
func (h *Handler) pairs(ctx context.Context, arg string) error {
	if arg == "" {
		n, err := h.settingsService.PairCount(ctx)
		if err != nil {
			return err
		}
		h.printf("Pairs per round: %d (use 'pairs <n>' to change, 4 to 50)\n", n)
		return nil
	}

	n, err := h.settingsService.SetPairCount(ctx, arg)
	if err != nil {
		return err
	}
	if strconv.Itoa(n) != arg {
		h.printf("Pairs per round must be between 4 and 50.\n")
	}
	h.printf("Pairs per round set to %d.\n", n)
	return nil
}

func (h *Handler) printTutorial() {
	h.write(`
How to play
  Each round deals English cards in one column and their Chinese meanings,
  shuffled, in the other. Select one card from each column to make a pair.
  A correct pair scores 10 points, a wrong one costs 2 (never below 0).
  Match every pair to finish. Single-player rounds are timed.

  In a single-player round type e3 to pick English card 3 and c5 for Chinese
  card 5, or both at once: e3 c5.
  In a duel each player has a board: player 1 types 1e3 / 1c5, player 2
  types 2e1 / 2c4. The higher score wins when both boards are cleared.

Commands
  play          single-player round
  duel          two-player round
  words         list word pairs
  add           add or update word pairs (also: add english = chinese)
  del <word>    delete a word pair
  pairs [n]     show or set the pairs per round (4-50)
  stats         show statistics
  help          show this help
  quit          leave
`)
}

var cardTokenRegexp = regexp.MustCompile(`^([12])?([ec])(\d+)$`)

// parseCardToken parses e3, c2 (single-player) or 1e3, 2c1 (two-player).
// Card numbers on screen start at 1; the returned index starts at 0.
func parseCardToken(token string, mode game.Mode) (game.PlayerID, game.Side, int, error) {
	m := cardTokenRegexp.FindStringSubmatch(strings.ToLower(token))
	if m == nil {
		return 0, 0, 0, fmt.Errorf("%q is not a card, use e<n> or c<n>", token)
	}

	player := game.Player1
	switch {
	case m[1] == "" && mode == game.TwoPlayer:
		return 0, 0, 0, fmt.Errorf("%q needs a player number in a duel, e.g. 1%s or 2%s", token, token, token)
	case m[1] == "2" && mode == game.SinglePlayer:
		return 0, 0, 0, fmt.Errorf("there is no player 2 in a single-player round")
	case m[1] == "2":
		player = game.Player2
	}

	side := game.English
	if m[2] == "c" {
		side = game.Chinese
	}

	n, err := strconv.Atoi(m[3])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%q is not a card number", m[3])
	}
	return player, side, n - 1, nil
}
