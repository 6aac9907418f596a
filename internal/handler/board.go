package handler

import (
	"fmt"
	"strings"
	"unicode"

	"wordmatch/internal/game"
)

// renderBoard draws every participant's columns
func (h *Handler) renderBoard(session *game.Session) {
	var b strings.Builder
	for _, player := range session.Players() {
		r, err := session.Round(player)
		if err != nil {
			return
		}
		writeRound(&b, r, session.Mode())
	}
	h.write(b.String())
}

func writeRound(b *strings.Builder, r game.RoundState, mode game.Mode) {
	prefix := ""
	b.WriteString("\n")
	if mode == game.TwoPlayer {
		prefix = fmt.Sprint(int(r.Player))
		fmt.Fprintf(b, "Player %d  score %d  matched %d/%d\n", r.Player, r.Score, r.MatchedCount, r.TotalPairs)
	} else {
		fmt.Fprintf(b, "Score %d  matched %d/%d  time %s\n", r.Score, r.MatchedCount, r.TotalPairs, formatElapsed(r.ElapsedSeconds))
	}

	left := make([]string, len(r.EnglishCards))
	width := 0
	for i, c := range r.EnglishCards {
		left[i] = cardCell(prefix, c)
		width = max(width, displayWidth(left[i]))
	}

	for i := range left {
		b.WriteString("  ")
		b.WriteString(padRight(left[i], width))
		b.WriteString("    ")
		if i < len(r.ChineseCards) {
			b.WriteString(cardCell(prefix, r.ChineseCards[i]))
		}
		b.WriteString("\n")
	}
}

func cardCell(prefix string, c *game.Card) string {
	label := fmt.Sprintf("%s%c%d", prefix, c.Side.String()[0], c.Index+1)
	switch c.State {
	case game.Selected:
		return fmt.Sprintf("%-4s [%s]", label, c.Text)
	case game.Matched:
		return fmt.Sprintf("%-4s  ✓ %s", label, c.Text)
	default:
		return fmt.Sprintf("%-4s  %s", label, c.Text)
	}
}

// displayWidth counts CJK characters as two terminal columns
func displayWidth(s string) int {
	w := 0
	for _, r := range s {
		if unicode.Is(unicode.Han, r) || unicode.In(r, unicode.Hiragana, unicode.Katakana, unicode.Hangul) {
			w += 2
		} else {
			w++
		}
	}
	return w
}

func padRight(s string, width int) string {
	if n := width - displayWidth(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
