package game

import "github.com/google/uuid"

// RoundInfo describes a round that just started
type RoundInfo struct {
	SessionID uuid.UUID
	Mode      Mode
	PairCount int
	Players   []PlayerID
}

// Completion is reported once per participant when all its pairs are matched
type Completion struct {
	Player         PlayerID
	FinalScore     int
	ElapsedSeconds int
	Timed          bool // ElapsedSeconds is only meaningful for timed (single-player) rounds
}

// Listener receives round lifecycle events.
// Events are delivered outside the session lock, so a listener may read the session.
type Listener interface {
	RoundStarted(info RoundInfo)
	CardStateChanged(card Card)
	ScoreChanged(player PlayerID, score int)
	PairResolved(res Resolution)
	RoundComplete(c Completion)
	AllComplete(results Results)
}

// NopListener ignores every event. Embed it to implement a subset of Listener.
type NopListener struct{}

func (NopListener) RoundStarted(RoundInfo) {}
func (NopListener) CardStateChanged(Card) {}
func (NopListener) ScoreChanged(PlayerID, int) {}
func (NopListener) PairResolved(Resolution) {}
func (NopListener) RoundComplete(Completion) {}
func (NopListener) AllComplete(Results) {}

// Listeners fans every event out to each listener in order
type Listeners []Listener

func (ls Listeners) RoundStarted(info RoundInfo) {
	for _, l := range ls {
		l.RoundStarted(info)
	}
}

func (ls Listeners) CardStateChanged(card Card) {
	for _, l := range ls {
		l.CardStateChanged(card)
	}
}

func (ls Listeners) ScoreChanged(player PlayerID, score int) {
	for _, l := range ls {
		l.ScoreChanged(player, score)
	}
}

func (ls Listeners) PairResolved(res Resolution) {
	for _, l := range ls {
		l.PairResolved(res)
	}
}

func (ls Listeners) RoundComplete(c Completion) {
	for _, l := range ls {
		l.RoundComplete(c)
	}
}

func (ls Listeners) AllComplete(results Results) {
	for _, l := range ls {
		l.AllComplete(results)
	}
}
