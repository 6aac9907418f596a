package game

import (
	"errors"

	"wordmatch/internal/domain"
)

// Scoring rules
const (
	MatchPoints     = 10
	MismatchPenalty = 2
)

var (
	// ErrNoSuchCard is returned when a selection points outside the card column
	ErrNoSuchCard = errors.New("no such card")

	// ErrValidationPending is returned while the participant's selected pair awaits validation
	ErrValidationPending = errors.New("pair validation pending")
)

// Selection reports what a Select call changed
type Selection struct {
	Changed []Card // copies of the cards whose state changed, in order
	Ready   bool   // both sides are selected and the pair awaits Resolve
}

// Resolution is the outcome of validating a selected pair
type Resolution struct {
	Player    PlayerID
	English   Card
	Chinese   Card
	Matched   bool
	Delta     int // score change actually applied
	Score     int
	Completed bool
}

// Matcher validates selections against a word pair snapshot.
// It holds no participant state, so one Matcher serves every participant of a round.
type Matcher struct {
	pairs map[domain.WordPair]struct{}
}

// NewMatcher creates a matcher over the word set loaded at round start
func NewMatcher(snapshot []domain.WordPair) *Matcher {
	pairs := make(map[domain.WordPair]struct{}, len(snapshot))
	for _, p := range snapshot {
		pairs[p] = struct{}{}
	}
	return &Matcher{pairs: pairs}
}

// IsPair reports whether english and chinese form a stored pair, direction included
func (m *Matcher) IsPair(english, chinese string) bool {
	_, ok := m.pairs[domain.WordPair{English: english, Chinese: chinese}]
	return ok
}

// Select marks the card at index of side as the participant's selection for that side.
// Selecting a matched card, the already selected card, or any card of a complete round is a no-op.
func (m *Matcher) Select(r *RoundState, side Side, index int) (Selection, error) {
	if r.Complete {
		return Selection{}, nil
	}
	if r.Pending {
		return Selection{}, ErrValidationPending
	}

	card, err := r.card(side, index)
	if err != nil {
		return Selection{}, err
	}
	if card.State == Matched {
		return Selection{}, nil
	}

	prev := r.selected(side)
	if prev == card {
		return Selection{}, nil
	}

	var sel Selection
	if prev != nil {
		prev.State = Unmatched
		sel.Changed = append(sel.Changed, *prev)
	}
	card.State = Selected
	r.setSelected(side, card)
	sel.Changed = append(sel.Changed, *card)

	if r.SelectedEnglish != nil && r.SelectedChinese != nil {
		r.Pending = true
		sel.Ready = true
	}
	return sel, nil
}

// Resolve validates the selected pair and applies its outcome in one step.
// ok is false when no pair is waiting.
func (m *Matcher) Resolve(r *RoundState) (res Resolution, ok bool) {
	e, c := r.SelectedEnglish, r.SelectedChinese
	if r.Complete || e == nil || c == nil {
		return Resolution{}, false
	}

	before := r.Score
	if m.IsPair(e.Text, c.Text) {
		e.State, c.State = Matched, Matched
		if r.MatchedCount < r.TotalPairs {
			r.MatchedCount++
		}
		r.Score += MatchPoints
		res.Matched = true
	} else {
		e.State, c.State = Unmatched, Unmatched
		r.Score = max(0, r.Score-MismatchPenalty)
	}

	r.SelectedEnglish, r.SelectedChinese = nil, nil
	r.Pending = false
	if r.MatchedCount == r.TotalPairs {
		r.Complete = true
	}

	res.Player = r.Player
	res.English, res.Chinese = *e, *c
	res.Delta = r.Score - before
	res.Score = r.Score
	res.Completed = r.Complete
	return res, true
}
