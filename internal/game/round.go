package game

import (
	"math/rand"

	"wordmatch/internal/domain"
)

// RoundState is the in-memory state of one participant in a round
type RoundState struct {
	Player          PlayerID
	Pool            []domain.WordPair
	EnglishCards    []*Card
	ChineseCards    []*Card
	SelectedEnglish *Card
	SelectedChinese *Card
	Score           int
	MatchedCount    int
	TotalPairs      int
	ElapsedSeconds  int

	// Pending is set while a selected pair waits for validation; input is disabled.
	Pending  bool
	Complete bool
}

// Cards returns the card column for side
func (r *RoundState) Cards(side Side) []*Card {
	if side == English {
		return r.EnglishCards
	}
	return r.ChineseCards
}

func (r *RoundState) card(side Side, index int) (*Card, error) {
	cards := r.Cards(side)
	if index < 0 || index >= len(cards) {
		return nil, ErrNoSuchCard
	}
	return cards[index], nil
}

func (r *RoundState) selected(side Side) *Card {
	if side == English {
		return r.SelectedEnglish
	}
	return r.SelectedChinese
}

func (r *RoundState) setSelected(side Side, c *Card) {
	if side == English {
		r.SelectedEnglish = c
	} else {
		r.SelectedChinese = c
	}
}

// snapshot returns a deep copy safe to hand out of the session lock
func (r *RoundState) snapshot() RoundState {
	cp := *r
	cp.Pool = append([]domain.WordPair(nil), r.Pool...)
	cp.EnglishCards, cp.SelectedEnglish = copyCards(r.EnglishCards, r.SelectedEnglish)
	cp.ChineseCards, cp.SelectedChinese = copyCards(r.ChineseCards, r.SelectedChinese)
	return cp
}

func copyCards(cards []*Card, selected *Card) ([]*Card, *Card) {
	out := make([]*Card, len(cards))
	var sel *Card
	for i, c := range cards {
		cc := *c
		out[i] = &cc
		if c == selected {
			sel = out[i]
		}
	}
	return out, sel
}

// Sample draws n pairs uniformly at random without replacement
func Sample(rng *rand.Rand, pairs []domain.WordPair, n int) ([]domain.WordPair, error) {
	if n > len(pairs) {
		return nil, &domain.InsufficientWordsError{Required: n, Available: len(pairs)}
	}
	perm := rng.Perm(len(pairs))
	out := make([]domain.WordPair, n)
	for i := range out {
		out[i] = pairs[perm[i]]
	}
	return out, nil
}

// Deal builds a fresh round for player over pool.
// Both columns are shuffled independently and never share the pool order.
func Deal(rng *rand.Rand, player PlayerID, pool []domain.WordPair) *RoundState {
	english := make([]*Card, len(pool))
	chinese := make([]*Card, len(pool))
	for i, p := range pool {
		english[i] = &Card{Side: English, Text: p.English, MatchText: p.Chinese, Owner: player}
		chinese[i] = &Card{Side: Chinese, Text: p.Chinese, MatchText: p.English, Owner: player}
	}

	shuffle(rng, english)
	shuffle(rng, chinese)
	for len(pool) > 1 && aligned(english, chinese) {
		shuffle(rng, chinese)
	}

	for i := range english {
		english[i].Index = i
		chinese[i].Index = i
	}

	return &RoundState{
		Player:       player,
		Pool:         append([]domain.WordPair(nil), pool...),
		EnglishCards: english,
		ChineseCards: chinese,
		TotalPairs:   len(pool),
	}
}

func shuffle(rng *rand.Rand, cards []*Card) {
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}

// aligned reports whether every row pairs an english card with its own meaning
func aligned(english, chinese []*Card) bool {
	for i := range english {
		if english[i].Text != chinese[i].MatchText {
			return false
		}
	}
	return true
}
