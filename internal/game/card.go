package game

// Side is the language column a card belongs to
type Side int

const (
	English Side = iota
	Chinese
)

func (s Side) String() string {
	switch s {
	case English:
		return "english"
	case Chinese:
		return "chinese"
	default:
		return "unknown"
	}
}

// CardState is the per-card state. Matched is terminal.
type CardState int

const (
	Unmatched CardState = iota
	Selected
	Matched
)

func (s CardState) String() string {
	switch s {
	case Unmatched:
		return "unmatched"
	case Selected:
		return "selected"
	case Matched:
		return "matched"
	default:
		return "unknown"
	}
}

// PlayerID identifies a participant. Single-player rounds only use Player1.
type PlayerID int

const (
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// Card is one face of a word pair dealt into a round.
// MatchText is the counterpart text, there is no link to the other card.
type Card struct {
	Index     int
	Side      Side
	Text      string
	MatchText string
	Owner     PlayerID
	State     CardState
}
