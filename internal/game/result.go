package game

// PlayerResult is a participant's final standing
type PlayerResult struct {
	Player PlayerID
	Score  int
}

// Results is the end-of-round outcome of a two-player session.
// Winner is zero when the round is a draw.
type Results struct {
	Players []PlayerResult
	Winner  PlayerID
	Draw    bool
}

// DecideWinner picks the participant with the strictly highest score.
// A tie for the highest score is a draw.
func DecideWinner(players []PlayerResult) Results {
	res := Results{Players: append([]PlayerResult(nil), players...)}
	if len(players) == 0 {
		res.Draw = true
		return res
	}

	best := players[0]
	tied := false
	for _, p := range players[1:] {
		switch {
		case p.Score > best.Score:
			best, tied = p, false
		case p.Score == best.Score:
			tied = true
		}
	}

	if tied {
		res.Draw = true
		return res
	}
	res.Winner = best.Player
	return res
}
