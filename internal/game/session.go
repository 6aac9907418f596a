package game

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"wordmatch/internal/domain"

	"github.com/google/uuid"
)

// Mode is the kind of round being played
type Mode int

const (
	SinglePlayer Mode = iota
	TwoPlayer
)

func (m Mode) String() string {
	if m == TwoPlayer {
		return "two-player"
	}
	return "single-player"
}

var (
	// ErrUnknownPlayer is returned for a participant that is not part of the session
	ErrUnknownPlayer = errors.New("unknown player")

	// ErrSessionClosed is returned once the session has been cancelled
	ErrSessionClosed = errors.New("session closed")
)

// Options tune a session. The zero value resolves pairs synchronously and emits no events.
type Options struct {
	ResolveDelay time.Duration
	Scheduler    Scheduler
	Listener     Listener
	Rand         *rand.Rand
}

// Session is one round of play for one or two participants sharing a word pool
type Session struct {
	id      uuid.UUID
	mode    Mode
	matcher *Matcher
	rounds  []*RoundState

	delay     time.Duration
	scheduler Scheduler
	listener  Listener

	mu        sync.Mutex
	cancels   map[PlayerID]func() bool
	started   bool
	cancelled bool
	results   *Results
	done      chan struct{}
	doneOnce  sync.Once
}

type event func(Listener)

// NewSession samples pairCount pairs from snapshot and deals a round per participant.
// pairCount is clamped to the allowed range first.
func NewSession(mode Mode, snapshot []domain.WordPair, pairCount int, opts Options) (*Session, error) {
	pairCount = domain.ClampPairCount(pairCount)

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	pool, err := Sample(rng, snapshot, pairCount)
	if err != nil {
		return nil, err
	}

	players := []PlayerID{Player1}
	if mode == TwoPlayer {
		players = append(players, Player2)
	}

	rounds := make([]*RoundState, len(players))
	for i, p := range players {
		rounds[i] = Deal(rng, p, pool)
	}

	s := &Session{
		id:        uuid.New(),
		mode:      mode,
		matcher:   NewMatcher(snapshot),
		rounds:    rounds,
		delay:     opts.ResolveDelay,
		scheduler: opts.Scheduler,
		listener:  opts.Listener,
		cancels:   make(map[PlayerID]func() bool),
		done:      make(chan struct{}),
	}
	if s.scheduler == nil {
		s.scheduler = TimerScheduler{}
	}
	if s.listener == nil {
		s.listener = NopListener{}
	}
	return s, nil
}

// ID returns the session identifier
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Mode returns the session mode
func (s *Session) Mode() Mode {
	return s.mode
}

// Done is closed when the session is over, either completed or cancelled
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Start announces the round. It only has an effect the first time.
func (s *Session) Start() {
	s.mu.Lock()
	if s.started || s.cancelled {
		s.mu.Unlock()
		return
	}
	s.started = true

	info := RoundInfo{
		SessionID: s.id,
		Mode:      s.mode,
		PairCount: s.rounds[0].TotalPairs,
	}
	for _, r := range s.rounds {
		info.Players = append(info.Players, r.Player)
	}
	s.mu.Unlock()

	s.listener.RoundStarted(info)
}

// Select handles a card tap by player on side at index.
// When it completes a pair, validation runs after the resolve delay; until then
// the player's further selections fail with ErrValidationPending.
func (s *Session) Select(player PlayerID, side Side, index int) error {
	s.mu.Lock()
	if s.cancelled {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	r, err := s.round(player)
	if err != nil {
		s.mu.Unlock()
		return err
	}

	sel, err := s.matcher.Select(r, side, index)
	if err != nil {
		s.mu.Unlock()
		return err
	}

	var events []event
	for _, c := range sel.Changed {
		c := c
		events = append(events, func(l Listener) { l.CardStateChanged(c) })
	}

	if sel.Ready {
		if s.delay <= 0 {
			events = append(events, s.resolveLocked(r)...)
		} else {
			s.cancels[player] = s.scheduler.AfterFunc(s.delay, func() { s.resolve(player) })
		}
	}
	s.mu.Unlock()

	s.dispatch(events)
	return nil
}

// Tick advances the single-player elapsed clock by one second.
// It is a no-op for two-player, completed or cancelled sessions.
func (s *Session) Tick() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := s.rounds[0]
	if s.mode != SinglePlayer || s.cancelled || r.Complete {
		return r.ElapsedSeconds
	}
	r.ElapsedSeconds++
	return r.ElapsedSeconds
}

// RunClock calls Tick for every value received on ticks until ctx is done
// or the session ends
func (s *Session) RunClock(ctx context.Context, ticks <-chan time.Time) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.done:
			return
		case <-ticks:
			s.Tick()
		}
	}
}

// Cancel abandons the round: pending validations are dropped and
// every further call fails with ErrSessionClosed
func (s *Session) Cancel() {
	s.mu.Lock()
	if s.cancelled {
		s.mu.Unlock()
		return
	}
	s.cancelled = true
	for p, cancel := range s.cancels {
		cancel()
		delete(s.cancels, p)
	}
	s.mu.Unlock()

	s.finish()
}

// Cancelled reports whether Cancel was called
func (s *Session) Cancelled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancelled
}

// Round returns a copy of player's round state
func (s *Session) Round(player PlayerID) (RoundState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancelled {
		return RoundState{}, ErrSessionClosed
	}
	r, err := s.round(player)
	if err != nil {
		return RoundState{}, err
	}
	return r.snapshot(), nil
}

// Players lists the participants of the session
func (s *Session) Players() []PlayerID {
	players := make([]PlayerID, len(s.rounds))
	for i, r := range s.rounds {
		players[i] = r.Player
	}
	return players
}

// Results returns the two-player outcome once both participants are complete
func (s *Session) Results() (Results, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.results == nil {
		return Results{}, false
	}
	return *s.results, true
}

func (s *Session) round(player PlayerID) (*RoundState, error) {
	for _, r := range s.rounds {
		if r.Player == player {
			return r, nil
		}
	}
	return nil, ErrUnknownPlayer
}

// resolve is the scheduled validation callback
func (s *Session) resolve(player PlayerID) {
	s.mu.Lock()
	if s.cancelled {
		s.mu.Unlock()
		return
	}
	delete(s.cancels, player)

	r, err := s.round(player)
	if err != nil {
		s.mu.Unlock()
		return
	}
	events := s.resolveLocked(r)
	s.mu.Unlock()

	s.dispatch(events)
}

// resolveLocked validates r's pending pair. s.mu must be held.
func (s *Session) resolveLocked(r *RoundState) []event {
	res, ok := s.matcher.Resolve(r)
	if !ok {
		return nil
	}

	events := []event{
		func(l Listener) { l.CardStateChanged(res.English) },
		func(l Listener) { l.CardStateChanged(res.Chinese) },
	}
	if res.Delta != 0 {
		events = append(events, func(l Listener) { l.ScoreChanged(res.Player, res.Score) })
	}
	events = append(events, func(l Listener) { l.PairResolved(res) })

	if res.Completed {
		events = append(events, s.completeLocked(r)...)
	}
	return events
}

// completeLocked reports r as complete and settles the session when every
// participant is done. s.mu must be held.
func (s *Session) completeLocked(r *RoundState) []event {
	c := Completion{
		Player:         r.Player,
		FinalScore:     r.Score,
		ElapsedSeconds: r.ElapsedSeconds,
		Timed:          s.mode == SinglePlayer,
	}
	events := []event{func(l Listener) { l.RoundComplete(c) }}

	for _, other := range s.rounds {
		if !other.Complete {
			return events
		}
	}

	if s.mode == TwoPlayer {
		standings := make([]PlayerResult, len(s.rounds))
		for i, other := range s.rounds {
			standings[i] = PlayerResult{Player: other.Player, Score: other.Score}
		}
		results := DecideWinner(standings)
		s.results = &results
		events = append(events, func(l Listener) { l.AllComplete(results) })
	}

	return append(events, func(Listener) { s.finish() })
}

func (s *Session) finish() {
	s.doneOnce.Do(func() { close(s.done) })
}

func (s *Session) dispatch(events []event) {
	for _, e := range events {
		e(s.listener)
	}
}
