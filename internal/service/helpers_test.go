package service

import (
	"context"
	"sync"
	"time"

	"wordmatch/internal/game"
)

var ctx = context.Background()

type notice struct {
	kind    NoticeKind
	message string
}

// recordingUI captures the events a front end would render
type recordingUI struct {
	game.NopListener

	mu          sync.Mutex
	started     []game.RoundInfo
	completions []game.Completion
	results     []game.Results
	notices     []notice
}

func (u *recordingUI) RoundStarted(info game.RoundInfo) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.started = append(u.started, info)
}

func (u *recordingUI) RoundComplete(c game.Completion) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.completions = append(u.completions, c)
}

func (u *recordingUI) AllComplete(results game.Results) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.results = append(u.results, results)
}

func (u *recordingUI) Notify(kind NoticeKind, message string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.notices = append(u.notices, notice{kind: kind, message: message})
}

func (u *recordingUI) Notices() []notice {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]notice(nil), u.notices...)
}

// manualTicker hands the single-player clock a channel the test controls
type manualTicker struct {
	ch      chan time.Time
	stopped chan struct{}
}

func newManualTicker() *manualTicker {
	return &manualTicker{ch: make(chan time.Time), stopped: make(chan struct{})}
}

func (m *manualTicker) NewTicker() (<-chan time.Time, func()) {
	return m.ch, func() { close(m.stopped) }
}
