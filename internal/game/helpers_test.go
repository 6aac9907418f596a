package game

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"wordmatch/internal/domain"
)

func testPairs(n int) []domain.WordPair {
	pairs := make([]domain.WordPair, n)
	for i := range pairs {
		pairs[i] = domain.WordPair{
			English: fmt.Sprintf("word%02d", i),
			Chinese: fmt.Sprintf("词%02d", i),
		}
	}
	return pairs
}

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

// indexOf returns the position of the card with text on side
func indexOf(r RoundState, side Side, text string) int {
	for i, c := range r.Cards(side) {
		if c.Text == text {
			return i
		}
	}
	return -1
}

// matchingChinese returns the chinese index that pairs with the english card at i
func matchingChinese(r RoundState, i int) int {
	return indexOf(r, Chinese, r.EnglishCards[i].MatchText)
}

// wrongChinese returns a chinese index that does not pair with the english card at i
func wrongChinese(r RoundState, i int) int {
	for j, c := range r.ChineseCards {
		if c.Text != r.EnglishCards[i].MatchText && c.State != Matched {
			return j
		}
	}
	return -1
}

type manualScheduler struct {
	mu      sync.Mutex
	pending []*scheduled
}

type scheduled struct {
	fn        func()
	delay     time.Duration
	cancelled bool
}

func (m *manualScheduler) AfterFunc(d time.Duration, fn func()) func() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	job := &scheduled{fn: fn, delay: d}
	m.pending = append(m.pending, job)
	return func() bool {
		m.mu.Lock()
		defer m.mu.Unlock()
		if job.cancelled {
			return false
		}
		job.cancelled = true
		return true
	}
}

// Flush runs every job scheduled so far that was not cancelled
func (m *manualScheduler) Flush() int {
	m.mu.Lock()
	jobs := m.pending
	m.pending = nil
	m.mu.Unlock()

	ran := 0
	for _, job := range jobs {
		if job.cancelled {
			continue
		}
		job.fn()
		ran++
	}
	return ran
}

type recordingListener struct {
	mu          sync.Mutex
	started     []RoundInfo
	cardChanges []Card
	scores      map[PlayerID][]int
	resolutions []Resolution
	completions []Completion
	results     []Results
}

func newRecordingListener() *recordingListener {
	return &recordingListener{scores: make(map[PlayerID][]int)}
}

func (l *recordingListener) RoundStarted(info RoundInfo) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.started = append(l.started, info)
}

func (l *recordingListener) CardStateChanged(card Card) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cardChanges = append(l.cardChanges, card)
}

func (l *recordingListener) ScoreChanged(player PlayerID, score int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.scores[player] = append(l.scores[player], score)
}

func (l *recordingListener) PairResolved(res Resolution) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.resolutions = append(l.resolutions, res)
}

func (l *recordingListener) RoundComplete(c Completion) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.completions = append(l.completions, c)
}

func (l *recordingListener) AllComplete(results Results) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.results = append(l.results, results)
}
