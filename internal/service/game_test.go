package service

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"wordmatch/internal/domain"
	"wordmatch/internal/game"
	"wordmatch/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type gameFixture struct {
	words    *testutil.MockWordRepository
	settings *testutil.MockSettingsRepository
	ticker   *manualTicker
	svc      *GameService
	ui       *recordingUI
}

func newGameFixture(t *testing.T, pairs []domain.WordPair) *gameFixture {
	t.Helper()
	f := &gameFixture{
		words:    new(testutil.MockWordRepository),
		settings: new(testutil.MockSettingsRepository),
		ticker:   newManualTicker(),
		ui:       &recordingUI{},
	}
	f.words.On("ListWordPairs", mock.Anything).Return(pairs, nil)

	logger := testutil.NewTestLogger()
	f.svc = NewGameService(f.words, NewSettingsService(f.settings, logger), logger, GameOptions{
		Rand:      rand.New(rand.NewSource(7)),
		NewTicker: f.ticker.NewTicker,
	})
	return f
}

// playAll matches every pair of player
func playAll(t *testing.T, s *game.Session, player game.PlayerID) {
	t.Helper()
	r, err := s.Round(player)
	require.NoError(t, err)
	for i, e := range r.EnglishCards {
		for j, c := range r.ChineseCards {
			if c.Text == e.MatchText {
				require.NoError(t, s.Select(player, game.English, i))
				require.NoError(t, s.Select(player, game.Chinese, j))
				break
			}
		}
	}
}

func TestGameService_Start_InsufficientWords(t *testing.T) {
	f := newGameFixture(t, testutil.NewTestPairs(3))
	f.settings.On("GetSetting", mock.Anything, domain.SettingPairCount).Return("", false, nil)
	f.settings.On("GetSetting", mock.Anything, domain.SettingHighScore).Return("", false, nil)

	session, err := f.svc.Start(ctx, game.SinglePlayer, f.ui)
	f.svc.Wait()

	assert.Nil(t, session)
	var iwe *domain.InsufficientWordsError
	require.ErrorAs(t, err, &iwe)
	assert.Equal(t, 8, iwe.Required)
	assert.Equal(t, 3, iwe.Available)
	assert.Nil(t, f.svc.Current())
	assert.Empty(t, f.ui.started)
	f.settings.AssertNotCalled(t, "SetSetting", mock.Anything, mock.Anything, mock.Anything)
}

func TestGameService_Start_ListFails(t *testing.T) {
	f := newGameFixture(t, nil)
	f.words.ExpectedCalls = nil
	f.words.On("ListWordPairs", mock.Anything).Return(nil, domain.NewPersistenceError("list word pairs", fmt.Errorf("db error")))

	session, err := f.svc.Start(ctx, game.TwoPlayer, f.ui)

	assert.Nil(t, session)
	assert.True(t, domain.IsPersistenceError(err))
}

func TestGameService_SinglePlayerRound(t *testing.T) {
	f := newGameFixture(t, testutil.NewTestPairs(10))
	f.settings.On("GetSetting", mock.Anything, domain.SettingPairCount).Return("4", true, nil)
	f.settings.On("GetSetting", mock.Anything, domain.SettingHighScore).Return("20", true, nil)
	f.settings.On("GetSetting", mock.Anything, domain.SettingGamesPlayed).Return("2", true, nil)
	f.settings.On("SetSetting", mock.Anything, domain.SettingGamesPlayed, "3").Return(nil).Once()
	f.settings.On("SetSetting", mock.Anything, domain.SettingHighScore, "40").Return(nil).Once()

	session, err := f.svc.Start(ctx, game.SinglePlayer, f.ui)
	require.NoError(t, err)
	assert.Same(t, session, f.svc.Current())
	require.Len(t, f.ui.started, 1)
	assert.Equal(t, 4, f.ui.started[0].PairCount)

	f.ticker.ch <- time.Now()
	f.ticker.ch <- time.Now()
	require.Eventually(t, func() bool {
		r, err := session.Round(game.Player1)
		return err == nil && r.ElapsedSeconds == 2
	}, time.Second, 5*time.Millisecond)

	playAll(t, session, game.Player1)
	f.svc.Wait()

	require.Len(t, f.ui.completions, 1)
	assert.Equal(t, 40, f.ui.completions[0].FinalScore)
	assert.Equal(t, 2, f.ui.completions[0].ElapsedSeconds)
	assert.Contains(t, f.ui.Notices(), notice{kind: NoticeSuccess, message: "New high score: 40!"})

	select {
	case <-f.ticker.stopped:
	case <-time.After(time.Second):
		t.Fatal("clock still running after completion")
	}
	f.settings.AssertExpectations(t)
}

func TestGameService_NoHighScoreBelowRecord(t *testing.T) {
	f := newGameFixture(t, testutil.NewTestPairs(4))
	f.settings.On("GetSetting", mock.Anything, domain.SettingPairCount).Return("4", true, nil)
	f.settings.On("GetSetting", mock.Anything, domain.SettingHighScore).Return("100", true, nil)
	f.settings.On("GetSetting", mock.Anything, domain.SettingGamesPlayed).Return("", false, nil)
	f.settings.On("SetSetting", mock.Anything, domain.SettingGamesPlayed, "1").Return(nil)

	session, err := f.svc.Start(ctx, game.SinglePlayer, f.ui)
	require.NoError(t, err)

	playAll(t, session, game.Player1)
	f.svc.Wait()

	require.Len(t, f.ui.completions, 1)
	assert.Empty(t, f.ui.Notices())
	f.settings.AssertNotCalled(t, "SetSetting", mock.Anything, domain.SettingHighScore, mock.Anything)
}

func TestGameService_PersistFailureIsNonFatal(t *testing.T) {
	f := newGameFixture(t, testutil.NewTestPairs(8))
	f.settings.On("GetSetting", mock.Anything, domain.SettingPairCount).Return("", false, nil)
	f.settings.On("GetSetting", mock.Anything, domain.SettingHighScore).Return("", false, nil)
	f.settings.On("GetSetting", mock.Anything, domain.SettingGamesPlayed).Return("0", true, nil)
	f.settings.On("SetSetting", mock.Anything, domain.SettingGamesPlayed, "1").
		Return(domain.NewPersistenceError("set setting gamesPlayed", fmt.Errorf("readonly database")))

	session, err := f.svc.Start(ctx, game.SinglePlayer, f.ui)
	require.NoError(t, err)
	f.svc.Wait()

	notices := f.ui.Notices()
	require.Len(t, notices, 1)
	assert.Equal(t, NoticeWarning, notices[0].kind)
	assert.Contains(t, notices[0].message, "games played")

	// the round keeps going
	r, err := session.Round(game.Player1)
	require.NoError(t, err)
	assert.Equal(t, 8, r.TotalPairs)
	assert.NoError(t, session.Select(game.Player1, game.English, 0))
}

func TestGameService_PairCountReadFailureUsesDefault(t *testing.T) {
	f := newGameFixture(t, testutil.NewTestPairs(12))
	f.settings.On("GetSetting", mock.Anything, domain.SettingPairCount).Return("", false, fmt.Errorf("db error"))
	f.settings.On("GetSetting", mock.Anything, domain.SettingHighScore).Return("", false, nil)
	f.settings.On("GetSetting", mock.Anything, domain.SettingGamesPlayed).Return("", false, nil)
	f.settings.On("SetSetting", mock.Anything, domain.SettingGamesPlayed, "1").Return(nil)

	session, err := f.svc.Start(ctx, game.TwoPlayer, f.ui)
	require.NoError(t, err)
	f.svc.Wait()

	r, err := session.Round(game.Player2)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPairCount, r.TotalPairs)
	require.NotEmpty(t, f.ui.Notices())
	assert.Equal(t, NoticeWarning, f.ui.Notices()[0].kind)
}

func TestGameService_TwoPlayerRound(t *testing.T) {
	f := newGameFixture(t, testutil.NewTestPairs(6))
	f.svc.opts.NewTicker = func() (<-chan time.Time, func()) {
		t.Error("clock started for a two-player round")
		return nil, func() {}
	}
	f.settings.On("GetSetting", mock.Anything, domain.SettingPairCount).Return("4", true, nil)
	f.settings.On("GetSetting", mock.Anything, domain.SettingHighScore).Return("0", true, nil)
	f.settings.On("GetSetting", mock.Anything, domain.SettingGamesPlayed).Return("5", true, nil)
	f.settings.On("SetSetting", mock.Anything, domain.SettingGamesPlayed, "6").Return(nil).Once()

	session, err := f.svc.Start(ctx, game.TwoPlayer, f.ui)
	require.NoError(t, err)

	playAll(t, session, game.Player2)
	playAll(t, session, game.Player1)
	f.svc.Wait()

	require.Len(t, f.ui.completions, 2)
	assert.Equal(t, game.Player2, f.ui.completions[0].Player)
	require.Len(t, f.ui.results, 1)
	assert.True(t, f.ui.results[0].Draw)
	assert.Empty(t, f.ui.Notices())
	f.settings.AssertNotCalled(t, "SetSetting", mock.Anything, domain.SettingHighScore, mock.Anything)
	f.settings.AssertExpectations(t)
}

func TestGameService_Leave(t *testing.T) {
	f := newGameFixture(t, testutil.NewTestPairs(8))
	f.settings.On("GetSetting", mock.Anything, mock.Anything).Return("", false, nil)
	f.settings.On("SetSetting", mock.Anything, domain.SettingGamesPlayed, mock.Anything).Return(nil)

	session, err := f.svc.Start(ctx, game.SinglePlayer, f.ui)
	require.NoError(t, err)

	f.svc.Leave()
	f.svc.Leave()
	f.svc.Wait()

	assert.Nil(t, f.svc.Current())
	assert.True(t, session.Cancelled())
	_, err = session.Round(game.Player1)
	assert.ErrorIs(t, err, game.ErrSessionClosed)

	select {
	case <-f.ticker.stopped:
	case <-time.After(time.Second):
		t.Fatal("clock still running after leave")
	}
}

func TestGameService_RestartCancelsPreviousRound(t *testing.T) {
	f := newGameFixture(t, testutil.NewTestPairs(8))
	f.svc.opts.NewTicker = func() (<-chan time.Time, func()) { return nil, func() {} }
	f.settings.On("GetSetting", mock.Anything, mock.Anything).Return("", false, nil)
	f.settings.On("SetSetting", mock.Anything, domain.SettingGamesPlayed, mock.Anything).Return(nil)

	first, err := f.svc.Start(ctx, game.SinglePlayer, f.ui)
	require.NoError(t, err)
	second, err := f.svc.Start(ctx, game.SinglePlayer, f.ui)
	require.NoError(t, err)
	f.svc.Wait()

	assert.True(t, first.Cancelled())
	assert.False(t, second.Cancelled())
	assert.NotEqual(t, first.ID(), second.ID())
	assert.Same(t, second, f.svc.Current())
	assert.Len(t, f.ui.started, 2)
}
