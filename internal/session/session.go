// Package session tracks a single play session from game start to game
// over and produces the settlement record the storage layer persists.
// It decouples games and the TUI from storage: both sides only know the
// Result value and the Settler interface.
package session

import (
	"time"

	"github.com/pkozlov/calcade/internal/core"
)

// EndReason describes how a session ended.
type EndReason string

const (
	EndWon  EndReason = "won"
	EndLost EndReason = "lost"
	EndQuit EndReason = "quit" // Player left mid-game
)

// Result is the settlement record for one finished session.
type Result struct {
	GameID    string
	Score     int
	Credits   int // Non-negative credit delta for the wallet
	Duration  time.Duration
	EndReason EndReason
}

// Settler persists a session result. Implemented by the storage layer;
// settlement failures are logged and never block the UI.
type Settler interface {
	Settle(Result) error
}

// Tracker times one session. Created when a game mounts, finished when
// its status turns terminal or the player quits.
type Tracker struct {
	gameID  string
	started time.Time
	now     func() time.Time
}

// Start begins tracking a session for the given game.
func Start(gameID string) *Tracker {
	return &Tracker{
		gameID:  gameID,
		started: time.Now(),
		now:     time.Now,
	}
}

// StartAt begins tracking with an injected clock, for tests.
func StartAt(gameID string, now func() time.Time) *Tracker {
	return &Tracker{
		gameID:  gameID,
		started: now(),
		now:     now,
	}
}

// Finish produces the settlement record from the final game state.
// A negative credit balance can never leave the game layer: the delta is
// floored at zero.
func (t *Tracker) Finish(state core.GameState, reason EndReason) Result {
	credits := state.Credits
	if credits < 0 {
		credits = 0
	}
	return Result{
		GameID:    t.gameID,
		Score:     state.Score,
		Credits:   credits,
		Duration:  t.now().Sub(t.started),
		EndReason: reason,
	}
}

// GameID returns the game this tracker belongs to.
func (t *Tracker) GameID() string {
	return t.gameID
}

// ReasonForStatus maps a terminal status to its end reason. Non-terminal
// statuses map to EndQuit, covering a player leaving mid-game.
func ReasonForStatus(st core.Status) EndReason {
	switch st {
	case core.StatusWon:
		return EndWon
	case core.StatusLost:
		return EndLost
	default:
		return EndQuit
	}
}
