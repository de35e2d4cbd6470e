package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/pkozlov/calcade/internal/session"
)

// both backends must satisfy the same contract
func openStores(t *testing.T) map[string]Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	sqlStore, err := Open(dbPath)
	if err != nil {
		t.Fatalf("cannot open sqlite store: %v", err)
	}
	t.Cleanup(func() { sqlStore.Close() })

	return map[string]Store{
		"sqlite": sqlStore,
		"memory": NewMemStore(),
	}
}

func TestSaveAndQueryScores(t *testing.T) {
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			for _, score := range []int{10, 50, 30} {
				if _, err := store.SaveScore("keepup", score); err != nil {
					t.Fatalf("save score: %v", err)
				}
			}
			store.SaveScore("snake", 99)

			high, err := store.HighScore("keepup")
			if err != nil {
				t.Fatalf("high score: %v", err)
			}
			if high != 50 {
				t.Errorf("high score = %d, expected 50", high)
			}

			top, err := store.TopScores("keepup", 2)
			if err != nil {
				t.Fatalf("top scores: %v", err)
			}
			if len(top) != 2 || top[0].Score != 50 || top[1].Score != 30 {
				t.Errorf("top scores = %+v", top)
			}
		})
	}
}

func TestHighScoreEmptyGame(t *testing.T) {
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			high, err := store.HighScore("nothing-played")
			if err != nil {
				t.Fatalf("high score: %v", err)
			}
			if high != 0 {
				t.Errorf("high score = %d, expected 0", high)
			}
		})
	}
}

func TestKVRoundTrip(t *testing.T) {
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			if got := store.GetInt("missing", 7); got != 7 {
				t.Errorf("GetInt default = %d, expected 7", got)
			}

			if err := store.SetInt(KeyWallet, 120); err != nil {
				t.Fatalf("set: %v", err)
			}
			if got := store.GetInt(KeyWallet, 0); got != 120 {
				t.Errorf("GetInt = %d, expected 120", got)
			}

			store.SetInt(KeyWallet, 80)
			if got := store.GetInt(KeyWallet, 0); got != 80 {
				t.Errorf("GetInt after overwrite = %d, expected 80", got)
			}
		})
	}
}

func TestSetMaxInt(t *testing.T) {
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			store.SetMaxInt("best", 10)
			store.SetMaxInt("best", 5) // lower, must not overwrite
			if got := store.GetInt("best", 0); got != 10 {
				t.Errorf("after lower write = %d, expected 10", got)
			}

			store.SetMaxInt("best", 25)
			if got := store.GetInt("best", 0); got != 25 {
				t.Errorf("after higher write = %d, expected 25", got)
			}
		})
	}
}

func TestSettle(t *testing.T) {
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			store.SetInt(KeyWallet, 10)

			err := store.Settle(session.Result{
				GameID:    "racer",
				Score:     35,
				Credits:   7,
				Duration:  42 * time.Second,
				EndReason: session.EndLost,
			})
			if err != nil {
				t.Fatalf("settle: %v", err)
			}

			if got := store.GetInt(KeyWallet, 0); got != 17 {
				t.Errorf("wallet = %d, expected 17", got)
			}

			high, _ := store.HighScore("racer")
			if high != 35 {
				t.Errorf("high score = %d, expected 35", high)
			}

			sessions, err := store.RecentSessions(5)
			if err != nil {
				t.Fatalf("recent sessions: %v", err)
			}
			if len(sessions) != 1 {
				t.Fatalf("sessions = %d, expected 1", len(sessions))
			}
			s := sessions[0]
			if s.GameID != "racer" || s.Score != 35 || s.Credits != 7 ||
				s.Duration != 42 || s.EndReason != "lost" {
				t.Errorf("session row = %+v", s)
			}
		})
	}
}

func TestSettleZeroCreditsLeavesWallet(t *testing.T) {
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			store.SetInt(KeyWallet, 5)
			store.Settle(session.Result{GameID: "snake", EndReason: session.EndQuit})
			if got := store.GetInt(KeyWallet, 0); got != 5 {
				t.Errorf("wallet = %d, expected untouched 5", got)
			}
		})
	}
}

func TestUnlockKey(t *testing.T) {
	if UnlockKey("keepup") != "unlocked:keepup" {
		t.Errorf("unexpected unlock key %q", UnlockKey("keepup"))
	}
}
