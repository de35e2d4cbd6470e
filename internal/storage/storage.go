package storage

import (
	"time"

	"github.com/pkozlov/calcade/internal/session"
)

// KV is the narrow key-value surface the rest of the arcade depends on:
// wallet balance and unlock flags. Reads that fail for any reason fall
// back to the provided default so storage trouble never blocks a game
// from starting.
type KV interface {
	GetInt(key string, def int) int
	SetInt(key string, v int) error
	// SetMaxInt writes v only when it exceeds the stored value.
	SetMaxInt(key string, v int) error
}

// Store is the full persistence surface: scores, the key-value bucket,
// and session settlement.
type Store interface {
	KV
	session.Settler

	SaveScore(gameID string, score int) (int64, error)
	TopScores(gameID string, limit int) ([]ScoreEntry, error)
	HighScore(gameID string) (int, error)
	RecentSessions(limit int) ([]SessionEntry, error)
	Close() error
}

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
}

// SessionEntry represents one settled play session.
type SessionEntry struct {
	ID        int64
	GameID    string
	Score     int
	Credits   int
	Duration  int // seconds
	EndReason string
	CreatedAt time.Time
}

// Well-known KV keys.
const (
	KeyWallet         = "wallet"
	KeyUnlockedPrefix = "unlocked:" // followed by the game ID, value 1
)

// UnlockKey returns the KV key marking a game as unlocked.
func UnlockKey(gameID string) string {
	return KeyUnlockedPrefix + gameID
}
