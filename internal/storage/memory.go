package storage

import (
	"sort"
	"sync"
	"time"

	"github.com/pkozlov/calcade/internal/session"
)

// MemStore is an in-memory Store for tests and throwaway sessions.
type MemStore struct {
	mu       sync.Mutex
	nextID   int64
	scores   []ScoreEntry
	kv       map[string]int
	sessions []SessionEntry
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{kv: make(map[string]int)}
}

// Close is a no-op for the in-memory store.
func (m *MemStore) Close() error { return nil }

// SaveScore records a new score for the given game.
func (m *MemStore) SaveScore(gameID string, score int) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	m.scores = append(m.scores, ScoreEntry{
		ID:        m.nextID,
		GameID:    gameID,
		Score:     score,
		CreatedAt: time.Now(),
	})
	return m.nextID, nil
}

// TopScores retrieves the top N scores for the given game.
func (m *MemStore) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var entries []ScoreEntry
	for _, e := range m.scores {
		if e.GameID == gameID {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// HighScore returns the highest score for the given game, 0 when none.
func (m *MemStore) HighScore(gameID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	high := 0
	for _, e := range m.scores {
		if e.GameID == gameID && e.Score > high {
			high = e.Score
		}
	}
	return high, nil
}

// GetInt reads an integer from the kv bucket, returning the default when
// the key is absent.
func (m *MemStore) GetInt(key string, def int) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	if v, ok := m.kv[key]; ok {
		return v
	}
	return def
}

// SetInt writes an integer to the kv bucket.
func (m *MemStore) SetInt(key string, v int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.kv[key] = v
	return nil
}

// SetMaxInt writes v only when it exceeds the stored value.
func (m *MemStore) SetMaxInt(key string, v int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cur, ok := m.kv[key]; !ok || v > cur {
		m.kv[key] = v
	}
	return nil
}

// Settle implements session.Settler.
func (m *MemStore) Settle(res session.Result) error {
	if res.Credits > 0 {
		wallet := m.GetInt(KeyWallet, 0)
		if err := m.SetInt(KeyWallet, wallet+res.Credits); err != nil {
			return err
		}
	}
	if _, err := m.SaveScore(res.GameID, res.Score); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	m.sessions = append(m.sessions, SessionEntry{
		ID:        m.nextID,
		GameID:    res.GameID,
		Score:     res.Score,
		Credits:   res.Credits,
		Duration:  int(res.Duration.Seconds()),
		EndReason: string(res.EndReason),
		CreatedAt: time.Now(),
	})
	return nil
}

// RecentSessions retrieves the most recent settled sessions.
func (m *MemStore) RecentSessions(limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	entries := make([]SessionEntry, len(m.sessions))
	copy(entries, m.sessions)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID > entries[j].ID
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// Ensure MemStore implements the full persistence surface.
var _ Store = (*MemStore)(nil)
