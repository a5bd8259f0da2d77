package game

import (
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"
)

// Store is a string key/value medium for data that outlives a game
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (store *MemoryStore) Get(key string) (string, bool) {
	store.mu.RLock()
	defer store.mu.RUnlock()
	value, ok := store.values[key]
	return value, ok
}

func (store *MemoryStore) Set(key, value string) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.values[key] = value
	return nil
}

// loadHighScore reads the persisted high score. Missing, malformed and
// negative values all count as zero.
func loadHighScore(store Store, logger logrus.FieldLogger) int {
	raw, ok := store.Get(HighScoreKey)
	if !ok {
		return 0
	}

	highScore, err := strconv.Atoi(raw)
	if err != nil || highScore < 0 {
		logger.WithField("value", raw).Warn("ignoring malformed high score")
		return 0
	}
	return highScore
}

func saveHighScore(store Store, highScore int, logger logrus.FieldLogger) {
	if err := store.Set(HighScoreKey, strconv.Itoa(highScore)); err != nil {
		logger.WithError(err).Warn("failed to persist high score")
	}
}
