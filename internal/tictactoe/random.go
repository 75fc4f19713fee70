package tictactoe

import (
	"math/rand"
	"sync"
)

// SyncRandom is a seeded random source safe for concurrent games sharing one CPU.
type SyncRandom struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewSyncRandom(seed int64) *SyncRandom {
	return &SyncRandom{
		rnd: rand.New(rand.NewSource(seed)), //nolint: gosec // game moves, not secrets
	}
}

func (that *SyncRandom) Float64() float64 {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.rnd.Float64()
}

func (that *SyncRandom) Intn(n int) int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.rnd.Intn(n)
}
