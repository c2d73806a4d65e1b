package util

import (
	"math/rand"

	"go.uber.org/zap"
)

// Source is the randomness provider for a battle.
//
// *rand.Rand satisfies it.
type Source interface {
	// Intn returns a random int in [0, n). n must be > 0.
	Intn(n int) int
}

func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}

// Between returns a uniform int in the inclusive range [lo, hi].
func Between(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.Intn(hi-lo+1)
}

// Pick returns a uniformly chosen element of items. ok is false for an empty slice.
func Pick[T any](src Source, items []T) (item T, ok bool) {
	if len(items) == 0 {
		return item, false
	}
	return items[src.Intn(len(items))], true
}

type loggedSource struct {
	src    Source
	logger *zap.Logger
}

// NewLogged wraps src so every draw is logged at debug level.
func NewLogged(src Source, logger *zap.Logger) Source {
	if logger == nil {
		return src
	}
	return &loggedSource{src: src, logger: logger}
}

func (l *loggedSource) Intn(n int) int {
	v := l.src.Intn(n)
	l.logger.Debug("rng draw", zap.Int("n", n), zap.Int("value", v))
	return v
}
