package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"pgregory.net/rapid"
)

func TestNew_ZeroSeedIsStable(t *testing.T) {
	a, b := New(0), New(1)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestBetween_InclusiveRange(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		lo := rapid.IntRange(-50, 50).Draw(rt, "lo")
		span := rapid.IntRange(0, 50).Draw(rt, "span")
		seed := rapid.Int64().Draw(rt, "seed")
		v := Between(New(seed), lo, lo+span)
		assert.GreaterOrEqual(rt, v, lo)
		assert.LessOrEqual(rt, v, lo+span)
	})
}

func TestBetween_DegenerateRange(t *testing.T) {
	assert.Equal(t, 7, Between(New(3), 7, 7))
	assert.Equal(t, 7, Between(New(3), 7, 2))
}

func TestPick(t *testing.T) {
	_, ok := Pick[int](New(1), nil)
	assert.False(t, ok)

	items := []string{"a", "b", "c"}
	seen := map[string]bool{}
	src := New(42)
	for i := 0; i < 200; i++ {
		v, ok := Pick(src, items)
		assert.True(t, ok)
		seen[v] = true
	}
	assert.Len(t, seen, 3)
}

func TestNewLogged(t *testing.T) {
	src := New(9)
	assert.Same(t, src, NewLogged(src, nil))

	ref := New(9)
	logged := NewLogged(New(9), zap.NewNop())
	for i := 0; i < 10; i++ {
		assert.Equal(t, ref.Intn(6), logged.Intn(6))
	}
}
