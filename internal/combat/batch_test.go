package combat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raidsim/internal/config"
)

func TestRunBatch_CountsAddUp(t *testing.T) {
	sum, err := RunBatch(context.Background(), BatchSpec{
		Roster: config.DefaultRoster(), Runs: 40, Workers: 4, Seed: 7, MaxRounds: 1000,
	})
	require.NoError(t, err)
	assert.Equal(t, 40, sum.Runs)
	assert.Equal(t, sum.Runs, sum.HeroWins+sum.BossWins+sum.Stalemates)
	assert.InDelta(t, float64(sum.HeroWins)/40, sum.WinRate, 1e-9)
	assert.Greater(t, sum.AvgRounds, 0.0)
	assert.LessOrEqual(t, sum.Summons, sum.Runs)
	for name, n := range sum.Survival {
		assert.LessOrEqual(t, n, sum.Runs, name)
	}
}

func TestRunBatch_Deterministic(t *testing.T) {
	spec := BatchSpec{Runs: 25, Workers: 8, Seed: 42, MaxRounds: 1000}
	a, err := RunBatch(context.Background(), spec)
	require.NoError(t, err)
	spec.Workers = 1
	b, err := RunBatch(context.Background(), spec)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRunBatch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := RunBatch(ctx, BatchSpec{Runs: 10, Workers: 2})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunBatch_BadRoster(t *testing.T) {
	rc := config.DefaultRoster()
	rc.Heroes[0].Class = "bard"
	_, err := RunBatch(context.Background(), BatchSpec{Roster: rc, Runs: 3, Workers: 2})
	assert.Error(t, err)
}
