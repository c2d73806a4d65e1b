package combat

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"raidsim/internal/config"
	"raidsim/internal/util"
)

// seedStride spreads per-battle seeds apart.
const seedStride = 7919

type BatchSpec struct {
	Roster    *config.RosterConfig
	Runs      int
	Workers   int
	Seed      int64
	MaxRounds int
	Logger    *zap.Logger
}

type Summary struct {
	Runs       int     `json:"runs"`
	HeroWins   int     `json:"hero_wins"`
	BossWins   int     `json:"boss_wins"`
	Stalemates int     `json:"stalemates"`
	WinRate    float64 `json:"win_rate"`
	AvgRounds  float64 `json:"avg_rounds"`
	Summons    int     `json:"summons"`
	// Survival counts battles each hero finished alive.
	Survival map[string]int `json:"survival"`

	totalRounds int
}

func (s *Summary) add(res Result) {
	s.Runs++
	switch res.Outcome {
	case HeroesWin:
		s.HeroWins++
	case BossWins:
		s.BossWins++
	case Stalemate:
		s.Stalemates++
	}
	if res.Summoned {
		s.Summons++
	}
	s.totalRounds += res.Rounds
	for _, name := range res.Survivors {
		s.Survival[name]++
	}
}

func (s *Summary) finish() {
	if s.Runs == 0 {
		return
	}
	s.WinRate = float64(s.HeroWins) / float64(s.Runs)
	s.AvgRounds = float64(s.totalRounds) / float64(s.Runs)
}

// RunBatch plays spec.Runs independent battles on at most spec.Workers
// goroutines. Battle i uses seed spec.Seed + i*seedStride, so equal specs give
// equal summaries.
func RunBatch(ctx context.Context, spec BatchSpec) (Summary, error) {
	logger := spec.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	workers := spec.Workers
	if workers < 1 {
		workers = 1
	}

	st := Summary{Survival: map[string]int{}}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < spec.Runs; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			boss, party, err := FromRoster(spec.Roster)
			if err != nil {
				return err
			}
			battle := NewBattle(boss, party, Options{
				Rng:       util.New(spec.Seed + int64(i)*seedStride),
				MaxRounds: spec.MaxRounds,
			})
			res := battle.Run()

			mu.Lock()
			st.add(res)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}
	st.finish()
	logger.Info("batch finished",
		zap.Int("runs", st.Runs),
		zap.Float64("win_rate", st.WinRate),
		zap.Float64("avg_rounds", st.AvgRounds),
	)
	return st, nil
}
