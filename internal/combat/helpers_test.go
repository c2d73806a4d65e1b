package combat

import "fmt"

// scripted replays queued draws, then returns 0.
type scripted struct {
	draws []int
}

func script(draws ...int) *scripted { return &scripted{draws: draws} }

func (s *scripted) Intn(n int) int {
	if len(s.draws) == 0 {
		return 0
	}
	v := s.draws[0]
	s.draws = s.draws[1:]
	if v < 0 || v >= n {
		panic(fmt.Sprintf("scripted draw %d out of range [0,%d)", v, n))
	}
	return v
}

type snapshot struct {
	round   int
	defence Ability
	bossHP  int
	tags    []Ability
	health  []int
}

// recorder keeps one snapshot per Report call.
type recorder struct {
	snaps    []snapshot
	finished []Outcome
}

func (r *recorder) Report(round int, boss *Boss, heroes []*Hero) {
	s := snapshot{round: round, defence: boss.Defence(), bossHP: boss.Health()}
	for _, h := range heroes {
		s.tags = append(s.tags, h.Ability())
		s.health = append(s.health, h.Health())
	}
	r.snaps = append(r.snaps, s)
}

func (r *recorder) Finish(_ int, outcome Outcome) {
	r.finished = append(r.finished, outcome)
}

func newTurn(round int, boss *Boss, party *Party, src *scripted) *Turn {
	return &Turn{Round: round, Boss: boss, Party: party, Rng: src}
}
