package combat

import (
	"encoding/json"
	"maps"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"raidsim/internal/util"
)

type Outcome string

const (
	Ongoing   Outcome = "ongoing"
	HeroesWin Outcome = "heroes"
	BossWins  Outcome = "boss"
	Stalemate Outcome = "stalemate"
)

func (o Outcome) Message() string {
	switch o {
	case HeroesWin:
		return "Heroes won!!!"
	case BossWins:
		return "Boss won!!!"
	case Stalemate:
		return "Nobody won, the round limit was reached."
	}
	return ""
}

// Reporter receives the battle state once before the first round, once after
// every round, and the outcome at the end.
type Reporter interface {
	Report(round int, boss *Boss, heroes []*Hero)
	Finish(round int, outcome Outcome)
}

// Turn is the state a power sees while it resolves.
type Turn struct {
	Round int
	Boss  *Boss
	Party *Party
	Rng   util.Source

	emit   func(Event)
	logger *zap.Logger
}

// note records an event and logs it at debug level.
func (t *Turn) note(typ, msg string, payload map[string]any) {
	if t.emit != nil {
		t.emit(Event{Round: t.Round, Type: typ, Payload: payload})
	}
	if t.logger == nil || !t.logger.Core().Enabled(zap.DebugLevel) {
		return
	}
	fields := make([]zap.Field, 0, len(payload)+2)
	fields = append(fields, zap.Int("round", t.Round), zap.String("event", typ))
	for _, k := range slices.Sorted(maps.Keys(payload)) {
		fields = append(fields, zap.Any(k, payload[k]))
	}
	t.logger.Debug(msg, fields...)
}

type Options struct {
	// Rng defaults to a source seeded with 1.
	Rng      util.Source
	Reporter Reporter
	Logger   *zap.Logger
	// MaxRounds ends the battle as a stalemate; 0 means unlimited.
	MaxRounds int
	// Record keeps every Event in the Result.
	Record bool
}

type Battle struct {
	Boss  *Boss
	Party *Party
	Round int

	opts   Options
	events []Event
}

func NewBattle(boss *Boss, party *Party, opts Options) *Battle {
	if opts.Rng == nil {
		opts.Rng = util.New(1)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Battle{Boss: boss, Party: party, opts: opts}
}

func (b *Battle) turn() *Turn {
	t := &Turn{Round: b.Round, Boss: b.Boss, Party: b.Party, Rng: b.opts.Rng, logger: b.opts.Logger}
	if b.opts.Record {
		t.emit = func(ev Event) { b.events = append(b.events, ev) }
	}
	return t
}

// Outcome reports the winner so far. A dead boss wins for the heroes even if
// every hero has also fallen.
func (b *Battle) Outcome() Outcome {
	if b.Boss.Health() <= 0 {
		return HeroesWin
	}
	if b.Party.AllDefeated() {
		return BossWins
	}
	return Ongoing
}

func (b *Battle) IsOver() bool { return b.Outcome() != Ongoing }

// PlayRound resolves one round: the boss picks a defence and attacks, then
// every hero in turn order attacks and uses its power unless it is dead, the
// boss is dead, or its ability is the one blocked.
//
// Heroes that join mid-round (a summoned Saitama) are not visited by this pass.
func (b *Battle) PlayRound() {
	b.Round++
	t := b.turn()

	b.Boss.ChooseDefence(t.Rng, b.Party.Heroes)
	t.note("Defence", "boss picked defence", map[string]any{"defence": string(b.Boss.Defence())})
	b.Boss.Attack(t)

	n := len(b.Party.Heroes)
	for i := 0; i < n; i++ {
		hero := b.Party.Heroes[i]
		if !hero.Alive() || !b.Boss.Alive() {
			continue
		}
		if hero.Ability() == b.Boss.Defence() {
			t.note("Blocked", "hero blocked", map[string]any{"hero": hero.Name()})
			continue
		}
		hero.Attack(b.Boss)
		if hero.power != nil {
			hero.power.Apply(t, hero)
		}
	}
	b.report()
}

func (b *Battle) report() {
	if b.opts.Reporter != nil {
		b.opts.Reporter.Report(b.Round, b.Boss, b.Party.Heroes)
	}
}

// Run reports the initial state and plays rounds until the battle is over or
// the round limit is hit.
func (b *Battle) Run() Result {
	b.report()
	outcome := b.Outcome()
	for outcome == Ongoing {
		if b.opts.MaxRounds > 0 && b.Round >= b.opts.MaxRounds {
			outcome = Stalemate
			break
		}
		b.PlayRound()
		outcome = b.Outcome()
	}
	if b.opts.Reporter != nil {
		b.opts.Reporter.Finish(b.Round, outcome)
	}
	b.opts.Logger.Debug("battle finished",
		zap.String("outcome", string(outcome)),
		zap.Int("rounds", b.Round),
		zap.Int("boss_hp", b.Boss.Health()),
	)
	return b.result(outcome)
}

type Result struct {
	ID         string      `json:"id"`
	Outcome    Outcome     `json:"outcome"`
	Rounds     int         `json:"rounds"`
	BossHealth int         `json:"boss_health"`
	Survivors  []string    `json:"survivors"`
	Summoned   bool        `json:"summoned"`
	Heroes     []HeroState `json:"heroes"`
	Events     []Event     `json:"events,omitempty"`
}

type HeroState struct {
	Name    string  `json:"name"`
	Ability Ability `json:"ability"`
	Health  int     `json:"health"`
	Damage  int     `json:"damage"`
}

func (b *Battle) result(outcome Outcome) Result {
	res := Result{
		ID:         uuid.NewString(),
		Outcome:    outcome,
		Rounds:     b.Round,
		BossHealth: b.Boss.Health(),
		Survivors:  []string{},
	}
	for _, h := range b.Party.Heroes {
		res.Heroes = append(res.Heroes, HeroState{
			Name: h.Name(), Ability: h.Ability(), Health: h.Health(), Damage: h.Damage(),
		})
		if h.Alive() {
			res.Survivors = append(res.Survivors, h.Name())
		}
		if s, ok := h.power.(*Summon); ok && s.Summoned() > 0 {
			res.Summoned = true
		}
	}
	if b.opts.Record {
		res.Events = b.events
	}
	return res
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
