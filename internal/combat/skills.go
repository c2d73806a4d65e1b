package combat

import (
	"fmt"

	"raidsim/internal/config"
)

type heroCtor func(def config.HeroDef) *Hero

// classBook maps roster classes to hero constructors.
var classBook = map[string]heroCtor{
	config.ClassWarrior: func(d config.HeroDef) *Hero { return NewWarrior(d.Name, d.Health, d.Damage) },
	config.ClassMagic:   func(d config.HeroDef) *Hero { return NewMagic(d.Name, d.Health, d.Damage) },
	config.ClassMedic:   func(d config.HeroDef) *Hero { return NewMedic(d.Name, d.Health, d.Damage, d.HealPoints) },
	config.ClassBerserk: func(d config.HeroDef) *Hero { return NewBerserk(d.Name, d.Health, d.Damage) },
	config.ClassWitcher: func(d config.HeroDef) *Hero { return NewWitcher(d.Name, d.Health, d.Damage) },
	config.ClassHacker:  func(d config.HeroDef) *Hero { return NewHacker(d.Name, d.Health, d.Damage) },
	config.ClassThor:    func(d config.HeroDef) *Hero { return NewThor(d.Name, d.Health, d.Damage) },
	config.ClassKing:    func(d config.HeroDef) *Hero { return NewKing(d.Name, d.Health, d.Damage) },
	config.ClassSaitama: func(d config.HeroDef) *Hero { return NewSaitama(d.Name, d.Health, d.Damage) },
}

func NewHero(def config.HeroDef) (*Hero, error) {
	ctor, ok := classBook[def.Class]
	if !ok {
		return nil, fmt.Errorf("unknown hero class %q for %s", def.Class, def.Name)
	}
	return ctor(def), nil
}

// FromRoster builds a fresh boss and party. Every call returns independent
// state, so one roster can seed many battles.
func FromRoster(rc *config.RosterConfig) (*Boss, *Party, error) {
	if rc == nil {
		rc = config.DefaultRoster()
	}
	boss := NewBoss(rc.Boss.Name, rc.Boss.Health, rc.Boss.Damage)
	heroes := make([]*Hero, 0, len(rc.Heroes))
	for _, def := range rc.Heroes {
		h, err := NewHero(def)
		if err != nil {
			return nil, nil, err
		}
		heroes = append(heroes, h)
	}
	return boss, NewParty(heroes...), nil
}
