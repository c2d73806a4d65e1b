package config

import (
	"fmt"
	"strings"
)

// Hero classes understood by the combat package.
const (
	ClassWarrior = "warrior"
	ClassMagic   = "magic"
	ClassMedic   = "medic"
	ClassBerserk = "berserk"
	ClassWitcher = "witcher"
	ClassHacker  = "hacker"
	ClassThor    = "thor"
	ClassKing    = "king"
	ClassSaitama = "saitama"
)

var knownClasses = map[string]bool{
	ClassWarrior: true, ClassMagic: true, ClassMedic: true,
	ClassBerserk: true, ClassWitcher: true, ClassHacker: true,
	ClassThor: true, ClassKing: true, ClassSaitama: true,
}

// RosterConfig is one battle line-up: the boss and the heroes in turn order.
type RosterConfig struct {
	Boss   BossDef   `yaml:"boss"`
	Heroes []HeroDef `yaml:"heroes"`
}

type HeroDef struct {
	Class      string `yaml:"class"`
	Name       string `yaml:"name"`
	Health     int    `yaml:"health"`
	Damage     int    `yaml:"damage"`
	HealPoints int    `yaml:"heal_points"`
	Note       string `yaml:"note"`
}

// Validate checks the roster and reports every violation at once.
func (r RosterConfig) Validate() error {
	var errs []string
	if r.Boss.Name == "" {
		errs = append(errs, "boss.name must not be empty")
	}
	if r.Boss.Health <= 0 {
		errs = append(errs, fmt.Sprintf("boss.health must be > 0, got %d", r.Boss.Health))
	}
	if len(r.Heroes) == 0 {
		errs = append(errs, "heroes must not be empty")
	}
	for i, h := range r.Heroes {
		if h.Name == "" {
			errs = append(errs, fmt.Sprintf("heroes[%d].name must not be empty", i))
		}
		if !knownClasses[h.Class] {
			errs = append(errs, fmt.Sprintf("heroes[%d].class %q is unknown", i, h.Class))
		}
		if h.Health < 0 {
			errs = append(errs, fmt.Sprintf("heroes[%d].health must be >= 0, got %d", i, h.Health))
		}
		if h.HealPoints < 0 {
			errs = append(errs, fmt.Sprintf("heroes[%d].heal_points must be >= 0, got %d", i, h.HealPoints))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("roster validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// DefaultRoster is the classic line-up: Lord against ten heroes.
func DefaultRoster() *RosterConfig {
	return &RosterConfig{
		Boss: BossDef{Name: "Lord", Health: 2500, Damage: 50},
		Heroes: []HeroDef{
			{Class: ClassWarrior, Name: "Brane", Health: 280, Damage: 15},
			{Class: ClassWarrior, Name: "Alucard", Health: 270, Damage: 20},
			{Class: ClassMagic, Name: "Subaru", Health: 290, Damage: 10},
			{Class: ClassMedic, Name: "Merlin", Health: 250, Damage: 5, HealPoints: 15},
			{Class: ClassMedic, Name: "Florin", Health: 300, Damage: 5, HealPoints: 5},
			{Class: ClassBerserk, Name: "Guts", Health: 260, Damage: 10},
			{Class: ClassWitcher, Name: "Estes", Health: 300, Damage: 0},
			{Class: ClassHacker, Name: "Ronaldo", Health: 270, Damage: 13},
			{Class: ClassThor, Name: "Thor", Health: 260, Damage: 10},
			{Class: ClassKing, Name: "King", Health: 200, Damage: 0},
		},
	}
}
