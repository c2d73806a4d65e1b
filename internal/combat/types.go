package combat

import "fmt"

type Event struct {
	Round   int            `json:"round"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

// Ability tags a hero's special power. The boss blocks one tag per round.
type Ability string

const (
	AbilityCrit        Ability = "CRIT"
	AbilityBoost       Ability = "BOOST"
	AbilityHeal        Ability = "HEAL"
	AbilityBlockRevert Ability = "BLOCK_REVERT"
	AbilityRevive      Ability = "REVIVE"
	AbilitySteal       Ability = "STEAL"
	// Thor's tag is a legacy literal that does not name its effect.
	AbilityThorStun Ability = "SuperAbility.CRITICAL_DAMAGE"
	AbilityOnePunch Ability = "ONE_PUNCH"
	AbilitySummon   Ability = "SUMMON_SAITAMA"
)

// Entity holds the combat stats shared by the boss and heroes.
//
// Invariant: health >= 0. Zero means defeated.
type Entity struct {
	name   string
	health int
	damage int
}

func newEntity(name string, health, damage int) Entity {
	e := Entity{name: name, damage: damage}
	e.SetHealth(health)
	return e
}

func (e *Entity) Name() string { return e.name }
func (e *Entity) Health() int  { return e.health }
func (e *Entity) Damage() int  { return e.damage }
func (e *Entity) Alive() bool  { return e.health > 0 }

// SetHealth stores v, clamping negatives to 0.
func (e *Entity) SetHealth(v int) {
	if v < 0 {
		v = 0
	}
	e.health = v
}

// SetDamage has no floor; abilities may drop it to 0.
func (e *Entity) SetDamage(v int) { e.damage = v }

func (e *Entity) String() string {
	return fmt.Sprintf("%s health: %d damage: %d", e.name, e.health, e.damage)
}
