package combat

import (
	"fmt"

	"raidsim/internal/util"
)

// berserkBlocks are the amounts a berserk can shave off a boss blow.
var berserkBlocks = []int{5, 10}

type Boss struct {
	Entity
	defence Ability
	stunned bool
}

func NewBoss(name string, health, damage int) *Boss {
	return &Boss{Entity: newEntity(name, health, damage)}
}

// Defence is the ability tag blocked this round.
func (b *Boss) Defence() Ability     { return b.defence }
func (b *Boss) SetDefence(a Ability) { b.defence = a }
func (b *Boss) Stunned() bool        { return b.stunned }
func (b *Boss) SetStunned(stun bool) { b.stunned = stun }

// ChooseDefence blocks the ability of one hero picked uniformly from the
// whole roster, defeated heroes included. An empty roster keeps the old defence.
func (b *Boss) ChooseDefence(src util.Source, heroes []*Hero) {
	hero, ok := util.Pick(src, heroes)
	if !ok {
		return
	}
	b.defence = hero.Ability()
}

// Attack hits every living hero once. A stunned boss skips the attack and
// recovers for the next round.
//
// A berserk whose tag is not blocked absorbs 5 or 10 points and takes
// damage-block. When the block exceeds the boss damage the delta is negative
// and the berserk gains health; the arithmetic is kept as is.
func (b *Boss) Attack(t *Turn) {
	if b.stunned {
		b.stunned = false
		t.note("BossStunned", fmt.Sprintf("Boss %s is stunned and skips this round!", b.Name()), map[string]any{
			"boss": b.Name(),
		})
		return
	}
	for _, hero := range t.Party.Heroes {
		if !hero.Alive() {
			continue
		}
		if berserk, ok := hero.power.(*BlockRevert); ok && b.defence != hero.Ability() {
			block, _ := util.Pick(t.Rng, berserkBlocks)
			berserk.blocked = block
			hero.SetHealth(hero.Health() - (b.Damage() - block))
			t.note("BossHit", "partially blocked hit", map[string]any{
				"target": hero.Name(), "dmg": b.Damage() - block, "blocked": block, "hp": hero.Health(),
			})
			continue
		}
		hero.SetHealth(hero.Health() - b.Damage())
		t.note("BossHit", "hit", map[string]any{
			"target": hero.Name(), "dmg": b.Damage(), "hp": hero.Health(),
		})
	}
}

func (b *Boss) String() string {
	return fmt.Sprintf("BOSS %s defence: %s", b.Entity.String(), b.defence)
}
