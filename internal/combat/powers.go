package combat

import (
	"fmt"

	"raidsim/internal/util"
)

const (
	maxBoostUses    = 4
	thorStunRoll    = 3
	thorResetDamage = 60
	summonOdds      = 10
)

// Power is a hero's special ability. The battle applies it right after the
// hero's attack, only while the hero and boss are alive and the hero's tag is
// not blocked.
type Power interface {
	Apply(t *Turn, self *Hero)
}

// pacifist powers make their hero skip the regular attack.
type pacifist interface {
	pacifist() bool
}

// Crit hits the boss again for damage x 2..5.
type Crit struct{}

func NewWarrior(name string, health, damage int) *Hero {
	return newHero(name, health, damage, AbilityCrit, &Crit{})
}

func (Crit) Apply(t *Turn, self *Hero) {
	coef := util.Between(t.Rng, 2, 5)
	hit := self.Damage() * coef
	t.Boss.SetHealth(t.Boss.Health() - hit)
	t.note("Crit", fmt.Sprintf("Warrior %s hit critically %d", self.Name(), hit), map[string]any{
		"hero": self.Name(), "coef": coef, "dmg": hit,
	})
}

// Boost raises the damage of living heroes by 1..5, up to maxBoostUses times
// per battle. Witcher and King never gain damage.
type Boost struct {
	uses int
}

func NewMagic(name string, health, damage int) *Hero {
	return newHero(name, health, damage, AbilityBoost, &Boost{})
}

func (b *Boost) Uses() int { return b.uses }

func (b *Boost) Apply(t *Turn, self *Hero) {
	if b.uses >= maxBoostUses {
		t.note("BoostSpent", fmt.Sprintf("Magic boost is no longer available in round %d", t.Round), map[string]any{
			"hero": self.Name(),
		})
		return
	}
	if !self.Alive() {
		return
	}
	amount := util.Between(t.Rng, 1, 5)
	for _, hero := range t.Party.Heroes {
		if !hero.Alive() {
			continue
		}
		switch hero.power.(type) {
		case *Revive, *Summon:
			continue
		}
		hero.SetDamage(hero.Damage() + amount)
	}
	b.uses++
	t.note("Boost", fmt.Sprintf("Magic boosted the attack of all heroes by %d in round %d", amount, t.Round), map[string]any{
		"hero": self.Name(), "amount": amount, "uses": b.uses,
	})
}

// Heal adds a fixed amount to every other living hero. There is no health cap.
type Heal struct {
	points int
}

func NewMedic(name string, health, damage, healPoints int) *Hero {
	return newHero(name, health, damage, AbilityHeal, &Heal{points: healPoints})
}

func (h *Heal) Points() int { return h.points }

func (h *Heal) Apply(t *Turn, self *Hero) {
	for _, hero := range t.Party.Heroes {
		if hero.Alive() && hero != self {
			hero.SetHealth(hero.Health() + h.points)
		}
	}
	t.note("Heal", "healed the party", map[string]any{"hero": self.Name(), "amount": h.points})
}

// BlockRevert returns the damage last blocked from the boss's attack.
type BlockRevert struct {
	blocked int
}

func NewBerserk(name string, health, damage int) *Hero {
	return newHero(name, health, damage, AbilityBlockRevert, &BlockRevert{})
}

func (b *BlockRevert) Blocked() int { return b.blocked }

func (b *BlockRevert) Apply(t *Turn, self *Hero) {
	t.Boss.SetHealth(t.Boss.Health() - b.blocked)
	t.note("BlockRevert", fmt.Sprintf("Berserk %s reverted %d damage to boss", self.Name(), b.blocked), map[string]any{
		"hero": self.Name(), "dmg": b.blocked,
	})
}

// Revive trades the witcher's own health for the first fallen hero's life.
// It fires at most once per battle.
type Revive struct {
	used bool
}

func NewWitcher(name string, health, damage int) *Hero {
	return newHero(name, health, damage, AbilityRevive, &Revive{})
}

func (r *Revive) Used() bool { return r.used }

func (r *Revive) Apply(t *Turn, self *Hero) {
	if r.used {
		return
	}
	for _, hero := range t.Party.Heroes {
		if hero.Health() != 0 {
			continue
		}
		hero.SetHealth(self.Health())
		self.SetHealth(0)
		r.used = true
		t.note("Revive", fmt.Sprintf("%s sacrifices themselves to revive %s", self.Name(), hero.Name()), map[string]any{
			"hero": self.Name(), "target": hero.Name(), "hp": hero.Health(),
		})
		return
	}
}

// Steal acts every second activation: it drains 10..30 health from the boss
// and hands it to a random living hero, the hacker included.
type Steal struct {
	sinceLast int
	stolen    int
}

func NewHacker(name string, health, damage int) *Hero {
	return newHero(name, health, damage, AbilitySteal, &Steal{})
}

// Stolen is the amount taken by the most recent steal.
func (s *Steal) Stolen() int { return s.stolen }

func (s *Steal) Apply(t *Turn, self *Hero) {
	if s.sinceLast != 1 {
		s.sinceLast++
		return
	}
	s.sinceLast = 0
	if !t.Boss.Alive() || !self.Alive() {
		return
	}
	amount := util.Between(t.Rng, 10, 30)
	s.stolen = amount
	t.Boss.SetHealth(t.Boss.Health() - amount)
	target, ok := util.Pick(t.Rng, t.Party.Living())
	if !ok {
		return
	}
	target.SetHealth(target.Health() + amount)
	t.note("Steal", fmt.Sprintf("Hacker %s stole %d health from the Boss and gave it to %s in round %d",
		self.Name(), amount, target.Name(), t.Round), map[string]any{
		"hero": self.Name(), "amount": amount, "target": target.Name(),
	})
}

// ThorStun rolls a d6 each activation. A 3 disarms and stuns the boss for one
// round; any other roll clears the stun and resets boss damage to 60.
type ThorStun struct{}

func NewThor(name string, health, damage int) *Hero {
	return newHero(name, health, damage, AbilityThorStun, &ThorStun{})
}

func (ThorStun) Apply(t *Turn, self *Hero) {
	if t.Round <= 0 {
		return
	}
	if util.Between(t.Rng, 1, 6) == thorStunRoll {
		t.Boss.SetDamage(0)
		t.Boss.SetStunned(true)
		t.note("Stun", fmt.Sprintf("Boss %s is stunned by %s for 1 round", t.Boss.Name(), self.Name()), map[string]any{
			"hero": self.Name(),
		})
		return
	}
	t.Boss.SetStunned(false)
	t.Boss.SetDamage(thorResetDamage)
}

// OnePunch ends the fight.
type OnePunch struct{}

func NewSaitama(name string, health, damage int) *Hero {
	return newHero(name, health, damage, AbilityOnePunch, &OnePunch{})
}

func (OnePunch) Apply(t *Turn, self *Hero) {
	t.Boss.SetHealth(0)
	t.note("OnePunch", fmt.Sprintf("%s used ONE PUNCH and defeated the Boss!", self.Name()), map[string]any{
		"hero": self.Name(),
	})
}

// Summon gives a 1 in 10 chance per activation to call Saitama into the party.
// Saitama punches at once instead of waiting for a turn. The king never attacks.
type Summon struct {
	summoned int
}

func NewKing(name string, health, damage int) *Hero {
	return newHero(name, health, damage, AbilitySummon, &Summon{})
}

// Summoned counts successful summons.
func (s *Summon) Summoned() int { return s.summoned }

func (*Summon) pacifist() bool { return true }

func (s *Summon) Apply(t *Turn, self *Hero) {
	if util.Between(t.Rng, 1, summonOdds) != 1 {
		t.note("SummonFailed", fmt.Sprintf("%s tried to summon Saitama, but failed.", self.Name()), map[string]any{
			"hero": self.Name(),
		})
		return
	}
	saitama := NewSaitama("Saitama", 1000, 10000)
	t.Party.Add(saitama)
	s.summoned++
	t.note("Summon", fmt.Sprintf("%s summoned %s who will now defeat the Boss!", self.Name(), saitama.Name()), map[string]any{
		"hero": self.Name(), "summoned": saitama.Name(),
	})
	saitama.power.Apply(t, saitama)
}
