package combat

type Hero struct {
	Entity
	ability Ability
	power   Power
}

func newHero(name string, health, damage int, ability Ability, power Power) *Hero {
	return &Hero{Entity: newEntity(name, health, damage), ability: ability, power: power}
}

func (h *Hero) Ability() Ability { return h.ability }
func (h *Hero) Power() Power     { return h.power }

// Attack strikes the boss for the hero's damage. Pacifist powers skip it.
func (h *Hero) Attack(boss *Boss) {
	if p, ok := h.power.(pacifist); ok && p.pacifist() {
		return
	}
	boss.SetHealth(boss.Health() - h.Damage())
}

// Party is the hero roster. Slice order is turn order; heroes are appended,
// never removed.
type Party struct {
	Heroes []*Hero
}

func NewParty(heroes ...*Hero) *Party {
	return &Party{Heroes: heroes}
}

func (p *Party) Add(h *Hero) { p.Heroes = append(p.Heroes, h) }

// Living returns the heroes with health > 0, in turn order.
func (p *Party) Living() []*Hero {
	var out []*Hero
	for _, h := range p.Heroes {
		if h.Alive() {
			out = append(out, h)
		}
	}
	return out
}

// AllDefeated reports whether no hero has health left. An empty party counts as defeated.
func (p *Party) AllDefeated() bool {
	for _, h := range p.Heroes {
		if h.Health() > 0 {
			return false
		}
	}
	return true
}

func (p *Party) Find(name string) *Hero {
	for _, h := range p.Heroes {
		if h.Name() == name {
			return h
		}
	}
	return nil
}
