package combat

import "fmt"

type ActorSpec struct {
	Name           string
	Class          string
	Damage         float64
	MagicPower     float64
	AttackCooldown int
	SpellCooldown  int
}

// Actor is a combatant with fixed base stats plus cooldown and buff state
// that its own events mutate through callbacks.
type Actor struct {
	Name       string
	Class      string
	Damage     float64
	MagicPower float64

	AtkCD   Cooldown
	SpellCD Cooldown
	Buff    Vengeance

	events    []Event
	observers []Callback
}

func NewActor(spec ActorSpec) *Actor {
	class := spec.Class
	if class == "" {
		class = "Paladin"
	}
	return &Actor{
		Name:       spec.Name,
		Class:      class,
		Damage:     spec.Damage,
		MagicPower: spec.MagicPower,
		AtkCD:      Cooldown{Period: spec.AttackCooldown},
		SpellCD:    Cooldown{Period: spec.SpellCooldown},
	}
}

func (a *Actor) String() string { return fmt.Sprintf("%s the %s", a.Name, a.Class) }

func (a *Actor) AttackReady(now int) bool { return a.AtkCD.Ready(now) }
func (a *Actor) SpellReady(now int) bool  { return a.SpellCD.Ready(now) }

// Events returns the events recorded for this actor, oldest first.
func (a *Actor) Events() []Event {
	out := make([]Event, len(a.events))
	copy(out, a.events)
	return out
}

// OnEvent adds a callback that runs after the actor's own state transitions
// for every event it produces.
func (a *Actor) OnEvent(cb Callback) {
	a.observers = append(a.observers, cb)
}

// Reset restores cooldowns and vengeance to their initial state. The event
// list is kept.
func (a *Actor) Reset() {
	a.AtkCD.Reset()
	a.SpellCD.Reset()
	a.Buff.Clear()
}

// Decide picks this tick's action: attack if ready, otherwise spell if
// ready, otherwise nothing. Returning nil has no side effects.
func (a *Actor) Decide(env *Env) Event {
	now := env.Time
	if a.AttackReady(now) {
		rules := env.rules()
		damage := a.Damage
		if a.Buff.Potent(now, rules) {
			damage *= rules.BuffMultiplier
		}
		crit := env.rollCrit()
		return NewAttack(a, now, damage, crit, env.eventOptions(a.attackCallbacks(rules)))
	}
	if a.SpellReady(now) {
		return NewSpell(a, now, a.MagicPower, env.eventOptions(a.spellCallbacks()))
	}
	return nil
}

func (a *Actor) attackCallbacks(rules Rules) []Callback {
	cbs := []Callback{
		func(ev Event) error {
			a.AtkCD.Trigger(ev.Time())
			return nil
		},
		func(ev Event) error {
			atk, ok := ev.(*Attack)
			if !ok {
				return fmt.Errorf("vengeance update: unexpected event %T", ev)
			}
			a.Buff.Observe(atk.Time(), atk.Crit(), rules)
			return nil
		},
	}
	return append(cbs, a.observers...)
}

func (a *Actor) spellCallbacks() []Callback {
	cbs := []Callback{
		func(ev Event) error {
			a.SpellCD.Trigger(ev.Time())
			return nil
		},
	}
	return append(cbs, a.observers...)
}
