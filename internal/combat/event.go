package combat

import (
	"fmt"
	"log/slog"
)

// Event is one thing an actor did at one tick. Events are immutable once
// constructed and live in a Ledger for the rest of the process.
type Event interface {
	Time() int
	Actor() *Actor
	Kind() string
	DamageEstimate() float64
	String() string
}

// Callback runs once against a freshly constructed event. An error or panic
// is logged and does not stop the remaining callbacks.
type Callback func(Event) error

type EventOptions struct {
	Ledger     *Ledger
	TrackActor bool
	Callbacks  []Callback
	Logger     *slog.Logger
}

// BaseEvent holds the fields every variant shares. Variants embed it, call
// Init first, set their own fields, then call Dispatch. Each of Init and
// Dispatch takes effect once; later calls are no-ops.
type BaseEvent struct {
	time      int
	actor     *Actor
	kind      string
	callbacks []Callback
	log       *slog.Logger

	initialized bool
	dispatched  bool
}

// Init registers self in the ledger and, when asked, in the actor's list.
// Callbacks are stored but not run.
func (b *BaseEvent) Init(self Event, actor *Actor, now int, opts EventOptions) {
	if b.initialized {
		return
	}
	b.initialized = true
	b.time = now
	b.actor = actor
	b.kind = self.Kind()
	b.callbacks = opts.Callbacks
	b.log = opts.Logger

	ledger := opts.Ledger
	if ledger == nil {
		ledger = DefaultLedger()
	}
	ledger.Append(self)
	if opts.TrackActor && actor != nil {
		actor.events = append(actor.events, self)
	}
}

// Dispatch invokes the stored callbacks in order with self.
func (b *BaseEvent) Dispatch(self Event) {
	if b.dispatched {
		return
	}
	b.dispatched = true
	for i, cb := range b.callbacks {
		if cb == nil {
			continue
		}
		if err := invokeCallback(cb, self); err != nil {
			b.logger().Warn("event callback failed",
				"index", i,
				"kind", b.kind,
				"actor", actorName(b.actor),
				"time", b.time,
				"err", err)
		}
	}
}

func invokeCallback(cb Callback, ev Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return cb(ev)
}

func (b *BaseEvent) logger() *slog.Logger {
	if b.log != nil {
		return b.log
	}
	return slog.Default()
}

func (b *BaseEvent) Time() int     { return b.time }
func (b *BaseEvent) Actor() *Actor { return b.actor }

func (b *BaseEvent) Kind() string {
	if b.kind == "" {
		return "Event"
	}
	return b.kind
}

// DamageEstimate is zero for variants that carry no magnitude.
func (b *BaseEvent) DamageEstimate() float64 { return 0 }

func (b *BaseEvent) String() string {
	return fmt.Sprintf("%s by %s at time %d", b.Kind(), actorLabel(b.actor), b.time)
}

type Attack struct {
	BaseEvent
	damage float64
	crit   bool
}

func NewAttack(actor *Actor, now int, damage float64, crit bool, opts EventOptions) *Attack {
	a := &Attack{}
	a.Init(a, actor, now, opts)
	a.damage = damage
	a.crit = crit
	a.Dispatch(a)
	return a
}

func (a *Attack) Kind() string            { return "Attack" }
func (a *Attack) Damage() float64         { return a.damage }
func (a *Attack) Crit() bool              { return a.crit }
func (a *Attack) DamageEstimate() float64 { return a.damage }

func (a *Attack) Payload() map[string]any {
	return map[string]any{"damage": a.damage, "crit": a.crit}
}

func (a *Attack) String() string {
	base := a.BaseEvent.String()
	if a.crit {
		base += " (!!!CRITICAL!!!)"
	}
	return fmt.Sprintf("%s: damage %g", base, a.damage)
}

type Spell struct {
	BaseEvent
	magicPower float64
}

func NewSpell(actor *Actor, now int, magicPower float64, opts EventOptions) *Spell {
	s := &Spell{}
	s.Init(s, actor, now, opts)
	s.magicPower = magicPower
	s.Dispatch(s)
	return s
}

func (s *Spell) Kind() string            { return "Spell" }
func (s *Spell) MagicPower() float64     { return s.magicPower }
func (s *Spell) DamageEstimate() float64 { return s.magicPower }

func (s *Spell) Payload() map[string]any {
	return map[string]any{"magic_power": s.magicPower}
}

func (s *Spell) String() string {
	return fmt.Sprintf("%s: magic power %g", s.BaseEvent.String(), s.magicPower)
}
