package combat

// Ledger is the ordered, append-only log of every event constructed against
// it. It is not safe for concurrent use; give each goroutine its own.
type Ledger struct {
	events []Event
}

func NewLedger() *Ledger { return &Ledger{} }

var defaultLedger = NewLedger()

// DefaultLedger is the process-wide ledger used when an Env has none.
func DefaultLedger() *Ledger { return defaultLedger }

func (l *Ledger) Append(ev Event) {
	l.events = append(l.events, ev)
}

func (l *Ledger) Len() int { return len(l.events) }

func (l *Ledger) At(i int) Event { return l.events[i] }

// Events returns a copy of the log. The events themselves are shared.
func (l *Ledger) Events() []Event {
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

func (l *Ledger) ByActor(a *Actor) []Event {
	var out []Event
	for _, ev := range l.events {
		if ev.Actor() == a {
			out = append(out, ev)
		}
	}
	return out
}

// Clear drops every entry. Only tests and fresh sessions should call it.
func (l *Ledger) Clear() {
	l.events = nil
}
