package combat

import "fmt"

// Rules are the balance constants shared by every actor in a run.
//
// ExpiryWindow and PotencyWindow are deliberately separate: a non-critical
// attack clears vengeance once ExpiryWindow has passed, while the damage
// bonus applies for anything under PotencyWindow. With the defaults the
// bonus still lands on the first attack after expiry.
type Rules struct {
	CritThreshold  float64 `json:"crit_threshold" yaml:"crit_threshold"`
	BuffMultiplier float64 `json:"buff_multiplier" yaml:"buff_multiplier"`
	ExpiryWindow   int     `json:"expiry_window" yaml:"expiry_window"`
	PotencyWindow  int     `json:"potency_window" yaml:"potency_window"`
}

func DefaultRules() Rules {
	return Rules{
		CritThreshold:  0.90,
		BuffMultiplier: 1.25,
		ExpiryWindow:   20,
		PotencyWindow:  200,
	}
}

// orDefault treats an all-zero Rules as unset. Individual zero fields are
// kept as given.
func (r Rules) orDefault() Rules {
	if r == (Rules{}) {
		return DefaultRules()
	}
	return r
}

// Record is the flat, serialisable form of an Event.
type Record struct {
	T       int            `json:"t"`
	Type    string         `json:"type"`
	Actor   string         `json:"actor"`
	Payload map[string]any `json:"payload,omitempty"`
}

type payloader interface {
	Payload() map[string]any
}

func RecordOf(ev Event) Record {
	rec := Record{T: ev.Time(), Type: ev.Kind(), Actor: actorName(ev.Actor())}
	if p, ok := ev.(payloader); ok {
		rec.Payload = p.Payload()
	}
	return rec
}

func Records(events []Event) []Record {
	out := make([]Record, 0, len(events))
	for _, ev := range events {
		out = append(out, RecordOf(ev))
	}
	return out
}

func actorName(a *Actor) string {
	if a == nil {
		return "<nobody>"
	}
	return a.Name
}

func actorLabel(a *Actor) string {
	if a == nil {
		return "<nobody>"
	}
	return fmt.Sprint(a)
}
