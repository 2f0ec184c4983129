package combat

func TotalDamage(events []Event) float64 {
	total := 0.0
	for _, ev := range events {
		total += ev.DamageEstimate()
	}
	return total
}

// DamageByActor sums DamageEstimate per actor name.
func DamageByActor(events []Event) map[string]float64 {
	out := map[string]float64{}
	for _, ev := range events {
		out[actorName(ev.Actor())] += ev.DamageEstimate()
	}
	return out
}

func Criticals(events []Event) []*Attack {
	var out []*Attack
	for _, ev := range events {
		if atk, ok := ev.(*Attack); ok && atk.Crit() {
			out = append(out, atk)
		}
	}
	return out
}

func CountKinds(events []Event) map[string]int {
	out := map[string]int{}
	for _, ev := range events {
		out[ev.Kind()]++
	}
	return out
}
