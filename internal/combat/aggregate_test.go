package combat

import "testing"

func TestAggregate_SumOfAttacks(t *testing.T) {
	ledger := NewLedger()
	a := jeremy()
	opts := EventOptions{Ledger: ledger, TrackActor: true}
	for i, dmg := range []float64{10, 20, 30} {
		NewAttack(a, i, dmg, i == 1, opts)
	}

	if got := TotalDamage(a.Events()); got != 60 {
		t.Errorf("TotalDamage = %v, expected 60", got)
	}
	if got := DamageByActor(ledger.Events())["Jeremy"]; got != 60 {
		t.Errorf("DamageByActor[Jeremy] = %v, expected 60", got)
	}
	crits := Criticals(ledger.Events())
	if len(crits) != 1 || crits[0].Damage() != 20 {
		t.Errorf("Criticals = %v, expected the 20-damage attack", crits)
	}
}

func TestAggregate_CountKinds(t *testing.T) {
	ledger := NewLedger()
	a := jeremy()
	opts := EventOptions{Ledger: ledger}
	NewAttack(a, 1, 1, false, opts)
	NewSpell(a, 2, 1, opts)
	NewSpell(a, 3, 1, opts)
	newTaunt(a, 4, opts)

	kinds := CountKinds(ledger.Events())
	if kinds["Attack"] != 1 || kinds["Spell"] != 2 || kinds["Taunt"] != 1 {
		t.Errorf("CountKinds = %v", kinds)
	}
	if got := TotalDamage(ledger.Events()); got != 3 {
		t.Errorf("TotalDamage with taunt = %v, expected 3", got)
	}
}
