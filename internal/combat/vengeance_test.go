package combat

import "testing"

func TestVengeance_Transitions(t *testing.T) {
	rules := DefaultRules()
	var v Vengeance

	if v.Active() || v.State() != BuffInactive {
		t.Fatalf("zero Vengeance state = %v, expected inactive", v.State())
	}

	v.Observe(5, false, rules)
	if v.Active() {
		t.Error("non-critical attack activated vengeance")
	}

	v.Observe(10, true, rules)
	if since, ok := v.Since(); !ok || since != 10 {
		t.Fatalf("Since() = %d, %v, expected 10, true", since, ok)
	}

	v.Observe(30, false, rules)
	if !v.Active() {
		t.Error("vengeance cleared at elapsed 20, expected to stay active")
	}

	v.Observe(25, true, rules)
	if since, _ := v.Since(); since != 25 {
		t.Errorf("re-armed Since() = %d, expected 25", since)
	}

	v.Observe(46, false, rules)
	if v.Active() {
		t.Error("vengeance active at elapsed 21, expected cleared")
	}
	if v.State().String() != "inactive" {
		t.Errorf("State().String() = %q, expected inactive", v.State().String())
	}
}

func TestVengeance_PotencyUsesItsOwnWindow(t *testing.T) {
	rules := DefaultRules()
	var v Vengeance
	if v.Potent(0, rules) {
		t.Error("inactive vengeance reported potent")
	}
	v.Arm(10)
	if !v.Potent(50, rules) {
		t.Error("Potent(50) since 10 = false, expected true (40 < 200)")
	}
	if !v.Potent(209, rules) {
		t.Error("Potent(209) since 10 = false, expected true (199 < 200)")
	}
	if v.Potent(210, rules) {
		t.Error("Potent(210) since 10 = true, expected false")
	}
}
