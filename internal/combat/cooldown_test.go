package combat

import "testing"

func TestCooldown_StrictBoundary(t *testing.T) {
	cd := Cooldown{Period: 7}
	for now := 0; now <= 20; now++ {
		want := now > 7
		if got := cd.Ready(now); got != want {
			t.Errorf("Ready(%d) = %v, expected %v", now, got, want)
		}
	}
}

func TestCooldown_TriggerAndReset(t *testing.T) {
	cd := Cooldown{Period: 3}
	cd.Trigger(10)
	if cd.Ready(13) {
		t.Error("Ready(13) after Trigger(10) = true, expected false")
	}
	if !cd.Ready(14) {
		t.Error("Ready(14) after Trigger(10) = false, expected true")
	}
	cd.Reset()
	if cd.Last != 0 {
		t.Errorf("Last after Reset = %d, expected 0", cd.Last)
	}
}
