package util

import "testing"

func TestNew_ZeroSeedIsDeterministic(t *testing.T) {
	a := New(0)
	b := New(1)
	for i := 0; i < 5; i++ {
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("draw %d: New(0) = %v, expected %v (same as seed 1)", i, x, y)
		}
	}
}

func TestFixed(t *testing.T) {
	var src Source = Fixed(0.95)
	for i := 0; i < 3; i++ {
		if got := src.Float64(); got != 0.95 {
			t.Errorf("Fixed.Float64() = %v, expected 0.95", got)
		}
	}
}

func TestSequence_Wraps(t *testing.T) {
	s := NewSequence(0.1, 0.2, 0.3)
	want := []float64{0.1, 0.2, 0.3, 0.1, 0.2}
	for i, w := range want {
		if got := s.Float64(); got != w {
			t.Errorf("draw %d = %v, expected %v", i, got, w)
		}
	}
}

func TestSequence_Empty(t *testing.T) {
	s := NewSequence()
	if got := s.Float64(); got != 0 {
		t.Errorf("empty Sequence.Float64() = %v, expected 0", got)
	}
}
