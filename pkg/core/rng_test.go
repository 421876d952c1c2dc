package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 64; i++ {
		if a.IntN(1000) != b.IntN(1000) {
			t.Fatalf("sequences diverged at draw %d", i)
		}
	}
}

func TestRNGSeedRestartsSequence(t *testing.T) {
	r := NewRNG(11)
	first := []float64{r.Float64(), r.Float64(), r.Float64()}
	r.Seed(11)
	for i, want := range first {
		if got := r.Float64(); got != want {
			t.Fatalf("draw %d after reseed = %v, want %v", i, got, want)
		}
	}
}

func TestChanceSaturates(t *testing.T) {
	r := NewRNG(3)
	for i := 0; i < 100; i++ {
		if r.Chance(0) {
			t.Fatal("Chance(0) returned true")
		}
		if !r.Chance(1) {
			t.Fatal("Chance(1) returned false")
		}
	}
}

func TestBoolIsRoughlyBalanced(t *testing.T) {
	r := NewRNG(99)
	const n = 10000
	trues := 0
	for i := 0; i < n; i++ {
		if r.Bool() {
			trues++
		}
	}
	if trues < n*45/100 || trues > n*55/100 {
		t.Fatalf("Bool produced %d/%d true outcomes", trues, n)
	}
}

func TestIntNHandlesNonPositive(t *testing.T) {
	r := NewRNG(1)
	if got := r.IntN(0); got != 0 {
		t.Fatalf("IntN(0) = %d", got)
	}
	if got := r.IntN(-3); got != 0 {
		t.Fatalf("IntN(-3) = %d", got)
	}
}
