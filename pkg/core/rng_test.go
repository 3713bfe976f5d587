package core

import (
	"slices"
	"testing"
)

func TestFillBernoulliUsesOnlyGivenValues(t *testing.T) {
	buf := make([]uint8, 4096)
	FillBernoulli(NewRNG(7).Source(), buf, 0.2, 255, 0)
	on := 0
	for i, v := range buf {
		switch v {
		case 255:
			on++
		case 0:
		default:
			t.Fatalf("cell %d holds %d, want 0 or 255", i, v)
		}
	}
	if on == 0 || on == len(buf) {
		t.Fatalf("expected a mix of values, got %d on of %d", on, len(buf))
	}
}

func TestFillBernoulliExtremes(t *testing.T) {
	buf := make([]uint8, 64)
	FillBernoulli(NewRNG(1).Source(), buf, 0, 1, 0)
	if slices.Contains(buf, 1) {
		t.Fatal("p=0 must never set a cell")
	}
	FillBernoulli(NewRNG(1).Source(), buf, 1, 1, 0)
	if slices.Contains(buf, 0) {
		t.Fatal("p=1 must set every cell")
	}
}

func TestSeedDeterministic(t *testing.T) {
	a := make([]uint8, 256)
	b := make([]uint8, 256)
	FillBernoulli(NewRNG(42).Source(), a, 0.5, 1, 0)
	FillBernoulli(NewRNG(42).Source(), b, 0.5, 1, 0)
	if !slices.Equal(a, b) {
		t.Fatal("same seed produced different buffers")
	}
}
