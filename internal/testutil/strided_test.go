package testutil

import (
	"math"
	"testing"
)

func TestEmbedGatherRoundTrip(t *testing.T) {
	values := []float64{1, -2, 3, -4}
	for _, stride := range []int{1, 2, 3, -1, -3} {
		storage, offset := Embed(values, stride, 99)
		got := Gather(len(values), storage, stride, offset)
		for i := range values {
			if got[i] != values[i] {
				t.Fatalf("stride %d: got %v, want %v", stride, got, values)
			}
		}
	}
}

func TestEmbedNegativeStrideLayout(t *testing.T) {
	storage, offset := Embed([]float64{3, 4, 15}, -2, 0)
	want := []float64{15, 0, 4, 0, 3}
	if offset != 4 {
		t.Fatalf("offset = %d, want 4", offset)
	}
	for i := range want {
		if storage[i] != want[i] {
			t.Fatalf("storage = %v, want %v", storage, want)
		}
	}
}

func TestReferenceIdamax(t *testing.T) {
	cases := []struct {
		x    []float64
		want int
	}{
		{nil, -1},
		{[]float64{5, -5}, 0},
		{[]float64{0.1, -0.3, 0.5, -0.1}, 2},
		{[]float64{math.NaN(), 9}, 0},
		{[]float64{1, math.NaN(), 2}, 2},
	}
	for _, tc := range cases {
		if got := ReferenceIdamax(tc.x); got != tc.want {
			t.Fatalf("ReferenceIdamax(%v) = %d, want %d", tc.x, got, tc.want)
		}
	}
}

func TestPatternDeterministic(t *testing.T) {
	a := Pattern(50, 3)
	b := Pattern(50, 3)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Pattern not deterministic at %d", i)
		}
	}
}
