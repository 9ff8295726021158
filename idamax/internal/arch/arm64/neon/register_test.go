//go:build arm64 && !purego

package neon

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-blas/idamax/internal/arch/generic"
)

func TestUnit2MatchesGeneric(t *testing.T) {
	for n := 1; n <= 41; n++ {
		x := make([]float64, n)
		for i := range x {
			x[i] = float64((i*13)%7) - 3
		}
		if got, want := idamax(n, x, 1, 0), generic.Strided(n, x, 1, 0); got != want {
			t.Fatalf("n=%d: idamax = %d, generic = %d", n, got, want)
		}
	}
}

func TestUnit2NaN(t *testing.T) {
	nan := math.NaN()
	if got := unit2([]float64{nan, 4, 5, 6, 7}); got != 0 {
		t.Fatalf("leading NaN = %d, want 0", got)
	}
	if got := unit2([]float64{1, 4, nan, 6, 2}); got != 3 {
		t.Fatalf("inner NaN = %d, want 3", got)
	}
}
