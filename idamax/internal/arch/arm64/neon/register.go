//go:build arm64 && !purego

// Package neon registers the two-lane idamax kernel for ARM64.
package neon

import (
	"math"

	"github.com/cwbudde/algo-blas/idamax/internal/arch/generic"
	"github.com/cwbudde/algo-blas/idamax/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "neon",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,
		Idamax:    idamax,
	})
}

func idamax(n int, x []float64, stride, offset int) int {
	if n < 1 {
		return -1
	}
	if n == 1 {
		return 0
	}
	if stride != 1 || n < 4 {
		return generic.Idamax(n, x, stride, offset)
	}
	return unit2(x[offset : offset+n])
}

// unit2 splits the run into even and odd lanes seeded from x[0] and merges
// them with ties going to the lower index.
func unit2(x []float64) int {
	n := len(x)
	seed := math.Abs(x[0])

	maxA, maxB := seed, seed
	idxA, idxB := 0, 0

	i := 1
	for ; i+1 < n; i += 2 {
		if v := math.Abs(x[i]); v > maxA {
			maxA, idxA = v, i
		}
		if v := math.Abs(x[i+1]); v > maxB {
			maxB, idxB = v, i+1
		}
	}
	if i < n {
		if v := math.Abs(x[i]); v > maxA {
			maxA, idxA = v, i
		}
	}

	if maxB > maxA || (maxB == maxA && idxB < idxA) {
		return idxB
	}
	return idxA
}
