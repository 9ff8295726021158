//go:build amd64 && !purego

// Package avx2 registers the lane-split idamax kernel for AVX2-capable CPUs.
package avx2

import (
	"math"

	"github.com/cwbudde/algo-blas/idamax/internal/arch/generic"
	"github.com/cwbudde/algo-blas/idamax/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

const lanes = 4

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,
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
	if stride != 1 || n < 2*lanes {
		return generic.Idamax(n, x, stride, offset)
	}
	return unit4(x[offset : offset+n])
}

// unit4 keeps four independent running maxima, one per lane, all seeded from
// x[0]. Each lane records the first index where it strictly improved, and
// the final reduction breaks ties toward the lower index, which reproduces
// the sequential first-occurrence result.
// TODO: replace with an AVX2 asm kernel (VANDPD abs + VCMPPD/VBLENDVPD).
func unit4(x []float64) int {
	n := len(x)
	seed := math.Abs(x[0])

	max0, max1, max2, max3 := seed, seed, seed, seed
	idx0, idx1, idx2, idx3 := 0, 0, 0, 0

	i := 1
	for ; i+lanes-1 < n; i += lanes {
		b := x[i : i+lanes : i+lanes]
		if v := math.Abs(b[0]); v > max0 {
			max0, idx0 = v, i
		}
		if v := math.Abs(b[1]); v > max1 {
			max1, idx1 = v, i+1
		}
		if v := math.Abs(b[2]); v > max2 {
			max2, idx2 = v, i+2
		}
		if v := math.Abs(b[3]); v > max3 {
			max3, idx3 = v, i+3
		}
	}

	for ; i < n; i++ {
		if v := math.Abs(x[i]); v > max0 {
			max0, idx0 = v, i
		}
	}

	best, idx := max0, idx0
	best, idx = better(best, idx, max1, idx1)
	best, idx = better(best, idx, max2, idx2)
	_, idx = better(best, idx, max3, idx3)
	return idx
}

// better merges two lane results. A NaN lane maximum only occurs when x[0]
// was NaN, in which case every lane holds index 0.
func better(best float64, idx int, vmax float64, vidx int) (float64, int) {
	if vmax > best || (vmax == best && vidx < idx) {
		return vmax, vidx
	}
	return best, idx
}
