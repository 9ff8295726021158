// Package generic provides the pure Go idamax kernel. It is the reference
// every other variant must match bit for bit.
package generic

import "math"

// unrollWidth is the block size of the unit-stride scan.
const unrollWidth = 6

// Idamax returns the logical index of the first element of largest absolute
// value in the view x[offset + i*stride], i in [0, n). It returns -1 when
// n < 1 and 0 when n == 1 without reading x.
//
// The first element seeds the running maximum; later elements replace it
// only when strictly greater, so NaN never wins after position 0.
func Idamax(n int, x []float64, stride, offset int) int {
	if n < 1 {
		return -1
	}
	if n == 1 {
		return 0
	}
	if stride == 1 {
		return Unit(x[offset : offset+n])
	}
	return Strided(n, x, stride, offset)
}

// Strided is the scalar scan for arbitrary strides, including negative ones.
// n must be at least 1.
func Strided(n int, x []float64, stride, offset int) int {
	ix := offset
	idx := 0
	best := math.Abs(x[ix])
	for i := 1; i < n; i++ {
		ix += stride
		if v := math.Abs(x[ix]); v > best {
			idx = i
			best = v
		}
	}
	return idx
}

// Unit scans a contiguous run. The leading remainder is handled one element
// at a time, the rest in blocks of unrollWidth with the comparisons kept in
// index order. len(x) must be at least 1.
func Unit(x []float64) int {
	n := len(x)
	idx := 0
	best := math.Abs(x[0])

	i := 1
	m := (n - 1) % unrollWidth
	for ; i <= m; i++ {
		if v := math.Abs(x[i]); v > best {
			idx = i
			best = v
		}
	}

	for ; i+unrollWidth-1 < n; i += unrollWidth {
		b := x[i : i+unrollWidth : i+unrollWidth]
		v0 := math.Abs(b[0])
		v1 := math.Abs(b[1])
		v2 := math.Abs(b[2])
		v3 := math.Abs(b[3])
		v4 := math.Abs(b[4])
		v5 := math.Abs(b[5])
		if v0 > best {
			idx, best = i, v0
		}
		if v1 > best {
			idx, best = i+1, v1
		}
		if v2 > best {
			idx, best = i+2, v2
		}
		if v3 > best {
			idx, best = i+3, v3
		}
		if v4 > best {
			idx, best = i+4, v4
		}
		if v5 > best {
			idx, best = i+5, v5
		}
	}

	return idx
}
