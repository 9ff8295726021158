// Package testutil builds strided test vectors and reference results.
package testutil

import "math"

// Embed lays values out as a strided view inside padded storage: logical
// index i ends up at offset + i*stride of the returned slice, and every other
// slot holds fill. The offset that addresses the view is returned alongside
// the storage. For a negative stride the view ends at storage index 0.
func Embed(values []float64, stride int, fill float64) (storage []float64, offset int) {
	n := len(values)
	if n == 0 {
		return nil, 0
	}
	if stride == 0 {
		return []float64{values[0]}, 0
	}

	step := stride
	if step < 0 {
		step = -step
	}
	storage = make([]float64, (n-1)*step+1)
	for i := range storage {
		storage[i] = fill
	}

	if stride < 0 {
		offset = (n - 1) * step
	}
	for i, v := range values {
		storage[offset+i*stride] = v
	}
	return storage, offset
}

// Gather returns the n logical elements of the view (x, stride, offset).
func Gather(n int, x []float64, stride, offset int) []float64 {
	if n < 1 {
		return nil
	}
	out := make([]float64, n)
	ix := offset
	for i := range out {
		out[i] = x[ix]
		ix += stride
	}
	return out
}

// ReferenceIdamax is the textbook sequential scan over logical values.
func ReferenceIdamax(values []float64) int {
	if len(values) == 0 {
		return -1
	}
	idx := 0
	best := math.Abs(values[0])
	for i := 1; i < len(values); i++ {
		if v := math.Abs(values[i]); v > best {
			idx = i
			best = v
		}
	}
	return idx
}

// Pattern returns n deterministic values with repeated magnitudes of both
// signs, so ties and sign flips occur at every length.
func Pattern(n, seed int) []float64 {
	out := make([]float64, n)
	for i := range out {
		k := (i*37 + seed*11) % 23
		v := float64(k%9) + 0.25*float64(k%4)
		if (i+seed)%2 == 0 {
			v = -v
		}
		out[i] = v
	}
	return out
}
