// Package idamax finds the index of the first element of largest absolute
// value in a strided float64 vector.
//
// The reduction runs either directly on host slices ([Idamax], [Ndarray])
// or, through a [Module], against vectors resident in a [memory.Memory]
// addressed by byte pointers and element offsets.
//
// A strided view (n, x, stride, offset) visits x[offset + i*stride] for
// logical indices i in [0, n). Results are logical indices: 0 is always the
// element at offset, whatever the stride sign. n < 1 yields -1.
package idamax
