package memory

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Float64Window projects [ptr, ptr+8*n) of a Memory as n float64 values.
// It is bound to the growth epoch it was created in.
type Float64Window struct {
	mem   *Memory
	ptr   int
	n     int
	epoch uint64
}

// Float64Window returns a window of n values starting at byte ptr.
func (m *Memory) Float64Window(ptr, n int) (*Float64Window, error) {
	if n < 0 || n > math.MaxInt/Float64Size {
		return nil, fmt.Errorf("%w: %d elements", ErrRange, n)
	}
	if err := m.check(ptr, n*Float64Size); err != nil {
		return nil, err
	}
	return &Float64Window{mem: m, ptr: ptr, n: n, epoch: m.epoch}, nil
}

// Len returns the number of values in the window.
func (w *Float64Window) Len() int { return w.n }

// Ptr returns the byte address of the first value.
func (w *Float64Window) Ptr() int { return w.ptr }

// Valid reports whether the memory has not grown since the window was made.
func (w *Float64Window) Valid() bool { return w.epoch == w.mem.epoch }

func (w *Float64Window) live() error {
	if !w.Valid() {
		return fmt.Errorf("%w: window epoch %d, memory epoch %d", ErrStaleWindow, w.epoch, w.mem.epoch)
	}
	return nil
}

func (w *Float64Window) index(i int) (int, error) {
	if err := w.live(); err != nil {
		return 0, err
	}
	if i < 0 || i >= w.n {
		return 0, fmt.Errorf("%w: index %d of %d", ErrRange, i, w.n)
	}
	return w.ptr + i*Float64Size, nil
}

// At returns value i.
func (w *Float64Window) At(i int) (float64, error) {
	off, err := w.index(i)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(w.mem.buf[off:])), nil
}

// Set stores v at index i.
func (w *Float64Window) Set(i int, v float64) error {
	off, err := w.index(i)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(w.mem.buf[off:], math.Float64bits(v))
	return nil
}

// CopyTo decodes min(len(dst), Len()) values into dst and returns the count.
func (w *Float64Window) CopyTo(dst []float64) (int, error) {
	if err := w.live(); err != nil {
		return 0, err
	}
	n := min(len(dst), w.n)
	if _, err := w.mem.ReadFloat64s(dst[:0:n], w.ptr, n); err != nil {
		return 0, err
	}
	return n, nil
}

// Float64s returns a decoded copy of the window.
func (w *Float64Window) Float64s() ([]float64, error) {
	if err := w.live(); err != nil {
		return nil, err
	}
	return w.mem.ReadFloat64s(nil, w.ptr, w.n)
}
