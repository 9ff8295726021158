package memory

import (
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"

	"github.com/cwbudde/algo-blas/resource"
)

const (
	// PageSize is the growth unit in bytes (64KiB).
	PageSize = 65536

	// MaxPages bounds the address space to 4GiB, the 32-bit pointer range.
	MaxPages = 65536

	// Float64Size is the width of one element in bytes.
	Float64Size = 8
)

var nativeLittleEndian = binary.NativeEndian.Uint16([]byte{1, 0}) == 1

// Memory is a growable, page-granular linear byte buffer.
type Memory struct {
	buf     []byte
	pages   uint32
	maximum uint32
	epoch   uint64
	closed  bool

	controller *resource.Controller
	cfg        config
}

// New creates a memory of initial pages that may grow up to maximum pages.
func New(initial, maximum uint32, opts ...Option) (*Memory, error) {
	if initial > maximum {
		return nil, fmt.Errorf("%w: initial %d pages exceeds maximum %d", ErrResource, initial, maximum)
	}
	if maximum > MaxPages {
		return nil, fmt.Errorf("%w: maximum %d pages exceeds %d", ErrResource, maximum, MaxPages)
	}

	cfg := applyOptions(opts)
	size := int64(initial) * PageSize
	if err := cfg.controller.AcquireMemory(size); err != nil {
		return nil, fmt.Errorf("%w: reserving %d bytes: %w", ErrResource, size, err)
	}

	m := &Memory{
		buf:        make([]byte, size),
		pages:      initial,
		maximum:    maximum,
		controller: cfg.controller,
		cfg:        cfg,
	}
	cfg.logger.Debug("linear memory created", "pages", initial, "max_pages", maximum)
	return m, nil
}

// Pages returns the current size in pages.
func (m *Memory) Pages() uint32 { return m.pages }

// MaxPages returns the maximum size in pages.
func (m *Memory) MaxPages() uint32 { return m.maximum }

// Size returns the current size in bytes.
func (m *Memory) Size() int { return len(m.buf) }

// Epoch counts successful growths. Windows and views remember the epoch
// they were created in.
func (m *Memory) Epoch() uint64 { return m.epoch }

// Bytes returns the backing store. The slice is replaced on growth.
func (m *Memory) Bytes() []byte { return m.buf }

// Grow adds delta pages and returns the previous size in pages. Existing
// contents are preserved and new bytes are zero. Growing by zero pages is a
// no-op that does not advance the epoch.
func (m *Memory) Grow(delta uint32) (uint32, error) {
	prev := m.pages
	if m.closed {
		return prev, fmt.Errorf("%w: memory closed", ErrResource)
	}
	if delta == 0 {
		return prev, nil
	}
	if uint64(prev)+uint64(delta) > uint64(m.maximum) {
		return prev, fmt.Errorf("%w: growing %d+%d pages exceeds maximum %d", ErrResource, prev, delta, m.maximum)
	}

	extra := int64(delta) * PageSize
	if err := m.controller.AcquireMemory(extra); err != nil {
		return prev, fmt.Errorf("%w: reserving %d bytes: %w", ErrResource, extra, err)
	}

	grown := make([]byte, int64(prev+delta)*PageSize)
	copy(grown, m.buf)
	m.buf = grown
	m.pages = prev + delta
	m.epoch++

	m.cfg.logger.Debug("linear memory grown", "from_pages", prev, "to_pages", m.pages, "epoch", m.epoch)
	return prev, nil
}

// Close releases the reservation held against the resource controller.
// The memory is empty afterwards and cannot grow.
func (m *Memory) Close() error {
	if m.closed {
		return nil
	}
	m.controller.ReleaseMemory(int64(len(m.buf)))
	m.buf = nil
	m.pages = 0
	m.closed = true
	m.epoch++
	return nil
}

// check validates the byte range [ptr, ptr+n).
func (m *Memory) check(ptr, n int) error {
	if ptr < 0 || n < 0 || ptr > len(m.buf) || n > len(m.buf)-ptr {
		return fmt.Errorf("%w: [%d, %d) outside %d bytes", ErrRange, ptr, int64(ptr)+int64(n), len(m.buf))
	}
	return nil
}

// Write copies b to [ptr, ptr+len(b)). It never grows the memory.
func (m *Memory) Write(ptr int, b []byte) error {
	if err := m.check(ptr, len(b)); err != nil {
		return err
	}
	copy(m.buf[ptr:], b)
	return nil
}

// Read returns a copy of [ptr, ptr+n).
func (m *Memory) Read(ptr, n int) ([]byte, error) {
	if err := m.check(ptr, n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, m.buf[ptr:ptr+n])
	return out, nil
}

// WriteFloat64s stores x little-endian starting at byte ptr. ptr need not
// be aligned.
func (m *Memory) WriteFloat64s(ptr int, x []float64) error {
	if len(x) > math.MaxInt/Float64Size {
		return fmt.Errorf("%w: %d elements", ErrRange, len(x))
	}
	if err := m.check(ptr, len(x)*Float64Size); err != nil {
		return err
	}
	b := m.buf[ptr : ptr+len(x)*Float64Size]
	for i, v := range x {
		binary.LittleEndian.PutUint64(b[i*Float64Size:], math.Float64bits(v))
	}
	return nil
}

// ReadFloat64s decodes n values starting at byte ptr into dst, reusing its
// capacity, and returns the result.
func (m *Memory) ReadFloat64s(dst []float64, ptr, n int) ([]float64, error) {
	if n < 0 || n > math.MaxInt/Float64Size {
		return dst[:0], fmt.Errorf("%w: %d elements", ErrRange, n)
	}
	if err := m.check(ptr, n*Float64Size); err != nil {
		return dst[:0], err
	}
	if cap(dst) < n {
		dst = make([]float64, n)
	}
	dst = dst[:n]
	b := m.buf[ptr : ptr+n*Float64Size]
	for i := range dst {
		dst[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[i*Float64Size:]))
	}
	return dst, nil
}

// CanView reports whether Float64View can alias memory at ptr: the pointer
// is 8-byte aligned and the host stores float64 little-endian.
func (m *Memory) CanView(ptr int) bool {
	return nativeLittleEndian && ptr%Float64Size == 0
}

// Float64View aliases n float64 values at byte ptr without copying. The
// slice is only valid until the next Grow; callers must not retain it.
func (m *Memory) Float64View(ptr, n int) ([]float64, error) {
	if !m.CanView(ptr) {
		return nil, fmt.Errorf("%w: pointer %d cannot be aliased as float64", ErrRange, ptr)
	}
	if n < 0 || n > math.MaxInt/Float64Size {
		return nil, fmt.Errorf("%w: %d elements", ErrRange, n)
	}
	if err := m.check(ptr, n*Float64Size); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	return unsafe.Slice((*float64)(unsafe.Pointer(&m.buf[ptr])), n), nil
}
