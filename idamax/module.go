package idamax

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/cwbudde/algo-blas/idamax/internal/arch/registry"
	"github.com/cwbudde/algo-blas/memory"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// Module runs the reduction against vectors stored in a linear memory.
//
// A Module starts uninitialized. Initialize binds the compute entry point;
// only then are Write, Read and the Invoke methods accepted. There is no way
// back: pair a fresh Memory with a fresh Module instead of resetting.
//
// Apart from initialization, a Module is not safe for concurrent use.
type Module struct {
	mem *memory.Memory
	cfg moduleConfig

	initMu sync.Mutex
	ready  atomic.Bool
	kernel registry.IdamaxFn
	name   string

	scratch []float64
}

// NewModule pairs a Module with mem.
func NewModule(mem *memory.Memory, opts ...ModuleOption) (*Module, error) {
	if mem == nil {
		return nil, errors.New("idamax: nil memory")
	}
	return &Module{mem: mem, cfg: applyModuleOptions(opts)}, nil
}

// Memory returns the linear memory the Module operates on.
func (m *Module) Memory() *memory.Memory { return m.mem }

// Ready reports whether Initialize has succeeded.
func (m *Module) Ready() bool { return m.ready.Load() }

// Kernel returns the bound kernel name, or "" before initialization.
func (m *Module) Kernel() string {
	if !m.ready.Load() {
		return ""
	}
	return m.name
}

// Initialize binds the compute entry point. Calling it again after success
// is a no-op.
func (m *Module) Initialize() error {
	m.initMu.Lock()
	defer m.initMu.Unlock()

	if m.ready.Load() {
		return nil
	}

	features := cpu.DetectFeatures()
	if m.cfg.features != nil {
		features = *m.cfg.features
	}

	entry, err := bind(m.cfg.registry, features)
	if err != nil {
		m.cfg.logger.Error("idamax module initialization failed", "features", describeFeatures(features), "error", err)
		return err
	}

	m.kernel = entry.Idamax
	m.name = entry.Name
	m.ready.Store(true)

	m.cfg.logger.Debug("idamax module initialized",
		"kernel", entry.Name,
		"features", describeFeatures(features),
		"pages", m.mem.Pages(),
	)
	return nil
}

// InitializeAsync runs Initialize in the background. The returned channel
// yields its result exactly once. Callers must receive from it before using
// the Module.
func (m *Module) InitializeAsync() <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- m.Initialize()
	}()
	return done
}

// InitializeCallback runs Initialize in the background and passes its result
// to fn.
func (m *Module) InitializeCallback(fn func(error)) {
	go func() {
		err := m.Initialize()
		if fn != nil {
			fn(err)
		}
	}()
}

// Write stores x at byte ptr. The memory is never grown; a write past the
// current size fails with ErrRange.
func (m *Module) Write(ptr int, x []float64) error {
	if err := m.checkReady("write"); err != nil {
		return err
	}
	return m.mem.WriteFloat64s(ptr, x)
}

// Read returns a window of n values at byte ptr. The window becomes stale
// when the memory grows.
func (m *Module) Read(ptr, n int) (*memory.Float64Window, error) {
	if err := m.checkReady("read"); err != nil {
		return nil, err
	}
	return m.mem.Float64Window(ptr, n)
}

// InvokeByOffset scans the vector starting at element offset of the memory
// (byte address 8*offset), stepping stride elements.
func (m *Module) InvokeByOffset(n, offset, stride int32) (int32, error) {
	idx, err := m.call(int(n), 0, int(stride), int(offset))
	return int32(idx), err
}

// InvokeByPointer scans n elements of the vector whose element 0 is at byte
// xptr. Per-element addresses are xptr + 8*stride*k; for a negative stride
// logical index 0 is the element at xptr - 8*(n-1)*stride.
func (m *Module) InvokeByPointer(n, xptr, stride int32) (int32, error) {
	idx, err := m.call(int(n), int(xptr), int(stride), Offset(int(n), int(stride)))
	return int32(idx), err
}

// Invoke is the four-argument entry point: logical index i reads the
// element at byte xptr + 8*(offset + i*stride).
func (m *Module) Invoke(n, xptr, stride, offset int32) (int32, error) {
	idx, err := m.call(int(n), int(xptr), int(stride), int(offset))
	return int32(idx), err
}

func (m *Module) checkReady(op string) error {
	if !m.ready.Load() {
		return fmt.Errorf("%w: %s", ErrState, op)
	}
	return nil
}

// call validates the touched byte span and runs the kernel over it. The
// span is rebased so the kernel only sees [lo, hi] of the view.
func (m *Module) call(n, xptr, stride, offset int) (int, error) {
	if err := m.checkReady("invoke"); err != nil {
		return -1, err
	}
	if n < 1 {
		return -1, nil
	}
	if n == 1 {
		return 0, nil
	}

	lo, hi, err := span(n, stride, offset)
	if err != nil {
		return -1, err
	}

	start := int64(xptr) + lo*memory.Float64Size
	count := hi - lo + 1
	if start < 0 || start > math.MaxInt || count > math.MaxInt/memory.Float64Size {
		return -1, fmt.Errorf("%w: vector at byte %d with %d elements", ErrRange, start, count)
	}

	x, err := m.load(int(start), int(count))
	if err != nil {
		return -1, err
	}
	return m.kernel(n, x, stride, offset-int(lo)), nil
}

// load returns count values at byte ptr, aliasing memory when aligned and
// decoding into the scratch slice otherwise.
func (m *Module) load(ptr, count int) ([]float64, error) {
	if m.mem.CanView(ptr) {
		return m.mem.Float64View(ptr, count)
	}
	x, err := m.mem.ReadFloat64s(m.scratch, ptr, count)
	if err != nil {
		return nil, err
	}
	m.scratch = x
	return x, nil
}

// span returns the lowest and highest element index touched by the view.
func span(n, stride, offset int) (lo, hi int64, err error) {
	first := int64(offset)
	last := first + int64(n-1)*int64(stride)
	if stride != 0 && (last-first)/int64(stride) != int64(n-1) {
		return 0, 0, fmt.Errorf("%w: stride %d over %d elements overflows", ErrRange, stride, n)
	}
	if last < first {
		first, last = last, first
	}
	return first, last, nil
}
