package idamax

import (
	"fmt"
	"math"
	"sync"

	"github.com/cwbudde/algo-blas/idamax/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/algo-vecmath/cpu"
)

var (
	idamaxImpl     registry.IdamaxFn
	idamaxName     string
	idamaxInitOnce sync.Once
)

// Idamax returns the logical index of the first element of largest absolute
// value among n elements of x spaced stride apart. For a negative stride the
// scan starts at the last touched element, x[(1-n)*stride], and walks
// backward through storage.
//
// It returns -1 if n < 1 and 0 if n == 1, in both cases without reading x.
// Like slice indexing, it panics if the view runs past x.
func Idamax(n int, x []float64, stride int) int {
	return Ndarray(n, x, stride, Offset(n, stride))
}

// Ndarray is Idamax with an explicit starting offset: logical index i reads
// x[offset + i*stride].
func Ndarray(n int, x []float64, stride, offset int) int {
	idamaxInitOnce.Do(initIdamaxKernel)
	return idamaxImpl(n, x, stride, offset)
}

// MaxAbs returns the largest absolute value among the n elements Idamax
// would scan, or 0 if n < 1. NaN elements are ignored for every stride; a
// view holding only NaN yields NaN. For NaN-free input it equals the
// magnitude of the element Idamax selects.
func MaxAbs(n int, x []float64, stride int) float64 {
	if n < 1 {
		return 0
	}
	if stride == 1 || stride == -1 {
		// vecmath.MaxAbs leaves NaN handling to the backend; a NaN sum sends
		// the run to the scan below.
		if v := x[:n]; !math.IsNaN(vecmath.Sum(v)) {
			return vecmath.MaxAbs(v)
		}
	}
	ix := Offset(n, stride)
	if stride == -1 {
		ix, stride = 0, 1
	}
	best := math.NaN()
	for i := 0; i < n; i++ {
		if v := math.Abs(x[ix]); v > best || math.IsNaN(best) {
			best = v
		}
		ix += stride
	}
	return best
}

// Kernel returns the name of the kernel variant selected for this CPU.
func Kernel() string {
	idamaxInitOnce.Do(initIdamaxKernel)
	return idamaxName
}

// KernelInfo describes one kernel variant compiled into this build.
type KernelInfo struct {
	Name      string
	SIMDLevel string
	Priority  int
	Supported bool // the current CPU can run it
}

// Kernels lists the compiled kernel variants, best first.
func Kernels() []KernelInfo {
	features := cpu.DetectFeatures()
	supported := make(map[string]bool)
	for _, e := range registry.Global.Supported(features) {
		supported[e.Name] = true
	}

	entries := registry.Global.Entries()
	out := make([]KernelInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, KernelInfo{
			Name:      e.Name,
			SIMDLevel: fmt.Sprint(e.SIMDLevel),
			Priority:  e.Priority,
			Supported: supported[e.Name],
		})
	}
	return out
}

// Offset returns the storage offset of logical element 0 for the calling
// convention without an explicit offset: 0 for positive strides and
// (1-n)*stride for negative ones. Passing it to Ndarray or Module.Reduce
// gives Idamax semantics.
func Offset(n, stride int) int {
	if stride < 0 {
		return (1 - n) * stride
	}
	return 0
}

func initIdamaxKernel() {
	entry, err := bind(registry.Global, cpu.DetectFeatures())
	if err != nil {
		panic("idamax: " + err.Error())
	}
	idamaxImpl = entry.Idamax
	idamaxName = entry.Name
}

// bind selects the kernel for features from reg.
func bind(reg *registry.OpRegistry, features cpu.Features) (*registry.OpEntry, error) {
	entry := reg.Lookup(features)
	if entry == nil {
		return nil, errNoKernel(features)
	}
	if entry.Idamax == nil {
		return nil, errMissingKernel(entry.Name)
	}
	return entry, nil
}
