//go:build amd64 && !purego

package idamax

import (
	"sync"
	"testing"

	"github.com/cwbudde/algo-blas/idamax/internal/arch/registry"
	"github.com/cwbudde/algo-blas/internal/testutil"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func resetIdamaxDispatchForTest() {
	idamaxImpl = nil
	idamaxName = ""
	idamaxInitOnce = sync.Once{}
}

func TestIdamaxDispatch_AMD64Modes(t *testing.T) {
	tests := []struct {
		name     string
		features cpu.Features
		wantImpl string
	}{
		{
			name:     "generic-forced",
			features: cpu.Features{ForceGeneric: true, Architecture: "amd64"},
			wantImpl: "generic",
		},
		{
			name:     "sse2",
			features: cpu.Features{HasSSE2: true, Architecture: "amd64"},
			wantImpl: "generic",
		},
		{
			name:     "avx2",
			features: cpu.Features{HasSSE2: true, HasAVX2: true, Architecture: "amd64"},
			wantImpl: "avx2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu.SetForcedFeatures(tt.features)

			defer cpu.ResetDetection()
			defer resetIdamaxDispatchForTest()

			resetIdamaxDispatchForTest()

			entry := registry.Global.Lookup(cpu.DetectFeatures())
			if entry == nil {
				t.Fatal("Lookup returned nil")
			}
			if entry.Name != tt.wantImpl {
				t.Fatalf("expected %q, got %q", tt.wantImpl, entry.Name)
			}
			if got := Kernel(); got != tt.wantImpl {
				t.Fatalf("Kernel() = %q, want %q", got, tt.wantImpl)
			}

			for _, n := range []int{2, 7, 8, 9, 33, 257} {
				for _, stride := range []int{1, 3, -1} {
					values := testutil.Pattern(n, n)
					storage, offset := testutil.Embed(values, stride, -1e9)
					want := testutil.ReferenceIdamax(values)
					if got := Ndarray(n, storage, stride, offset); got != want {
						t.Fatalf("n=%d stride=%d: got %d, want %d", n, stride, got, want)
					}
				}
			}
		})
	}
}

func BenchmarkIdamax_Dispatch_AMD64(b *testing.B) {
	modes := []struct {
		name     string
		features cpu.Features
	}{
		{"Generic", cpu.Features{ForceGeneric: true, Architecture: "amd64"}},
		{"AVX2", cpu.Features{HasSSE2: true, HasAVX2: true, Architecture: "amd64"}},
	}

	x := testutil.Pattern(4096, 7)
	for _, mode := range modes {
		b.Run(mode.name, func(b *testing.B) {
			cpu.SetForcedFeatures(mode.features)

			defer cpu.ResetDetection()
			defer resetIdamaxDispatchForTest()

			resetIdamaxDispatchForTest()

			b.SetBytes(int64(len(x) * 8))
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_ = Idamax(len(x), x, 1)
			}
		})
	}
}
