//go:build arm64 && !purego

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

func TestIdamaxDispatch_ARM64Modes(t *testing.T) {
	tests := []struct {
		name     string
		features cpu.Features
		wantImpl string
	}{
		{"generic-forced", cpu.Features{ForceGeneric: true, HasNEON: true, Architecture: "arm64"}, "generic"},
		{"neon", cpu.Features{HasNEON: true, Architecture: "arm64"}, "neon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu.SetForcedFeatures(tt.features)

			defer cpu.ResetDetection()
			defer resetIdamaxDispatchForTest()

			resetIdamaxDispatchForTest()

			entry := registry.Global.Lookup(cpu.DetectFeatures())
			if entry == nil || entry.Name != tt.wantImpl {
				t.Fatalf("expected %q, got %#v", tt.wantImpl, entry)
			}

			for _, n := range []int{2, 3, 4, 5, 64, 65} {
				values := testutil.Pattern(n, 2*n)
				if got, want := Idamax(n, values, 1), testutil.ReferenceIdamax(values); got != want {
					t.Fatalf("n=%d: got %d, want %d", n, got, want)
				}
			}
		})
	}
}
