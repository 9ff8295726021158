package generic

import (
	"github.com/cwbudde/algo-blas/idamax/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the pure Go kernel as the lowest-priority fallback.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		Idamax:    Idamax,
	})
}
