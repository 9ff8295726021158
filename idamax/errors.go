package idamax

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cwbudde/algo-blas/memory"
	"github.com/cwbudde/algo-vecmath/cpu"
)

var (
	// ErrInitialization is returned when no kernel can be bound as the
	// compute entry point.
	ErrInitialization = errors.New("idamax: initialization failed")

	// ErrState is returned when a linear-memory operation runs before
	// the Module is initialized.
	ErrState = errors.New("idamax: module not initialized")

	// ErrRange is returned when a vector falls outside linear memory.
	ErrRange = memory.ErrRange

	// ErrResource is returned when linear memory cannot be created or grown.
	ErrResource = memory.ErrResource
)

func errNoKernel(features cpu.Features) error {
	return fmt.Errorf("%w: no kernel registered for %s (missing generic fallback?)", ErrInitialization, describeFeatures(features))
}

func errMissingKernel(name string) error {
	return fmt.Errorf("%w: kernel %q has no idamax entry", ErrInitialization, name)
}

// describeFeatures renders a feature set as e.g. "amd64[sse2,avx2]".
func describeFeatures(f cpu.Features) string {
	var ext []string
	if f.HasSSE2 {
		ext = append(ext, "sse2")
	}
	if f.HasAVX2 {
		ext = append(ext, "avx2")
	}
	if f.HasNEON {
		ext = append(ext, "neon")
	}
	if f.ForceGeneric {
		ext = append(ext, "generic-only")
	}
	return f.Architecture + "[" + strings.Join(ext, ",") + "]"
}
