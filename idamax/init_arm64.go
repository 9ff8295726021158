//go:build arm64 && !purego

package idamax

import (
	_ "github.com/cwbudde/algo-blas/idamax/internal/arch/arm64/neon"
	_ "github.com/cwbudde/algo-blas/idamax/internal/arch/generic"
	_ "github.com/cwbudde/algo-blas/idamax/internal/arch/registry"
)
