//go:build amd64 && !purego

package idamax

import (
	_ "github.com/cwbudde/algo-blas/idamax/internal/arch/amd64/avx2" // register AVX2 backend
	_ "github.com/cwbudde/algo-blas/idamax/internal/arch/generic"    // register generic backend
	_ "github.com/cwbudde/algo-blas/idamax/internal/arch/registry"   // initialize backend registry
)
