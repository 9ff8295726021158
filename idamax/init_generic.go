//go:build purego || !(amd64 || arm64)

package idamax

import (
	_ "github.com/cwbudde/algo-blas/idamax/internal/arch/generic"
	_ "github.com/cwbudde/algo-blas/idamax/internal/arch/registry"
)
