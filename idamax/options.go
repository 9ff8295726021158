package idamax

import (
	"log/slog"

	"github.com/cwbudde/algo-blas/idamax/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

type moduleConfig struct {
	logger   *slog.Logger
	features *cpu.Features
	registry *registry.OpRegistry
}

// ModuleOption configures a Module.
type ModuleOption func(*moduleConfig)

// WithLogger sets the logger for initialization events.
func WithLogger(l *slog.Logger) ModuleOption {
	return func(cfg *moduleConfig) {
		if l != nil {
			cfg.logger = l
		}
	}
}

// WithGenericKernel binds the pure Go kernel regardless of CPU features.
func WithGenericKernel() ModuleOption {
	return func(cfg *moduleConfig) {
		f := cpu.DetectFeatures()
		f.ForceGeneric = true
		cfg.features = &f
	}
}

// withFeatures pins the feature set used when binding.
func withFeatures(f cpu.Features) ModuleOption {
	return func(cfg *moduleConfig) {
		cfg.features = &f
	}
}

// withRegistry binds from reg instead of the global registry.
func withRegistry(reg *registry.OpRegistry) ModuleOption {
	return func(cfg *moduleConfig) {
		cfg.registry = reg
	}
}

func applyModuleOptions(opts []ModuleOption) moduleConfig {
	cfg := moduleConfig{
		logger:   slog.New(slog.DiscardHandler),
		registry: registry.Global,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
