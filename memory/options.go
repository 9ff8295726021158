package memory

import (
	"log/slog"

	"github.com/cwbudde/algo-blas/resource"
)

type config struct {
	controller *resource.Controller
	logger     *slog.Logger
}

// Option configures a Memory.
type Option func(*config)

// WithController charges every page against c's byte budget.
func WithController(c *resource.Controller) Option {
	return func(cfg *config) {
		cfg.controller = c
	}
}

// WithLogger sets the logger for creation and growth events.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *config) {
		if l != nil {
			cfg.logger = l
		}
	}
}

func applyOptions(opts []Option) config {
	cfg := config{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
