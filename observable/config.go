package observable

import (
	"fmt"

	"github.com/tailored-agentic-units/observable/config"
	"github.com/tailored-agentic-units/observable/observability"
)

// FromConfig returns an Observable holding v whose diagnostics are named and
// routed as cfg describes.
func FromConfig[T any](v T, cfg config.Config) (Observable[T], error) {
	obs, err := observability.GetObserver(cfg.Observer)
	if err != nil {
		return Observable[T]{}, fmt.Errorf("failed to resolve observer: %w", err)
	}

	opts := []Option{WithObserver(obs)}
	if cfg.Name != "" {
		opts = append(opts, WithName(cfg.Name))
	}
	return New(v, opts...), nil
}
