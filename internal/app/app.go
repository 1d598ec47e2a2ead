package app

import (
	"encoding/hex"

	"seprim/internal/domain"
	"seprim/internal/entropy"
)

// NewEntropySource builds the source named by cfg.Source.
func NewEntropySource(cfg EntropyConfig) (domain.EntropySource, error) {
	switch cfg.Source {
	case "", EntropySystem:
		return entropy.System{}, nil
	case EntropyDeterministic:
		seed, err := hex.DecodeString(cfg.Seed)
		if err != nil {
			return nil, domain.Wrap(domain.KindConfiguration, "app.NewEntropySource", "seed is not hex", err)
		}
		return entropy.NewDeterministic(seed)
	}
	return nil, domain.Errorf(domain.KindConfiguration, "app.NewEntropySource", "unknown entropy source %q", cfg.Source)
}
