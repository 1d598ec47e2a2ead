package app

import (
	"log/slog"

	"seprim/internal/store"
)

// Wire bundles the engine and the stores for the CLI.
type Wire struct {
	Config     Config
	Log        *slog.Logger
	Engine     *Engine
	HashStates *store.HashStateFileStore
}

// NewWire constructs the dependency graph from cfg. cfg.Home must already be
// resolved.
func NewWire(cfg Config, log *slog.Logger) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	engine, err := NewEngine(cfg, log)
	if err != nil {
		return nil, err
	}
	return &Wire{
		Config:     cfg,
		Log:        log,
		Engine:     engine,
		HashStates: store.NewHashStateFileStore(cfg.Home),
	}, nil
}
