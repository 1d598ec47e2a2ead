package app

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"seprim/internal/domain"
	"seprim/internal/entropy"
	"seprim/internal/logging"
)

// Entropy source names accepted in Config.Entropy.Source.
const (
	EntropySystem        = "system"
	EntropyDeterministic = "deterministic"
)

// Config holds runtime options for building the engine and the CLI.
type Config struct {
	Home    string        `yaml:"home"` // state directory, e.g. $HOME/.seprim
	Log     LogConfig     `yaml:"log"`
	Hash    HashConfig    `yaml:"hash"`
	Entropy EntropyConfig `yaml:"entropy"`
	ModExp  ModExpConfig  `yaml:"modexp"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type HashConfig struct {
	// DigestLength selects the default algorithm: 20, 28, 32, 48 or 64.
	DigestLength int `yaml:"digest_length"`
}

type EntropyConfig struct {
	Source string `yaml:"source"`
	// Seed is hex and only used by the deterministic source.
	Seed string `yaml:"seed"`
}

type ModExpConfig struct {
	// AllowPublic permits the variable-time path when callers ask for it.
	// When false every exponentiation runs in constant time.
	AllowPublic bool `yaml:"allow_public"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Log:     LogConfig{Level: "info", Format: logging.FormatText},
		Hash:    HashConfig{DigestLength: int(domain.SHA256)},
		Entropy: EntropyConfig{Source: EntropySystem},
		ModExp:  ModExpConfig{AllowPublic: true},
	}
}

// LoadConfig reads a YAML file over the defaults. An empty path or a missing
// file yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	const op = "app.Config"
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return domain.Wrap(domain.KindConfiguration, op, "log.level", err)
	}
	if c.Log.Format != logging.FormatText && c.Log.Format != logging.FormatJSON {
		return domain.Errorf(domain.KindConfiguration, op, "log.format %q: want text or json", c.Log.Format)
	}
	if c.Hash.DigestLength < 0 || c.Hash.DigestLength > 0xFF || !domain.HashAlgorithm(c.Hash.DigestLength).Valid() {
		return domain.Errorf(domain.KindInvalidLength, op, "hash.digest_length %d is not 20, 28, 32, 48 or 64", c.Hash.DigestLength)
	}
	switch c.Entropy.Source {
	case EntropySystem:
	case EntropyDeterministic:
		seed, err := hex.DecodeString(c.Entropy.Seed)
		if err != nil {
			return domain.Wrap(domain.KindConfiguration, op, "entropy.seed is not hex", err)
		}
		if len(seed) < entropy.MinSeedSize {
			return domain.Errorf(domain.KindConfiguration, op, "entropy.seed must be at least %d bytes", entropy.MinSeedSize)
		}
	default:
		return domain.Errorf(domain.KindConfiguration, op, "entropy.source %q: want system or deterministic", c.Entropy.Source)
	}
	return nil
}

// ResolveHome fills Home with ~/.seprim when unset and creates it.
func (c *Config) ResolveHome() error {
	if c.Home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		c.Home = filepath.Join(dir, ".seprim")
	}
	return os.MkdirAll(c.Home, 0o700)
}
