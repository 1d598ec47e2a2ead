package app_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"seprim/internal/app"
	"seprim/internal/domain"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seprim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := app.LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, app.DefaultConfig(), cfg)

	cfg, err = app.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	require.Equal(t, app.DefaultConfig(), cfg)
	require.True(t, cfg.ModExp.AllowPublic)
}

func TestLoadConfig_OverridesOnlyGivenFields(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
hash:
  digest_length: 48
entropy:
  source: deterministic
  seed: 000102030405060708090a0b0c0d0e0f
modexp:
  allow_public: false
`)
	cfg, err := app.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "text", cfg.Log.Format)
	require.Equal(t, 48, cfg.Hash.DigestLength)
	require.Equal(t, app.EntropyDeterministic, cfg.Entropy.Source)
	require.False(t, cfg.ModExp.AllowPublic)
}

func TestLoadConfig_Invalid(t *testing.T) {
	cases := map[string]string{
		"digest":  "hash:\n  digest_length: 30\n",
		"wrapped": "hash:\n  digest_length: 276\n",
		"source":  "entropy:\n  source: dice\n",
		"seed":    "entropy:\n  source: deterministic\n  seed: abcd\n",
		"format":  "log:\n  format: xml\n",
		"level":   "log:\n  level: chatty\n",
	}
	for name, body := range cases {
		_, err := app.LoadConfig(writeConfig(t, body))
		require.Error(t, err, name)
	}

	_, err := app.LoadConfig(writeConfig(t, "hash: [\n"))
	require.Error(t, err)

	_, err = app.LoadConfig(writeConfig(t, "hash:\n  digest_length: 30\n"))
	require.True(t, domain.IsKind(err, domain.KindInvalidLength))
}

func TestResolveHome(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "home")
	cfg := app.DefaultConfig()
	cfg.Home = dir
	require.NoError(t, cfg.ResolveHome())
	fi, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, fi.IsDir())
}
