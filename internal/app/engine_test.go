package app_test

import (
	"bytes"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"seprim/internal/app"
	"seprim/internal/domain"
	"seprim/internal/logging"
)

func newEngine(t *testing.T, mutate func(*app.Config)) (*app.Engine, *bytes.Buffer) {
	t.Helper()
	cfg := app.DefaultConfig()
	cfg.Entropy = app.EntropyConfig{Source: app.EntropyDeterministic, Seed: "00112233445566778899aabbccddeeff"}
	if mutate != nil {
		mutate(&cfg)
	}
	var buf bytes.Buffer
	log, err := logging.New(&buf, "debug", "text")
	require.NoError(t, err)
	e, err := app.NewEngine(cfg, log)
	require.NoError(t, err)
	return e, &buf
}

func TestEngine_ModExpScenario(t *testing.T) {
	e, logs := newEngine(t, nil)
	result := make([]byte, 2)
	require.NoError(t, e.ModExp([]byte{17}, []byte{0x09, 0xE9}, []byte{0x00, 0x03}, result, false))
	want := new(big.Int).Exp(big.NewInt(3), big.NewInt(17), big.NewInt(2537))
	require.Equal(t, want.FillBytes(make([]byte, 2)), result)
	require.Contains(t, logs.String(), "secure=false")
	require.Contains(t, logs.String(), "modulus=09E9")
}

func TestEngine_PublicPathCanBeDisabled(t *testing.T) {
	e, logs := newEngine(t, func(c *app.Config) { c.ModExp.AllowPublic = false })
	result := make([]byte, 2)
	require.NoError(t, e.ModExp([]byte{17}, []byte{0x09, 0xE9}, []byte{0x00, 0x03}, result, false))
	require.Equal(t, []byte{0x06, 0xFD}, result)
	require.Contains(t, logs.String(), "secure=true")
	require.NotContains(t, logs.String(), "modulus=")
}

func TestEngine_RejectionsAreLoggedWithStatus(t *testing.T) {
	e, logs := newEngine(t, nil)
	err := e.ModMultiply([]byte{5}, []byte{1}, []byte{5})
	require.True(t, domain.IsKind(err, domain.KindPrecondition))
	require.Equal(t, uint16(domain.StatusWrongData), domain.StatusWord(err))
	require.Contains(t, logs.String(), "primitive rejected")
	require.Contains(t, logs.String(), "status=6A80")
}

func TestEngine_HashAndCompare(t *testing.T) {
	e, _ := newEngine(t, nil)
	var st domain.HashState
	require.NoError(t, e.Absorb(&st, domain.SHA256, []byte("ab")))
	require.NoError(t, e.Absorb(&st, domain.SHA256, []byte("c")))
	digest := make([]byte, 32)
	require.NoError(t, e.Finalize(&st, digest))

	oneShot := make([]byte, 32)
	var fresh domain.HashState
	require.NoError(t, e.Absorb(&fresh, domain.SHA256, []byte("abc")))
	require.NoError(t, e.Finalize(&fresh, oneShot))
	require.Equal(t, oneShot, digest)

	ord, o, err := e.Compare(digest, oneShot, 32)
	require.NoError(t, err)
	require.Equal(t, domain.Equal, ord)
	require.True(t, o.Zero)
}

func TestEngine_CipherAndCopy(t *testing.T) {
	e, _ := newEngine(t, nil)
	key := bytes.Repeat([]byte{0x11}, 16)
	iv := make([]byte, 16)
	buf := []byte(strings.Repeat("A", 32))
	require.NoError(t, e.Encrypt(domain.AES, domain.CBC, key, iv, buf, buf))
	require.NoError(t, e.Decrypt(domain.AES, domain.CBC, key, iv, buf, buf))
	require.Equal(t, strings.Repeat("A", 32), string(buf))

	sig := make([]byte, 8)
	require.NoError(t, e.Signature(sig, key, iv[:8], buf))

	dst := make([]byte, 8)
	require.NoError(t, e.Copy(dst, sig, 8))
	require.Equal(t, sig, dst)
}

func TestEngine_DeterministicRandom(t *testing.T) {
	a, _ := newEngine(t, nil)
	b, _ := newEngine(t, nil)
	x, err := a.RandomNumber()
	require.NoError(t, err)
	y, err := b.RandomNumber()
	require.NoError(t, err)
	require.Equal(t, x, y)

	out := make([]byte, 24)
	require.NoError(t, a.RandomBytes(out))
	require.NotEqual(t, make([]byte, 24), out)
}

func TestNewEngine_NilLogger(t *testing.T) {
	e, err := app.NewEngine(app.DefaultConfig(), nil)
	require.NoError(t, err)
	product := make([]byte, 2)
	require.NoError(t, e.Multiply(product, []byte{0x10}, []byte{0x10}))
	require.Equal(t, []byte{0x01, 0x00}, product)
}

func TestNewWire(t *testing.T) {
	cfg := app.DefaultConfig()
	cfg.Home = t.TempDir()
	w, err := app.NewWire(cfg, logging.Discard())
	require.NoError(t, err)
	require.NotNil(t, w.Engine)
	require.NotNil(t, w.HashStates)

	cfg.Entropy.Source = "dice"
	_, err = app.NewWire(cfg, logging.Discard())
	require.True(t, domain.IsKind(err, domain.KindConfiguration))
}
