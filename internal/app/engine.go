package app

import (
	"fmt"
	"log/slog"

	"seprim/internal/bigint"
	"seprim/internal/blockcipher"
	"seprim/internal/domain"
	"seprim/internal/entropy"
	"seprim/internal/flags"
	"seprim/internal/logging"
	"seprim/internal/memory"
	"seprim/internal/securehash"
)

// Engine is the primitive surface handed to the dispatch layer. It applies
// the configured policy and logs every call; secret operands are never
// logged.
type Engine struct {
	log         *slog.Logger
	rng         domain.EntropySource
	allowPublic bool
}

var _ domain.Primitives = (*Engine)(nil)

// NewEngine builds an Engine from cfg. A nil log discards output.
func NewEngine(cfg Config, log *slog.Logger) (*Engine, error) {
	if log == nil {
		log = logging.Discard()
	}
	rng, err := NewEntropySource(cfg.Entropy)
	if err != nil {
		return nil, err
	}
	return &Engine{
		log:         log.With("component", "engine"),
		rng:         rng,
		allowPublic: cfg.ModExp.AllowPublic,
	}, nil
}

// done logs the outcome of op and passes err through.
func (e *Engine) done(op string, err error, attrs ...any) error {
	if err != nil {
		e.log.Warn("primitive rejected", "op", op, "kind", domain.KindOf(err), "status", fmt.Sprintf("%04X", domain.StatusWord(err)), "err", err)
		return err
	}
	e.log.Debug(op, attrs...)
	return nil
}

func (e *Engine) Copy(dst, src []byte, length int) error {
	return e.done("copy", memory.Copy(dst, src, length), "length", length, "alias", memory.Overlap(dst, src).String())
}

func (e *Engine) Compare(a, b []byte, length int) (domain.Ordering, flags.Outcome, error) {
	ord, o, err := memory.Compare(a, b, length)
	return ord, o, e.done("compare", err, "length", length, "carry", o.Carry, "zero", o.Zero)
}

func (e *Engine) Multiply(product, op1, op2 []byte) error {
	return e.done("multiply", bigint.Multiply(product, op1, op2), "length", len(op1))
}

func (e *Engine) ModMultiply(op1, op2, modulus []byte) error {
	return e.done("modmul", bigint.ModMultiply(op1, op2, modulus), "length", len(modulus))
}

// ModExp forces the constant-time path when the public one is disabled.
func (e *Engine) ModExp(exponent, modulus, base, result []byte, secure bool) error {
	if !secure && !e.allowPublic {
		e.log.Debug("public exponentiation disabled; using constant-time path")
		secure = true
	}
	attrs := []any{"modLen", len(modulus), "expLen", len(exponent), "secure", secure}
	if !secure {
		attrs = append(attrs, logging.Hex("modulus", modulus))
	}
	return e.done("modexp", bigint.ModExp(exponent, modulus, base, result, secure), attrs...)
}

func (e *Engine) Encrypt(alg domain.CipherAlgorithm, mode domain.CipherMode, key, iv, in, out []byte) error {
	return e.done("encrypt", blockcipher.Encrypt(alg, mode, key, iv, in, out), "alg", alg.String(), "mode", mode.String(), "length", len(in))
}

func (e *Engine) Decrypt(alg domain.CipherAlgorithm, mode domain.CipherMode, key, iv, in, out []byte) error {
	return e.done("decrypt", blockcipher.Decrypt(alg, mode, key, iv, in, out), "alg", alg.String(), "mode", mode.String(), "length", len(in))
}

// Signature computes a Triple DES CBC signature.
func (e *Engine) Signature(sig, key, iv, input []byte) error {
	return e.done("signature", blockcipher.TripleDESCBCSignature(sig, key, iv, input), "length", len(input))
}

func (e *Engine) Absorb(st *domain.HashState, alg domain.HashAlgorithm, msg []byte) error {
	err := securehash.Absorb(st, alg, msg)
	var counted uint32
	if st != nil {
		counted = st.Counted
	}
	return e.done("absorb", err, "alg", alg.String(), "length", len(msg), "counted", counted)
}

func (e *Engine) Finalize(st *domain.HashState, digest []byte) error {
	err := securehash.Finalize(st, digest)
	return e.done("finalize", err, "length", len(digest))
}

func (e *Engine) RandomBytes(out []byte) error {
	return e.done("random", e.rng.RandomBytes(out), "length", len(out))
}

// RandomNumber returns one 8-byte random number.
func (e *Engine) RandomNumber() ([entropy.NumberSize]byte, error) {
	n, err := entropy.RandomNumber(e.rng)
	return n, e.done("random", err, "length", entropy.NumberSize)
}
