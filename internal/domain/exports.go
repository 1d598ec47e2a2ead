package domain

import (
	interfaces "seprim/internal/domain/interfaces"
	types "seprim/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	HashAlgorithm   = types.HashAlgorithm
	HashState       = types.HashState
	CipherAlgorithm = types.CipherAlgorithm
	CipherMode      = types.CipherMode
	Ordering        = types.Ordering
)

// Constant re-exports.
const (
	SHA1   = types.SHA1
	SHA224 = types.SHA224
	SHA256 = types.SHA256
	SHA384 = types.SHA384
	SHA512 = types.SHA512

	DES       = types.DES
	TripleDES = types.TripleDES
	SEED      = types.SEED
	AES       = types.AES

	ECB = types.ECB
	CBC = types.CBC

	Less    = types.Less
	Equal   = types.Equal
	Greater = types.Greater
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	EntropySource  = interfaces.EntropySource
	StaticMemory   = interfaces.StaticMemory
	HashStateStore = interfaces.HashStateStore
	Primitives     = interfaces.Primitives
)
