// Package blockcipher enciphers and deciphers block-aligned regions with
// DES, 2- or 3-key Triple DES, SEED and AES-128 in ECB or CBC mode, and
// produces Triple DES CBC signatures.
//
// Output may be the very same region as the input but must not partially
// overlap it. The IV may live anywhere, including inside either region.
package blockcipher
