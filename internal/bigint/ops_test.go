package bigint_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"seprim/internal/bigint"
	"seprim/internal/domain"
)

// fixed encodes x big-endian into exactly n bytes.
func fixed(x *big.Int, n int) []byte {
	return x.FillBytes(make([]byte, n))
}

// randBelow returns a uniformly random value in [0, m) as n bytes.
func randBelow(rng *rand.Rand, m *big.Int, n int) []byte {
	return fixed(new(big.Int).Rand(rng, m), n)
}

// randOddModulus returns an odd modulus of exactly n bytes with a nonzero top byte.
func randOddModulus(rng *rand.Rand, n int) *big.Int {
	b := make([]byte, n)
	rng.Read(b)
	b[0] |= 0x80
	b[n-1] |= 0x01
	return new(big.Int).SetBytes(b)
}

func TestModExp_SmallScenario(t *testing.T) {
	// 2537 = 43 * 59, two bytes.
	modulus := fixed(big.NewInt(2537), 2)
	base := fixed(big.NewInt(3), 2)
	exponent := []byte{17}

	want := new(big.Int).Exp(big.NewInt(3), big.NewInt(17), big.NewInt(2537))
	require.Equal(t, int64(1789), want.Int64())

	for _, secure := range []bool{true, false} {
		result := make([]byte, 2)
		require.NoError(t, bigint.ModExp(exponent, modulus, base, result, secure))
		require.Equal(t, fixed(want, 2), result, "secure=%v", secure)
	}
}

func TestModExp_SecureMatchesPublic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, n := range []int{1, 2, 7, 8, 9, 16, 31, 64, 128} {
		for i := 0; i < 4; i++ {
			m := randOddModulus(rng, n)
			base := randBelow(rng, m, n)
			expLen := 1 + rng.Intn(n)
			exponent := make([]byte, expLen)
			rng.Read(exponent)
			if new(big.Int).SetBytes(exponent).Cmp(m) >= 0 {
				exponent[0] = 0
			}

			secure := make([]byte, n)
			public := make([]byte, n)
			require.NoError(t, bigint.ModExp(exponent, fixed(m, n), base, secure, true))
			require.NoError(t, bigint.ModExp(exponent, fixed(m, n), base, public, false))
			require.Equal(t, public, secure, "n=%d", n)

			want := new(big.Int).Exp(new(big.Int).SetBytes(base), new(big.Int).SetBytes(exponent), m)
			require.Equal(t, fixed(want, n), secure)
		}
	}
}

func TestModExp_EdgeExponents(t *testing.T) {
	m := fixed(big.NewInt(1_000_003), 4)
	base := fixed(big.NewInt(12345), 4)
	for _, secure := range []bool{true, false} {
		result := make([]byte, 4)
		require.NoError(t, bigint.ModExp([]byte{0}, m, base, result, secure))
		require.Equal(t, fixed(big.NewInt(1), 4), result)

		require.NoError(t, bigint.ModExp([]byte{1}, m, base, result, secure))
		require.Equal(t, base, result)

		require.NoError(t, bigint.ModExp([]byte{5}, m, make([]byte, 4), result, secure))
		require.Equal(t, make([]byte, 4), result)
	}
}

func TestModExp_ModulusWithLeadingZeroByte(t *testing.T) {
	m := big.NewInt(0xF1)
	for _, secure := range []bool{true, false} {
		result := make([]byte, 3)
		require.NoError(t, bigint.ModExp([]byte{0x00, 0x03}, fixed(m, 3), fixed(big.NewInt(2), 3), result, secure))
		require.Equal(t, fixed(big.NewInt(8), 3), result)
	}
}

func TestModExp_ResultAliasesBase(t *testing.T) {
	m := fixed(big.NewInt(2537), 2)
	buf := fixed(big.NewInt(3), 2)
	require.NoError(t, bigint.ModExp([]byte{17}, m, buf, buf, true))
	require.Equal(t, fixed(big.NewInt(1789), 2), buf)
}

func TestModExp_Preconditions(t *testing.T) {
	odd := fixed(big.NewInt(2537), 2)
	cases := []struct {
		name              string
		exponent, modulus []byte
		base, result      []byte
		kind              domain.Kind
	}{
		{"even modulus", []byte{3}, []byte{0x09, 0xEA}, []byte{0, 3}, make([]byte, 2), domain.KindPrecondition},
		{"base too large", []byte{3}, odd, []byte{0x09, 0xE9}, make([]byte, 2), domain.KindPrecondition},
		{"exponent too large", []byte{0x09, 0xE9}, odd, []byte{0, 3}, make([]byte, 2), domain.KindPrecondition},
		{"exponent too long", []byte{0, 0, 3}, odd, []byte{0, 3}, make([]byte, 2), domain.KindPrecondition},
		{"short base", []byte{3}, odd, []byte{3}, make([]byte, 2), domain.KindInvalidLength},
		{"short result", []byte{3}, odd, []byte{0, 3}, make([]byte, 1), domain.KindInvalidLength},
		{"empty exponent", nil, odd, []byte{0, 3}, make([]byte, 2), domain.KindInvalidLength},
		{"empty modulus", []byte{3}, nil, nil, nil, domain.KindInvalidLength},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, secure := range []bool{true, false} {
				err := bigint.ModExp(tc.exponent, tc.modulus, tc.base, tc.result, secure)
				require.Error(t, err)
				require.Equal(t, tc.kind, domain.KindOf(err), "err=%v", err)
			}
		})
	}
}

func TestModExp_PartialOverlapRejected(t *testing.T) {
	m := fixed(big.NewInt(2537), 2)
	buf := []byte{0, 3, 0}
	err := bigint.ModExp([]byte{17}, m, buf[0:2], buf[1:3], true)
	require.True(t, domain.IsKind(err, domain.KindOverlap), "err=%v", err)
}

func TestModMultiply_MatchesBigInt(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, n := range []int{1, 3, 8, 15, 32, 64, 129} {
		for i := 0; i < 6; i++ {
			m := new(big.Int).Rand(rng, new(big.Int).Lsh(big.NewInt(1), uint(8*n)))
			if m.Sign() == 0 {
				m.SetInt64(1)
			}
			a := randBelow(rng, m, n)
			b := randBelow(rng, m, n)

			want := new(big.Int).Mul(new(big.Int).SetBytes(a), new(big.Int).SetBytes(b))
			want.Mod(want, m)

			require.NoError(t, bigint.ModMultiply(a, b, fixed(m, n)))
			require.Equal(t, fixed(want, n), a, "n=%d m=%x", n, m)
		}
	}
}

func TestModMultiply_SquareInPlace(t *testing.T) {
	m := fixed(big.NewInt(97), 1)
	x := []byte{50}
	require.NoError(t, bigint.ModMultiply(x, x, m))
	require.Equal(t, []byte{2500 % 97}, x)
}

func TestModMultiply_Preconditions(t *testing.T) {
	m := []byte{0x00, 0x61}
	err := bigint.ModMultiply([]byte{0x00, 0x61}, []byte{0x00, 0x01}, m)
	require.True(t, domain.IsKind(err, domain.KindPrecondition))

	err = bigint.ModMultiply([]byte{0x00, 0x01}, []byte{0x01, 0x00}, m)
	require.True(t, domain.IsKind(err, domain.KindPrecondition))

	err = bigint.ModMultiply([]byte{0, 0}, []byte{0, 0}, []byte{0, 0})
	require.True(t, domain.IsKind(err, domain.KindPrecondition))

	err = bigint.ModMultiply([]byte{1}, []byte{0, 1}, m)
	require.True(t, domain.IsKind(err, domain.KindInvalidLength))
}

func TestMultiply_MatchesBigInt(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, n := range []int{1, 2, 5, 8, 13, 64, 200} {
		a := make([]byte, n)
		b := make([]byte, n)
		rng.Read(a)
		rng.Read(b)
		product := make([]byte, 2*n)
		require.NoError(t, bigint.Multiply(product, a, b))
		want := new(big.Int).Mul(new(big.Int).SetBytes(a), new(big.Int).SetBytes(b))
		require.Equal(t, fixed(want, 2*n), product)
	}
}

func TestMultiply_AllOnes(t *testing.T) {
	a := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	product := make([]byte, 18)
	require.NoError(t, bigint.Multiply(product, a, a))
	x := new(big.Int).SetBytes(a)
	require.Equal(t, fixed(new(big.Int).Mul(x, x), 18), product)
}

func TestMultiply_Lengths(t *testing.T) {
	err := bigint.Multiply(make([]byte, 3), []byte{1, 2}, []byte{3, 4})
	require.True(t, domain.IsKind(err, domain.KindInvalidLength))
	err = bigint.Multiply(make([]byte, 4), []byte{1, 2}, []byte{3})
	require.True(t, domain.IsKind(err, domain.KindInvalidLength))
	err = bigint.Multiply(nil, nil, nil)
	require.True(t, domain.IsKind(err, domain.KindInvalidLength))
}
