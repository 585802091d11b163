package egcd_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbolino/egcd"
)

func TestModInverse(t *testing.T) {
	cases := []struct {
		A, M, Inv int64
	}{
		{3, 7, 5},
		{-3, 7, 2},
		{17, 3120, 2753},
		{10, 1, 0},
		{42, 2017, 1969},
		{1, 2, 1},
	}
	for _, c := range cases {
		x, err := egcd.ModInverse(c.A, c.M)
		require.NoError(t, err, "ModInverse(%d, %d)", c.A, c.M)
		assert.Equal(t, c.Inv, x, "ModInverse(%d, %d)", c.A, c.M)
	}
}

func TestModInverse_Errors(t *testing.T) {
	_, err := egcd.ModInverse(2, 0)
	assert.ErrorIs(t, err, egcd.ErrModInvalid)

	_, err = egcd.ModInverse(2, -7)
	assert.ErrorIs(t, err, egcd.ErrModInvalid)

	_, err = egcd.ModInverse(4, 8)
	assert.ErrorIs(t, err, egcd.ErrNotCoprime)

	_, err = egcd.ModInverse(0, 5)
	assert.ErrorIs(t, err, egcd.ErrNotCoprime)
}

// TestModInverse_Sweep checks a*x == 1 (mod m) for every unit of every
// small modulus.
func TestModInverse_Sweep(t *testing.T) {
	for m := int64(1); m <= 60; m++ {
		for a := int64(-m); a <= m; a++ {
			x, err := egcd.ModInverse(a, m)
			if egcd.GCD(a, m) != 1 {
				assert.ErrorIs(t, err, egcd.ErrNotCoprime, "ModInverse(%d, %d)", a, m)
				continue
			}
			require.NoError(t, err, "ModInverse(%d, %d)", a, m)
			require.GreaterOrEqual(t, x, int64(0), "ModInverse(%d, %d)", a, m)
			require.Less(t, x, m, "ModInverse(%d, %d)", a, m)
			got := ((a*x)%m + m) % m
			want := int64(1) % m // 0 when m == 1
			require.Equal(t, want, got, "ModInverse(%d, %d)", a, m)
		}
	}
}

func TestBigModInverse(t *testing.T) {
	x, err := egcd.BigModInverse(big.NewInt(17), big.NewInt(3120))
	require.NoError(t, err)
	assert.Equal(t, int64(2753), x.Int64())

	// 2^61-1 is prime, so any smaller positive integer is invertible
	m := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 61), big.NewInt(1))
	a := big.NewInt(123456789)
	x, err = egcd.BigModInverse(a, m)
	require.NoError(t, err)
	prod := new(big.Int).Mul(a, x)
	assert.Zero(t, prod.Mod(prod, m).Cmp(big.NewInt(1)))
}

func TestBigModInverse_Errors(t *testing.T) {
	_, err := egcd.BigModInverse(big.NewInt(2), big.NewInt(0))
	assert.ErrorIs(t, err, egcd.ErrModInvalid)

	_, err = egcd.BigModInverse(big.NewInt(6), big.NewInt(9))
	assert.ErrorIs(t, err, egcd.ErrNotCoprime)
}

func TestBigModInverse_InputsUntouched(t *testing.T) {
	a := big.NewInt(-3)
	m := big.NewInt(7)
	x, err := egcd.BigModInverse(a, m)
	require.NoError(t, err)
	assert.Equal(t, int64(2), x.Int64())
	assert.Equal(t, int64(-3), a.Int64())
	assert.Equal(t, int64(7), m.Int64())
}
