package egcd

import "math/big"

// ModInverse returns the multiplicative inverse of a modulo m, normalized
// into [0, m). ModInverse returns ErrModInvalid if m is not positive and
// ErrNotCoprime if a and m share a factor, since the inverse only exists
// when GCD(a, m) == 1.
func ModInverse(a, m int64) (int64, error) {
	if m <= 0 {
		return 0, ErrModInvalid
	}
	x, _, d := ExtGCD(a, m)
	// d > 0 here: with a positive divisor every remainder is non-negative
	if d != 1 {
		return 0, ErrNotCoprime
	}
	x %= m
	if x < 0 {
		x += m
	}
	return x, nil
}

// BigModInverse is ModInverse for arbitrary-precision integers.
// Neither a nor m is modified.
func BigModInverse(a, m *big.Int) (*big.Int, error) {
	if m.Sign() <= 0 {
		return nil, ErrModInvalid
	}
	d, x, _ := bigExtGCD2(a, m)
	if d.Cmp(bigOne) != 0 {
		return nil, ErrNotCoprime
	}
	return x.Mod(x, m), nil
}
