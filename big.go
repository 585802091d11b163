package egcd

import "math/big"

var bigOne = big.NewInt(1)

// BigGCD returns the GCD of all of bs as a new big.Int.
// BigGCD of no arguments is 0, as is the GCD of any number of zeros.
func BigGCD(bs ...*big.Int) *big.Int {
	// the discarded coefficients cost a few allocations per input, but see
	// BenchmarkBigExtGCD before reaching for anything cleverer
	d, _ := BigExtGCD(bs...)
	return d
}

// BigExtGCD generalizes ExtGCDAll to arbitrary-precision integers. It
// returns the GCD d of all of bs together with one coefficient per input
// such that:
//
//	d == cs[0]*bs[0] + cs[1]*bs[1] + ... + cs[len(bs)-1]*bs[len(bs)-1]
//
// holds exactly. d is always non-negative. With no arguments the result is
// (0, nil); with a single argument the result is its absolute value with
// coefficient 1 or -1.
//
// The inputs are never modified and the results never alias them, so the
// same *big.Int may appear at several positions.
func BigExtGCD(bs ...*big.Int) (d *big.Int, cs []*big.Int) {
	if len(bs) == 0 {
		return new(big.Int), nil
	}
	d = new(big.Int).Set(bs[0])
	cs = make([]*big.Int, 1, len(bs))
	cs[0] = big.NewInt(1)
	for _, v := range bs[1:] {
		g, x, y := bigExtGCD2(d, v)
		d = g
		for _, c := range cs {
			c.Mul(c, x)
		}
		cs = append(cs, y)
	}
	if d.Sign() < 0 {
		d.Neg(d)
		for _, c := range cs {
			c.Neg(c)
		}
	}
	return d, cs
}

// bigExtGCD2 runs the two-argument recurrence on copies of m and n,
// returning d, x, y such that x*m + y*n == d and |d| == GCD(m, n).
// big.Int.GCD is not usable here: it panics for non-positive operands and
// its coefficient choice differs from the floored remainder sequence that
// the exported results are documented in terms of.
func bigExtGCD2(m, n *big.Int) (d, x, y *big.Int) {
	b := new(big.Int).Set(m)
	c := new(big.Int).Set(n)
	x0, x1 := big.NewInt(1), new(big.Int)
	y0, y1 := new(big.Int), big.NewInt(1)
	for c.Sign() != 0 {
		q, r := bigFloorQuoRem(b, c)
		b, c = c, r
		t := new(big.Int).Mul(q, x1)
		x0, x1 = x1, t.Sub(x0, t)
		u := new(big.Int).Mul(q, y1)
		y0, y1 = y1, u.Sub(y0, u)
	}
	return b, x0, y0
}

// bigFloorQuoRem returns the floored quotient and remainder of b and c,
// with the remainder taking the sign of the divisor. Neither of the
// big.Int conventions matches: QuoRem truncates toward zero and Div/Mod
// are Euclidean (non-negative remainder even for a negative divisor).
func bigFloorQuoRem(b, c *big.Int) (q, r *big.Int) {
	q, r = new(big.Int).QuoRem(b, c, new(big.Int))
	if r.Sign() != 0 && r.Sign() != c.Sign() {
		q.Sub(q, bigOne)
		r.Add(r, c)
	}
	return q, r
}
