package egcd

import (
	"math"
	"math/bits"
)

// TryLCM returns the least common multiple of m and n, which is always
// non-negative; the LCM of 0 and anything is 0.
// TryLCM returns 0 and a non-nil error if the result would overflow.
func TryLCM(m, n int64) (int64, error) {
	if m == 0 || n == 0 {
		return 0, nil
	}
	am, an := abs64(m), abs64(n)
	d := GCD(am, an)
	// divide before multiplying; d divides am so no factors are lost, and
	// the wide product catches results past 63 bits
	hi, lo := bits.Mul64(uint64(am/d), uint64(an))
	if hi != 0 || lo > math.MaxInt64 {
		return 0, ErrOverflow
	}
	return int64(lo), nil
}

// LCM is like TryLCM but panics if the result would overflow.
func LCM(m, n int64) int64 {
	v, err := TryLCM(m, n)
	if err != nil {
		panic(err)
	}
	return v
}

// abs64 returns the absolute value of x.
func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
