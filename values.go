package egcd

import (
	"fmt"
	"math/big"
)

// ExtGCDValues is ExtGCDAll for dynamically typed values, such as numbers
// decoded from JSON or handed over by a scripting binding. Every Go integer
// kind is accepted, as are big.Int and *big.Int; uint64 values above
// math.MaxInt64 are handled exactly. The elements are validated from left
// to right and the first one that does not hold an integer stops the scan:
// the returned error wraps ErrNotInteger and names the offending type, and
// both results are nil.
func ExtGCDValues(vs ...any) (d *big.Int, cs []*big.Int, err error) {
	bs := make([]*big.Int, len(vs))
	for i, v := range vs {
		b, err := toBigInt(v)
		if err != nil {
			return nil, nil, err
		}
		bs[i] = b
	}
	d, cs = BigExtGCD(bs...)
	return d, cs, nil
}

func toBigInt(v any) (*big.Int, error) {
	switch v := v.(type) {
	case int:
		return big.NewInt(int64(v)), nil
	case int8:
		return big.NewInt(int64(v)), nil
	case int16:
		return big.NewInt(int64(v)), nil
	case int32:
		return big.NewInt(int64(v)), nil
	case int64:
		return big.NewInt(v), nil
	case uint:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint8:
		return big.NewInt(int64(v)), nil
	case uint16:
		return big.NewInt(int64(v)), nil
	case uint32:
		return big.NewInt(int64(v)), nil
	case uint64:
		return new(big.Int).SetUint64(v), nil
	case uintptr:
		return new(big.Int).SetUint64(uint64(v)), nil
	case big.Int:
		return &v, nil
	case *big.Int:
		if v == nil {
			break
		}
		return v, nil
	}
	return nil, fmt.Errorf("'%T' object %w", v, ErrNotInteger)
}
