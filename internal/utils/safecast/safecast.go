// Package safecast implements functions to safely cast types to avoid panics
package safecast

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/spf13/cast"
)

// Int64ToUint64 safely converts an int64 to uint64 using cast and checks for sign
func Int64ToUint64(value int64) (uint64, error) {
	if value < 0 {
		return 0, fmt.Errorf("value %d is negative, cannot convert to uint64", value)
	}

	return cast.ToUint64E(value)
}

// Uint64ToInt64 safely converts a uint64 to int64 using cast and checks for overflow
func Uint64ToInt64(value uint64) (int64, error) {
	if value > math.MaxInt64 {
		return 0, fmt.Errorf("value %d exceeds int64 range", value)
	}

	return cast.ToInt64E(value)
}

// Float64ToUint64 safely converts a float64 to uint64 using cast and checks for overflow
func Float64ToUint64(value float64) (uint64, error) {
	if value < 0 {
		return 0, fmt.Errorf("value %g is negative, cannot convert to uint64", value)
	}

	if value >= math.MaxUint64 {
		return 0, fmt.Errorf("value %g exceeds uint64 range", value)
	}

	if value != math.Trunc(value) {
		return 0, fmt.Errorf("value %g has fractional part, cannot convert to uint64", value)
	}

	return cast.ToUint64E(value)
}

// BigIntToUint64 safely converts a big.Int to uint64 and checks for sign and overflow
func BigIntToUint64(value *big.Int) (uint64, error) {
	if value == nil {
		return 0, errors.New("value is nil, cannot convert to uint64")
	}

	if value.Sign() < 0 {
		return 0, fmt.Errorf("value %s is negative, cannot convert to uint64", value)
	}

	if !value.IsUint64() {
		return 0, fmt.Errorf("value %s exceeds uint64 range", value)
	}

	return value.Uint64(), nil
}
