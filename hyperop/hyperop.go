package hyperop

import (
	"math"
	"math/big"
)

// Pow returns a**b for non-negative big integers.
func Pow(a, b *big.Int) *big.Int {
	return new(big.Int).Exp(a, b, nil)
}

// Tetration returns a↑↑height: the right-associated power tower of a with
// the given number of levels. Height 0 yields 1 by convention.
//
// Panics if height is negative (programmer error, like a negative slice
// length).
func Tetration(a *big.Int, height int) *big.Int {
	if height < 0 {
		panic("hyperop: negative tetration height")
	}
	result := big.NewInt(1)
	for i := 0; i < height; i++ {
		result = Pow(a, result)
	}
	return result
}

// Pentation returns a↑↑↑height: iterated tetration, where the running
// result becomes the height of the next tower. Height 0 yields 1 by
// convention.
//
// Panics if height is negative, or if an intermediate tower height exceeds
// the int range — at that point the value could not be materialized anyway.
func Pentation(a *big.Int, height int) *big.Int {
	if height < 0 {
		panic("hyperop: negative pentation height")
	}
	result := big.NewInt(1)
	for i := 0; i < height; i++ {
		h, ok := intHeight(result)
		if !ok {
			panic("hyperop: tetration height overflows int")
		}
		result = Tetration(a, h)
	}
	return result
}

// intHeight converts a running result into a tower height.
func intHeight(v *big.Int) (int, bool) {
	if !v.IsInt64() || v.Int64() > math.MaxInt {
		return 0, false
	}
	return int(v.Int64()), true
}
