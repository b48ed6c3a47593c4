package ackermann

import "math/big"

// evalRecursive follows the recurrence directly. Depth is unbounded on
// purpose; the call stack is the resource ceiling.
func evalRecursive(m int, n *big.Int) *big.Int {
	if m == 0 {
		return new(big.Int).Add(n, one)
	}
	if n.Sign() == 0 {
		return evalRecursive(m-1, one)
	}
	inner := evalRecursive(m, new(big.Int).Sub(n, one))
	return evalRecursive(m-1, inner)
}
