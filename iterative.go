package ackermann

import "math/big"

// evalIterative simulates the recursion with an explicit LIFO stack of
// pending m-values and a running accumulator for n.
//
// Loop invariant: the answer equals the result of applying the stacked
// m-values, top first, to the accumulator. Popping m'=0 increments the
// accumulator; A(m', 0) rewrites to A(m'-1, 1); A(m', n) rewrites to
// A(m'-1, A(m', n-1)), pushing m'-1 below m' so the inner application runs
// first.
func evalIterative(m int, n *big.Int) *big.Int {
	acc := new(big.Int).Set(n)
	stack := make(mStack, 0, 64)
	stack.push(m)

	for len(stack) > 0 {
		top := stack.pop()
		switch {
		case top == 0:
			acc.Add(acc, one)
		case acc.Sign() == 0:
			acc.SetInt64(1)
			stack.push(top - 1)
		default:
			acc.Sub(acc, one)
			stack.push(top - 1)
			stack.push(top)
		}
	}
	return acc
}

// mStack is a growable LIFO of pending m-values. The values stored never
// exceed the original m, so machine ints suffice; only the accumulator
// needs arbitrary precision.
type mStack []int

func (s *mStack) push(v int) {
	*s = append(*s, v)
}

func (s *mStack) pop() int {
	old := *s
	v := old[len(old)-1]
	*s = old[:len(old)-1]
	return v
}
