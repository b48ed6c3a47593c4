package cache

import (
	"fmt"
	"math/big"
)

// Pair is an ordered (m, n) Ackermann input pair, the key domain of the
// store. It is immutable once constructed: NewPair copies n, and accessors
// return copies.
type Pair struct {
	m int
	n *big.Int
}

// NewPair constructs a Pair, copying n. Negative components are allowed
// here so keyers can reject them with a useful error.
func NewPair(m int, n *big.Int) Pair {
	p := Pair{m: m}
	if n != nil {
		p.n = new(big.Int).Set(n)
	}
	return p
}

// M returns the first component.
func (p Pair) M() int { return p.m }

// N returns a copy of the second component, or nil if unset.
func (p Pair) N() *big.Int {
	if p.n == nil {
		return nil
	}
	return new(big.Int).Set(p.n)
}

// Equal reports whether both components match.
func (p Pair) Equal(q Pair) bool {
	if p.m != q.m {
		return false
	}
	if p.n == nil || q.n == nil {
		return p.n == q.n
	}
	return p.n.Cmp(q.n) == 0
}

// String renders the pair for logs and errors.
func (p Pair) String() string {
	if p.n == nil {
		return fmt.Sprintf("(%d, <nil>)", p.m)
	}
	return fmt.Sprintf("(%d, %s)", p.m, p.n)
}
