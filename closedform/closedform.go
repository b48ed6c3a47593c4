package closedform

import (
	"errors"
	"math"
	"math/big"

	"github.com/jonwraymond/ackermann/hyperop"
)

// ErrNoClosedForm signals that no closed form exists for the given inputs.
// It is a normal fall-through condition, not a failure: callers are expected
// to check it with errors.Is and continue with full evaluation.
var ErrNoClosedForm = errors.New("closedform: no closed form available")

var three = big.NewInt(3)

// Try returns A(m, n) by closed form, or ErrNoClosedForm when none applies.
//
// The dispatch table, a standard identity of the Ackermann hierarchy:
//
//	m=0: n+1
//	m=1: n+2
//	m=2: 2n+3
//	m=3: 2^(n+3) - 3
//	m=4: tetration(2, n+3) - 3
//	m=5: pentation(2, n+3) - 3
//
// Results are bit-for-bit identical to full evaluation. Inputs outside the
// non-negative domain also report ErrNoClosedForm rather than a distinct
// error; validation belongs to the caller.
func Try(m int, n *big.Int) (*big.Int, error) {
	if n == nil || n.Sign() < 0 || m < 0 {
		return nil, ErrNoClosedForm
	}

	switch m {
	case 0:
		return new(big.Int).Add(n, big.NewInt(1)), nil
	case 1:
		return new(big.Int).Add(n, big.NewInt(2)), nil
	case 2:
		r := new(big.Int).Lsh(n, 1)
		return r.Add(r, three), nil
	case 3:
		exp := new(big.Int).Add(n, three)
		r := new(big.Int).Exp(big.NewInt(2), exp, nil)
		return r.Sub(r, three), nil
	case 4:
		h, ok := towerHeight(n)
		if !ok {
			return nil, ErrNoClosedForm
		}
		r := hyperop.Tetration(big.NewInt(2), h)
		return r.Sub(r, three), nil
	case 5:
		h, ok := towerHeight(n)
		if !ok {
			return nil, ErrNoClosedForm
		}
		r := hyperop.Pentation(big.NewInt(2), h)
		return r.Sub(r, three), nil
	default:
		return nil, ErrNoClosedForm
	}
}

// towerHeight returns n+3 as a machine int. Heights beyond the int range
// describe values that could never be materialized, so the closed form is
// reported unavailable instead.
func towerHeight(n *big.Int) (int, bool) {
	if !n.IsInt64() || n.Int64() > math.MaxInt-3 {
		return 0, false
	}
	return int(n.Int64()) + 3, true
}
