package ackermann

import (
	"errors"
	"fmt"
	"math/big"
)

// Sentinel errors for evaluation.
var (
	ErrNegativeInput   = errors.New("ackermann: m and n must be non-negative")
	ErrNilOperand      = errors.New("ackermann: n is nil")
	ErrUnknownStrategy = errors.New("ackermann: unknown evaluation strategy")
)

// Strategy selects the computation path. It changes resource behavior only,
// never the mathematical result.
type Strategy int

const (
	// Recursive evaluates by direct structural recursion. Stack-limited.
	Recursive Strategy = iota + 1
	// Iterative evaluates with an explicit growable work stack.
	Iterative
)

// String returns the lowercase strategy name.
func (s Strategy) String() string {
	switch s {
	case Recursive:
		return "recursive"
	case Iterative:
		return "iterative"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// Valid reports whether s names a known strategy.
func (s Strategy) Valid() bool {
	return s == Recursive || s == Iterative
}

// ParseStrategy parses a textual strategy name. Strategy selection is
// mandatory; an empty or unknown name is an error.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "recursive":
		return Recursive, nil
	case "iterative":
		return Iterative, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Evaluate computes A(m, n) using the given strategy.
//
// The recurrence defining correctness for both strategies:
//
//	A(0, n) = n + 1
//	A(m, 0) = A(m-1, 1)            for m > 0
//	A(m, n) = A(m-1, A(m, n-1))    for m > 0, n > 0
//
// The argument n is not mutated; the result is freshly allocated.
//
// Under Recursive, inputs with m >= 4 and n > 0 exhaust the goroutine call
// stack and terminate the process. This is not recoverable and not guarded
// against here; use Iterative for those inputs.
func Evaluate(m int, n *big.Int, s Strategy) (*big.Int, error) {
	if n == nil {
		return nil, ErrNilOperand
	}
	if m < 0 || n.Sign() < 0 {
		return nil, ErrNegativeInput
	}
	switch s {
	case Recursive:
		return evalRecursive(m, n), nil
	case Iterative:
		return evalIterative(m, n), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}
}

var one = big.NewInt(1)
