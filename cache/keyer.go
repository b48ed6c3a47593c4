package cache

import "fmt"

// Keyer generates deterministic cache keys from input pairs.
//
// Contract:
// - Determinism: equal pairs must produce equal keys.
// - Injectivity: distinct pairs must produce distinct keys.
// - Concurrency: implementations must be safe for concurrent use.
type Keyer interface {
	// Key generates a cache key from an input pair.
	Key(pair Pair) (string, error)
}

// DefaultKeyer generates plain decimal cache keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates a new default keyer.
func NewDefaultKeyer() *DefaultKeyer {
	return &DefaultKeyer{}
}

// Key generates a deterministic cache key.
// Format: ack:v1:<m>:<n>
// The decimal encoding is stable, injective, and human-readable. A pair
// whose n would push the key past MaxKeyLength describes a computation that
// could never finish, so rejecting it loses nothing.
func (k *DefaultKeyer) Key(pair Pair) (string, error) {
	n := pair.N()
	if n == nil {
		return "", fmt.Errorf("%w: pair has no n component", ErrInvalidKey)
	}
	if pair.M() < 0 || n.Sign() < 0 {
		return "", fmt.Errorf("%w: negative pair %s", ErrInvalidKey, pair)
	}
	key := fmt.Sprintf("ack:v1:%d:%s", pair.M(), n)
	if err := ValidateKey(key); err != nil {
		return "", err
	}
	return key, nil
}

// Ensure DefaultKeyer implements Keyer
var _ Keyer = (*DefaultKeyer)(nil)
