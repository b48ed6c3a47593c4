package cache

import (
	"context"
	"errors"
	"math/big"
	"strings"
)

// MaxKeyLength is the maximum allowed length for a cache key.
const MaxKeyLength = 512

// Sentinel errors for cache operations.
var (
	ErrNilStore   = errors.New("cache: store is nil")
	ErrInvalidKey = errors.New("cache: key is invalid")
	ErrKeyTooLong = errors.New("cache: key exceeds max length")
	ErrNilValue   = errors.New("cache: value is nil")

	// ErrNegativeValue rejects values outside the result domain. Ackermann
	// results are non-negative, and the persisted encoding carries no sign.
	ErrNegativeValue = errors.New("cache: value is negative")
)

// Store is the interface for persisted computation results.
//
// Contract:
//   - Concurrency: implementations must be safe for concurrent use.
//   - Context: methods should honor cancellation/deadlines where applicable.
//   - Errors: Lookup never errors; an unreadable backend degrades to a miss.
//   - Immutability: Put is first-write-wins; an existing key is left
//     untouched and the call reports success.
//   - Aliasing: values returned by Lookup and accepted by Put are private
//     copies; callers may mutate their own big.Ints freely.
type Store interface {
	// Lookup retrieves a previously stored result. Returns (nil, false)
	// on miss.
	Lookup(ctx context.Context, key string) (*big.Int, bool)

	// Put persists a result under the key. A key that already holds a
	// value is not overwritten.
	Put(ctx context.Context, key string, value *big.Int) error

	// Close releases the backing resources. Idempotent.
	Close() error
}

// ValidateKey checks if a key is valid for caching.
func ValidateKey(key string) error {
	if key == "" || strings.TrimSpace(key) == "" {
		return ErrInvalidKey
	}
	if len(key) > MaxKeyLength {
		return ErrKeyTooLong
	}
	// Reject keys with newlines or carriage returns
	if strings.ContainsAny(key, "\n\r") {
		return ErrInvalidKey
	}
	return nil
}
