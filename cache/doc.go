// Package cache persists computed Ackermann results keyed by their input
// pair.
//
// It provides a Store interface with a memory implementation for tests and
// a BadgerDB-backed implementation for durable storage across process
// invocations, plus deterministic key derivation from (m, n) pairs. The
// store is a pure accumulating memo: entries have no TTL, are never evicted,
// and are never overwritten once written.
package cache
