package cache

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"os"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// BadgerConfig holds configuration for a Badger-backed store.
type BadgerConfig struct {
	// Path is the directory for database files. Created if it does not
	// exist. Required unless InMemory is true.
	Path string

	// InMemory enables in-memory mode (no disk persistence). Useful for
	// testing.
	InMemory bool

	// SyncWrites enables synchronous writes for durability, so results
	// are visible to the next process invocation even after a crash.
	SyncWrites bool

	// Logger receives Badger's internal logging. If nil, it is disabled.
	Logger badger.Logger

	// GCInterval is how often to run value log garbage collection.
	// Set to 0 to disable.
	GCInterval time.Duration

	// GCDiscardRatio is the minimum ratio of discardable data before GC.
	GCDiscardRatio float64
}

// DefaultBadgerConfig returns durable defaults: synchronous writes and a
// 5-minute GC interval.
func DefaultBadgerConfig(path string) BadgerConfig {
	return BadgerConfig{
		Path:           path,
		SyncWrites:     true,
		GCInterval:     5 * time.Minute,
		GCDiscardRatio: 0.5,
	}
}

// InMemoryBadgerConfig returns configuration for tests: in-memory mode, no
// sync, no GC.
func InMemoryBadgerConfig() BadgerConfig {
	return BadgerConfig{
		InMemory:   true,
		SyncWrites: false,
		GCInterval: 0,
	}
}

// BadgerStore is a persistent store backed by an embedded BadgerDB. Each
// Put runs in its own transaction; the whole-table transactional model of a
// flat file store is not needed at this write volume.
type BadgerStore struct {
	db        *badger.DB
	closeOnce sync.Once
	closeErr  error
	stopGC    chan struct{}
	doneGC    chan struct{}
}

// OpenBadger opens (or creates) a Badger-backed store.
// The caller must Close the returned store.
func OpenBadger(cfg BadgerConfig) (*BadgerStore, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("cache: path is required for a persistent store")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("cache: create store directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites)
	opts = opts.WithNumVersionsToKeep(1)
	opts = opts.WithLogger(cfg.Logger)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("cache: open badger store: %w", err)
	}

	s := &BadgerStore{db: db}
	if cfg.GCInterval > 0 {
		s.stopGC = make(chan struct{})
		s.doneGC = make(chan struct{})
		go s.runGC(cfg.GCInterval, cfg.GCDiscardRatio)
	}
	return s, nil
}

// Lookup retrieves a value. Returns (nil, false) on miss; backend read
// failures also degrade to a miss per the Store contract.
func (s *BadgerStore) Lookup(_ context.Context, key string) (*big.Int, bool) {
	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, false
	}
	return new(big.Int).SetBytes(raw), true
}

// Put stores a value in a single transaction. First write wins: a key that
// already holds a value is left untouched.
func (s *BadgerStore) Put(_ context.Context, key string, value *big.Int) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	if value == nil {
		return ErrNilValue
	}
	if value.Sign() < 0 {
		return ErrNegativeValue
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(key))
		if err == nil {
			return nil // already stored
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		return txn.Set([]byte(key), value.Bytes())
	})
	if err != nil {
		return fmt.Errorf("cache: put %s: %w", key, err)
	}
	return nil
}

// Close stops the GC loop and closes the database. Idempotent.
func (s *BadgerStore) Close() error {
	s.closeOnce.Do(func() {
		if s.stopGC != nil {
			close(s.stopGC)
			<-s.doneGC
		}
		s.closeErr = s.db.Close()
	})
	return s.closeErr
}

// runGC triggers value log garbage collection at the configured interval.
// RunValueLogGC returns ErrNoRewrite when there is nothing to collect;
// that is not a failure.
func (s *BadgerStore) runGC(interval time.Duration, ratio float64) {
	defer close(s.doneGC)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopGC:
			return
		case <-ticker.C:
			for {
				if err := s.db.RunValueLogGC(ratio); err != nil {
					break
				}
			}
		}
	}
}

// Ensure BadgerStore implements Store
var _ Store = (*BadgerStore)(nil)
