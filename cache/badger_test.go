package cache

import (
	"context"
	"errors"
	"math/big"
	"testing"
)

func openTestBadger(t *testing.T) *BadgerStore {
	t.Helper()
	s, err := OpenBadger(InMemoryBadgerConfig())
	if err != nil {
		t.Fatalf("OpenBadger: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return s
}

func TestBadgerStore_RoundTrip(t *testing.T) {
	s := openTestBadger(t)
	ctx := context.Background()

	if _, ok := s.Lookup(ctx, "ack:v1:2:2"); ok {
		t.Fatal("lookup on empty store reported a hit")
	}

	want := big.NewInt(7)
	if err := s.Put(ctx, "ack:v1:2:2", want); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok := s.Lookup(ctx, "ack:v1:2:2")
	if !ok {
		t.Fatal("lookup after put reported a miss")
	}
	if got.Cmp(want) != 0 {
		t.Errorf("Lookup = %s, want %s", got, want)
	}
}

// TestBadgerStore_LargeValue round-trips a result with tens of thousands of
// digits, the shape of an A(4, 2)-class entry.
func TestBadgerStore_LargeValue(t *testing.T) {
	s := openTestBadger(t)
	ctx := context.Background()

	want := new(big.Int).Lsh(big.NewInt(1), 65536) // 2^65536
	want.Sub(want, big.NewInt(3))

	if err := s.Put(ctx, "ack:v1:4:2", want); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, ok := s.Lookup(ctx, "ack:v1:4:2")
	if !ok {
		t.Fatal("miss after put")
	}
	if got.Cmp(want) != 0 {
		t.Error("large value did not round-trip")
	}
}

func TestBadgerStore_FirstWriteWins(t *testing.T) {
	s := openTestBadger(t)
	ctx := context.Background()

	if err := s.Put(ctx, "ack:v1:2:2", big.NewInt(7)); err != nil {
		t.Fatalf("first Put: %v", err)
	}
	if err := s.Put(ctx, "ack:v1:2:2", big.NewInt(999)); err != nil {
		t.Fatalf("second Put: %v", err)
	}

	got, ok := s.Lookup(ctx, "ack:v1:2:2")
	if !ok {
		t.Fatal("miss after put")
	}
	if got.String() != "7" {
		t.Errorf("entry was overwritten: got %s, want 7", got)
	}
}

// TestBadgerStore_PersistsAcrossReopen verifies durability across separate
// sequential opens of the same directory, the cross-invocation contract.
func TestBadgerStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	cfg := DefaultBadgerConfig(dir)
	cfg.GCInterval = 0 // keep the test quiet

	s, err := OpenBadger(cfg)
	if err != nil {
		t.Fatalf("OpenBadger: %v", err)
	}
	if err := s.Put(ctx, "ack:v1:3:3", big.NewInt(61)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s2, err := OpenBadger(cfg)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() {
		if err := s2.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	}()

	got, ok := s2.Lookup(ctx, "ack:v1:3:3")
	if !ok {
		t.Fatal("entry did not survive reopen")
	}
	if got.String() != "61" {
		t.Errorf("Lookup after reopen = %s, want 61", got)
	}
}

func TestBadgerStore_PutValidation(t *testing.T) {
	s := openTestBadger(t)
	ctx := context.Background()

	if err := s.Put(ctx, "", big.NewInt(1)); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("Put with empty key error = %v, want ErrInvalidKey", err)
	}
	if err := s.Put(ctx, "ack:v1:0:0", nil); !errors.Is(err, ErrNilValue) {
		t.Errorf("Put with nil value error = %v, want ErrNilValue", err)
	}
	if err := s.Put(ctx, "ack:v1:0:0", big.NewInt(-1)); !errors.Is(err, ErrNegativeValue) {
		t.Errorf("Put with negative value error = %v, want ErrNegativeValue", err)
	}
}

func TestOpenBadger_RequiresPath(t *testing.T) {
	_, err := OpenBadger(BadgerConfig{})
	if err == nil {
		t.Error("OpenBadger without path or in-memory mode did not error")
	}
}

func TestBadgerStore_CloseIdempotent(t *testing.T) {
	s, err := OpenBadger(InMemoryBadgerConfig())
	if err != nil {
		t.Fatalf("OpenBadger: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close() = %v, want nil", err)
	}
}
