package ackermann

import (
	"errors"
	"math/big"
	"testing"
)

// TestEvaluate_KnownValues checks both strategies against the closed forms
// for m <= 3: A(0,n)=n+1, A(1,n)=n+2, A(2,n)=2n+3, A(3,n)=2^(n+3)-3.
func TestEvaluate_KnownValues(t *testing.T) {
	tests := []struct {
		m    int
		n    int64
		want string
	}{
		{0, 0, "1"},
		{0, 100, "101"},
		{1, 0, "2"},
		{1, 10, "12"},
		{2, 0, "3"},
		{2, 2, "7"},
		{2, 10, "23"},
		{3, 0, "5"},
		{3, 1, "13"},
		{3, 3, "61"},
		{3, 5, "253"},
		{3, 10, "8189"},
	}

	for _, tt := range tests {
		for _, s := range []Strategy{Recursive, Iterative} {
			got, err := Evaluate(tt.m, big.NewInt(tt.n), s)
			if err != nil {
				t.Fatalf("Evaluate(%d, %d, %s) error: %v", tt.m, tt.n, s, err)
			}
			if got.String() != tt.want {
				t.Errorf("Evaluate(%d, %d, %s) = %s, want %s", tt.m, tt.n, s, got, tt.want)
			}
		}
	}
}

// TestEvaluate_StrategiesAgree verifies the iterative simulation reproduces
// the recursion exactly over a grid of tractable inputs.
func TestEvaluate_StrategiesAgree(t *testing.T) {
	for m := 0; m <= 3; m++ {
		for n := int64(0); n <= 6; n++ {
			rec, err := Evaluate(m, big.NewInt(n), Recursive)
			if err != nil {
				t.Fatalf("recursive A(%d,%d): %v", m, n, err)
			}
			it, err := Evaluate(m, big.NewInt(n), Iterative)
			if err != nil {
				t.Fatalf("iterative A(%d,%d): %v", m, n, err)
			}
			if rec.Cmp(it) != 0 {
				t.Errorf("A(%d,%d): recursive=%s iterative=%s", m, n, rec, it)
			}
		}
	}
}

// TestEvaluate_IterativeHighM exercises the first row that starts to strain
// the call stack under recursion. A(4,0) = A(3,1) = 13.
func TestEvaluate_IterativeHighM(t *testing.T) {
	got, err := Evaluate(4, big.NewInt(0), Iterative)
	if err != nil {
		t.Fatalf("Evaluate(4, 0, Iterative) error: %v", err)
	}
	if got.String() != "13" {
		t.Errorf("A(4, 0) = %s, want 13", got)
	}
}

func TestEvaluate_InputValidation(t *testing.T) {
	tests := []struct {
		name    string
		m       int
		n       *big.Int
		s       Strategy
		wantErr error
	}{
		{"negative m", -1, big.NewInt(0), Recursive, ErrNegativeInput},
		{"negative n", 0, big.NewInt(-1), Iterative, ErrNegativeInput},
		{"nil n", 0, nil, Recursive, ErrNilOperand},
		{"zero strategy", 0, big.NewInt(0), 0, ErrUnknownStrategy},
		{"bogus strategy", 0, big.NewInt(0), Strategy(42), ErrUnknownStrategy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(tt.m, tt.n, tt.s)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Evaluate(%d, %v, %v) error = %v, want %v", tt.m, tt.n, tt.s, err, tt.wantErr)
			}
		})
	}
}

// TestEvaluate_DoesNotMutateN verifies n survives evaluation unchanged.
func TestEvaluate_DoesNotMutateN(t *testing.T) {
	n := big.NewInt(5)
	for _, s := range []Strategy{Recursive, Iterative} {
		if _, err := Evaluate(3, n, s); err != nil {
			t.Fatalf("Evaluate(3, 5, %s): %v", s, err)
		}
		if n.Cmp(big.NewInt(5)) != 0 {
			t.Errorf("%s strategy mutated n: %s", s, n)
		}
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Strategy
		wantErr bool
	}{
		{"recursive", "recursive", Recursive, false},
		{"iterative", "iterative", Iterative, false},
		{"empty is an error", "", 0, true},
		{"unknown", "memoized", 0, true},
		{"case sensitive", "Recursive", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStrategy(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownStrategy) {
					t.Errorf("ParseStrategy(%q) error = %v, want ErrUnknownStrategy", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStrategy(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseStrategy(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestStrategy_String(t *testing.T) {
	if got := Recursive.String(); got != "recursive" {
		t.Errorf("Recursive.String() = %q", got)
	}
	if got := Iterative.String(); got != "iterative" {
		t.Errorf("Iterative.String() = %q", got)
	}
	if got := Strategy(42).String(); got != "strategy(42)" {
		t.Errorf("Strategy(42).String() = %q", got)
	}
}
