package chain

import (
	"errors"
	"testing"

	aoc "github.com/maisem/keypadchain"
	"github.com/maisem/keypadchain/keypad"
)

var sampleCodes = []string{"029A", "980A", "179A", "456A", "379A"}

var inputCodes = []string{"208A", "540A", "826A", "879A", "685A"}

func newSolver(t *testing.T, kind Kind) *Solver {
	t.Helper()
	s, err := New(Config{Engine: kind})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestPresses(t *testing.T) {
	tests := []struct {
		code  string
		depth int
		want  int
	}{
		{"029A", 0, 12},
		{"029A", 1, 28},
		{"029A", 2, 68},
		{"980A", 2, 60},
		{"179A", 2, 68},
		{"456A", 2, 64},
		{"379A", 2, 64},
	}
	for _, kind := range []Kind{Memoized, BruteForce} {
		s := newSolver(t, kind)
		for _, tt := range tests {
			got, err := s.Presses(tt.code, tt.depth)
			if err != nil {
				t.Fatalf("%s: Presses(%q, %d): %v", kind, tt.code, tt.depth, err)
			}
			if got != tt.want {
				t.Errorf("%s: Presses(%q, %d) = %v, want %v", kind, tt.code, tt.depth, got, tt.want)
			}
		}
	}
}

func TestSolveSample(t *testing.T) {
	tests := []struct {
		depth int
		want  int
	}{
		{2, 126384},
		{25, 154115708116294},
	}
	s := newSolver(t, Memoized)
	for _, tt := range tests {
		got, err := s.Solve(sampleCodes, tt.depth)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("Solve(sample, %d) = %v, want %v", tt.depth, got, tt.want)
		}
	}
}

func TestMemoMatchesBrute(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping brute force expansion")
	}
	memo := newSolver(t, Memoized)
	brute := newSolver(t, BruteForce)
	for depth := 0; depth <= 2; depth++ {
		want, err := brute.Solve(inputCodes, depth)
		if err != nil {
			t.Fatal(err)
		}
		got, err := memo.Solve(inputCodes, depth)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("depth %d: memo total = %v, brute total = %v", depth, got, want)
		}
	}
}

func TestMemoMatchesBruteDeep(t *testing.T) {
	pad := keypad.Directional()
	memo := NewMemo(pad, nil)
	brute := NewBrute(pad)
	for _, seq := range []string{"A", "<A", "^>A", "v<<A", ">>^A", "<A>A"} {
		want, err := brute.Cost(seq, MaxBruteDepth)
		if err != nil {
			t.Fatal(err)
		}
		got, err := memo.Cost(seq, MaxBruteDepth)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("Cost(%q, %d): memo = %v, brute = %v", seq, MaxBruteDepth, got, want)
		}
	}
}

func TestSolveDeterministic(t *testing.T) {
	want, err := newSolver(t, Memoized).Solve(inputCodes, 25)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		got, err := newSolver(t, Memoized).Solve(inputCodes, 25)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("run %d: Solve = %v, want %v", i, got, want)
		}
	}
}

func TestCostBaseCase(t *testing.T) {
	m := NewMemo(keypad.Directional(), nil)
	for _, atom := range []string{"A", "<A", "v<<A", ">>^A", "<vA"} {
		got, err := m.Cost(atom, 0)
		if err != nil {
			t.Fatal(err)
		}
		if got != len(atom) {
			t.Errorf("Cost(%q, 0) = %v, want %v", atom, got, len(atom))
		}
	}
}

func TestConfirmCostsOne(t *testing.T) {
	m := NewMemo(keypad.Directional(), nil)
	for depth := 0; depth <= 25; depth++ {
		if got := aoc.MustGet(m.Cost("A", depth)); got != 1 {
			t.Errorf("Cost(A, %d) = %v, want 1", depth, got)
		}
	}
}

func TestCostMonotonic(t *testing.T) {
	m := NewMemo(keypad.Directional(), nil)
	atoms := []string{"A", "<A", ">A", "^A", "vA", "v<<A", ">>^A", "<^A", "^<A", "v>A", ">vA"}
	for _, atom := range atoms {
		prev := 0
		for depth := 0; depth <= 10; depth++ {
			got := aoc.MustGet(m.Cost(atom, depth))
			if got < prev {
				t.Errorf("Cost(%q, %d) = %v < Cost at depth %d = %v", atom, depth, got, depth-1, prev)
			}
			prev = got
		}
	}
}

func TestCostIdempotent(t *testing.T) {
	m := NewMemo(keypad.Directional(), nil)
	first := aoc.MustGet(m.Cost("v<<A>>^A", 10))
	n := m.cache.Len()
	if n == 0 {
		t.Fatalf("cache empty after Cost")
	}
	second := aoc.MustGet(m.Cost("v<<A>>^A", 10))
	if first != second {
		t.Errorf("second Cost = %v, want %v", second, first)
	}
	if got := m.cache.Len(); got != n {
		t.Errorf("cache grew from %d to %d on repeated Cost", n, got)
	}
}

func TestSharedCache(t *testing.T) {
	cache := NewCache()
	a, err := New(Config{Cache: cache})
	if err != nil {
		t.Fatal(err)
	}
	want := aoc.MustGet(a.Solve(sampleCodes, 25))
	n := cache.Len()

	b, err := New(Config{Cache: cache})
	if err != nil {
		t.Fatal(err)
	}
	if got := aoc.MustGet(b.Solve(sampleCodes, 25)); got != want {
		t.Errorf("second solver = %v, want %v", got, want)
	}
	if got := cache.Len(); got != n {
		t.Errorf("shared cache grew from %d to %d", n, got)
	}

	// Solvers without a shared cache keep their own.
	c := newSolver(t, Memoized)
	aoc.MustGet(c.Solve(sampleCodes, 3))
	if got := cache.Len(); got != n {
		t.Errorf("unrelated solver touched shared cache: %d -> %d", n, got)
	}
}

func TestErrors(t *testing.T) {
	if _, err := New(Config{Engine: "quantum"}); !errors.Is(err, ErrUnknownEngine) {
		t.Errorf("New(quantum) err = %v; want ErrUnknownEngine", err)
	}
	pad := keypad.Directional()
	if _, err := NewBrute(pad).Cost("<A", MaxBruteDepth+1); !errors.Is(err, ErrDepthTooLarge) {
		t.Errorf("Brute deep Cost err = %v; want ErrDepthTooLarge", err)
	}
	for _, e := range []Engine{NewMemo(pad, nil), NewBrute(pad)} {
		if _, err := e.Cost("<A", -1); !errors.Is(err, ErrInvalidDepth) {
			t.Errorf("%T: Cost depth -1 err = %v; want ErrInvalidDepth", e, err)
		}
		if _, err := e.Cost("<", 1); !errors.Is(err, keypad.ErrInvalidSequence) {
			t.Errorf("%T: Cost unterminated err = %v; want ErrInvalidSequence", e, err)
		}
		if _, err := e.Cost("1A", 1); !errors.Is(err, keypad.ErrUnknownKey) {
			t.Errorf("%T: Cost digit err = %v; want ErrUnknownKey", e, err)
		}
	}

	s := newSolver(t, Memoized)
	if _, err := s.Solve([]string{"029A", "02BA"}, 2); !errors.Is(err, ErrInvalidCode) {
		t.Errorf("Solve bad code err = %v; want ErrInvalidCode", err)
	}
}

func TestNoRoute(t *testing.T) {
	// 1 and 2 are separated by gaps in both orderings.
	pad, err := keypad.New("walled", "1 ", " 2", "A ")
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range []Engine{NewMemo(pad, nil), NewBrute(pad)} {
		if _, err := e.Cost("2A", 1); !errors.Is(err, keypad.ErrNoRoute) {
			t.Errorf("%T: Cost err = %v; want ErrNoRoute", e, err)
		}
	}
}

func TestPrefix(t *testing.T) {
	tests := []struct {
		code    string
		want    int
		wantErr bool
	}{
		{"029A", 29, false},
		{"980A", 980, false},
		{"000A", 0, false},
		{"A", 0, true},
		{"029", 0, true},
		{"0x9A", 0, true},
		{"+29A", 0, true},
	}
	for _, tt := range tests {
		got, err := Prefix(tt.code)
		if (err != nil) != tt.wantErr {
			t.Errorf("Prefix(%q) err = %v; wantErr %v", tt.code, err, tt.wantErr)
			continue
		}
		if tt.wantErr && !errors.Is(err, ErrInvalidCode) {
			t.Errorf("Prefix(%q) err = %v; want ErrInvalidCode", tt.code, err)
		}
		if got != tt.want {
			t.Errorf("Prefix(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestCostOverflow(t *testing.T) {
	m := NewMemo(keypad.Directional(), nil)
	for _, depth := range []int{60, 100} {
		_, err := m.Cost("<A", depth)
		if !errors.Is(err, ErrOverflow) {
			t.Errorf("Cost(<A, %d) err = %v; want ErrOverflow", depth, err)
		}
		if errors.Is(err, keypad.ErrNoRoute) {
			t.Errorf("Cost(<A, %d) reported ErrNoRoute for an overflow", depth)
		}
	}
	// Overflow is cached, not recomputed into a different answer.
	if _, err := m.Cost("<A", 60); !errors.Is(err, ErrOverflow) {
		t.Errorf("repeated Cost(<A, 60) err = %v; want ErrOverflow", err)
	}
	if got := aoc.MustGet(m.Cost("A", 100)); got != 1 {
		t.Errorf("Cost(A, 100) = %v, want 1", got)
	}
}

func TestSolveOverflow(t *testing.T) {
	s := newSolver(t, Memoized)
	for _, depth := range []int{40, 60} {
		got, err := s.Solve([]string{"999A"}, depth)
		if !errors.Is(err, ErrOverflow) {
			t.Errorf("Solve(999A, %d) = %v, %v; want ErrOverflow", depth, got, err)
		}
	}

	// Just below the limit the totals are still exact and increasing.
	prev := 0
	for depth := 30; depth <= 34; depth++ {
		got, err := s.Solve([]string{"999A"}, depth)
		if err != nil {
			t.Fatalf("Solve(999A, %d): %v", depth, err)
		}
		if got <= prev {
			t.Errorf("Solve(999A, %d) = %v, not above depth %d total %v", depth, got, depth-1, prev)
		}
		prev = got
	}
}
