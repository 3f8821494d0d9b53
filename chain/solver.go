package chain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	aoc "github.com/maisem/keypadchain"
	"github.com/maisem/keypadchain/keypad"
)

// Config configures a Solver.
type Config struct {
	// Engine selects the cost engine. Defaults to Memoized.
	Engine Kind
	// Cache is shared with other solvers if set.
	Cache *Cache
}

// Solver computes code complexities for a numeric keypad driven through a
// chain of directional keypads.
type Solver struct {
	numeric *keypad.Keypad
	engine  Engine
}

func New(cfg Config) (*Solver, error) {
	e, err := NewEngine(aoc.Or(cfg.Engine, Memoized), keypad.Directional(), cfg.Cache)
	if err != nil {
		return nil, err
	}
	return &Solver{
		numeric: keypad.Numeric(),
		engine:  e,
	}, nil
}

// Presses returns the fewest operator presses needed to type code on the
// numeric keypad through depth directional keypads.
func (s *Solver) Presses(code string, depth int) (int, error) {
	rs, err := s.numeric.Renderings(code)
	if err != nil {
		return 0, fmt.Errorf("code %q: %w", code, err)
	}
	var (
		best     int
		found    bool
		overflow bool
	)
	for _, r := range rs {
		n, err := s.engine.Cost(r, depth)
		if errors.Is(err, ErrOverflow) {
			overflow = true
			continue
		}
		if err != nil {
			return 0, fmt.Errorf("code %q: %w", code, err)
		}
		if !found || n < best {
			best, found = n, true
		}
	}
	switch {
	case found:
		return best, nil
	case overflow:
		return 0, fmt.Errorf("code %q at depth %d: %w", code, depth, ErrOverflow)
	}
	return 0, fmt.Errorf("code %q: %w", code, keypad.ErrNoRoute)
}

// Complexity returns Presses(code, depth) times the numeric part of code.
func (s *Solver) Complexity(code string, depth int) (int, error) {
	v, err := Prefix(code)
	if err != nil {
		return 0, err
	}
	n, err := s.Presses(code, depth)
	if err != nil {
		return 0, err
	}
	c, ok := aoc.MulOk(n, v)
	if !ok {
		return 0, fmt.Errorf("code %q at depth %d: complexity %w", code, depth, ErrOverflow)
	}
	return c, nil
}

// Solve returns the sum of the complexities of codes.
func (s *Solver) Solve(codes []string, depth int) (int, error) {
	type result struct {
		n   int
		err error
	}
	r := aoc.ParallelMapFold(codes, func(code string) result {
		n, err := s.Complexity(code, depth)
		return result{n, err}
	}, func(acc, r result) result {
		if acc.err != nil {
			return acc
		}
		if r.err != nil {
			return r
		}
		n, ok := aoc.AddOk(acc.n, r.n)
		if !ok {
			return result{err: fmt.Errorf("total at depth %d: %w", depth, ErrOverflow)}
		}
		return result{n: n}
	}, result{})
	return r.n, r.err
}

// Prefix returns the value of code without its trailing Confirm key.
// Leading zeros are ignored.
func Prefix(code string) (int, error) {
	num, ok := strings.CutSuffix(code, string(keypad.Confirm))
	if !ok || num == "" || strings.TrimLeft(num, "0123456789") != "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCode, code)
	}
	v, err := strconv.Atoi(num)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidCode, code, err)
	}
	return v, nil
}
