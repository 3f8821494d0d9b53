package chain

import (
	"errors"
	"fmt"

	aoc "github.com/maisem/keypadchain"
	"github.com/maisem/keypadchain/keypad"
)

// Memo is the production Engine. It splits sequences into atoms and costs
// each atom once per depth.
type Memo struct {
	pad   *keypad.Keypad
	cache *Cache
}

// NewMemo returns a Memo engine driving pad. If cache is nil a new one is
// created.
func NewMemo(pad *keypad.Keypad, cache *Cache) *Memo {
	if cache == nil {
		cache = NewCache()
	}
	return &Memo{pad: pad, cache: cache}
}

func (m *Memo) Cost(seq string, depth int) (int, error) {
	if err := checkDepth(depth); err != nil {
		return 0, err
	}
	atoms, err := keypad.Split(seq)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, a := range atoms {
		n, err := m.atomCost(a, depth)
		if err != nil {
			return 0, err
		}
		var ok bool
		if total, ok = aoc.AddOk(total, n); !ok {
			return 0, fmt.Errorf("%w: %q at depth %d", ErrOverflow, seq, depth)
		}
	}
	return total, nil
}

// atomCost returns the cost of a single atom. Every rendering of the atom
// one level up is tried; renderings of different atoms are independent
// because the cursor is back on Confirm after each one. Renderings that
// overflow are skipped; ErrOverflow is only returned when all of them do.
func (m *Memo) atomCost(atom string, depth int) (int, error) {
	if depth == 0 {
		return len(atom), nil
	}
	k := costKey{pad: m.pad.Sum(), atom: atom, depth: depth}
	if c, ok := m.cache.m.Load(k); ok {
		if c.overflow {
			return 0, fmt.Errorf("%w: %q at depth %d", ErrOverflow, atom, depth)
		}
		return c.n, nil
	}
	rs, err := m.pad.Renderings(atom)
	if err != nil {
		return 0, err
	}
	var (
		best     int
		found    bool
		overflow bool
	)
	for _, r := range rs {
		n, err := m.Cost(r, depth-1)
		if errors.Is(err, ErrOverflow) {
			overflow = true
			continue
		}
		if err != nil {
			return 0, err
		}
		if !found || n < best {
			best, found = n, true
		}
	}
	switch {
	case found:
		m.cache.m.Store(k, cost{n: best})
		return best, nil
	case overflow:
		m.cache.m.Store(k, cost{overflow: true})
		return 0, fmt.Errorf("%w: %q at depth %d", ErrOverflow, atom, depth)
	}
	return 0, fmt.Errorf("%w: no rendering of %q on %v keypad", keypad.ErrNoRoute, atom, m.pad)
}
