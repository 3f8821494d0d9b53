// Package chain computes how many presses an operator needs to have a chain
// of robots, each driving the directional keypad of the next, type a code on
// a numeric keypad.
package chain

import (
	"errors"
	"fmt"
	"hash/maphash"

	"github.com/maisem/keypadchain/internal/memo"
	"github.com/maisem/keypadchain/keypad"
	"tailscale.com/util/deephash"
)

var (
	ErrUnknownEngine = errors.New("unknown engine")
	ErrDepthTooLarge = errors.New("depth too large")
	ErrInvalidDepth  = errors.New("invalid depth")
	ErrInvalidCode   = errors.New("invalid code")
	ErrOverflow      = errors.New("press count overflows int")
)

// Engine computes press costs.
type Engine interface {
	// Cost returns the fewest presses the operator must make so that a
	// chain of depth directional keypads types seq on the keypad below
	// them. seq must end in keypad.Confirm. At depth 0 the operator types
	// seq directly.
	Cost(seq string, depth int) (int, error)
}

// Kind names an Engine implementation.
type Kind string

const (
	// Memoized costs atoms recursively and caches them. It handles any
	// depth.
	Memoized Kind = "memo"
	// BruteForce expands whole sequences level by level. It is only
	// practical for depth up to MaxBruteDepth.
	BruteForce Kind = "brute"
)

// NewEngine returns an engine of the given kind driving pad. cache is only
// used by Memoized engines; if nil a new one is created.
func NewEngine(kind Kind, pad *keypad.Keypad, cache *Cache) (Engine, error) {
	switch kind {
	case Memoized:
		return NewMemo(pad, cache), nil
	case BruteForce:
		return NewBrute(pad), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, kind)
}

func checkDepth(depth int) error {
	if depth < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDepth, depth)
	}
	return nil
}

type costKey struct {
	pad   deephash.Sum
	atom  string
	depth int
}

func (k costKey) MapHash(seed maphash.Seed) uint64 {
	// pad only matters for equality.
	return maphash.String(seed, k.atom) ^ uint64(k.depth)*0x9e3779b97f4a7c15
}

// cost is a cached atom cost. overflow records atoms whose every rendering
// costs more than an int can hold.
type cost struct {
	n        int
	overflow bool
}

const cacheParts = 16

// Cache holds atom costs. It is keyed by keypad layout, so it may be shared
// between engines and used from many goroutines. Entries are never
// invalidated.
type Cache struct {
	m *memo.Map[costKey, cost]
}

func NewCache() *Cache {
	return &Cache{m: memo.New[costKey, cost](cacheParts)}
}

// Len returns the number of cached costs.
func (c *Cache) Len() int {
	return c.m.Len()
}
