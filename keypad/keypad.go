// Package keypad models the keypads operated by the robot chain: their
// layouts, the shortest cursor paths between keys and the splitting of
// press sequences into atoms.
package keypad

import (
	"errors"
	"fmt"
	"sync"

	aoc "github.com/maisem/keypadchain"
	"tailscale.com/util/deephash"
)

// Confirm is the key that presses the button under the cursor one level down.
const Confirm = 'A'

var (
	ErrInvalidVector   = errors.New("invalid vector")
	ErrInvalidSequence = errors.New("invalid sequence")
	ErrInvalidLayout   = errors.New("invalid layout")
	ErrUnknownKey      = errors.New("unknown key")
	ErrNoRoute         = errors.New("no route")
)

// blank marks a cell without a key in a layout.
const blank = ' '

var numericLayout = []string{
	"789",
	"456",
	"123",
	" 0A",
}

var directionalLayout = []string{
	" ^A",
	"<v>",
}

// Numeric returns a new numeric keypad.
func Numeric() *Keypad {
	return aoc.MustGet(New("numeric", numericLayout...))
}

// Directional returns a new directional keypad.
func Directional() *Keypad {
	return aoc.MustGet(New("directional", directionalLayout...))
}

type pair struct {
	from, to byte
}

// Keypad is a grid of keys with a cursor that starts on the Confirm key.
// Its layout is immutable; it is safe for concurrent use.
type Keypad struct {
	name      string
	keys      map[byte]aoc.Pt
	forbidden map[aoc.Pt]bool
	sum       deephash.Sum

	mu    sync.Mutex
	paths map[pair][]Path // from -> to
}

// New builds a keypad from rows of keys. Blank cells have no key and the
// cursor may never move over them. The layout must contain the Confirm key.
func New(name string, rows ...string) (*Keypad, error) {
	g, err := aoc.ParseGrid(rows...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidLayout, name, err)
	}
	k := &Keypad{
		name:      name,
		keys:      make(map[byte]aoc.Pt),
		forbidden: make(map[aoc.Pt]bool),
		sum:       g.Hash(),
		paths:     make(map[pair][]Path),
	}
	g.ForEach(func(p aoc.Pt, c byte) {
		if c == blank {
			k.forbidden[p] = true
			return
		}
		if q, ok := k.keys[c]; ok && err == nil {
			err = fmt.Errorf("%w: %s: key %q at %v and %v", ErrInvalidLayout, name, c, q, p)
		}
		k.keys[c] = p
	})
	if err != nil {
		return nil, err
	}
	if _, ok := k.Pos(Confirm); !ok {
		return nil, fmt.Errorf("%w: %s: no %q key", ErrInvalidLayout, name, Confirm)
	}
	return k, nil
}

func (k *Keypad) String() string {
	return k.name
}

// Sum returns a fingerprint of the layout. Keypads with the same layout have
// the same fingerprint.
func (k *Keypad) Sum() deephash.Sum {
	return k.sum
}

// Pos returns the position of key c.
func (k *Keypad) Pos(c byte) (aoc.Pt, bool) {
	p, ok := k.keys[c]
	return p, ok
}

// Forbidden reports whether p is a cell the cursor must avoid.
func (k *Keypad) Forbidden(p aoc.Pt) bool {
	return k.forbidden[p]
}

// Paths returns the shortest paths moving the cursor from key from to key
// to without crossing a blank cell. There are at most two. The result is
// empty if every candidate crosses a blank cell.
//
// The returned slice is shared and must not be modified.
func (k *Keypad) Paths(from, to byte) ([]Path, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	key := pair{from, to}
	if ps, ok := k.paths[key]; ok {
		return ps, nil
	}
	a, ok := k.Pos(from)
	if !ok {
		return nil, fmt.Errorf("%w: %q on %s keypad", ErrUnknownKey, from, k.name)
	}
	b, ok := k.Pos(to)
	if !ok {
		return nil, fmt.Errorf("%w: %q on %s keypad", ErrUnknownKey, to, k.name)
	}
	var ps []Path
	for _, p := range Between(a, b).Orderings() {
		if p.Walk(a, func(c aoc.Pt) bool { return !k.Forbidden(c) }) {
			ps = append(ps, p)
		}
	}
	k.paths[key] = ps
	return ps, nil
}

// Renderings returns every press sequence, one level up, that has this
// keypad's cursor type seq. The cursor starts on the Confirm key, and each
// path between consecutive keys is followed by one Confirm press.
func (k *Keypad) Renderings(seq string) ([]string, error) {
	out := []string{""}
	prev := byte(Confirm)
	for i := 0; i < len(seq); i++ {
		ps, err := k.Paths(prev, seq[i])
		if err != nil {
			return nil, err
		}
		if len(ps) == 0 {
			return nil, fmt.Errorf("%w: %q to %q on %s keypad", ErrNoRoute, prev, seq[i], k.name)
		}
		next := make([]string, 0, len(out)*len(ps))
		for _, s := range out {
			for _, p := range ps {
				next = append(next, s+p.String()+string(Confirm))
			}
		}
		out = next
		prev = seq[i]
	}
	return out, nil
}
