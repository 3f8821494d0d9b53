package keypad

import (
	"fmt"
	"strings"

	aoc "github.com/maisem/keypadchain"
)

// Delta is a cursor movement vector.
type Delta struct {
	DX, DY int
}

var (
	Up    = Delta{0, -1}
	Down  = Delta{0, 1}
	Left  = Delta{-1, 0}
	Right = Delta{1, 0}
	Stay  = Delta{}
)

// Between returns the vector moving a to b.
func Between(a, b aoc.Pt) Delta {
	return Delta{b.X - a.X, b.Y - a.Y}
}

// NewUnit returns the unit (or zero) vector (dx, dy).
func NewUnit(dx, dy int) (Delta, error) {
	d := Delta{dx, dy}
	if !d.isUnit() {
		return Delta{}, fmt.Errorf("%w: %v", ErrInvalidVector, d)
	}
	return d, nil
}

func (d Delta) isUnit() bool {
	return aoc.AbsDiff(d.DX, 0)+aoc.AbsDiff(d.DY, 0) <= 1
}

// Move moves p by d.
func (d Delta) Move(p aoc.Pt) aoc.Pt {
	return aoc.Pt{X: p.X + d.DX, Y: p.Y + d.DY}
}

// Symbol returns the directional pad key that moves a cursor by d. The zero
// vector maps to the confirm key.
func (d Delta) Symbol() (byte, error) {
	switch d {
	case Right:
		return '>', nil
	case Left:
		return '<', nil
	case Down:
		return 'v', nil
	case Up:
		return '^', nil
	case Stay:
		return Confirm, nil
	}
	return 0, fmt.Errorf("%w: %v", ErrInvalidVector, d)
}

func (d Delta) String() string {
	return fmt.Sprintf("(%d,%d)", d.DX, d.DY)
}

// Orderings returns the monotone shortest paths covering d: horizontal run
// first, then vertical run first. A vector along one axis has a single
// ordering and the zero vector has one empty path.
func (d Delta) Orderings() []Path {
	var h, v Run
	if d.DX != 0 {
		h = Run{Step: aoc.MustGet(NewUnit(aoc.Sign(d.DX), 0)), N: aoc.AbsDiff(d.DX, 0)}
	}
	if d.DY != 0 {
		v = Run{Step: aoc.MustGet(NewUnit(0, aoc.Sign(d.DY))), N: aoc.AbsDiff(d.DY, 0)}
	}
	switch {
	case h.N == 0 && v.N == 0:
		return []Path{nil}
	case v.N == 0:
		return []Path{{h}}
	case h.N == 0:
		return []Path{{v}}
	}
	return []Path{{h, v}, {v, h}}
}

// Run is N repeated unit steps.
type Run struct {
	Step Delta
	N    int
}

// Path is a cursor trajectory. It does not include the final confirm press.
type Path []Run

// Len returns the number of presses needed to render p.
func (p Path) Len() int {
	n := 0
	for _, r := range p {
		n += r.N
	}
	return n
}

// Walk calls f with every cell the cursor visits after leaving from,
// stopping early if f returns false. It reports whether every call returned
// true.
func (p Path) Walk(from aoc.Pt, f func(aoc.Pt) bool) bool {
	for _, r := range p {
		for i := 0; i < r.N; i++ {
			from = r.Step.Move(from)
			if !f(from) {
				return false
			}
		}
	}
	return true
}

// String renders the presses of p. It panics if p holds a non-unit step.
func (p Path) String() string {
	var sb strings.Builder
	sb.Grow(p.Len())
	for _, r := range p {
		c := aoc.MustGet(r.Step.Symbol())
		for i := 0; i < r.N; i++ {
			sb.WriteByte(c)
		}
	}
	return sb.String()
}
