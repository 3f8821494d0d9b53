package chain

import (
	"fmt"

	aoc "github.com/maisem/keypadchain"
	"github.com/maisem/keypadchain/keypad"
)

// MaxBruteDepth is the deepest chain Brute agrees to expand.
const MaxBruteDepth = 3

// Brute is an Engine that materializes every candidate sequence at every
// level. Sequence counts grow exponentially with depth; it exists to check
// Memo.
type Brute struct {
	pad *keypad.Keypad
}

func NewBrute(pad *keypad.Keypad) *Brute {
	return &Brute{pad: pad}
}

func (b *Brute) Cost(seq string, depth int) (int, error) {
	if err := checkDepth(depth); err != nil {
		return 0, err
	}
	if depth > MaxBruteDepth {
		return 0, fmt.Errorf("%w: %d > %d", ErrDepthTooLarge, depth, MaxBruteDepth)
	}
	if _, err := keypad.Split(seq); err != nil {
		return 0, err
	}

	type state struct {
		seq   string
		depth int
	}
	var (
		seen  = map[state]bool{}
		best  int
		found bool
		err   error
	)
	q := aoc.NewQueue(state{seq, depth})
	q.While(func(s state) bool {
		if seen[s] {
			return true
		}
		seen[s] = true
		if s.depth == 0 {
			if !found || len(s.seq) < best {
				best, found = len(s.seq), true
			}
			return true
		}
		var rs []string
		rs, err = b.pad.Renderings(s.seq)
		if err != nil {
			return false
		}
		for _, r := range rs {
			q.Push(state{r, s.depth - 1})
		}
		return true
	})
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, fmt.Errorf("%w: no rendering of %q on %v keypad", keypad.ErrNoRoute, seq, b.pad)
	}
	return best, nil
}
