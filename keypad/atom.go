package keypad

import (
	"fmt"
	"strings"
)

// Split splits seq into atoms: runs of presses each ending in exactly one
// Confirm press. Concatenating the atoms gives back seq.
//
// The cursor one level down is back on the Confirm key after every atom, so
// the cost of an atom does not depend on its neighbours.
func Split(seq string) ([]string, error) {
	if seq == "" || seq[len(seq)-1] != Confirm {
		return nil, fmt.Errorf("%w: %q does not end in %q", ErrInvalidSequence, seq, Confirm)
	}
	atoms := make([]string, 0, strings.Count(seq, string(Confirm)))
	for seq != "" {
		i := strings.IndexByte(seq, Confirm)
		atoms = append(atoms, seq[:i+1])
		seq = seq[i+1:]
	}
	return atoms, nil
}
