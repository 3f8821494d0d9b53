// Command keypad solves the keypad conundrum: how many presses it takes to
// type door codes through a chain of robots.
package main

import (
	_ "embed"
	"flag"
	"log"

	aoc "github.com/maisem/keypadchain"
	"github.com/maisem/keypadchain/chain"
)

var (
	flagEngine = flag.String("engine", string(chain.Memoized), "cost engine: memo or brute")
	flagDepth  = flag.Int("depth", -1, "number of directional keypads between you and the door; overrides the part default")
)

func main() {
	if err := aoc.Run(2024, source, &solver{}); err != nil {
		log.Fatal(err)
	}
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

// parseCode accepts a door code: decimal digits followed by the Confirm key.
func parseCode(line string) (string, error) {
	if _, err := chain.Prefix(line); err != nil {
		return "", err
	}
	return line, nil
}

func (s solver) complexity(depth int) (any, error) {
	if *flagDepth >= 0 {
		depth = *flagDepth
	}
	codes, err := aoc.ParseLines(s.Puzzle, parseCode)
	if err != nil {
		return nil, err
	}
	cache := chain.NewCache()
	slv, err := chain.New(chain.Config{Engine: chain.Kind(*flagEngine), Cache: cache})
	if err != nil {
		return nil, err
	}
	total, err := slv.Solve(codes, depth)
	if err != nil {
		return nil, err
	}
	if s.Debugging() {
		for _, code := range codes {
			n, err := slv.Presses(code, depth)
			if err != nil {
				return nil, err
			}
			s.Debugf("%s: %d presses", code, n)
		}
		s.Debugf("%d atom costs cached", cache.Len())
	}
	return total, nil
}

/*
want=126384

029A
980A
179A
456A
379A
*/
func (s solver) D21p1() (any, error) {
	return s.complexity(2)
}

// want=154115708116294
func (s solver) D21p2() (any, error) {
	return s.complexity(25)
}
