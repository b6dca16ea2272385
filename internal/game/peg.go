package game

import (
	"fmt"
	"math/rand/v2"
)

// Peg is a single colored token. Equality is color identity.
type Peg int

const (
	Red Peg = iota
	Blue
	Green
	Yellow
	Black
	White
)

const pegCount = int(White) + 1

var pegNames = [pegCount]string{"Red", "Blue", "Green", "Yellow", "Black", "White"}

// pegLetters are the canonical input codes. U stands for Blue because
// B is taken by Black.
var pegLetters = [pegCount]byte{'R', 'U', 'G', 'Y', 'B', 'W'}

func (p Peg) String() string {
	if p < 0 || int(p) >= pegCount {
		return fmt.Sprintf("Peg(%d)", int(p))
	}
	return pegNames[p]
}

// Letter returns the canonical one-letter code for the peg.
func (p Peg) Letter() byte {
	return pegLetters[p]
}

// ParsePeg maps a canonical uppercase letter to its peg.
func ParsePeg(r rune) (Peg, error) {
	switch r {
	case 'R':
		return Red, nil
	case 'U':
		return Blue, nil
	case 'G':
		return Green, nil
	case 'Y':
		return Yellow, nil
	case 'B':
		return Black, nil
	case 'W':
		return White, nil
	}
	return 0, fmt.Errorf("%c -- invalid color", r)
}

// RandomPeg draws a uniform random peg. rng may be nil to use the
// process-global source.
func RandomPeg(rng *rand.Rand) Peg {
	if rng != nil {
		return Peg(rng.IntN(pegCount))
	}
	return Peg(rand.IntN(pegCount))
}

// Code is an ordered sequence of pegs: a secret or a guess.
type Code []Peg

// RandomCode draws n pegs with replacement. Duplicates are legal and
// expected.
func RandomCode(rng *rand.Rand, n int) Code {
	c := make(Code, n)
	for i := range c {
		c[i] = RandomPeg(rng)
	}
	return c
}

// String renders the code as its letters, e.g. "RUGY".
func (c Code) String() string {
	b := make([]byte, len(c))
	for i, p := range c {
		b[i] = p.Letter()
	}
	return string(b)
}
