// Package day05 solves the alchemical polymer reduction puzzle.
package day05

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bnema/aoc-2018/internal/domain"
)

type Polarity int

const (
	Positive Polarity = iota
	Negative
)

// Unit is one letter of the polymer. Letter is always lower case; the
// case of the input character is kept as the polarity.
type Unit struct {
	Letter   byte
	Polarity Polarity
}

func (u Unit) Byte() byte {
	if u.Polarity == Positive {
		return u.Letter - 'a' + 'A'
	}

	return u.Letter
}

// Reacts reports whether two adjacent units annihilate: same letter,
// opposite polarity.
func (u Unit) Reacts(other Unit) bool {
	return u.Letter == other.Letter && u.Polarity != other.Polarity
}

type Polymer []Unit

func (p Polymer) String() string {
	b := make([]byte, len(p))
	for i, u := range p {
		b[i] = u.Byte()
	}

	return string(b)
}

func Parse(input string) (Polymer, error) {
	text := strings.TrimSpace(input)
	polymer := make(Polymer, 0, len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c >= 'a' && c <= 'z':
			polymer = append(polymer, Unit{Letter: c, Polarity: Negative})
		case c >= 'A' && c <= 'Z':
			polymer = append(polymer, Unit{Letter: c - 'A' + 'a', Polarity: Positive})
		default:
			return nil, &domain.ParseError{
				Line: 1,
				Text: text,
				Err:  fmt.Errorf("unit %q at offset %d: %w", c, i, domain.ErrMalformed),
			}
		}
	}

	return polymer, nil
}

func Format(p Polymer) string {
	return p.String() + "\n"
}

// Reduce removes reacting pairs until none remain. Each pass removes the
// first reacting pair it finds and the next pass resumes one unit before
// the removal point, since only that neighbour can have become reactive.
// The input is left untouched.
func Reduce(p Polymer) Polymer {
	out := slices.Clone(p)
	from := 0
	for {
		i := firstReaction(out, from)
		if i < 0 {
			return out
		}
		out = slices.Delete(out, i, i+2)
		from = max(0, i-1)
	}
}

func firstReaction(p Polymer, from int) int {
	for i := from; i+1 < len(p); i++ {
		if p[i].Reacts(p[i+1]) {
			return i
		}
	}

	return -1
}

func PartOne(p Polymer) int {
	return len(Reduce(p))
}

// Without returns a copy of p with every unit of letter removed, whatever
// its polarity.
func Without(p Polymer, letter byte) Polymer {
	return slices.DeleteFunc(slices.Clone(p), func(u Unit) bool {
		return u.Letter == letter
	})
}

// PartTwo returns the shortest reduced length over the 26 polymers that
// each drop one letter.
func PartTwo(p Polymer) int {
	shortest := -1
	for letter := byte('a'); letter <= 'z'; letter++ {
		n := len(Reduce(Without(p, letter)))
		if shortest < 0 || n < shortest {
			shortest = n
		}
	}

	return shortest
}
