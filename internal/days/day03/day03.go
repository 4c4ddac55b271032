// Package day03 solves the overlapping fabric claims puzzle.
package day03

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/bnema/aoc-2018/internal/domain"
)

var claimPattern = regexp.MustCompile(`^#(\d+) @ (\d+),(\d+): (\d+)x(\d+)$`)

type Claim struct {
	ID     int
	Left   int
	Top    int
	Width  int
	Height int
}

func (c Claim) String() string {
	return fmt.Sprintf("#%d @ %d,%d: %dx%d", c.ID, c.Left, c.Top, c.Width, c.Height)
}

type square struct {
	x, y int
}

// squares calls fn for every unit square inside the claim and stops early
// when fn returns false.
func (c Claim) squares(fn func(square) bool) bool {
	for x := c.Left; x < c.Left+c.Width; x++ {
		for y := c.Top; y < c.Top+c.Height; y++ {
			if !fn(square{x, y}) {
				return false
			}
		}
	}

	return true
}

func Parse(input string) ([]Claim, error) {
	claims := make([]Claim, 0)
	for i, raw := range strings.Split(input, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		m := claimPattern.FindStringSubmatch(line)
		if m == nil {
			return nil, &domain.ParseError{Line: i + 1, Text: line, Err: domain.ErrMalformed}
		}

		fields := make([]int, 5)
		for k := range fields {
			n, err := strconv.Atoi(m[k+1])
			if err != nil {
				return nil, &domain.ParseError{Line: i + 1, Text: line, Err: err}
			}
			fields[k] = n
		}

		claims = append(claims, Claim{
			ID:     fields[0],
			Left:   fields[1],
			Top:    fields[2],
			Width:  fields[3],
			Height: fields[4],
		})
	}

	return claims, nil
}

func Format(claims []Claim) string {
	var b strings.Builder
	for _, c := range claims {
		b.WriteString(c.String())
		b.WriteByte('\n')
	}

	return b.String()
}

func coverage(claims []Claim) map[square]int {
	grid := make(map[square]int)
	for _, c := range claims {
		c.squares(func(s square) bool {
			grid[s]++
			return true
		})
	}

	return grid
}

// PartOne counts the squares covered by more than one claim.
func PartOne(claims []Claim) int {
	overlap := 0
	for _, n := range coverage(claims) {
		if n > 1 {
			overlap++
		}
	}

	return overlap
}

// PartTwo returns the id of the first claim that no other claim overlaps.
func PartTwo(claims []Claim) (int, error) {
	grid := coverage(claims)
	for _, c := range claims {
		intact := c.squares(func(s square) bool {
			return grid[s] == 1
		})
		if intact {
			return c.ID, nil
		}
	}

	return 0, fmt.Errorf("every claim overlaps another: %w", domain.ErrNoSolution)
}
