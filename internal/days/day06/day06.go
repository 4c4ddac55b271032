// Package day06 solves the chronal coordinates puzzle: a nearest-point
// partition of a grid under Manhattan distance.
package day06

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/bnema/aoc-2018/internal/domain"
)

// DefaultLimit is the summed distance bound used by part two.
const DefaultLimit = 10000

// NoOwner marks a cell equally near to two or more points.
const NoOwner = -1

var pointPattern = regexp.MustCompile(`^(\d+),\s*(\d+)$`)

type Point struct {
	X int
	Y int
}

func (p Point) Distance(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("%d, %d", p.X, p.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// Grid spans from the origin to the largest coordinates, inclusive.
type Grid struct {
	MaxX int
	MaxY int
}

func GridFor(points []Point) Grid {
	var g Grid
	for _, p := range points {
		g.MaxX = max(g.MaxX, p.X)
		g.MaxY = max(g.MaxY, p.Y)
	}

	return g
}

func (g Grid) OnBorder(c Point) bool {
	return c.X == 0 || c.Y == 0 || c.X == g.MaxX || c.Y == g.MaxY
}

func (g Grid) Cells(fn func(Point)) {
	for y := 0; y <= g.MaxY; y++ {
		for x := 0; x <= g.MaxX; x++ {
			fn(Point{X: x, Y: y})
		}
	}
}

func Parse(input string) ([]Point, error) {
	points := make([]Point, 0)
	for i, raw := range strings.Split(input, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		m := pointPattern.FindStringSubmatch(line)
		if m == nil {
			return nil, &domain.ParseError{Line: i + 1, Text: line, Err: domain.ErrMalformed}
		}
		x, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, &domain.ParseError{Line: i + 1, Text: line, Err: err}
		}
		y, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, &domain.ParseError{Line: i + 1, Text: line, Err: err}
		}
		points = append(points, Point{X: x, Y: y})
	}

	return points, nil
}

func Format(points []Point) string {
	var b strings.Builder
	for _, p := range points {
		b.WriteString(p.String())
		b.WriteByte('\n')
	}

	return b.String()
}

// Owner returns the index of the point uniquely nearest to cell, or
// NoOwner on a tie.
func Owner(points []Point, cell Point) int {
	owner, best := NoOwner, -1
	for i, p := range points {
		d := cell.Distance(p)
		switch {
		case best < 0 || d < best:
			owner, best = i, d
		case d == best:
			owner = NoOwner
		}
	}

	return owner
}

// Regions partitions the grid and returns the cell count of each owned
// region and the set of owners whose region reaches the border.
func Regions(points []Point) (areas map[int]int, unbounded map[int]bool) {
	grid := GridFor(points)
	areas = make(map[int]int)
	unbounded = make(map[int]bool)
	grid.Cells(func(c Point) {
		owner := Owner(points, c)
		if owner == NoOwner {
			return
		}
		areas[owner]++
		if grid.OnBorder(c) {
			unbounded[owner] = true
		}
	})

	return areas, unbounded
}

// PartOne returns the size of the largest region that does not reach the
// grid border.
func PartOne(points []Point) (int, error) {
	areas, unbounded := Regions(points)
	largest := 0
	for owner, area := range areas {
		if !unbounded[owner] && area > largest {
			largest = area
		}
	}
	if largest == 0 {
		return 0, fmt.Errorf("every region is unbounded: %w", domain.ErrNoSolution)
	}

	return largest, nil
}

// PartTwo counts grid cells whose summed distance to all points is below
// limit.
func PartTwo(points []Point, limit int) int {
	count := 0
	GridFor(points).Cells(func(c Point) {
		total := 0
		for _, p := range points {
			total += c.Distance(p)
		}
		if total < limit {
			count++
		}
	})

	return count
}
