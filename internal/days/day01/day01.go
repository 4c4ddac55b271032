// Package day01 solves the frequency drift puzzle: a list of signed
// changes applied to a running total.
package day01

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/bnema/aoc-2018/internal/domain"
)

func Parse(input string) ([]int, error) {
	changes := make([]int, 0)
	for i, line := range strings.Split(input, "\n") {
		for _, field := range strings.Fields(line) {
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, &domain.ParseError{Line: i + 1, Text: line, Err: err}
			}
			changes = append(changes, n)
		}
	}

	return changes, nil
}

func Format(changes []int) string {
	var b strings.Builder
	for _, c := range changes {
		fmt.Fprintf(&b, "%+d\n", c)
	}

	return b.String()
}

func PartOne(changes []int) int {
	sum := 0
	for _, c := range changes {
		sum += c
	}

	return sum
}

// Cycle yields the changes in order, starting over at the end, until the
// consumer stops.
func Cycle(changes []int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if len(changes) == 0 {
			return
		}
		for {
			for _, c := range changes {
				if !yield(c) {
					return
				}
			}
		}
	}
}

// PartTwo returns the first running total reached twice while applying the
// changes over and over. Some inputs never repeat (for example +1, +1);
// those return domain.ErrNoSolution once the drift of a whole pass has
// carried the total past every value a later pass could still hit.
func PartTwo(changes []int) (int, error) {
	if len(changes) == 0 {
		return 0, fmt.Errorf("empty change list: %w", domain.ErrNoSolution)
	}

	limit := maxPasses(changes)
	seen := map[int]struct{}{0: {}}
	total := 0
	steps := 0
	for c := range Cycle(changes) {
		total += c
		if _, ok := seen[total]; ok {
			return total, nil
		}
		seen[total] = struct{}{}

		steps++
		if steps >= limit*len(changes) {
			break
		}
	}

	return 0, fmt.Errorf("no total repeats after %d passes: %w", limit, domain.ErrNoSolution)
}

// maxPasses bounds the passes needed to see a repeat. A value from pass k
// equal to one from an earlier pass implies a pass-k' value equal to a
// first-pass value with k'-1 no larger than span/|drift|.
func maxPasses(changes []int) int {
	low, high, total := 0, 0, 0
	for _, c := range changes {
		total += c
		low = min(low, total)
		high = max(high, total)
	}

	drift := total
	if drift < 0 {
		drift = -drift
	}
	if drift == 0 {
		return 2
	}

	return (high-low)/drift + 2
}
