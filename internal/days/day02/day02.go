// Package day02 solves the box id checksum puzzle.
package day02

import (
	"fmt"
	"strings"

	"github.com/bnema/aoc-2018/internal/domain"
)

// Parse reads whitespace separated box ids. All ids must have the same
// width since part two compares them position by position.
func Parse(input string) ([]string, error) {
	ids := make([]string, 0)
	for i, line := range strings.Split(input, "\n") {
		for _, field := range strings.Fields(line) {
			if len(ids) > 0 && len(field) != len(ids[0]) {
				return nil, &domain.ParseError{
					Line: i + 1,
					Text: line,
					Err:  fmt.Errorf("id width %d, want %d: %w", len(field), len(ids[0]), domain.ErrMalformed),
				}
			}
			ids = append(ids, field)
		}
	}

	return ids, nil
}

func Format(ids []string) string {
	if len(ids) == 0 {
		return ""
	}

	return strings.Join(ids, "\n") + "\n"
}

func letterCounts(id string) map[rune]int {
	counts := make(map[rune]int, len(id))
	for _, r := range id {
		counts[r]++
	}

	return counts
}

func hasLetterExactly(counts map[rune]int, n int) bool {
	for _, c := range counts {
		if c == n {
			return true
		}
	}

	return false
}

// PartOne multiplies the number of ids with some letter appearing exactly
// twice by the number with some letter appearing exactly three times.
func PartOne(ids []string) int {
	twos, threes := 0, 0
	for _, id := range ids {
		counts := letterCounts(id)
		if hasLetterExactly(counts, 2) {
			twos++
		}
		if hasLetterExactly(counts, 3) {
			threes++
		}
	}

	return twos * threes
}

// PartTwo returns the characters shared by the first pair of ids, in
// ascending index order, that differ in exactly one position.
func PartTwo(ids []string) (string, error) {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if common, ok := commonIfOneApart(ids[i], ids[j]); ok {
				return common, nil
			}
		}
	}

	return "", fmt.Errorf("no ids differ by one character: %w", domain.ErrNoSolution)
}

func commonIfOneApart(a, b string) (string, bool) {
	if len(a) != len(b) {
		return "", false
	}

	diff := -1
	for k := 0; k < len(a); k++ {
		if a[k] == b[k] {
			continue
		}
		if diff >= 0 {
			return "", false
		}
		diff = k
	}
	if diff < 0 {
		return "", false
	}

	return a[:diff] + a[diff+1:], true
}
