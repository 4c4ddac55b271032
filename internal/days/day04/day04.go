// Package day04 solves the sleeping guard puzzle. The log is sorted with an
// explicit Compare, replayed through a per-shift Awake/Asleep state
// machine, and reduced to per-guard minute histograms.
//
// Ties always go to the lowest guard id or the earliest minute.
package day04

import (
	"fmt"
	"maps"
	"slices"

	"github.com/bnema/aoc-2018/internal/domain"
)

// PartOne picks the guard with the most minutes asleep, then the minute
// that guard was asleep most often, and returns guard × minute.
func PartOne(entries []Entry) (int, error) {
	naps, err := Naps(entries)
	if err != nil {
		return 0, err
	}

	totals := make(map[int]int)
	for _, n := range naps {
		totals[n.Guard] += n.Minutes()
	}

	guard, slept, ok := argmax(totals)
	if !ok || slept == 0 {
		return 0, fmt.Errorf("no guard ever slept: %w", domain.ErrNoSolution)
	}

	minute, _, _ := argmax(minuteHistogram(naps)[guard])

	return guard * minute, nil
}

// PartTwo picks the guard and minute pair with the highest sleep
// frequency across all guards and returns guard × minute.
func PartTwo(entries []Entry) (int, error) {
	naps, err := Naps(entries)
	if err != nil {
		return 0, err
	}

	histogram := minuteHistogram(naps)
	bestGuard, bestMinute, bestCount := 0, 0, 0
	for _, guard := range slices.Sorted(maps.Keys(histogram)) {
		minute, count, ok := argmax(histogram[guard])
		if ok && count > bestCount {
			bestGuard, bestMinute, bestCount = guard, minute, count
		}
	}
	if bestCount == 0 {
		return 0, fmt.Errorf("no guard ever slept: %w", domain.ErrNoSolution)
	}

	return bestGuard * bestMinute, nil
}

// argmax returns the smallest key holding the largest value.
func argmax(counts map[int]int) (key, value int, ok bool) {
	for _, k := range slices.Sorted(maps.Keys(counts)) {
		if !ok || counts[k] > value {
			key, value, ok = k, counts[k], true
		}
	}

	return key, value, ok
}
