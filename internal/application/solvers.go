package application

import (
	"fmt"
	"strconv"

	"github.com/bnema/aoc-2018/internal/days/day01"
	"github.com/bnema/aoc-2018/internal/days/day02"
	"github.com/bnema/aoc-2018/internal/days/day03"
	"github.com/bnema/aoc-2018/internal/days/day04"
	"github.com/bnema/aoc-2018/internal/days/day05"
	"github.com/bnema/aoc-2018/internal/days/day06"
	"github.com/bnema/aoc-2018/internal/domain"
)

type solver func(input string, opts Options) (partOne, partTwo string, err error)

var solvers = map[domain.Day]solver{
	1: solveDay01,
	2: solveDay02,
	3: solveDay03,
	4: solveDay04,
	5: solveDay05,
	6: solveDay06,
}

func solveDay01(input string, _ Options) (string, string, error) {
	changes, err := day01.Parse(input)
	if err != nil {
		return "", "", err
	}

	repeated, err := day01.PartTwo(changes)
	if err != nil {
		return "", "", fmt.Errorf("part two: %w", err)
	}

	return strconv.Itoa(day01.PartOne(changes)), strconv.Itoa(repeated), nil
}

func solveDay02(input string, _ Options) (string, string, error) {
	ids, err := day02.Parse(input)
	if err != nil {
		return "", "", err
	}

	common, err := day02.PartTwo(ids)
	if err != nil {
		return "", "", fmt.Errorf("part two: %w", err)
	}

	return strconv.Itoa(day02.PartOne(ids)), common, nil
}

func solveDay03(input string, _ Options) (string, string, error) {
	claims, err := day03.Parse(input)
	if err != nil {
		return "", "", err
	}

	intact, err := day03.PartTwo(claims)
	if err != nil {
		return "", "", fmt.Errorf("part two: %w", err)
	}

	return strconv.Itoa(day03.PartOne(claims)), strconv.Itoa(intact), nil
}

func solveDay04(input string, _ Options) (string, string, error) {
	entries, err := day04.Parse(input)
	if err != nil {
		return "", "", err
	}

	sleepiest, err := day04.PartOne(entries)
	if err != nil {
		return "", "", fmt.Errorf("part one: %w", err)
	}
	steadiest, err := day04.PartTwo(entries)
	if err != nil {
		return "", "", fmt.Errorf("part two: %w", err)
	}

	return strconv.Itoa(sleepiest), strconv.Itoa(steadiest), nil
}

func solveDay05(input string, _ Options) (string, string, error) {
	polymer, err := day05.Parse(input)
	if err != nil {
		return "", "", err
	}

	return strconv.Itoa(day05.PartOne(polymer)), strconv.Itoa(day05.PartTwo(polymer)), nil
}

func solveDay06(input string, opts Options) (string, string, error) {
	points, err := day06.Parse(input)
	if err != nil {
		return "", "", err
	}

	largest, err := day06.PartOne(points)
	if err != nil {
		return "", "", fmt.Errorf("part one: %w", err)
	}

	return strconv.Itoa(largest), strconv.Itoa(day06.PartTwo(points, opts.SafeRegionLimit)), nil
}
