package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	FirstDay = 1
	LastDay  = 6
)

type Day int

func ParseDay(raw string) (Day, error) {
	trimmed := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(raw)), "day")
	trimmed = strings.TrimLeft(strings.TrimPrefix(trimmed, "-"), "0")
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownDay, raw)
	}

	day := Day(n)
	if err := day.Validate(); err != nil {
		return 0, err
	}

	return day, nil
}

func (d Day) Validate() error {
	if d < FirstDay || d > LastDay {
		return fmt.Errorf("%w: %d", ErrUnknownDay, int(d))
	}

	return nil
}

func (d Day) String() string {
	return fmt.Sprintf("day %02d", int(d))
}

func AllDays() []Day {
	days := make([]Day, 0, LastDay-FirstDay+1)
	for d := Day(FirstDay); d <= LastDay; d++ {
		days = append(days, d)
	}

	return days
}

// Solution holds both answers of a day, already rendered as text since
// some parts answer with a string rather than a number.
type Solution struct {
	Day     Day    `json:"day"`
	PartOne string `json:"part_one"`
	PartTwo string `json:"part_two"`
}

func (s Solution) Lines() string {
	return fmt.Sprintf("Part one: %s\nPart two: %s", s.PartOne, s.PartTwo)
}

func (s Solution) Equal(other Solution) bool {
	return s.Day == other.Day && s.PartOne == other.PartOne && s.PartTwo == other.PartTwo
}
