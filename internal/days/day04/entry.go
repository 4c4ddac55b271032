package day04

import (
	"cmp"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/bnema/aoc-2018/internal/domain"
)

var (
	entryPattern = regexp.MustCompile(`^\[(\d{4}-\d{2}-\d{2}) (\d{2}):(\d{2})\] (.+)$`)
	shiftPattern = regexp.MustCompile(`^Guard #(\d+) begins shift$`)
)

const (
	fallsAsleepText = "falls asleep"
	wakesUpText     = "wakes up"
)

// Period splits a date into the midnight hour and everything else. Only
// the midnight hour matters for sleep; entries logged before midnight
// belong to the shift of the following night.
type Period int

const (
	AfterMidnight Period = iota
	BeforeMidnight
)

func (p Period) String() string {
	if p == AfterMidnight {
		return "after midnight"
	}

	return "before midnight"
}

type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

type EventKind int

const (
	BeginShift EventKind = iota
	FallAsleep
	WakeUp
)

func (k EventKind) String() string {
	switch k {
	case BeginShift:
		return "begins shift"
	case FallAsleep:
		return fallsAsleepText
	case WakeUp:
		return wakesUpText
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

type Event struct {
	Kind  EventKind
	Guard int // set only for BeginShift
}

func (e Event) String() string {
	if e.Kind == BeginShift {
		return fmt.Sprintf("Guard #%d begins shift", e.Guard)
	}

	return e.Kind.String()
}

type Entry struct {
	Date   string
	Hour   int
	Minute int
	Event  Event
}

func (e Entry) Period() Period {
	if e.Hour == 0 {
		return AfterMidnight
	}

	return BeforeMidnight
}

func (e Entry) String() string {
	return fmt.Sprintf("[%s %02d:%02d] %s", e.Date, e.Hour, e.Minute, e.Event)
}

// Compare orders entries by date, then AfterMidnight before BeforeMidnight
// on the same date, then by clock time.
func Compare(a, b Entry) Ordering {
	if c := strings.Compare(a.Date, b.Date); c != 0 {
		return Ordering(c)
	}
	if c := cmp.Compare(a.Period(), b.Period()); c != 0 {
		return Ordering(c)
	}
	if c := cmp.Compare(a.Hour, b.Hour); c != 0 {
		return Ordering(c)
	}

	return Ordering(cmp.Compare(a.Minute, b.Minute))
}

// Sort returns a sorted copy of entries. Entries that compare Equal keep
// their input order.
func Sort(entries []Entry) []Entry {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b Entry) int {
		return int(Compare(a, b))
	})

	return sorted
}

// Parse reads log entries in file order; use Sort before replaying them.
func Parse(input string) ([]Entry, error) {
	entries := make([]Entry, 0)
	for i, raw := range strings.Split(input, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		entry, err := parseEntry(line)
		if err != nil {
			return nil, &domain.ParseError{Line: i + 1, Text: line, Err: err}
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func parseEntry(line string) (Entry, error) {
	m := entryPattern.FindStringSubmatch(line)
	if m == nil {
		return Entry{}, domain.ErrMalformed
	}

	hour, err := strconv.Atoi(m[2])
	if err != nil {
		return Entry{}, err
	}
	minute, err := strconv.Atoi(m[3])
	if err != nil {
		return Entry{}, err
	}
	if hour > 23 || minute > 59 {
		return Entry{}, fmt.Errorf("time %s:%s out of range: %w", m[2], m[3], domain.ErrMalformed)
	}

	event, err := parseEvent(m[4])
	if err != nil {
		return Entry{}, err
	}

	return Entry{Date: m[1], Hour: hour, Minute: minute, Event: event}, nil
}

func parseEvent(text string) (Event, error) {
	switch text {
	case fallsAsleepText:
		return Event{Kind: FallAsleep}, nil
	case wakesUpText:
		return Event{Kind: WakeUp}, nil
	}

	m := shiftPattern.FindStringSubmatch(text)
	if m == nil {
		return Event{}, fmt.Errorf("unknown event %q: %w", text, domain.ErrMalformed)
	}
	guard, err := strconv.Atoi(m[1])
	if err != nil {
		return Event{}, err
	}

	return Event{Kind: BeginShift, Guard: guard}, nil
}

func Format(entries []Entry) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}

	return b.String()
}
