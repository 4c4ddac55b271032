package day04

import "github.com/bnema/aoc-2018/internal/domain"

type SleepState int

const (
	Awake SleepState = iota
	Asleep
)

func (s SleepState) String() string {
	if s == Asleep {
		return "asleep"
	}

	return "awake"
}

// Nap is one sleep interval of a guard, covering minutes [Start, End).
type Nap struct {
	Guard int
	Start int
	End   int
}

func (n Nap) Minutes() int {
	return max(0, n.End-n.Start)
}

// shift replays log events for the guard currently on duty.
type shift struct {
	guard    int
	onDuty   bool
	state    SleepState
	asleepAt int
}

func (s *shift) apply(index int, e Entry) (Nap, bool, error) {
	switch e.Event.Kind {
	case BeginShift:
		// An unfinished nap from the previous shift is dropped.
		*s = shift{guard: e.Event.Guard, onDuty: true, state: Awake}
		return Nap{}, false, nil
	case FallAsleep:
		if !s.onDuty || s.state != Awake {
			return Nap{}, false, s.transitionError(index, e)
		}
		s.state = Asleep
		s.asleepAt = e.Minute
		return Nap{}, false, nil
	case WakeUp:
		if !s.onDuty || s.state != Asleep {
			return Nap{}, false, s.transitionError(index, e)
		}
		s.state = Awake
		return Nap{Guard: s.guard, Start: s.asleepAt, End: e.Minute}, true, nil
	default:
		return Nap{}, false, s.transitionError(index, e)
	}
}

func (s *shift) transitionError(index int, e Entry) error {
	state := s.state.String()
	if !s.onDuty {
		state = "no guard on duty"
	}

	return &domain.TransitionError{Line: index + 1, State: state, Event: e.Event.Kind.String()}
}

// Naps sorts the log and replays it, attributing every sleep interval to
// the guard whose shift most recently began.
func Naps(entries []Entry) ([]Nap, error) {
	var s shift
	naps := make([]Nap, 0)
	for i, e := range Sort(entries) {
		nap, ok, err := s.apply(i, e)
		if err != nil {
			return nil, err
		}
		if ok {
			naps = append(naps, nap)
		}
	}

	return naps, nil
}

// minuteHistogram counts, per guard, how many naps covered each minute.
func minuteHistogram(naps []Nap) map[int]map[int]int {
	histogram := make(map[int]map[int]int)
	for _, n := range naps {
		minutes, ok := histogram[n.Guard]
		if !ok {
			minutes = make(map[int]int)
			histogram[n.Guard] = minutes
		}
		for m := n.Start; m < n.End; m++ {
			minutes[m]++
		}
	}

	return histogram
}
