package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/aoc-2018/internal/days/day06"
	"github.com/bnema/aoc-2018/internal/domain"
	"github.com/bnema/aoc-2018/internal/ports"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var ErrAnswerMismatch = errors.New("answers differ from recorded answers")

type Options struct {
	// SafeRegionLimit bounds the summed distance in day 6 part two.
	SafeRegionLimit int
}

type Service struct {
	inputs  ports.InputSource
	answers ports.AnswerRepository
	logger  *zap.Logger
	opts    Options
}

func NewService(inputs ports.InputSource, answers ports.AnswerRepository, logger *zap.Logger, opts Options) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.SafeRegionLimit <= 0 {
		opts.SafeRegionLimit = day06.DefaultLimit
	}

	return &Service{
		inputs:  inputs,
		answers: answers,
		logger:  logger,
		opts:    opts,
	}
}

// SolveInput runs both parts of day on raw puzzle text.
func (s *Service) SolveInput(day domain.Day, input string) (domain.Solution, error) {
	if err := day.Validate(); err != nil {
		return domain.Solution{}, err
	}

	partOne, partTwo, err := solvers[day](input, s.opts)
	if err != nil {
		return domain.Solution{}, fmt.Errorf("solve %s: %w", day, err)
	}

	return domain.Solution{Day: day, PartOne: partOne, PartTwo: partTwo}, nil
}

func (s *Service) Solve(ctx context.Context, day domain.Day) (Report, error) {
	if err := day.Validate(); err != nil {
		return Report{}, err
	}

	input, err := s.inputs.Read(ctx, day)
	if err != nil {
		return Report{}, err
	}

	return s.report(day, s.inputs.Path(day), input)
}

func (s *Service) SolvePath(ctx context.Context, day domain.Day, path string) (Report, error) {
	if err := day.Validate(); err != nil {
		return Report{}, err
	}

	input, err := s.inputs.ReadPath(ctx, path)
	if err != nil {
		return Report{}, err
	}

	return s.report(day, path, input)
}

// SolveAll solves every day whose input exists, in day order. Days without
// an input are skipped; it fails only when no input exists at all.
func (s *Service) SolveAll(ctx context.Context) ([]Report, error) {
	solved, err := s.solveDays(ctx, domain.AllDays())
	if err != nil {
		return nil, err
	}

	reports := make([]Report, 0, len(solved))
	for _, report := range solved {
		if report != nil {
			reports = append(reports, *report)
		}
	}
	if len(reports) == 0 {
		return nil, fmt.Errorf("no puzzle input for any day: %w", domain.ErrInputNotFound)
	}

	return reports, nil
}

func (s *Service) Record(ctx context.Context, reports []Report) error {
	for _, solution := range Solutions(reports) {
		if err := s.answers.Save(ctx, solution); err != nil {
			return fmt.Errorf("record %s: %w", solution.Day, err)
		}
		s.logger.Debug("recorded answers", zap.Stringer("day", solution.Day))
	}

	return nil
}

// Verify re-solves every day with recorded answers. The reports are
// returned even when some differ, together with ErrAnswerMismatch.
func (s *Service) Verify(ctx context.Context) ([]Report, error) {
	recorded, err := s.answers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list recorded answers: %w", err)
	}
	if len(recorded) == 0 {
		return nil, fmt.Errorf("nothing to verify: %w", domain.ErrAnswerNotFound)
	}

	days := make([]domain.Day, 0, len(recorded))
	for _, solution := range recorded {
		days = append(days, solution.Day)
	}

	solved, err := s.solveDays(ctx, days)
	if err != nil {
		return nil, err
	}

	reports := make([]Report, 0, len(recorded))
	mismatched := 0
	for i, expected := range recorded {
		report := Report{Solution: domain.Solution{Day: expected.Day}, Status: VerifyStatusMissingInput}
		if solved[i] != nil {
			report = *solved[i]
			report.Status = VerifyStatusMatch
			if !report.Solution.Equal(expected) {
				report.Status = VerifyStatusMismatch
				mismatched++
				s.logger.Warn("answer mismatch",
					zap.Stringer("day", expected.Day),
					zap.String("want_part_one", expected.PartOne),
					zap.String("want_part_two", expected.PartTwo),
					zap.String("got_part_one", report.Solution.PartOne),
					zap.String("got_part_two", report.Solution.PartTwo),
				)
			}
		}
		report.Expected = &expected
		reports = append(reports, report)
	}

	if mismatched > 0 {
		return reports, fmt.Errorf("%d of %d days: %w", mismatched, len(reports), ErrAnswerMismatch)
	}

	return reports, nil
}

// solveDays solves days concurrently. The result keeps the order of days
// and holds nil for a day whose input is missing.
func (s *Service) solveDays(ctx context.Context, days []domain.Day) ([]*Report, error) {
	solved := make([]*Report, len(days))

	group, groupCtx := errgroup.WithContext(ctx)
	for i, day := range days {
		group.Go(func() error {
			report, err := s.Solve(groupCtx, day)
			if err != nil {
				if errors.Is(err, domain.ErrInputNotFound) {
					s.logger.Warn("skipping day without input",
						zap.Stringer("day", day),
						zap.String("input", s.inputs.Path(day)),
					)
					return nil
				}
				return err
			}

			solved[i] = &report
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return solved, nil
}

func (s *Service) report(day domain.Day, path, input string) (Report, error) {
	started := time.Now()
	solution, err := s.SolveInput(day, input)
	if err != nil {
		return Report{}, err
	}
	elapsed := time.Since(started)

	s.logger.Debug("solved",
		zap.Stringer("day", day),
		zap.String("input", path),
		zap.Duration("elapsed", elapsed),
	)

	return Report{Solution: solution, InputPath: path, Elapsed: elapsed}, nil
}
