package application

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/bnema/aoc-2018/internal/domain"
	"github.com/bnema/aoc-2018/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var exampleInputs = map[domain.Day]string{
	1: "+1\n-2\n+3\n+1\n",
	2: "abcde\nfghij\nklmno\npqrst\nfguij\naxcye\nwvxyz\n",
	3: "#1 @ 1,3: 4x4\n#2 @ 3,1: 4x4\n#3 @ 5,5: 2x2\n",
	4: `[1518-11-01 00:00] Guard #10 begins shift
[1518-11-01 00:05] falls asleep
[1518-11-01 00:25] wakes up
[1518-11-01 00:30] falls asleep
[1518-11-01 00:55] wakes up
[1518-11-01 23:58] Guard #99 begins shift
[1518-11-02 00:40] falls asleep
[1518-11-02 00:50] wakes up
[1518-11-03 00:05] Guard #10 begins shift
[1518-11-03 00:24] falls asleep
[1518-11-03 00:29] wakes up
[1518-11-04 00:02] Guard #99 begins shift
[1518-11-04 00:36] falls asleep
[1518-11-04 00:46] wakes up
[1518-11-05 00:03] Guard #99 begins shift
[1518-11-05 00:45] falls asleep
[1518-11-05 00:55] wakes up
`,
	5: "dabAcCaCBAcCcaDA\n",
	6: "1, 1\n1, 6\n8, 3\n3, 4\n5, 5\n8, 9\n",
}

var exampleSolutions = map[domain.Day]domain.Solution{
	1: {Day: 1, PartOne: "3", PartTwo: "2"},
	2: {Day: 2, PartOne: "0", PartTwo: "fgij"},
	3: {Day: 3, PartOne: "4", PartTwo: "3"},
	4: {Day: 4, PartOne: "240", PartTwo: "4455"},
	5: {Day: 5, PartOne: "10", PartTwo: "4"},
	6: {Day: 6, PartOne: "17", PartTwo: "16"},
}

func newTestService(t *testing.T) (*Service, *mocks.MockInputSource, *mocks.MockAnswerRepository) {
	t.Helper()

	inputs := mocks.NewMockInputSource(t)
	answers := mocks.NewMockAnswerRepository(t)
	inputs.On("Path", mock.Anything).Return("input.txt").Maybe()

	return NewService(inputs, answers, zaptest.NewLogger(t), Options{SafeRegionLimit: 32}), inputs, answers
}

func missingInput(day domain.Day) error {
	return fmt.Errorf("%s: %w", day, domain.ErrInputNotFound)
}

func TestSolveInputExamples(t *testing.T) {
	t.Parallel()

	service, _, _ := newTestService(t)
	for _, day := range domain.AllDays() {
		t.Run(day.String(), func(t *testing.T) {
			got, err := service.SolveInput(day, exampleInputs[day])
			require.NoError(t, err)
			assert.Equal(t, exampleSolutions[day], got)
		})
	}
}

func TestSolveInputRejectsUnknownDay(t *testing.T) {
	t.Parallel()

	service, _, _ := newTestService(t)
	_, err := service.SolveInput(7, "")
	require.ErrorIs(t, err, domain.ErrUnknownDay)
}

func TestSolveInputKeepsParseErrorDetails(t *testing.T) {
	t.Parallel()

	service, _, _ := newTestService(t)
	_, err := service.SolveInput(1, "+1\nfive\n")
	require.Error(t, err)

	var parseErr *domain.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 2, parseErr.Line)
	assert.Equal(t, "five", parseErr.Text)
	assert.Contains(t, err.Error(), "solve day 01")
}

func TestSolveInputReportsMissingAnswer(t *testing.T) {
	t.Parallel()

	service, _, _ := newTestService(t)
	_, err := service.SolveInput(1, "+1\n+1\n")
	require.ErrorIs(t, err, domain.ErrNoSolution)
	assert.Contains(t, err.Error(), "part two")
}

func TestNewServiceDefaultsSafeRegionLimit(t *testing.T) {
	t.Parallel()

	service := NewService(nil, nil, nil, Options{})
	assert.Equal(t, 10000, service.opts.SafeRegionLimit)
}

func TestSolveReadsFromInputSource(t *testing.T) {
	t.Parallel()

	service, inputs, _ := newTestService(t)
	inputs.On("Read", mock.Anything, domain.Day(5)).Return(exampleInputs[5], nil).Once()

	report, err := service.Solve(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, exampleSolutions[5], report.Solution)
	assert.Equal(t, "input.txt", report.InputPath)
	assert.Equal(t, VerifyStatusUnchecked, report.Status)
}

func TestSolvePathUsesExplicitFile(t *testing.T) {
	t.Parallel()

	service, inputs, _ := newTestService(t)
	inputs.On("ReadPath", mock.Anything, "/tmp/claims.txt").Return(exampleInputs[3], nil).Once()

	report, err := service.SolvePath(context.Background(), 3, "/tmp/claims.txt")
	require.NoError(t, err)
	assert.Equal(t, exampleSolutions[3], report.Solution)
	assert.Equal(t, "/tmp/claims.txt", report.InputPath)
}

func TestSolvePropagatesMissingInput(t *testing.T) {
	t.Parallel()

	service, inputs, _ := newTestService(t)
	inputs.On("Read", mock.Anything, domain.Day(2)).Return("", missingInput(2)).Once()

	_, err := service.Solve(context.Background(), 2)
	require.ErrorIs(t, err, domain.ErrInputNotFound)
}

func TestSolveAllSkipsDaysWithoutInput(t *testing.T) {
	t.Parallel()

	service, inputs, _ := newTestService(t)
	for _, day := range domain.AllDays() {
		if day == 1 || day == 4 {
			inputs.On("Read", mock.Anything, day).Return(exampleInputs[day], nil).Once()
			continue
		}
		inputs.On("Read", mock.Anything, day).Return("", missingInput(day)).Once()
	}

	reports, err := service.SolveAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Solution{exampleSolutions[1], exampleSolutions[4]}, Solutions(reports))
}

func TestSolveAllKeepsDayOrder(t *testing.T) {
	t.Parallel()

	service, inputs, _ := newTestService(t)
	want := make([]domain.Solution, 0, domain.LastDay)
	for _, day := range domain.AllDays() {
		inputs.On("Read", mock.Anything, day).Return(exampleInputs[day], nil).Once()
		want = append(want, exampleSolutions[day])
	}

	reports, err := service.SolveAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, Solutions(reports))
}

func TestSolveAllWithoutAnyInputFails(t *testing.T) {
	t.Parallel()

	service, inputs, _ := newTestService(t)
	for _, day := range domain.AllDays() {
		inputs.On("Read", mock.Anything, day).Return("", missingInput(day)).Once()
	}

	_, err := service.SolveAll(context.Background())
	require.ErrorIs(t, err, domain.ErrInputNotFound)
}

func TestSolveAllStopsOnParseError(t *testing.T) {
	t.Parallel()

	service, inputs, _ := newTestService(t)
	for _, day := range domain.AllDays() {
		input := exampleInputs[day]
		if day == 3 {
			input = "#1 at 1,3\n"
		}
		inputs.On("Read", mock.Anything, day).Return(input, nil).Maybe()
	}

	_, err := service.SolveAll(context.Background())
	require.ErrorIs(t, err, domain.ErrMalformed)
}

func TestRecordSavesEverySolution(t *testing.T) {
	t.Parallel()

	service, _, answers := newTestService(t)
	answers.On("Save", mock.Anything, exampleSolutions[1]).Return(nil).Once()
	answers.On("Save", mock.Anything, exampleSolutions[2]).Return(nil).Once()

	err := service.Record(context.Background(), []Report{
		{Solution: exampleSolutions[1]},
		{Solution: exampleSolutions[2]},
	})
	require.NoError(t, err)
}

func TestRecordStopsOnSaveError(t *testing.T) {
	t.Parallel()

	service, _, answers := newTestService(t)
	saveErr := errors.New("disk full")
	answers.On("Save", mock.Anything, exampleSolutions[1]).Return(saveErr).Once()

	err := service.Record(context.Background(), []Report{
		{Solution: exampleSolutions[1]},
		{Solution: exampleSolutions[2]},
	})
	require.ErrorIs(t, err, saveErr)
	assert.Contains(t, err.Error(), "record day 01")
}

func TestVerifyAllMatch(t *testing.T) {
	t.Parallel()

	service, inputs, answers := newTestService(t)
	answers.On("List", mock.Anything).Return([]domain.Solution{exampleSolutions[4], exampleSolutions[6]}, nil).Once()
	inputs.On("Read", mock.Anything, domain.Day(4)).Return(exampleInputs[4], nil).Once()
	inputs.On("Read", mock.Anything, domain.Day(6)).Return(exampleInputs[6], nil).Once()

	reports, err := service.Verify(context.Background())
	require.NoError(t, err)
	require.Len(t, reports, 2)
	for _, report := range reports {
		assert.Equal(t, VerifyStatusMatch, report.Status)
		require.NotNil(t, report.Expected)
		assert.Equal(t, report.Solution, *report.Expected)
	}
}

func TestVerifyReportsMismatchAndMissingInput(t *testing.T) {
	t.Parallel()

	service, inputs, answers := newTestService(t)
	stale := domain.Solution{Day: 5, PartOne: "10", PartTwo: "5"}
	answers.On("List", mock.Anything).Return([]domain.Solution{exampleSolutions[1], stale, exampleSolutions[2]}, nil).Once()
	inputs.On("Read", mock.Anything, domain.Day(1)).Return(exampleInputs[1], nil).Once()
	inputs.On("Read", mock.Anything, domain.Day(5)).Return(exampleInputs[5], nil).Once()
	inputs.On("Read", mock.Anything, domain.Day(2)).Return("", missingInput(2)).Once()

	reports, err := service.Verify(context.Background())
	require.ErrorIs(t, err, ErrAnswerMismatch)
	assert.Contains(t, err.Error(), "1 of 3 days")

	require.Len(t, reports, 3)
	assert.Equal(t, VerifyStatusMatch, reports[0].Status)
	assert.Equal(t, VerifyStatusMismatch, reports[1].Status)
	assert.True(t, reports[1].Mismatched())
	assert.Equal(t, exampleSolutions[5], reports[1].Solution)
	assert.Equal(t, stale, *reports[1].Expected)
	assert.Equal(t, VerifyStatusMissingInput, reports[2].Status)
	assert.Equal(t, domain.Day(2), reports[2].Solution.Day)
}

func TestVerifyWithoutRecordedAnswers(t *testing.T) {
	t.Parallel()

	service, _, answers := newTestService(t)
	answers.On("List", mock.Anything).Return([]domain.Solution(nil), nil).Once()

	_, err := service.Verify(context.Background())
	require.ErrorIs(t, err, domain.ErrAnswerNotFound)
}

func TestVerifyPropagatesListError(t *testing.T) {
	t.Parallel()

	service, _, answers := newTestService(t)
	listErr := errors.New("permission denied")
	answers.On("List", mock.Anything).Return([]domain.Solution(nil), listErr).Once()

	_, err := service.Verify(context.Background())
	require.ErrorIs(t, err, listErr)
}
