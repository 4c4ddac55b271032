// Package mocks provides testify doubles for the ports.
package mocks

import (
	"context"

	"github.com/bnema/aoc-2018/internal/domain"
	"github.com/bnema/aoc-2018/internal/ports"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type MockInputSource struct {
	mock.Mock
}

var _ ports.InputSource = (*MockInputSource)(nil)

func NewMockInputSource(t testingT) *MockInputSource {
	m := &MockInputSource{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockInputSource) Path(day domain.Day) string {
	args := m.Called(day)
	return args.String(0)
}

func (m *MockInputSource) Read(ctx context.Context, day domain.Day) (string, error) {
	args := m.Called(ctx, day)
	return args.String(0), args.Error(1)
}

func (m *MockInputSource) ReadPath(ctx context.Context, path string) (string, error) {
	args := m.Called(ctx, path)
	return args.String(0), args.Error(1)
}

type MockAnswerRepository struct {
	mock.Mock
}

var _ ports.AnswerRepository = (*MockAnswerRepository)(nil)

func NewMockAnswerRepository(t testingT) *MockAnswerRepository {
	m := &MockAnswerRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAnswerRepository) GetByDay(ctx context.Context, day domain.Day) (domain.Solution, error) {
	args := m.Called(ctx, day)
	return args.Get(0).(domain.Solution), args.Error(1)
}

func (m *MockAnswerRepository) List(ctx context.Context) ([]domain.Solution, error) {
	args := m.Called(ctx)
	solutions, _ := args.Get(0).([]domain.Solution)
	return solutions, args.Error(1)
}

func (m *MockAnswerRepository) Save(ctx context.Context, solution domain.Solution) error {
	args := m.Called(ctx, solution)
	return args.Error(0)
}
