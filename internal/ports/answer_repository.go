package ports

import (
	"context"

	"github.com/bnema/aoc-2018/internal/domain"
)

type AnswerRepository interface {
	GetByDay(ctx context.Context, day domain.Day) (domain.Solution, error)
	List(ctx context.Context) ([]domain.Solution, error)
	Save(ctx context.Context, solution domain.Solution) error
}
