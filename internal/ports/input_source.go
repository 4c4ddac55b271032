package ports

import (
	"context"

	"github.com/bnema/aoc-2018/internal/domain"
)

type InputSource interface {
	Path(day domain.Day) string
	Read(ctx context.Context, day domain.Day) (string, error)
	ReadPath(ctx context.Context, path string) (string, error)
}
