package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/aoc-2018/internal/domain"
	"github.com/bnema/aoc-2018/internal/ports"
	"github.com/spf13/afero"
)

const DefaultPattern = "day-%02d/input.txt"

// Source reads puzzle inputs laid out as root/<pattern>, where pattern is
// a printf template taking the day number.
type Source struct {
	fs      afero.Fs
	root    string
	pattern string
}

var _ ports.InputSource = (*Source)(nil)

func NewSource(fs afero.Fs, root, pattern string) *Source {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if pattern == "" {
		pattern = DefaultPattern
	}

	return &Source{fs: fs, root: filepath.Clean(root), pattern: pattern}
}

func (s *Source) Path(day domain.Day) string {
	return filepath.Join(s.root, fmt.Sprintf(s.pattern, int(day)))
}

func (s *Source) Read(ctx context.Context, day domain.Day) (string, error) {
	if err := day.Validate(); err != nil {
		return "", err
	}

	return s.ReadPath(ctx, s.Path(day))
}

func (s *Source) ReadPath(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("read input %q: %w", path, domain.ErrInputNotFound)
		}
		return "", fmt.Errorf("read input %q: %w", path, err)
	}

	return string(data), nil
}
