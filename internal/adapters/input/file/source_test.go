package file

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/bnema/aoc-2018/internal/domain"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceReadsDayFromPattern(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, filepath.Join("puzzles", "day-03", "input.txt"), []byte("#1 @ 1,3: 4x4\n"), 0o644))

	source := NewSource(fs, "puzzles", "")
	assert.Equal(t, filepath.Join("puzzles", "day-03", "input.txt"), source.Path(3))

	got, err := source.Read(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "#1 @ 1,3: 4x4\n", got)
}

func TestSourceCustomPattern(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, filepath.Join("in", "5.txt"), []byte("aA"), 0o644))

	got, err := NewSource(fs, "in", "%d.txt").Read(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "aA", got)
}

func TestSourceMissingInput(t *testing.T) {
	t.Parallel()

	_, err := NewSource(afero.NewMemMapFs(), ".", "").Read(context.Background(), 1)
	require.ErrorIs(t, err, domain.ErrInputNotFound)
	assert.Contains(t, err.Error(), "day-01")
}

func TestSourceRejectsUnknownDay(t *testing.T) {
	t.Parallel()

	_, err := NewSource(afero.NewMemMapFs(), ".", "").Read(context.Background(), 7)
	require.ErrorIs(t, err, domain.ErrUnknownDay)
}

func TestSourceHonorsCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSource(afero.NewMemMapFs(), ".", "").ReadPath(ctx, "input.txt")
	require.ErrorIs(t, err, context.Canceled)
}
