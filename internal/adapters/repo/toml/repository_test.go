package toml

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/bnema/aoc-2018/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, path string) *Repository {
	t.Helper()

	config := viper.New()
	config.Set(AnswersPathKey, path)

	repo, err := NewRepository(config)
	require.NoError(t, err)
	return repo
}

func TestRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "answers.toml"))

	first := domain.Solution{Day: 2, PartOne: "12", PartTwo: "fgij"}
	second := domain.Solution{Day: 1, PartOne: "3", PartTwo: "2"}

	require.NoError(t, repo.Save(context.Background(), first))
	require.NoError(t, repo.Save(context.Background(), second))

	got, err := repo.GetByDay(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	solutions, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Solution{second, first}, solutions)
}

func TestRepositorySaveReplacesExistingDay(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "answers.toml"))

	require.NoError(t, repo.Save(context.Background(), domain.Solution{Day: 5, PartOne: "1", PartTwo: "1"}))
	require.NoError(t, repo.Save(context.Background(), domain.Solution{Day: 5, PartOne: "10", PartTwo: "4"}))

	solutions, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Solution{{Day: 5, PartOne: "10", PartTwo: "4"}}, solutions)
}

func TestRepositoryWritesReadableTOML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "answers.toml")
	repo := newTestRepository(t, path)
	require.NoError(t, repo.Save(context.Background(), domain.Solution{Day: 3, PartOne: "4", PartTwo: "3"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "[[answers]]")
	assert.Contains(t, string(data), "part_two")
}

func TestRepositoryReadsHandWrittenFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "answers.toml")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join([]string{
		"[[answers]]",
		"day = 4",
		`part_one = "240"`,
		`part_two = "4455"`,
		"",
	}, "\n")), 0o644))

	got, err := newTestRepository(t, path).GetByDay(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, domain.Solution{Day: 4, PartOne: "240", PartTwo: "4455"}, got)
}

func TestRepositoryMissingFileBehaviors(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "missing", "answers.toml"))

	solutions, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, solutions)

	_, err = repo.GetByDay(context.Background(), 1)
	require.ErrorIs(t, err, domain.ErrAnswerNotFound)
}

func TestRepositoryMalformedTOMLReturnsError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "answers.toml")
	require.NoError(t, os.WriteFile(path, []byte("answers = ["), 0o644))

	_, err := newTestRepository(t, path).List(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode answers file")
}

func TestRepositoryRejectsNewerSchema(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "answers.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 2\n"), 0o644))

	_, err := newTestRepository(t, path).List(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported answers schema version 2")
}

func TestRepositorySaveRejectsUnknownDay(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "answers.toml"))
	err := repo.Save(context.Background(), domain.Solution{Day: 9})
	require.ErrorIs(t, err, domain.ErrUnknownDay)
}

func TestRepositorySaveCanceledContextReturnsContextError(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "answers.toml"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Save(ctx, domain.Solution{Day: 1})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRepositoryConcurrentSavesKeepEveryDay(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "answers.toml")
	repo := newTestRepository(t, path)

	var wg sync.WaitGroup
	for day := domain.FirstDay; day <= domain.LastDay; day++ {
		wg.Add(1)
		go func(day int) {
			defer wg.Done()
			assert.NoError(t, repo.Save(context.Background(), domain.Solution{
				Day:     domain.Day(day),
				PartOne: strconv.Itoa(day),
				PartTwo: strconv.Itoa(day * 2),
			}))
		}(day)
	}
	wg.Wait()

	solutions, err := newTestRepository(t, path).List(context.Background())
	require.NoError(t, err)
	assert.Len(t, solutions, domain.LastDay)
}
