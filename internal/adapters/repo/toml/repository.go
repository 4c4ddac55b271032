package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/bnema/aoc-2018/internal/domain"
	"github.com/bnema/aoc-2018/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	AnswersPathKey     = "answers.path"
	DefaultAnswersPath = "answers.toml"

	answersFileMode = 0o644
	answersDirMode  = 0o755
	tempFilePattern = ".answers-*.toml.tmp"
)

// Repository keeps recorded answers in a single versioned TOML file.
type Repository struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.AnswerRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}
	cfg.SetDefault(AnswersPathKey, DefaultAnswersPath)

	path := cfg.GetString(AnswersPathKey)
	if path == "" {
		return nil, errors.New("answers path is empty")
	}
	path, err := normalizePath(path)
	if err != nil {
		return nil, err
	}

	return &Repository{path: path, mu: lockForPath(path)}, nil
}

func (r *Repository) Path() string {
	return r.path
}

func (r *Repository) Save(ctx context.Context, solution domain.Solution) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := solution.Day.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := toSchema(solution)
	updated := false
	for i := range file.Answers {
		if file.Answers[i].Day == encoded.Day {
			file.Answers[i] = encoded
			updated = true
			break
		}
	}
	if !updated {
		file.Answers = append(file.Answers, encoded)
	}
	slices.SortFunc(file.Answers, func(a, b answerSchema) int {
		return a.Day - b.Day
	})

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *Repository) GetByDay(ctx context.Context, day domain.Day) (domain.Solution, error) {
	if err := ctx.Err(); err != nil {
		return domain.Solution{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.Solution{}, err
	}

	for _, entry := range file.Answers {
		if entry.Day == int(day) {
			return fromSchema(entry), nil
		}
	}

	return domain.Solution{}, fmt.Errorf("%s: %w", day, domain.ErrAnswerNotFound)
}

func (r *Repository) List(ctx context.Context) ([]domain.Solution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	solutions := make([]domain.Solution, 0, len(file.Answers))
	for _, entry := range file.Answers {
		solutions = append(solutions, fromSchema(entry))
	}

	return solutions, nil
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			file := fileSchema{}
			file.applyDefaults()
			return file, nil
		}
		return fileSchema{}, fmt.Errorf("read answers file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode answers file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.path), answersDirMode); err != nil {
		return fmt.Errorf("create answers directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode answers file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp answers file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp answers file: %w", err)
	}

	if err := tempFile.Chmod(answersFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp answers file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp answers file: %w", err)
	}

	if err := os.Rename(tempName, r.path); err != nil {
		return fmt.Errorf("replace answers file: %w", err)
	}
	cleanup = false

	return nil
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve answers path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func toSchema(solution domain.Solution) answerSchema {
	return answerSchema{
		Day:     int(solution.Day),
		PartOne: solution.PartOne,
		PartTwo: solution.PartTwo,
	}
}

func fromSchema(entry answerSchema) domain.Solution {
	return domain.Solution{
		Day:     domain.Day(entry.Day),
		PartOne: entry.PartOne,
		PartTwo: entry.PartTwo,
	}
}
