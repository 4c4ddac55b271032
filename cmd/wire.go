package cmd

import (
	"fmt"

	fileinput "github.com/bnema/aoc-2018/internal/adapters/input/file"
	answersrender "github.com/bnema/aoc-2018/internal/adapters/render/answers"
	tomlrepo "github.com/bnema/aoc-2018/internal/adapters/repo/toml"
	"github.com/bnema/aoc-2018/internal/application"
	"github.com/bnema/aoc-2018/internal/config"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type app struct {
	service  *application.Service
	renderer func([]application.Report, answersrender.RenderOptions) (string, error)
	logger   *zap.Logger
}

func wireApp(logger *zap.Logger) (*app, error) {
	v := viper.New()
	cfg, err := config.Load(v)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	repo, err := tomlrepo.NewRepository(v)
	if err != nil {
		return nil, fmt.Errorf("wire answer repository: %w", err)
	}

	inputs := fileinput.NewSource(afero.NewOsFs(), cfg.InputsDir, cfg.InputsPattern)
	logger.Debug("wired",
		zap.String("inputs", cfg.InputsDir),
		zap.String("pattern", cfg.InputsPattern),
		zap.String("answers", repo.Path()),
		zap.String("config", v.ConfigFileUsed()),
	)

	return &app{
		service:  application.NewService(inputs, repo, logger, application.Options{SafeRegionLimit: cfg.Day06Limit}),
		renderer: answersrender.Render,
		logger:   logger,
	}, nil
}
