// Package config loads the optional aoc.toml settings through viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	fileinput "github.com/bnema/aoc-2018/internal/adapters/input/file"
	tomlrepo "github.com/bnema/aoc-2018/internal/adapters/repo/toml"
	"github.com/bnema/aoc-2018/internal/days/day06"
	"github.com/spf13/viper"
)

const (
	configName = "aoc"
	configType = "toml"
	envPrefix  = "AOC"
	configEnv  = "AOC_CONFIG"

	InputsDirKey     = "inputs.dir"
	InputsPatternKey = "inputs.pattern"
	Day06LimitKey    = "day06.limit"
)

type Config struct {
	InputsDir     string
	InputsPattern string
	AnswersPath   string
	Day06Limit    int
}

// Load reads aoc.toml from the working directory or ~/.config/aoc, or the
// file named by AOC_CONFIG. A missing config file is not an error.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	v.SetDefault(InputsDirKey, ".")
	v.SetDefault(InputsPatternKey, fileinput.DefaultPattern)
	v.SetDefault(tomlrepo.AnswersPathKey, tomlrepo.DefaultAnswersPath)
	v.SetDefault(Day06LimitKey, day06.DefaultLimit)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if explicit := os.Getenv(configEnv); explicit != "" {
		v.SetConfigFile(explicit)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %q: %w", explicit, err)
		}
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(".")
		if homeDir, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(homeDir, ".config", configName))
		}

		if err := v.ReadInConfig(); err != nil {
			var configNotFound viper.ConfigFileNotFoundError
			if !errors.As(err, &configNotFound) {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	cfg := Config{
		InputsDir:     v.GetString(InputsDirKey),
		InputsPattern: v.GetString(InputsPatternKey),
		AnswersPath:   v.GetString(tomlrepo.AnswersPathKey),
		Day06Limit:    v.GetInt(Day06LimitKey),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.InputsDir) == "" {
		return fmt.Errorf("%s is required", InputsDirKey)
	}
	if !strings.Contains(c.InputsPattern, "%") {
		return fmt.Errorf("%s %q has no day placeholder", InputsPatternKey, c.InputsPattern)
	}
	if strings.TrimSpace(c.AnswersPath) == "" {
		return fmt.Errorf("%s is required", tomlrepo.AnswersPathKey)
	}
	if c.Day06Limit <= 0 {
		return fmt.Errorf("%s must be positive, got %d", Day06LimitKey, c.Day06Limit)
	}

	return nil
}
