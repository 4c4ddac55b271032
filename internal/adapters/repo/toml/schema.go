package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int            `toml:"version"`
	Answers []answerSchema `toml:"answers"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported answers schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type answerSchema struct {
	Day     int    `toml:"day"`
	PartOne string `toml:"part_one"`
	PartTwo string `toml:"part_two"`
}
