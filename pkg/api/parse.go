package api

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadAnswers reads a YAML answers file on top of the defaults.
// Keys missing from the file keep their default value.
func LoadAnswers(filename string) (Configuration, error) {
	cfg := DefaultConfiguration()

	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, fmt.Errorf("reading answers file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing answers file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating answers file %s: %w", filename, err)
	}

	return cfg, nil
}
