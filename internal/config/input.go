package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lsmc/option-pricer/internal/domain"
)

// InputParser handles parsing of scenario files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario from a YAML file. Fields absent from the
// file keep their defaults, so a file may override just the parameters
// under study. The loaded scenario is validated eagerly; a scenario that
// fails validation is never returned.
func (ip *InputParser) LoadFromFile(filename string) (domain.Scenario, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return domain.Scenario{}, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	scenario := domain.Default()
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return domain.Scenario{}, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := scenario.Validate(); err != nil {
		return domain.Scenario{}, fmt.Errorf("scenario validation failed: %w", err)
	}

	return scenario, nil
}
