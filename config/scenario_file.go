package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	hjson "github.com/hjson/hjson-go/v4"
	"gopkg.in/yaml.v2"

	"rental-sim/domain"
)

// ScenarioFile is the on-disk description of a simulation.
type ScenarioFile struct {
	Years    int                  `json:"years" yaml:"years"`
	Scenario domain.ScenarioInput `json:"scenario" yaml:"scenario"`
}

// LoadScenarioFile reads a YAML (.yaml, .yml) or HJSON/JSON (.hjson, .json)
// scenario file.
func LoadScenarioFile(path string) (ScenarioFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ScenarioFile{}, fmt.Errorf("failed to read scenario file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseScenarioYAML(data)
	case ".hjson", ".json":
		return ParseScenarioHJSON(data)
	default:
		return ScenarioFile{}, fmt.Errorf("unsupported scenario file extension %q", filepath.Ext(path))
	}
}

func ParseScenarioYAML(data []byte) (ScenarioFile, error) {
	var f ScenarioFile
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return ScenarioFile{}, fmt.Errorf("invalid YAML scenario: %w", err)
	}
	return f, nil
}

// ParseScenarioHJSON accepts HJSON (comments, unquoted keys, trailing
// commas) and plain JSON. The document is normalised to JSON before
// decoding so the price_to_rent variant decodes the same way as over HTTP.
func ParseScenarioHJSON(data []byte) (ScenarioFile, error) {
	var generic interface{}
	if err := hjson.Unmarshal(data, &generic); err != nil {
		return ScenarioFile{}, fmt.Errorf("invalid HJSON scenario: %w", err)
	}

	normalised, err := json.Marshal(generic)
	if err != nil {
		return ScenarioFile{}, fmt.Errorf("failed to normalise scenario: %w", err)
	}

	var f ScenarioFile
	if err := json.Unmarshal(normalised, &f); err != nil {
		return ScenarioFile{}, fmt.Errorf("invalid scenario: %w", err)
	}
	return f, nil
}
