// Package config parses calculation request files and tool settings.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"revdisp/internal/domain"
)

// CalculationRequest is the on-disk form of one calculation: a fiscal year
// plus the household snapshot.
type CalculationRequest struct {
	Year      int              `yaml:"year" json:"year"`
	Household domain.Household `yaml:"household" json:"household"`
}

// InputParser handles parsing of request files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads and validates a calculation request from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*CalculationRequest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var req CalculationRequest
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.Validate(&req); err != nil {
		return nil, fmt.Errorf("request validation failed: %w", err)
	}
	return &req, nil
}

// Validate checks the request before it reaches the engine. Year support
// is checked later by the parameter store; only structure is checked here.
func (ip *InputParser) Validate(req *CalculationRequest) error {
	if req.Year <= 0 {
		return fmt.Errorf("year is required")
	}
	return req.Household.Validate()
}
