package config

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/takehome/internal/calculation"
	"github.com/rgehrsitz/takehome/internal/cashflow"
	"github.com/rgehrsitz/takehome/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of household configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates configuration bytes
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	for i := range config.Households {
		config.Households[i].Income = config.Households[i].Income.WithDefaults()
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Households) == 0 {
		return fmt.Errorf("no households provided")
	}
	if config.AsOfYear < 0 {
		return fmt.Errorf("as_of_year cannot be negative")
	}

	seen := make(map[string]bool, len(config.Households))
	for i, h := range config.Households {
		if h.Name == "" {
			return fmt.Errorf("household %d: name is required", i)
		}
		if seen[h.Name] {
			return fmt.Errorf("household %d: duplicate name %q", i, h.Name)
		}
		seen[h.Name] = true

		if err := ip.validateHousehold(&h); err != nil {
			return fmt.Errorf("household %d (%s) validation failed: %w", i, h.Name, err)
		}
	}
	return nil
}

func (ip *InputParser) validateHousehold(h *domain.HouseholdProfile) error {
	if err := calculation.ValidateIncomeInput(h.Income); err != nil {
		return err
	}
	if h.CashFlow != nil {
		if _, err := cashflow.FromInput(*h.CashFlow); err != nil {
			return fmt.Errorf("cash flow: %w", err)
		}
	}
	return nil
}
