package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/rgehrsitz/takehome/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed default_tables.yaml
var defaultTablesYAML []byte

// BracketSpec is the file form of a bracket. A missing ceiling marks the
// open-ended top bracket.
type BracketSpec struct {
	Ceiling *decimal.Decimal `yaml:"ceiling,omitempty"`
	Rate    decimal.Decimal  `yaml:"rate"`
}

// TablesFile mirrors the tables YAML layout
type TablesFile struct {
	Metadata       domain.TableMetadata      `yaml:"metadata"`
	SocialSecurity *domain.ContributionRules `yaml:"social_security,omitempty"`
	IncomeTax      map[int][]BracketSpec     `yaml:"income_tax"`
	Withholding    map[int][]BracketSpec     `yaml:"withholding"`
}

// DefaultTables returns the tables compiled into the binary
func DefaultTables() (*domain.TaxTables, error) {
	tables, err := ParseTables(defaultTablesYAML)
	if err != nil {
		return nil, fmt.Errorf("embedded tables: %w", err)
	}
	return tables, nil
}

// LoadTablesFromFile reads a tables YAML file
func LoadTablesFromFile(filename string) (*domain.TaxTables, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	tables, err := ParseTables(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return tables, nil
}

// LoadTables loads filename, or the embedded defaults when filename is empty
func LoadTables(filename string) (*domain.TaxTables, error) {
	if filename == "" {
		return DefaultTables()
	}
	return LoadTablesFromFile(filename)
}

// ParseTables decodes and validates tables YAML
func ParseTables(data []byte) (*domain.TaxTables, error) {
	var file TablesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return file.Build()
}

// Build converts the file form into validated domain tables
func (f *TablesFile) Build() (*domain.TaxTables, error) {
	incomeTax, err := domain.NewBracketTable(domain.KindIncomeTax, toSchedules(f.IncomeTax))
	if err != nil {
		return nil, err
	}
	withholding, err := domain.NewBracketTable(domain.KindWithholding, toSchedules(f.Withholding))
	if err != nil {
		return nil, err
	}

	rules := domain.DefaultContributionRules()
	if f.SocialSecurity != nil {
		rules = *f.SocialSecurity
	}
	return domain.NewTaxTables(f.Metadata, incomeTax, withholding, rules)
}

func toSchedules(specs map[int][]BracketSpec) map[int][]domain.Bracket {
	out := make(map[int][]domain.Bracket, len(specs))
	for year, list := range specs {
		brackets := make([]domain.Bracket, 0, len(list))
		for _, s := range list {
			if s.Ceiling == nil {
				brackets = append(brackets, domain.Bracket{Rate: s.Rate, Open: true})
				continue
			}
			brackets = append(brackets, domain.Bracket{Ceiling: *s.Ceiling, Rate: s.Rate})
		}
		out[year] = brackets
	}
	return out
}
