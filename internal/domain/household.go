package domain

import (
	"github.com/shopspring/decimal"
)

// IncomeInput carries the user-supplied figures for one household
type IncomeInput struct {
	Salary           decimal.Decimal   `yaml:"salary" json:"salary"`
	MonthsPaid       int               `yaml:"months_paid" json:"months_paid"`
	Bonuses          []decimal.Decimal `yaml:"bonuses,omitempty" json:"bonuses,omitempty"`
	TaxFreeAllowance decimal.Decimal   `yaml:"tax_free_allowance" json:"tax_free_allowance"`
	HouseholdSize    int               `yaml:"household_size" json:"household_size"`
}

// WithDefaults fills zero months and household size with 12 and 1
func (in IncomeInput) WithDefaults() IncomeInput {
	if in.MonthsPaid == 0 {
		in.MonthsPaid = 12
	}
	if in.HouseholdSize == 0 {
		in.HouseholdSize = 1
	}
	return in
}

// CashFlowInput holds the twelve monthly values used for the cash-flow chart.
// Invested may be omitted.
type CashFlowInput struct {
	Income   []decimal.Decimal `yaml:"income" json:"income"`
	Expenses []decimal.Decimal `yaml:"expenses" json:"expenses"`
	Invested []decimal.Decimal `yaml:"invested,omitempty" json:"invested,omitempty"`
}

// HouseholdProfile is one named household in a configuration file
type HouseholdProfile struct {
	Name     string         `yaml:"name" json:"name"`
	Income   IncomeInput    `yaml:"income" json:"income"`
	CashFlow *CashFlowInput `yaml:"cash_flow,omitempty" json:"cash_flow,omitempty"`
}

// Configuration is the top-level household input file
type Configuration struct {
	// AsOfYear pins the fiscal year; zero means the current calendar year.
	AsOfYear   int                `yaml:"as_of_year,omitempty" json:"as_of_year,omitempty"`
	Households []HouseholdProfile `yaml:"households" json:"households"`
}
