package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settlement is the annual tax settlement of one income
type Settlement struct {
	TaxYear      int             `json:"tax_year" yaml:"tax_year"`
	Contribution decimal.Decimal `json:"contribution" yaml:"contribution"`
	// Deduction is what was subtracted from gross to reach TaxableBase:
	// either the contribution or the household's flat cap.
	Deduction            decimal.Decimal `json:"deduction" yaml:"deduction"`
	FlatDeductionApplied bool            `json:"flat_deduction_applied" yaml:"flat_deduction_applied"`
	TaxableBase          decimal.Decimal `json:"taxable_base" yaml:"taxable_base"`
	IncomeTax            decimal.Decimal `json:"income_tax" yaml:"income_tax"`
}

// IncomeSummary collects every figure the income model produces
type IncomeSummary struct {
	Gross            decimal.Decimal   `json:"gross" yaml:"gross"`
	Contribution     decimal.Decimal   `json:"contribution" yaml:"contribution"`
	TaxableBase      decimal.Decimal   `json:"taxable_base" yaml:"taxable_base"`
	IncomeTax        decimal.Decimal   `json:"income_tax" yaml:"income_tax"`
	TaxFreeAllowance decimal.Decimal   `json:"tax_free_allowance" yaml:"tax_free_allowance"`
	Net              decimal.Decimal   `json:"net" yaml:"net"`
	MonthlyNet       decimal.Decimal   `json:"monthly_net" yaml:"monthly_net"`
	EffectiveRate    decimal.Decimal   `json:"effective_rate" yaml:"effective_rate"`
	NetSalary        decimal.Decimal   `json:"net_salary" yaml:"net_salary"`
	NetBonuses       []decimal.Decimal `json:"net_bonuses" yaml:"net_bonuses"`
	MonthsPaid       int               `json:"months_paid" yaml:"months_paid"`
	HouseholdSize    int               `json:"household_size" yaml:"household_size"`
	TaxYear          int               `json:"tax_year" yaml:"tax_year"`
	WithholdingYear  int               `json:"withholding_year" yaml:"withholding_year"`
}

// CashFlowSeries is the twelve-month cash flow prepared for display
type CashFlowSeries struct {
	Income     []decimal.Decimal `json:"income" yaml:"income"`
	Expenses   []decimal.Decimal `json:"expenses" yaml:"expenses"`
	Invested   []decimal.Decimal `json:"invested" yaml:"invested"`
	Net        []decimal.Decimal `json:"net" yaml:"net"`
	Cumulative []decimal.Decimal `json:"cumulative" yaml:"cumulative"`
}

// HouseholdResult pairs a profile name with its calculated figures
type HouseholdResult struct {
	Name     string          `json:"name" yaml:"name"`
	Summary  IncomeSummary   `json:"summary" yaml:"summary"`
	CashFlow *CashFlowSeries `json:"cash_flow,omitempty" yaml:"cash_flow,omitempty"`
}

// Report is the output of a configuration run
type Report struct {
	AsOfYear    int               `json:"as_of_year" yaml:"as_of_year"`
	GeneratedAt time.Time         `json:"generated_at" yaml:"generated_at"`
	Results     []HouseholdResult `json:"results" yaml:"results"`
}
