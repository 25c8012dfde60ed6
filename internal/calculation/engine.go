package calculation

import (
	"fmt"
	"time"

	"github.com/rgehrsitz/takehome/internal/cashflow"
	"github.com/rgehrsitz/takehome/internal/domain"
)

// CalculationEngine runs every household profile of a configuration
type CalculationEngine struct {
	Tables *domain.TaxTables
	Logger Logger
	Now    func() time.Time
}

// NewCalculationEngine creates an engine over tables
func NewCalculationEngine(tables *domain.TaxTables) *CalculationEngine {
	return &CalculationEngine{
		Tables: tables,
		Logger: NopLogger{},
		Now:    time.Now,
	}
}

// SetLogger sets the logger; nil installs NopLogger
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// Calculator returns a TaxCalculator pinned to asOf, or to the engine clock
// when asOf is zero
func (ce *CalculationEngine) Calculator(asOf int) *TaxCalculator {
	return NewTaxCalculator(ce.Tables,
		WithClock(ce.Now),
		WithAsOfYear(asOf),
		WithLogger(ce.Logger),
	)
}

// Evaluate computes the summary of a single income
func (ce *CalculationEngine) Evaluate(asOf int, input domain.IncomeInput) (domain.IncomeSummary, error) {
	income, err := NewIncome(ce.Calculator(asOf), input)
	if err != nil {
		return domain.IncomeSummary{}, err
	}
	return income.Summary()
}

// RunProfile evaluates one household profile including its cash flow
func (ce *CalculationEngine) RunProfile(asOf int, profile domain.HouseholdProfile) (*domain.HouseholdResult, error) {
	summary, err := ce.Evaluate(asOf, profile.Income.WithDefaults())
	if err != nil {
		return nil, err
	}
	result := &domain.HouseholdResult{Name: profile.Name, Summary: summary}

	if profile.CashFlow != nil {
		series, err := cashflow.FromInput(*profile.CashFlow)
		if err != nil {
			return nil, err
		}
		snap := series.Snapshot()
		result.CashFlow = &snap
	}

	ce.Logger.Debugf("%s: gross=%s net=%s tax=%s (year %d)", profile.Name,
		summary.Gross.StringFixed(2), summary.Net.StringFixed(2), summary.IncomeTax.StringFixed(2), summary.TaxYear)
	return result, nil
}

// RunScenarios evaluates every household profile in cfg
func (ce *CalculationEngine) RunScenarios(cfg *domain.Configuration) (*domain.Report, error) {
	if cfg == nil || len(cfg.Households) == 0 {
		return nil, fmt.Errorf("no household profiles provided")
	}

	calc := ce.Calculator(cfg.AsOfYear)
	report := &domain.Report{
		AsOfYear:    calc.AsOf,
		GeneratedAt: ce.Now(),
		Results:     make([]domain.HouseholdResult, 0, len(cfg.Households)),
	}

	for i, profile := range cfg.Households {
		result, err := ce.RunProfile(calc.AsOf, profile)
		if err != nil {
			return nil, fmt.Errorf("household %d (%s): %w", i, profile.Name, err)
		}
		report.Results = append(report.Results, *result)
	}

	ce.Logger.Infof("calculated %d household(s) for %d", len(report.Results), report.AsOfYear)
	return report, nil
}
