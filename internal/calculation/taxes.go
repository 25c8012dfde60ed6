package calculation

import (
	"fmt"
	"time"

	"github.com/rgehrsitz/takehome/internal/domain"
	"github.com/shopspring/decimal"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. Fiscal year: the calculator's as-of year (current calendar year unless
//    pinned). Missing years fall back to the most recent earlier year.
//
// 2. Income splitting: taxable income is divided by household size, walked
//    through the brackets and multiplied back.
//
// 3. Rounding: results are rounded half-even to cents.
//
// 4. Withholding uses the year after the as-of year, the year the paychecks
//    being estimated will be issued in.

// TaxCalculator computes progressive income tax against injected tables
type TaxCalculator struct {
	Tables *domain.TaxTables
	AsOf   int
	Logger Logger
}

// TaxOption customises a TaxCalculator
type TaxOption func(*TaxCalculator)

// WithAsOfYear pins the fiscal year. Zero keeps the clock default.
func WithAsOfYear(year int) TaxOption {
	return func(tc *TaxCalculator) {
		if year != 0 {
			tc.AsOf = year
		}
	}
}

// WithClock derives the fiscal year from now()
func WithClock(now func() time.Time) TaxOption {
	return func(tc *TaxCalculator) {
		tc.AsOf = now().Year()
	}
}

// WithLogger sets the logger; nil means NopLogger
func WithLogger(l Logger) TaxOption {
	return func(tc *TaxCalculator) {
		tc.SetLogger(l)
	}
}

// NewTaxCalculator creates a calculator for tables. Without options the fiscal
// year is the current calendar year.
func NewTaxCalculator(tables *domain.TaxTables, opts ...TaxOption) *TaxCalculator {
	tc := &TaxCalculator{
		Tables: tables,
		AsOf:   time.Now().Year(),
		Logger: NopLogger{},
	}
	for _, opt := range opts {
		opt(tc)
	}
	return tc
}

// SetLogger replaces the logger
func (tc *TaxCalculator) SetLogger(l Logger) {
	if l == nil {
		tc.Logger = NopLogger{}
		return
	}
	tc.Logger = l
}

// ComputeTax returns the tax owed on taxableIncome for the as-of year
func (tc *TaxCalculator) ComputeTax(taxableIncome decimal.Decimal, householdSize int) (decimal.Decimal, error) {
	tax, _, err := tc.ComputeTaxForYear(tc.AsOf, taxableIncome, householdSize)
	return tax, err
}

// ComputeTaxForYear walks the brackets of the most recent year <= year and
// returns the tax together with the year actually used.
func (tc *TaxCalculator) ComputeTaxForYear(year int, taxableIncome decimal.Decimal, householdSize int) (decimal.Decimal, int, error) {
	if householdSize < 1 {
		return decimal.Zero, 0, fmt.Errorf("%w: household size must be at least 1, got %d", domain.ErrInvalidIncome, householdSize)
	}

	resolved, brackets, err := tc.Tables.IncomeTax().Resolve(year)
	if err != nil {
		return decimal.Zero, 0, err
	}
	if resolved != year {
		tc.Logger.Debugf("income tax brackets for %d not found, using %d", year, resolved)
	}

	if taxableIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, resolved, nil
	}

	people := decimal.NewFromInt(int64(householdSize))
	perPerson := taxableIncome.Div(people)

	tax, err := walkBrackets(brackets, perPerson)
	if err != nil {
		return decimal.Zero, resolved, fmt.Errorf("income tax %d: %w", resolved, err)
	}

	return tax.Mul(people).RoundBank(2), resolved, nil
}

// walkBrackets accumulates marginal tax. Income equal to a ceiling stops in
// that bracket.
func walkBrackets(brackets []domain.Bracket, income decimal.Decimal) (decimal.Decimal, error) {
	tax := decimal.Zero
	previous := decimal.Zero
	for _, b := range brackets {
		if !b.Open && income.GreaterThan(b.Ceiling) {
			tax = tax.Add(b.Ceiling.Sub(previous).Mul(b.Rate))
			previous = b.Ceiling
			continue
		}
		return tax.Add(income.Sub(previous).Mul(b.Rate)), nil
	}
	return decimal.Zero, fmt.Errorf("%w: %s above last ceiling %s", domain.ErrAmountExceedsTable, income.StringFixed(2), previous.StringFixed(2))
}

// withholdingRate finds the first bracket whose ceiling strictly exceeds amount
func withholdingRate(brackets []domain.Bracket, amount decimal.Decimal) (decimal.Decimal, error) {
	for _, b := range brackets {
		if b.Contains(amount) {
			return b.Rate, nil
		}
	}
	return decimal.Zero, fmt.Errorf("%w: %s", domain.ErrAmountExceedsTable, amount.StringFixed(2))
}
