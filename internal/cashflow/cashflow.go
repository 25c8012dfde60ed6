// Package cashflow prepares the twelve-month income, expense and investment
// sequences shown on the cash-flow chart.
package cashflow

import (
	"fmt"

	"github.com/rgehrsitz/takehome/internal/domain"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Months is the fixed length of every sequence
const Months = 12

// Series is a validated, immutable twelve-month cash flow
type Series struct {
	income   []decimal.Decimal
	expenses []decimal.Decimal
	invested []decimal.Decimal
}

// New validates the three sequences. A nil invested slice means no investments.
func New(income, expenses, invested []decimal.Decimal) (*Series, error) {
	if invested == nil {
		invested = make([]decimal.Decimal, Months)
	}
	for name, values := range map[string][]decimal.Decimal{
		"income":   income,
		"expenses": expenses,
		"invested": invested,
	} {
		if len(values) != Months {
			return nil, fmt.Errorf("%w: %s has %d values, want %d", domain.ErrShapeMismatch, name, len(values), Months)
		}
	}
	return &Series{
		income:   append([]decimal.Decimal(nil), income...),
		expenses: append([]decimal.Decimal(nil), expenses...),
		invested: append([]decimal.Decimal(nil), invested...),
	}, nil
}

// FromInput builds a Series from a configuration block
func FromInput(in domain.CashFlowInput) (*Series, error) {
	return New(in.Income, in.Expenses, in.Invested)
}

func (s *Series) Income() []decimal.Decimal   { return append([]decimal.Decimal(nil), s.income...) }
func (s *Series) Expenses() []decimal.Decimal { return append([]decimal.Decimal(nil), s.expenses...) }
func (s *Series) Invested() []decimal.Decimal { return append([]decimal.Decimal(nil), s.invested...) }

// Net is income - expenses - invested for each month
func (s *Series) Net() []decimal.Decimal {
	return lo.Map(s.income, func(in decimal.Decimal, i int) decimal.Decimal {
		return in.Sub(s.expenses[i]).Sub(s.invested[i])
	})
}

// Cumulative is the running total of Net, starting from zero
func (s *Series) Cumulative() []decimal.Decimal {
	out := make([]decimal.Decimal, 0, Months)
	acc := decimal.Zero
	for _, n := range s.Net() {
		acc = acc.Add(n)
		out = append(out, acc)
	}
	return out
}

// DisplayExpenses returns expenses negated, the way they are plotted
func (s *Series) DisplayExpenses() []decimal.Decimal {
	return lo.Map(s.expenses, func(e decimal.Decimal, _ int) decimal.Decimal {
		return e.Neg()
	})
}

// HasInvestments reports whether any month has a non-zero investment
func (s *Series) HasInvestments() bool {
	return lo.SomeBy(s.invested, func(v decimal.Decimal) bool { return !v.IsZero() })
}

// Snapshot converts the series into its serialisable form
func (s *Series) Snapshot() domain.CashFlowSeries {
	return domain.CashFlowSeries{
		Income:     s.Income(),
		Expenses:   s.Expenses(),
		Invested:   s.Invested(),
		Net:        s.Net(),
		Cumulative: s.Cumulative(),
	}
}

// Floats converts values for plotting
func Floats(values []decimal.Decimal) []float64 {
	return lo.Map(values, func(v decimal.Decimal, _ int) float64 {
		f, _ := v.Float64()
		return f
	})
}
