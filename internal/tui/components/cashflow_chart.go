package components

import (
	"strconv"

	"github.com/rgehrsitz/takehome/internal/cashflow"
	"github.com/rgehrsitz/takehome/internal/tui/tuistyles"
)

// CashFlowChartOptions tweaks the cash-flow chart
type CashFlowChartOptions struct {
	Title  string
	Width  int
	Height int
	// HideInvestments drops the investments line even when it has data.
	HideInvestments bool
}

// CashFlowChart plots income, negated expenses, investments (when any month is
// non-zero) and the accumulated balance over months 1..12.
func CashFlowChart(s *cashflow.Series, opts CashFlowChartOptions) *ASCIIChart {
	title := opts.Title
	if title == "" {
		title = "Monthly cash flow"
	}

	labels := make([]string, cashflow.Months)
	for i := range labels {
		labels[i] = strconv.Itoa(i + 1)
	}

	chart := NewASCIIChart(title).
		WithSize(opts.Width, opts.Height).
		WithLabels(labels).
		AddSeries("Income", cashflow.Floats(s.Income()), tuistyles.ColorIncome).
		AddSeries("Expenses", cashflow.Floats(s.DisplayExpenses()), tuistyles.ColorExpenses)

	if s.HasInvestments() && !opts.HideInvestments {
		chart.AddSeries("Investments", cashflow.Floats(s.Invested()), tuistyles.ColorInvestments)
	}
	chart.AddSeries("Accumulative", cashflow.Floats(s.Cumulative()), tuistyles.ColorAccumulated)
	chart.XAxisLabel = "Month"
	return chart
}
