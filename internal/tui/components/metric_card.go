package components

import (
	"strconv"
	"strings"

	"github.com/rgehrsitz/takehome/internal/domain"
	"github.com/rgehrsitz/takehome/internal/tui/tuistyles"
	"github.com/shopspring/decimal"
)

// MetricCard displays one labelled amount
type MetricCard struct {
	Label string
	Value decimal.Decimal
	// Signed colours the value green or red by sign; otherwise it is neutral.
	Signed bool
}

// Render returns a single label/value line
func (m MetricCard) Render() string {
	style := tuistyles.MetricValueStyle
	if m.Signed {
		style = tuistyles.AmountStyle(m.Value)
	}
	return tuistyles.MetricLabelStyle.Render(m.Label) + style.Render(tuistyles.FormatAmount(m.Value))
}

// SummaryPanel renders an income summary as a bordered list of metric cards
func SummaryPanel(name string, s domain.IncomeSummary) string {
	cards := []MetricCard{
		{Label: "Gross income", Value: s.Gross},
		{Label: "Social security", Value: s.Contribution.Neg(), Signed: true},
		{Label: "Taxable base", Value: s.TaxableBase},
		{Label: "Income tax", Value: s.IncomeTax.Neg(), Signed: true},
		{Label: "Tax-free allowance", Value: s.TaxFreeAllowance},
		{Label: "Net income", Value: s.Net, Signed: true},
		{Label: "Monthly net", Value: s.MonthlyNet},
		{Label: "Net salary", Value: s.NetSalary},
	}
	for i, b := range s.NetBonuses {
		cards = append(cards, MetricCard{Label: "Net bonus " + strconv.Itoa(i+1), Value: b})
	}

	lines := make([]string, 0, len(cards)+2)
	lines = append(lines, tuistyles.TitleStyle.Render(name))
	lines = append(lines, tuistyles.SubtitleStyle.Render(
		"tax year "+strconv.Itoa(s.TaxYear)+" · withholding "+strconv.Itoa(s.WithholdingYear)+" · household of "+strconv.Itoa(s.HouseholdSize)))
	for _, c := range cards {
		lines = append(lines, c.Render())
	}
	return tuistyles.BorderStyle.Render(strings.Join(lines, "\n"))
}
