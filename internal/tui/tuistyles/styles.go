// Package tuistyles holds the shared lipgloss palette so components and the
// viewer can import it without cycles.
package tuistyles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

var (
	ColorPrimary    = lipgloss.Color("#7D56F4")
	ColorSuccess    = lipgloss.Color("#04B575")
	ColorDanger     = lipgloss.Color("#FF4672")
	ColorWarning    = lipgloss.Color("#F5C542")
	ColorInfo       = lipgloss.Color("#3C9EE7")
	ColorForeground = lipgloss.Color("#FAFAFA")
	ColorMuted      = lipgloss.Color("#8A8A8A")
	ColorBorder     = lipgloss.Color("#444444")

	// Chart lines: income, expenses, investments, accumulated
	ColorIncome      = ColorSuccess
	ColorExpenses    = ColorDanger
	ColorInvestments = ColorWarning
	ColorAccumulated = ColorInfo
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	SelectedItemStyle   = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	UnselectedItemStyle = lipgloss.NewStyle().Foreground(ColorForeground)

	MetricLabelStyle    = lipgloss.NewStyle().Foreground(ColorMuted).Width(22)
	MetricValueStyle    = lipgloss.NewStyle().Foreground(ColorForeground).Bold(true)
	MetricPositiveStyle = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	MetricNegativeStyle = lipgloss.NewStyle().Foreground(ColorDanger).Bold(true)

	ErrorStyle = lipgloss.NewStyle().Foreground(ColorDanger).Bold(true)
	InfoStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
)

// FormatAmount renders a monetary amount with two decimals
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// AmountStyle picks the positive or negative metric style
func AmountStyle(d decimal.Decimal) lipgloss.Style {
	if d.IsNegative() {
		return MetricNegativeStyle
	}
	return MetricPositiveStyle
}
