package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/takehome/internal/cashflow"
	"github.com/rgehrsitz/takehome/internal/tui/components"
	"github.com/rgehrsitz/takehome/internal/tui/tuistyles"
)

const listWidth = 24

// View renders the current state of the application
func (m Model) View() string {
	if m.err != nil {
		return m.renderError()
	}
	if m.loading {
		return tuistyles.InfoStyle.Render("Loading " + m.configPath + "...")
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderList(),
		"  ",
		m.renderDetail(),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderTitleBar(),
		body,
		m.help.View(m.keys),
	)
}

func (m Model) renderTitleBar() string {
	title := tuistyles.TitleStyle.Render("takehome - net income viewer")
	sub := tuistyles.SubtitleStyle.Render(fmt.Sprintf("%s · fiscal year %d", m.configPath, m.report.AsOfYear))
	return lipgloss.JoinVertical(lipgloss.Left, title, sub, "")
}

// renderList shows the household names with the selection marker
func (m Model) renderList() string {
	var b strings.Builder
	for i, r := range m.report.Results {
		if i == m.selected {
			b.WriteString(tuistyles.SelectedItemStyle.Render("▶ " + r.Name))
		} else {
			b.WriteString(tuistyles.UnselectedItemStyle.Render("  " + r.Name))
		}
		b.WriteString("\n")
	}
	return lipgloss.NewStyle().Width(listWidth).Render(b.String())
}

// renderDetail shows the summary and, when present, the cash-flow chart
func (m Model) renderDetail() string {
	r := m.Selected()
	if r == nil {
		return tuistyles.InfoStyle.Render("No households")
	}

	parts := []string{components.SummaryPanel(r.Name, r.Summary)}
	if r.CashFlow == nil {
		parts = append(parts, tuistyles.InfoStyle.Render("No cash flow for this household"))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	series, err := cashflow.New(r.CashFlow.Income, r.CashFlow.Expenses, r.CashFlow.Invested)
	if err != nil {
		parts = append(parts, tuistyles.ErrorStyle.Render(err.Error()))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	width := m.width - listWidth - 4
	chart := components.CashFlowChart(series, components.CashFlowChartOptions{
		Width:           width,
		Height:          12,
		HideInvestments: m.hideInvestments,
	})
	parts = append(parts, "", chart.Render())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderError() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		tuistyles.ErrorStyle.Render("Error"),
		m.err.Error(),
		"",
		tuistyles.InfoStyle.Render("Press q to quit"),
	)
}
