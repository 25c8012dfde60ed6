package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/takehome/internal/tui/tuistyles"
)

// DataSeries represents a single line in a chart
type DataSeries struct {
	Name   string
	Points []float64
	Color  lipgloss.Color
}

// ASCIIChart displays a simple line chart
type ASCIIChart struct {
	Title      string
	Series     []*DataSeries
	Labels     []string // X-axis labels
	Width      int
	Height     int
	ShowLegend bool
	XAxisLabel string
}

const yAxisWidth = 12

// NewASCIIChart creates a new ASCII chart
func NewASCIIChart(title string) *ASCIIChart {
	return &ASCIIChart{
		Title:      title,
		Width:      72,
		Height:     16,
		ShowLegend: true,
	}
}

// AddSeries adds a data series to the chart
func (c *ASCIIChart) AddSeries(name string, points []float64, color lipgloss.Color) *ASCIIChart {
	c.Series = append(c.Series, &DataSeries{
		Name:   name,
		Points: points,
		Color:  color,
	})
	return c
}

// WithLabels sets the X-axis labels
func (c *ASCIIChart) WithLabels(labels []string) *ASCIIChart {
	c.Labels = labels
	return c
}

// WithSize sets the chart dimensions
func (c *ASCIIChart) WithSize(width, height int) *ASCIIChart {
	if width > yAxisWidth+4 {
		c.Width = width
	}
	if height > 2 {
		c.Height = height
	}
	return c
}

// Render returns the styled chart
func (c *ASCIIChart) Render() string {
	if len(c.Series) == 0 {
		return tuistyles.InfoStyle.Render("No data to display")
	}

	var content strings.Builder

	if c.Title != "" {
		content.WriteString(tuistyles.TitleStyle.Render(c.Title))
		content.WriteString("\n\n")
	}

	minVal, maxVal := c.valueRange()
	content.WriteString(c.renderGrid(minVal, maxVal))

	if c.XAxisLabel != "" {
		content.WriteString("\n")
		content.WriteString(tuistyles.SubtitleStyle.Render(c.XAxisLabel))
	}

	if c.ShowLegend && len(c.Series) > 1 {
		content.WriteString("\n\n")
		content.WriteString(c.renderLegend())
	}

	return content.String()
}

// valueRange finds min and max across all series with 10% padding. A flat
// range is widened so every value maps to a row.
func (c *ASCIIChart) valueRange() (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, series := range c.Series {
		for _, p := range series.Points {
			lo = math.Min(lo, p)
			hi = math.Max(hi, p)
		}
	}
	if math.IsInf(lo, 1) {
		return -1, 1
	}
	if hi == lo {
		return lo - 1, hi + 1
	}
	padding := (hi - lo) * 0.1
	return lo - padding, hi + padding
}

// renderGrid plots every series; each cell remembers the series that drew it
// so the cell can be coloured.
func (c *ASCIIChart) renderGrid(minVal, maxVal float64) string {
	chartWidth := c.Width - yAxisWidth

	grid := make([][]int, c.Height)
	for i := range grid {
		grid[i] = make([]int, chartWidth)
		for j := range grid[i] {
			grid[i][j] = -1
		}
	}

	for idx, series := range c.Series {
		var prevX, prevY int
		for i, point := range series.Points {
			x := c.column(i, len(series.Points), chartWidth)
			y := c.row(point, minVal, maxVal)
			if i > 0 {
				drawLine(grid, prevX, prevY, x, y, idx)
			} else {
				plot(grid, x, y, idx)
			}
			prevX, prevY = x, y
		}
	}

	var out strings.Builder
	axis := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Width(yAxisWidth).Align(lipgloss.Right)
	for i, row := range grid {
		yValue := maxVal - (float64(i)/float64(c.Height-1))*(maxVal-minVal)
		out.WriteString(axis.Render(formatChartValue(yValue)))
		out.WriteString(" │ ")
		for _, cell := range row {
			if cell < 0 {
				out.WriteByte(' ')
				continue
			}
			out.WriteString(lipgloss.NewStyle().Foreground(c.Series[cell].Color).Render(string(seriesChar(cell))))
		}
		out.WriteString("\n")
	}

	out.WriteString(strings.Repeat(" ", yAxisWidth))
	out.WriteString(" └")
	out.WriteString(strings.Repeat("─", chartWidth))
	out.WriteString("\n")

	if len(c.Labels) > 0 {
		out.WriteString(c.renderXAxisLabels(chartWidth))
	}
	return out.String()
}

func (c *ASCIIChart) column(i, n, width int) int {
	if n <= 1 {
		return 0
	}
	return int(float64(i) / float64(n-1) * float64(width-1))
}

func (c *ASCIIChart) row(v, minVal, maxVal float64) int {
	return c.Height - 1 - int(math.Round((v-minVal)/(maxVal-minVal)*float64(c.Height-1)))
}

func plot(grid [][]int, x, y, idx int) {
	if y >= 0 && y < len(grid) && x >= 0 && x < len(grid[y]) {
		grid[y][x] = idx
	}
}

// drawLine draws a line between two points using Bresenham's algorithm.
// Later series overwrite earlier ones where they cross.
func drawLine(grid [][]int, x0, y0, x1, y1, idx int) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	x, y := x0, y0
	for {
		plot(grid, x, y, idx)
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// renderXAxisLabels places each label under its column
func (c *ASCIIChart) renderXAxisLabels(chartWidth int) string {
	line := []rune(strings.Repeat(" ", chartWidth+2))
	for i, label := range c.Labels {
		x := c.column(i, len(c.Labels), chartWidth) + 2
		for j, r := range label {
			if x+j < len(line) {
				line[x+j] = r
			}
		}
	}
	style := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	return strings.Repeat(" ", yAxisWidth) + style.Render(strings.TrimRight(string(line), " ")) + "\n"
}

// renderLegend renders the chart legend
func (c *ASCIIChart) renderLegend() string {
	items := make([]string, 0, len(c.Series))
	for i, series := range c.Series {
		symbol := lipgloss.NewStyle().Foreground(series.Color).Render(string(seriesChar(i)))
		items = append(items, fmt.Sprintf("%s %s", symbol, series.Name))
	}
	return tuistyles.InfoStyle.Render("Legend: " + strings.Join(items, " • "))
}

func seriesChar(index int) rune {
	chars := []rune{'●', '■', '▲', '♦'}
	return chars[index%len(chars)]
}

// formatChartValue formats a value for display on Y-axis
func formatChartValue(value float64) string {
	switch {
	case math.Abs(value) >= 1000000:
		return fmt.Sprintf("%.1fM", value/1000000)
	case math.Abs(value) >= 1000:
		return fmt.Sprintf("%.1fK", value/1000)
	default:
		return fmt.Sprintf("%.0f", value)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
