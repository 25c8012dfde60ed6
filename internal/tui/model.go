package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/takehome/internal/calculation"
	"github.com/rgehrsitz/takehome/internal/config"
	"github.com/rgehrsitz/takehome/internal/domain"
)

// Model is the viewer state
type Model struct {
	// Terminal dimensions
	width  int
	height int

	configPath string
	tablesPath string
	asOfYear   int

	config *domain.Configuration
	report *domain.Report

	selected        int
	hideInvestments bool

	keys KeyMap
	help help.Model

	err     error
	loading bool
}

// Option customises a Model
type Option func(*Model)

// WithTablesPath loads tax tables from path instead of the embedded defaults
func WithTablesPath(path string) Option {
	return func(m *Model) { m.tablesPath = path }
}

// WithAsOfYear pins the fiscal year used for every household
func WithAsOfYear(year int) Option {
	return func(m *Model) { m.asOfYear = year }
}

// NewModel creates a viewer for the household file at configPath
func NewModel(configPath string, opts ...Option) Model {
	m := Model{
		configPath: configPath,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		width:      80,
		height:     24,
		loading:    true,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return loadReportCmd(m.configPath, m.tablesPath, m.asOfYear)
}

// loadReportCmd loads the household file and tables and runs the calculation
func loadReportCmd(path, tablesPath string, asOf int) tea.Cmd {
	return func() tea.Msg {
		cfg, err := config.NewInputParser().LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		tables, err := config.LoadTables(tablesPath)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		if asOf != 0 {
			cfg.AsOfYear = asOf
		}
		report, err := calculation.NewCalculationEngine(tables).RunScenarios(cfg)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ReportLoadedMsg{Config: cfg, Report: report}
	}
}

// Selected returns the highlighted household result, or nil before loading
func (m Model) Selected() *domain.HouseholdResult {
	if m.report == nil || m.selected < 0 || m.selected >= len(m.report.Results) {
		return nil
	}
	return &m.report.Results[m.selected]
}
