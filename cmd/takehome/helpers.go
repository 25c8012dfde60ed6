package main

import (
	"fmt"

	"github.com/rgehrsitz/takehome/internal/calculation"
	"github.com/rgehrsitz/takehome/internal/config"
	"github.com/rgehrsitz/takehome/internal/domain"
)

// loadTables reads the configured tables file or the embedded defaults
func (a *app) loadTables() (*domain.TaxTables, error) {
	tables, err := config.LoadTables(a.settings.Tables.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load tax tables: %w", err)
	}
	return tables, nil
}

// newEngine builds a calculation engine logging through the CLI logger
func (a *app) newEngine() (*calculation.CalculationEngine, error) {
	tables, err := a.loadTables()
	if err != nil {
		return nil, err
	}
	engine := calculation.NewCalculationEngine(tables)
	engine.SetLogger(calculation.NewSlogLogger(a.logger))
	return engine, nil
}

// loadConfiguration parses a household file and applies --as-of-year
func (a *app) loadConfiguration(path string) (*domain.Configuration, error) {
	cfg, err := config.NewInputParser().LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	if a.settings.Calc.AsOfYear != 0 {
		cfg.AsOfYear = a.settings.Calc.AsOfYear
	}
	return cfg, nil
}
