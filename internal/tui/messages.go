package tui

import (
	"github.com/rgehrsitz/takehome/internal/domain"
)

// Message types for the Bubble Tea update cycle

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// ReportLoadedMsg signals the configuration has been loaded and calculated
type ReportLoadedMsg struct {
	Config *domain.Configuration
	Report *domain.Report
}
