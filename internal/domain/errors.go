package domain

import "errors"

// Calculation errors. Callers match them with errors.Is; producers wrap them
// with the year, kind or field that triggered the failure.
var (
	// ErrTableUnavailable means no bracket schedule exists for the requested
	// year or any earlier year down to the table's floor.
	ErrTableUnavailable = errors.New("bracket table unavailable")

	// ErrAmountExceedsTable means an amount is above the last bounded ceiling
	// of the resolved schedule.
	ErrAmountExceedsTable = errors.New("amount exceeds bracket table")

	// ErrShapeMismatch means a monthly cash-flow sequence does not hold
	// exactly twelve values.
	ErrShapeMismatch = errors.New("cash flow shape mismatch")

	ErrInvalidIncome = errors.New("invalid income")
	ErrInvalidTable  = errors.New("invalid bracket table")
)
