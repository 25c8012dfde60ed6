package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/takehome/internal/domain"
)

const validHouseholds = `
as_of_year: 2025
households:
  - name: Alice
    income:
      salary: 1850.50
      months_paid: 14
      bonuses: [1000, "250.25"]
      tax_free_allowance: 300
    cash_flow:
      income:   [1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12]
      expenses: [1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1]
  - name: Bob
    income:
      salary: 900
      household_size: 2
`

func TestInputParser_Parse(t *testing.T) {
	cfg, err := NewInputParser().Parse([]byte(validHouseholds))
	require.NoError(t, err)

	assert.Equal(t, 2025, cfg.AsOfYear)
	require.Len(t, cfg.Households, 2)

	alice := cfg.Households[0]
	assert.Equal(t, "Alice", alice.Name)
	assert.Equal(t, "1850.5", alice.Income.Salary.String())
	assert.Equal(t, 14, alice.Income.MonthsPaid)
	require.Len(t, alice.Income.Bonuses, 2)
	assert.Equal(t, "250.25", alice.Income.Bonuses[1].String())
	require.NotNil(t, alice.CashFlow)
	assert.Len(t, alice.CashFlow.Income, 12)
	assert.Nil(t, alice.CashFlow.Invested)

	bob := cfg.Households[1]
	assert.Equal(t, 12, bob.Income.MonthsPaid, "months default to 12")
	assert.Equal(t, 2, bob.Income.HouseholdSize)
	assert.Nil(t, bob.CashFlow)
	assert.Equal(t, 1, alice.Income.HouseholdSize, "household defaults to 1")
}

func TestInputParser_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
		wantMsg string
	}{
		{
			name:    "no households",
			yaml:    "households: []\n",
			wantMsg: "no households provided",
		},
		{
			name:    "negative as_of_year",
			yaml:    "as_of_year: -1\nhouseholds:\n  - name: a\n    income: {salary: 1}\n",
			wantMsg: "as_of_year cannot be negative",
		},
		{
			name:    "missing name",
			yaml:    "households:\n  - income: {salary: 1}\n",
			wantMsg: "name is required",
		},
		{
			name:    "duplicate name",
			yaml:    "households:\n  - name: a\n    income: {salary: 1}\n  - name: a\n    income: {salary: 2}\n",
			wantMsg: "duplicate name",
		},
		{
			name:    "negative salary",
			yaml:    "households:\n  - name: a\n    income: {salary: -1}\n",
			wantErr: domain.ErrInvalidIncome,
		},
		{
			name:    "negative household",
			yaml:    "households:\n  - name: a\n    income: {salary: 1, household_size: -2}\n",
			wantErr: domain.ErrInvalidIncome,
		},
		{
			name:    "short cash flow",
			yaml:    "households:\n  - name: a\n    income: {salary: 1}\n    cash_flow: {income: [1, 2], expenses: [1, 2]}\n",
			wantErr: domain.ErrShapeMismatch,
		},
		{
			name:    "malformed yaml",
			yaml:    "households: [",
			wantMsg: "failed to parse YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInputParser().Parse([]byte(tt.yaml))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestInputParser_LoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "households.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validHouseholds), 0o600))

	cfg, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Households, 2)

	_, err = NewInputParser().LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "failed to read file"))
}
