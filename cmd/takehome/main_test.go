package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/takehome/internal/domain"
)

const (
	tablesFile     = "testdata/tables.yaml"
	householdsFile = "testdata/households.yaml"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--tables", tablesFile, "--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "takehome", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	expected := []string{"calculate", "tax", "net", "chart", "batch", "tables", "validate", "serve", "version"}
	for _, name := range expected {
		found, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, found.Name())
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "takehome dev")
}

func TestTaxCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "ceiling boundary",
			args: []string{"--as-of-year", "2024", "tax", "7000"},
			want: []string{"Income tax (2024, household of 1): 700.00"},
		},
		{
			name: "household split",
			args: []string{"--as-of-year", "2024", "tax", "21896", "--household", "2"},
			want: []string{"3374.00"},
		},
		{
			name: "year fallback",
			args: []string{"tax", "100", "--year", "2030"},
			want: []string{"No brackets for 2030, using 2024", "10.00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestTaxCommand_Errors(t *testing.T) {
	_, err := run(t, "tax", "abc")
	assert.Error(t, err)

	_, err = run(t, "tax", "100", "--year", "2020")
	assert.ErrorIs(t, err, domain.ErrTableUnavailable)
}

func TestNetCommand(t *testing.T) {
	out, err := run(t, "--as-of-year", "2024", "-f", "csv", "net",
		"--salary", "2000", "--bonus", "1000", "--bonus", "1000", "--name", "alice")
	require.NoError(t, err)
	assert.Contains(t, out, "alice,1,26000.00,2860.00,21896.00,4708.40,0.00,18431.60")
	assert.Contains(t, out, "1580.00")
	assert.Contains(t, out, "790.00;790.00")

	_, err = run(t, "net", "--salary", "-5")
	assert.ErrorIs(t, err, domain.ErrInvalidIncome)

	_, err = run(t, "--as-of-year", "2024", "net", "--salary", "5000")
	assert.ErrorIs(t, err, domain.ErrAmountExceedsTable)
}

func TestCalculateCommand(t *testing.T) {
	out, err := run(t, "-f", "json", "calculate", householdsFile)
	require.NoError(t, err)

	var report domain.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 2024, report.AsOfYear)
	require.Len(t, report.Results, 2)

	single := report.Results[0]
	assert.Equal(t, "single", single.Name)
	assert.True(t, single.Summary.Net.Equal(decimal.RequireFromString("18431.60")))
	require.NotNil(t, single.CashFlow)
	assert.True(t, single.CashFlow.Cumulative[11].Equal(decimal.NewFromInt(3600)))

	couple := report.Results[1]
	assert.Nil(t, couple.CashFlow)
	assert.Equal(t, 2, couple.Summary.HouseholdSize)

	t.Run("console", func(t *testing.T) {
		out, err := run(t, "calculate", householdsFile)
		require.NoError(t, err)
		assert.Contains(t, out, "NET INCOME REPORT (fiscal year 2024)")
		assert.Contains(t, out, "HOUSEHOLD 2: couple")
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := run(t, "-f", "xml", "calculate", householdsFile)
		assert.Error(t, err)
	})
}

func TestChartCommand(t *testing.T) {
	out, err := run(t, "chart", householdsFile, "--width", "60", "--height", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "Monthly cash flow: single")
	assert.Contains(t, out, "Investments")
	assert.Contains(t, out, "Accumulative")

	out, err = run(t, "chart", householdsFile, "--hide-investments")
	require.NoError(t, err)
	assert.NotContains(t, out, "Investments")

	_, err = run(t, "chart", householdsFile, "--household", "couple")
	assert.Error(t, err)

	_, err = run(t, "chart", householdsFile, "--household", "nobody")
	assert.Error(t, err)
}

func TestValidateCommand(t *testing.T) {
	out, err := run(t, "validate", householdsFile)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid: 2 household(s), 1 with cash flow")

	_, err = run(t, "validate", "testdata/invalid.yaml")
	assert.ErrorIs(t, err, domain.ErrInvalidIncome)

	_, err = run(t, "validate", "testdata/missing.yaml")
	assert.Error(t, err)
}

func TestTablesCommand(t *testing.T) {
	out, err := run(t, "tables")
	require.NoError(t, err)
	assert.Contains(t, out, "Tables: test")
	assert.Contains(t, out, "rate 11.00%, flat cap 4104.00")
	assert.Contains(t, out, "income_tax")
	assert.Contains(t, out, "2024")

	out, err = run(t, "tables", "--year", "2025")
	require.NoError(t, err)
	assert.Contains(t, out, "income_tax 2024")
	assert.Contains(t, out, "withholding 2025")
	assert.Contains(t, out, "and above")
	assert.Contains(t, out, "< 7000.00")
}

func TestBatchCommand(t *testing.T) {
	out, err := run(t, "-f", "csv", "batch", "--no-progress", "--workers", "2", householdsFile, householdsFile)
	require.NoError(t, err)
	assert.Equal(t, 2, bytes.Count([]byte(out), []byte("Household,HouseholdSize")))

	_, err = run(t, "batch", "--no-progress", householdsFile, "testdata/invalid.yaml")
	assert.ErrorIs(t, err, domain.ErrInvalidIncome)
}
