package calculation

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/takehome/internal/domain"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	require.Truef(t, got.Equal(d(want)), "want %s, got %s %v", want, got.String(), msgAndArgs)
}

// testTables has income tax brackets for 2022 and 2024 and bounded
// withholding brackets for 2025.
func testTables(t *testing.T) *domain.TaxTables {
	t.Helper()
	incomeTax, err := domain.NewBracketTable(domain.KindIncomeTax, map[int][]domain.Bracket{
		2022: {
			{Ceiling: d("5000"), Rate: d("0.10")},
			{Rate: d("0.30"), Open: true},
		},
		2024: {
			{Ceiling: d("7000"), Rate: d("0.10")},
			{Ceiling: d("20000"), Rate: d("0.25")},
			{Rate: d("0.40"), Open: true},
		},
	})
	require.NoError(t, err)

	withholding, err := domain.NewBracketTable(domain.KindWithholding, map[int][]domain.Bracket{
		2025: {
			{Ceiling: d("1000"), Rate: d("0")},
			{Ceiling: d("2500"), Rate: d("0.10")},
			{Ceiling: d("4000"), Rate: d("0.20")},
		},
	})
	require.NoError(t, err)

	tables, err := domain.NewTaxTables(domain.TableMetadata{Jurisdiction: "test"}, incomeTax, withholding, domain.DefaultContributionRules())
	require.NoError(t, err)
	return tables
}

// TestLogger records formatted messages
type TestLogger struct {
	messages []string
}

func (tl *TestLogger) Debugf(format string, args ...any) { tl.record("DEBUG", format, args) }
func (tl *TestLogger) Infof(format string, args ...any)  { tl.record("INFO", format, args) }
func (tl *TestLogger) Warnf(format string, args ...any)  { tl.record("WARN", format, args) }
func (tl *TestLogger) Errorf(format string, args ...any) { tl.record("ERROR", format, args) }

func (tl *TestLogger) record(level, format string, args []any) {
	tl.messages = append(tl.messages, level+": "+fmt.Sprintf(format, args...))
}
