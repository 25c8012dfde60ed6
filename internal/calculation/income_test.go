package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/takehome/internal/domain"
)

func newTestIncome(t *testing.T, input domain.IncomeInput) *Income {
	t.Helper()
	income, err := NewIncome(NewTaxCalculator(testTables(t), WithAsOfYear(2024)), input.WithDefaults())
	require.NoError(t, err)
	return income
}

func TestIncome_Gross(t *testing.T) {
	income := newTestIncome(t, domain.IncomeInput{
		Salary:  d("2000"),
		Bonuses: []decimal.Decimal{d("1000"), d("1000")},
	})

	assertDecimal(t, "26000.00", income.Gross())
	assert.Equal(t, "26000.00", income.Gross().StringFixed(2))
	assertDecimal(t, "2860", income.Contribution())
	assert.Equal(t, 2024, income.TaxYear())
	assert.Equal(t, 2025, income.WithholdingYear())
}

func TestIncome_Net(t *testing.T) {
	tests := []struct {
		name            string
		input           domain.IncomeInput
		wantFlat        bool
		wantBase        string
		wantTax         string
		wantNet         string
		wantContributed string
	}{
		{
			name: "flat cap larger than contribution",
			input: domain.IncomeInput{
				Salary:  d("2000"),
				Bonuses: []decimal.Decimal{d("1000"), d("1000")},
			},
			wantFlat:        true,
			wantBase:        "21896",
			wantTax:         "4708.40",
			wantNet:         "18431.60",
			wantContributed: "2860",
		},
		{
			name:            "contribution larger than flat cap",
			input:           domain.IncomeInput{Salary: d("5000"), MonthsPaid: 14},
			wantFlat:        false,
			wantBase:        "62300",
			wantTax:         "20870",
			wantNet:         "41430",
			wantContributed: "7700",
		},
		{
			name:            "tax-free allowance added back",
			input:           domain.IncomeInput{Salary: d("5000"), MonthsPaid: 14, TaxFreeAllowance: d("500")},
			wantFlat:        false,
			wantBase:        "62300",
			wantTax:         "20870",
			wantNet:         "41930",
			wantContributed: "7700",
		},
		{
			name:            "flat cap scales with household",
			input:           domain.IncomeInput{Salary: d("5000"), MonthsPaid: 14, HouseholdSize: 2},
			wantFlat:        true,
			wantBase:        "61792",
			wantTax:         "16616.80",
			wantNet:         "45683.20",
			wantContributed: "7700",
		},
		{
			name:            "tiny income has no tax",
			input:           domain.IncomeInput{Salary: d("100")},
			wantFlat:        true,
			wantBase:        "-2904",
			wantTax:         "0",
			wantNet:         "1068",
			wantContributed: "132",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			income := newTestIncome(t, tt.input)

			s, err := income.Settle()
			require.NoError(t, err)
			assert.Equal(t, tt.wantFlat, s.FlatDeductionApplied)
			assertDecimal(t, tt.wantBase, s.TaxableBase)
			assertDecimal(t, tt.wantTax, s.IncomeTax)
			assertDecimal(t, tt.wantContributed, s.Contribution)
			assert.Equal(t, 2024, s.TaxYear)

			net, err := income.Net()
			require.NoError(t, err)
			assertDecimal(t, tt.wantNet, net)
		})
	}
}

func TestIncome_NetSalaryAndBonus(t *testing.T) {
	income := newTestIncome(t, domain.IncomeInput{
		Salary:  d("2000"),
		Bonuses: []decimal.Decimal{d("1000"), d("500"), d("999.99")},
	})

	netSalary, err := income.NetSalary()
	require.NoError(t, err)
	assertDecimal(t, "1580", netSalary)

	bonuses, err := income.NetBonus()
	require.NoError(t, err)
	require.Len(t, bonuses, 3)
	// 1000 equals the first ceiling, so it moves to the 10% bracket
	assertDecimal(t, "790", bonuses[0])
	assertDecimal(t, "445", bonuses[1])
	assertDecimal(t, "889.99", bonuses[2])

	t.Run("no bonuses", func(t *testing.T) {
		income := newTestIncome(t, domain.IncomeInput{Salary: d("2000")})
		bonuses, err := income.NetBonus()
		require.NoError(t, err)
		assert.NotNil(t, bonuses)
		assert.Empty(t, bonuses)
	})

	t.Run("salary above last ceiling", func(t *testing.T) {
		income := newTestIncome(t, domain.IncomeInput{Salary: d("5000")})
		_, err := income.NetSalary()
		assert.ErrorIs(t, err, domain.ErrAmountExceedsTable)
	})

	t.Run("bonus above last ceiling", func(t *testing.T) {
		income := newTestIncome(t, domain.IncomeInput{Salary: d("2000"), Bonuses: []decimal.Decimal{d("4000")}})
		_, err := income.NetBonus()
		assert.ErrorIs(t, err, domain.ErrAmountExceedsTable)
	})
}

func TestIncome_Idempotent(t *testing.T) {
	income := newTestIncome(t, domain.IncomeInput{
		Salary:  d("2000"),
		Bonuses: []decimal.Decimal{d("1000")},
	})

	first, err := income.Summary()
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := income.Summary()
		require.NoError(t, err)
		assert.True(t, first.Net.Equal(again.Net))
		assert.True(t, first.NetSalary.Equal(again.NetSalary))
		assert.True(t, first.Gross.Equal(income.Gross()))
		require.Len(t, again.NetBonuses, 1)
		assert.True(t, first.NetBonuses[0].Equal(again.NetBonuses[0]))
	}
}

func TestIncome_Summary(t *testing.T) {
	income := newTestIncome(t, domain.IncomeInput{
		Salary:           d("5000"),
		MonthsPaid:       14,
		TaxFreeAllowance: d("500"),
	})
	_, err := income.Summary()
	assert.ErrorIs(t, err, domain.ErrAmountExceedsTable, "withholding has no bracket for 5000")

	income = newTestIncome(t, domain.IncomeInput{
		Salary:  d("2000"),
		Bonuses: []decimal.Decimal{d("1000"), d("1000")},
	})
	s, err := income.Summary()
	require.NoError(t, err)
	assertDecimal(t, "26000", s.Gross)
	assertDecimal(t, "18431.60", s.Net)
	assertDecimal(t, "1535.97", s.MonthlyNet)
	assertDecimal(t, "0.1811", s.EffectiveRate)
	assertDecimal(t, "1580", s.NetSalary)
	assert.Equal(t, 12, s.MonthsPaid)
	assert.Equal(t, 1, s.HouseholdSize)
	assert.Equal(t, 2024, s.TaxYear)
	assert.Equal(t, 2025, s.WithholdingYear)
}

func TestIncome_WithholdingYearFallback(t *testing.T) {
	// as-of 2026 asks for 2027 withholding, which falls back to 2025
	calc := NewTaxCalculator(testTables(t), WithAsOfYear(2026))
	income, err := NewIncome(calc, domain.IncomeInput{Salary: d("2000"), MonthsPaid: 12, HouseholdSize: 1})
	require.NoError(t, err)

	s, err := income.Summary()
	require.NoError(t, err)
	assert.Equal(t, 2024, s.TaxYear)
	assert.Equal(t, 2025, s.WithholdingYear)
	assert.Equal(t, 2027, income.WithholdingYear())

	t.Run("withholding before oldest year", func(t *testing.T) {
		calc := NewTaxCalculator(testTables(t), WithAsOfYear(2023))
		income, err := NewIncome(calc, domain.IncomeInput{Salary: d("2000"), MonthsPaid: 12, HouseholdSize: 1})
		require.NoError(t, err)
		_, err = income.NetSalary()
		assert.ErrorIs(t, err, domain.ErrTableUnavailable)
	})
}

func TestValidateIncomeInput(t *testing.T) {
	valid := domain.IncomeInput{Salary: d("1000"), MonthsPaid: 12, HouseholdSize: 1}
	require.NoError(t, ValidateIncomeInput(valid))

	tests := []struct {
		name   string
		mutate func(*domain.IncomeInput)
	}{
		{name: "zero household", mutate: func(in *domain.IncomeInput) { in.HouseholdSize = 0 }},
		{name: "zero months", mutate: func(in *domain.IncomeInput) { in.MonthsPaid = 0 }},
		{name: "negative salary", mutate: func(in *domain.IncomeInput) { in.Salary = d("-1") }},
		{name: "negative allowance", mutate: func(in *domain.IncomeInput) { in.TaxFreeAllowance = d("-1") }},
		{name: "negative bonus", mutate: func(in *domain.IncomeInput) { in.Bonuses = []decimal.Decimal{d("10"), d("-1")} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			assert.ErrorIs(t, ValidateIncomeInput(in), domain.ErrInvalidIncome)

			_, err := NewIncome(NewTaxCalculator(testTables(t), WithAsOfYear(2024)), in)
			assert.ErrorIs(t, err, domain.ErrInvalidIncome)
		})
	}
}
