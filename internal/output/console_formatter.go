package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/takehome/internal/domain"
	"github.com/shopspring/decimal"
)

// ConsoleFormatter renders a plain-text breakdown per household
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	var b bytes.Buffer

	b.WriteString(strings.Repeat("=", 60) + "\n")
	fmt.Fprintf(&b, "NET INCOME REPORT (fiscal year %d)\n", report.AsOfYear)
	b.WriteString(strings.Repeat("=", 60) + "\n")

	for i, r := range report.Results {
		s := r.Summary
		b.WriteString("\n")
		fmt.Fprintf(&b, "HOUSEHOLD %d: %s\n", i+1, r.Name)
		b.WriteString(strings.Repeat("-", 60) + "\n")
		fmt.Fprintf(&b, "  Household size:          %d\n", s.HouseholdSize)
		fmt.Fprintf(&b, "  Months paid:             %d\n", s.MonthsPaid)
		fmt.Fprintf(&b, "  Gross income:            %12s\n", FormatAmount(s.Gross))
		fmt.Fprintf(&b, "  Social security:         %12s\n", FormatAmount(s.Contribution.Neg()))
		fmt.Fprintf(&b, "  Taxable base:            %12s\n", FormatAmount(s.TaxableBase))
		fmt.Fprintf(&b, "  Income tax (%d):       %12s\n", s.TaxYear, FormatAmount(s.IncomeTax.Neg()))
		if !s.TaxFreeAllowance.IsZero() {
			fmt.Fprintf(&b, "  Tax-free allowance:      %12s\n", FormatAmount(s.TaxFreeAllowance))
		}
		fmt.Fprintf(&b, "  NET INCOME:              %12s\n", FormatAmount(s.Net))
		fmt.Fprintf(&b, "  Monthly (/12):           %12s\n", FormatAmount(s.MonthlyNet))
		fmt.Fprintf(&b, "  Effective tax rate:      %12s\n", FormatPercentage(s.EffectiveRate))
		b.WriteString("\n")
		fmt.Fprintf(&b, "  Withholding (%d):\n", s.WithholdingYear)
		fmt.Fprintf(&b, "    Net salary:            %12s\n", FormatAmount(s.NetSalary))
		for j, nb := range s.NetBonuses {
			fmt.Fprintf(&b, "    Net bonus %-2d           %12s\n", j+1, FormatAmount(nb))
		}

		if r.CashFlow != nil {
			b.WriteString("\n")
			writeCashFlowTable(&b, r.CashFlow)
		}
	}

	return b.Bytes(), nil
}

func writeCashFlowTable(b *bytes.Buffer, cf *domain.CashFlowSeries) {
	fmt.Fprintf(b, "  %-5s %12s %12s %12s %12s\n", "Month", "Income", "Expenses", "Invested", "Cumulative")
	for m := range cf.Income {
		fmt.Fprintf(b, "  %-5d %12s %12s %12s %12s\n", m+1,
			FormatAmount(cf.Income[m]),
			FormatAmount(cf.Expenses[m]),
			FormatAmount(valueAt(cf.Invested, m)),
			FormatAmount(cf.Cumulative[m]))
	}
}

func valueAt(values []decimal.Decimal, i int) decimal.Decimal {
	if i < len(values) {
		return values[i]
	}
	return decimal.Zero
}
