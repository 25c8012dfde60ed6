package output

import (
	"bytes"
	"encoding/csv"
	"sort"
	"strconv"
	"strings"

	"github.com/rgehrsitz/takehome/internal/domain"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// CSVSummarizer implements the simple summary CSV output (one row per household).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Household", "HouseholdSize", "Gross", "Contribution", "TaxableBase", "IncomeTax", "TaxFreeAllowance", "Net", "MonthlyNet", "EffectiveRate", "NetSalary", "NetBonuses", "TaxYear", "WithholdingYear"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	results := append([]domain.HouseholdResult(nil), report.Results...)
	sort.SliceStable(results, func(i, j int) bool { return results[i].Name < results[j].Name })
	for _, r := range results {
		s := r.Summary
		bonuses := lo.Map(s.NetBonuses, func(b decimal.Decimal, _ int) string { return b.StringFixed(2) })
		row := []string{
			r.Name,
			strconv.Itoa(s.HouseholdSize),
			s.Gross.StringFixed(2),
			s.Contribution.StringFixed(2),
			s.TaxableBase.StringFixed(2),
			s.IncomeTax.StringFixed(2),
			s.TaxFreeAllowance.StringFixed(2),
			s.Net.StringFixed(2),
			s.MonthlyNet.StringFixed(2),
			s.EffectiveRate.StringFixed(4),
			s.NetSalary.StringFixed(2),
			strings.Join(bonuses, ";"),
			strconv.Itoa(s.TaxYear),
			strconv.Itoa(s.WithholdingYear),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
