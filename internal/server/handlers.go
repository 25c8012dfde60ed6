package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/takehome/internal/cashflow"
	"github.com/rgehrsitz/takehome/internal/domain"
)

type taxRequest struct {
	TaxableIncome decimal.Decimal `json:"taxable_income"`
	HouseholdSize int             `json:"household_size"`
	// Year overrides the server's fiscal year when non-zero.
	Year int `json:"year"`
}

type taxResponse struct {
	Tax  decimal.Decimal `json:"tax"`
	Year int             `json:"year"`
}

type cashFlowResponse struct {
	Expenses       []decimal.Decimal `json:"expenses"`
	Net            []decimal.Decimal `json:"net"`
	Cumulative     []decimal.Decimal `json:"cumulative"`
	HasInvestments bool              `json:"has_investments"`
}

type tableYears struct {
	Years   []int `json:"years"`
	MinYear int   `json:"min_year"`
	MaxYear int   `json:"max_year"`
}

type tablesResponse struct {
	Metadata       domain.TableMetadata     `json:"metadata"`
	SocialSecurity domain.ContributionRules `json:"social_security"`
	IncomeTax      tableYears               `json:"income_tax"`
	Withholding    tableYears               `json:"withholding"`
}

// ComputeTax handles POST /v1/tax
func (s *Server) ComputeTax(c *gin.Context) {
	var req taxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError(err))
		return
	}
	if req.HouseholdSize == 0 {
		req.HouseholdSize = 1
	}

	calc := s.engine.Calculator(s.asOf)
	year := req.Year
	if year == 0 {
		year = calc.AsOf
	}

	tax, resolved, err := calc.ComputeTaxForYear(year, req.TaxableIncome, req.HouseholdSize)
	s.metrics.RecordCalculation("tax", err)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, taxResponse{Tax: tax, Year: resolved})
}

// EvaluateIncome handles POST /v1/income
func (s *Server) EvaluateIncome(c *gin.Context) {
	var input domain.IncomeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		AbortWithError(c, invalidRequestError(err))
		return
	}

	summary, err := s.engine.Evaluate(s.asOf, input.WithDefaults())
	s.metrics.RecordCalculation("income", err)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// CashFlow handles POST /v1/cashflow
func (s *Server) CashFlow(c *gin.Context) {
	var input domain.CashFlowInput
	if err := c.ShouldBindJSON(&input); err != nil {
		AbortWithError(c, invalidRequestError(err))
		return
	}

	series, err := cashflow.FromInput(input)
	s.metrics.RecordCalculation("cashflow", err)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, cashFlowResponse{
		Expenses:       series.DisplayExpenses(),
		Net:            series.Net(),
		Cumulative:     series.Cumulative(),
		HasInvestments: series.HasInvestments(),
	})
}

// ListTables handles GET /v1/tables
func (s *Server) ListTables(c *gin.Context) {
	tables := s.engine.Tables
	c.JSON(http.StatusOK, tablesResponse{
		Metadata:       tables.Metadata(),
		SocialSecurity: tables.Contributions(),
		IncomeTax:      yearsOf(tables.IncomeTax()),
		Withholding:    yearsOf(tables.Withholding()),
	})
}

func yearsOf(t *domain.BracketTable) tableYears {
	return tableYears{Years: t.Years(), MinYear: t.MinYear(), MaxYear: t.MaxYear()}
}
