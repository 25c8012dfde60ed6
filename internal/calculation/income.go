package calculation

import (
	"fmt"

	"github.com/rgehrsitz/takehome/internal/domain"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Income is an immutable view of one household's yearly earnings. All derived
// amounts are computed in NewIncome; the methods only read them.
type Income struct {
	calc *TaxCalculator

	salary        decimal.Decimal
	monthsPaid    int
	bonuses       []decimal.Decimal
	taxFree       decimal.Decimal
	householdSize int

	gross        decimal.Decimal
	contribution decimal.Decimal

	taxYear         int
	withholdingYear int
}

// NewIncome validates input and derives gross income and contribution
func NewIncome(calc *TaxCalculator, input domain.IncomeInput) (*Income, error) {
	if err := ValidateIncomeInput(input); err != nil {
		return nil, err
	}

	bonuses := append([]decimal.Decimal(nil), input.Bonuses...)
	bonusTotal := lo.Reduce(bonuses, func(acc decimal.Decimal, b decimal.Decimal, _ int) decimal.Decimal {
		return acc.Add(b)
	}, decimal.Zero)

	gross := input.Salary.Mul(decimal.NewFromInt(int64(input.MonthsPaid))).Add(bonusTotal)
	rules := calc.Tables.Contributions()

	return &Income{
		calc:            calc,
		salary:          input.Salary,
		monthsPaid:      input.MonthsPaid,
		bonuses:         bonuses,
		taxFree:         input.TaxFreeAllowance,
		householdSize:   input.HouseholdSize,
		gross:           gross,
		contribution:    gross.Mul(rules.Rate),
		taxYear:         calc.AsOf,
		withholdingYear: calc.AsOf + 1,
	}, nil
}

// ValidateIncomeInput enforces household >= 1, months >= 1 and non-negative amounts
func ValidateIncomeInput(input domain.IncomeInput) error {
	if input.HouseholdSize < 1 {
		return fmt.Errorf("%w: household size must be at least 1, got %d", domain.ErrInvalidIncome, input.HouseholdSize)
	}
	if input.MonthsPaid < 1 {
		return fmt.Errorf("%w: months paid must be at least 1, got %d", domain.ErrInvalidIncome, input.MonthsPaid)
	}
	if input.Salary.IsNegative() {
		return fmt.Errorf("%w: salary cannot be negative", domain.ErrInvalidIncome)
	}
	if input.TaxFreeAllowance.IsNegative() {
		return fmt.Errorf("%w: tax-free allowance cannot be negative", domain.ErrInvalidIncome)
	}
	for i, b := range input.Bonuses {
		if b.IsNegative() {
			return fmt.Errorf("%w: bonus %d cannot be negative", domain.ErrInvalidIncome, i)
		}
	}
	return nil
}

// Gross returns salary x months + bonuses
func (in *Income) Gross() decimal.Decimal {
	return in.gross.RoundBank(2)
}

// Contribution returns the social security contribution on gross income
func (in *Income) Contribution() decimal.Decimal {
	return in.contribution.RoundBank(2)
}

// TaxYear is the fiscal year used for the annual settlement
func (in *Income) TaxYear() int { return in.taxYear }

// WithholdingYear is the fiscal year used for paycheck withholding
func (in *Income) WithholdingYear() int { return in.withholdingYear }

// Settle computes the annual settlement. The taxable base is gross minus the
// larger of the contribution and the household's flat cap.
func (in *Income) Settle() (domain.Settlement, error) {
	rules := in.calc.Tables.Contributions()
	flat := rules.FlatCap.Mul(decimal.NewFromInt(int64(in.householdSize)))

	deduction := in.contribution
	flatApplied := false
	if flat.GreaterThan(in.contribution) {
		deduction = flat
		flatApplied = true
	}
	collectable := in.gross.Sub(deduction)

	tax, year, err := in.calc.ComputeTaxForYear(in.taxYear, collectable, in.householdSize)
	if err != nil {
		return domain.Settlement{}, fmt.Errorf("settlement: %w", err)
	}

	return domain.Settlement{
		TaxYear:              year,
		Contribution:         in.contribution.RoundBank(2),
		Deduction:            deduction.RoundBank(2),
		FlatDeductionApplied: flatApplied,
		TaxableBase:          collectable.RoundBank(2),
		IncomeTax:            tax,
	}, nil
}

// Net returns gross - contribution - tax + tax-free allowance
func (in *Income) Net() (decimal.Decimal, error) {
	s, err := in.Settle()
	if err != nil {
		return decimal.Zero, err
	}
	return in.net(s), nil
}

func (in *Income) net(s domain.Settlement) decimal.Decimal {
	return in.gross.Sub(in.contribution).Sub(s.IncomeTax).Add(in.taxFree).RoundBank(2)
}

// NetSalary estimates the take-home amount of one monthly paycheck
func (in *Income) NetSalary() (decimal.Decimal, error) {
	brackets, err := in.withholdingBrackets()
	if err != nil {
		return decimal.Zero, err
	}
	net, err := in.netPayment(brackets, in.salary)
	if err != nil {
		return decimal.Zero, fmt.Errorf("net salary: %w", err)
	}
	return net, nil
}

// NetBonus estimates the take-home amount of each bonus, in input order
func (in *Income) NetBonus() ([]decimal.Decimal, error) {
	if len(in.bonuses) == 0 {
		return []decimal.Decimal{}, nil
	}
	brackets, err := in.withholdingBrackets()
	if err != nil {
		return nil, err
	}
	out := make([]decimal.Decimal, 0, len(in.bonuses))
	for i, b := range in.bonuses {
		net, err := in.netPayment(brackets, b)
		if err != nil {
			return nil, fmt.Errorf("net bonus %d: %w", i, err)
		}
		out = append(out, net)
	}
	return out, nil
}

func (in *Income) withholdingBrackets() ([]domain.Bracket, error) {
	year, brackets, err := in.calc.Tables.Withholding().Resolve(in.withholdingYear)
	if err != nil {
		return nil, err
	}
	if year != in.withholdingYear {
		in.calc.Logger.Debugf("withholding brackets for %d not found, using %d", in.withholdingYear, year)
	}
	return brackets, nil
}

func (in *Income) netPayment(brackets []domain.Bracket, amount decimal.Decimal) (decimal.Decimal, error) {
	rate, err := withholdingRate(brackets, amount)
	if err != nil {
		return decimal.Zero, err
	}
	keep := decimal.NewFromInt(1).Sub(in.calc.Tables.Contributions().Rate).Sub(rate)
	return amount.Mul(keep).RoundBank(2), nil
}

// Summary gathers every figure in one value
func (in *Income) Summary() (domain.IncomeSummary, error) {
	s, err := in.Settle()
	if err != nil {
		return domain.IncomeSummary{}, err
	}
	netSalary, err := in.NetSalary()
	if err != nil {
		return domain.IncomeSummary{}, err
	}
	netBonuses, err := in.NetBonus()
	if err != nil {
		return domain.IncomeSummary{}, err
	}
	withholdingYear, _, _ := in.calc.Tables.Withholding().Resolve(in.withholdingYear)

	net := in.net(s)
	effective := decimal.Zero
	if in.gross.IsPositive() {
		effective = s.IncomeTax.Div(in.gross).RoundBank(4)
	}

	return domain.IncomeSummary{
		Gross:            in.Gross(),
		Contribution:     s.Contribution,
		TaxableBase:      s.TaxableBase,
		IncomeTax:        s.IncomeTax,
		TaxFreeAllowance: in.taxFree.RoundBank(2),
		Net:              net,
		MonthlyNet:       net.Div(decimal.NewFromInt(12)).RoundBank(2),
		EffectiveRate:    effective,
		NetSalary:        netSalary,
		NetBonuses:       netBonuses,
		MonthsPaid:       in.monthsPaid,
		HouseholdSize:    in.householdSize,
		TaxYear:          s.TaxYear,
		WithholdingYear:  withholdingYear,
	}, nil
}
