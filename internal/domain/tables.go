package domain

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Table kinds
const (
	KindIncomeTax   = "income_tax"
	KindWithholding = "withholding"
)

// Bracket is one progressive tier: amounts up to Ceiling are taxed at Rate.
// An Open bracket has no ceiling and catches everything above the previous one.
type Bracket struct {
	Ceiling decimal.Decimal `json:"ceiling" yaml:"ceiling"`
	Rate    decimal.Decimal `json:"rate" yaml:"rate"`
	Open    bool            `json:"open,omitempty" yaml:"open,omitempty"`
}

// Contains reports whether amount falls strictly below the bracket ceiling.
// Open brackets contain every amount.
func (b Bracket) Contains(amount decimal.Decimal) bool {
	return b.Open || amount.LessThan(b.Ceiling)
}

// BracketTable maps fiscal years to ordered bracket schedules. It is built once
// and never mutated, so it is safe to share between goroutines.
type BracketTable struct {
	kind      string
	schedules map[int][]Bracket
	years     []int // descending
}

// NewBracketTable validates and freezes the given schedules
func NewBracketTable(kind string, schedules map[int][]Bracket) (*BracketTable, error) {
	if len(schedules) == 0 {
		return nil, fmt.Errorf("%w: %s table has no years", ErrInvalidTable, kind)
	}

	t := &BracketTable{
		kind:      kind,
		schedules: make(map[int][]Bracket, len(schedules)),
	}
	for year, brackets := range schedules {
		if err := validateSchedule(brackets); err != nil {
			return nil, fmt.Errorf("%w: %s %d: %v", ErrInvalidTable, kind, year, err)
		}
		t.schedules[year] = append([]Bracket(nil), brackets...)
		t.years = append(t.years, year)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(t.years)))
	return t, nil
}

func validateSchedule(brackets []Bracket) error {
	if len(brackets) == 0 {
		return fmt.Errorf("schedule is empty")
	}
	one := decimal.NewFromInt(1)
	previous := decimal.Zero
	for i, b := range brackets {
		if b.Rate.IsNegative() || b.Rate.GreaterThan(one) {
			return fmt.Errorf("bracket %d: rate %s outside [0,1]", i, b.Rate)
		}
		if b.Open {
			if i != len(brackets)-1 {
				return fmt.Errorf("bracket %d: only the last bracket may be open", i)
			}
			continue
		}
		if !b.Ceiling.GreaterThan(previous) {
			return fmt.Errorf("bracket %d: ceiling %s must exceed %s", i, b.Ceiling, previous)
		}
		previous = b.Ceiling
	}
	return nil
}

// Kind returns the table label, e.g. "income_tax"
func (t *BracketTable) Kind() string { return t.kind }

// Has reports whether a schedule exists for year
func (t *BracketTable) Has(year int) bool {
	_, ok := t.schedules[year]
	return ok
}

// Brackets returns a copy of the schedule for year
func (t *BracketTable) Brackets(year int) ([]Bracket, bool) {
	b, ok := t.schedules[year]
	if !ok {
		return nil, false
	}
	return append([]Bracket(nil), b...), true
}

// MinYear returns the oldest year in the table
func (t *BracketTable) MinYear() int {
	return t.years[len(t.years)-1]
}

// MaxYear returns the most recent year in the table
func (t *BracketTable) MaxYear() int {
	return t.years[0]
}

// Years lists every year, most recent first
func (t *BracketTable) Years() []int {
	return append([]int(nil), t.years...)
}

// Resolve returns the schedule for the most recent year <= year. It walks back
// one year at a time and gives up once it drops below MinYear.
func (t *BracketTable) Resolve(year int) (int, []Bracket, error) {
	floor := t.MinYear()
	for y := year; y >= floor; y-- {
		if b, ok := t.schedules[y]; ok {
			return y, append([]Bracket(nil), b...), nil
		}
	}
	return 0, nil, fmt.Errorf("%w: %s for %d (oldest year %d)", ErrTableUnavailable, t.kind, year, floor)
}

// ContributionRules holds the social security parameters
type ContributionRules struct {
	// Rate is the flat contribution applied to gross income.
	Rate decimal.Decimal `json:"rate" yaml:"rate"`
	// FlatCap is the annual per-person deduction floor. When it is larger than
	// the household's contribution it replaces the contribution in the taxable base.
	FlatCap decimal.Decimal `json:"flat_cap" yaml:"flat_cap"`
}

// DefaultContributionRules returns the 11% rate with a 4104 per-person floor
func DefaultContributionRules() ContributionRules {
	return ContributionRules{
		Rate:    decimal.RequireFromString("0.11"),
		FlatCap: decimal.NewFromInt(4104),
	}
}

// TaxTables bundles everything a calculation reads. Built once at startup and
// passed by pointer into calculators.
type TaxTables struct {
	metadata      TableMetadata
	incomeTax     *BracketTable
	withholding   *BracketTable
	contributions ContributionRules
}

// TableMetadata describes where the table data comes from
type TableMetadata struct {
	Jurisdiction string `json:"jurisdiction" yaml:"jurisdiction"`
	Description  string `json:"description" yaml:"description"`
	LastUpdated  string `json:"last_updated" yaml:"last_updated"`
}

// NewTaxTables assembles validated tables
func NewTaxTables(meta TableMetadata, incomeTax, withholding *BracketTable, rules ContributionRules) (*TaxTables, error) {
	if incomeTax == nil {
		return nil, fmt.Errorf("%w: income tax table is required", ErrInvalidTable)
	}
	if withholding == nil {
		return nil, fmt.Errorf("%w: withholding table is required", ErrInvalidTable)
	}
	one := decimal.NewFromInt(1)
	if rules.Rate.IsNegative() || rules.Rate.GreaterThanOrEqual(one) {
		return nil, fmt.Errorf("%w: contribution rate %s outside [0,1)", ErrInvalidTable, rules.Rate)
	}
	if rules.FlatCap.IsNegative() {
		return nil, fmt.Errorf("%w: flat cap cannot be negative", ErrInvalidTable)
	}
	return &TaxTables{
		metadata:      meta,
		incomeTax:     incomeTax,
		withholding:   withholding,
		contributions: rules,
	}, nil
}

func (tt *TaxTables) Metadata() TableMetadata          { return tt.metadata }
func (tt *TaxTables) IncomeTax() *BracketTable         { return tt.incomeTax }
func (tt *TaxTables) Withholding() *BracketTable       { return tt.withholding }
func (tt *TaxTables) Contributions() ContributionRules { return tt.contributions }
