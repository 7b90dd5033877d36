package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"revdisp/internal/domain"
	"revdisp/internal/params"
)

// FamilyAllowanceCalculator computes the provincial family allowance: a
// per-child amount phased down on family income, but never below a
// per-child floor. Single-parent households get a supplement with its own
// floor.
type FamilyAllowanceCalculator struct {
	p *params.FamilyAllowanceParameters
}

// NewFamilyAllowanceCalculator binds the calculator to a year's parameters.
func NewFamilyAllowanceCalculator(cfg *params.Parameters) (*FamilyAllowanceCalculator, error) {
	if cfg.FamilyAllowance == nil {
		return nil, fmt.Errorf("%w: family_allowance, year %d", domain.ErrMissingParameters, cfg.Year)
	}
	return &FamilyAllowanceCalculator{p: cfg.FamilyAllowance}, nil
}

// Name implements Calculator.
func (c *FamilyAllowanceCalculator) Name() string { return "family_allowance" }

// Calculate implements Calculator.
func (c *FamilyAllowanceCalculator) Calculate(hh *domain.Household, inputs domain.CalculationResult) (domain.CalculationResult, error) {
	n := int64(hh.NumChildren())
	if n == 0 {
		return domain.CalculationResult{"family_allowance": decimal.Zero}, nil
	}

	maxTotal := c.p.MaxPerChild.Mul(decimal.NewFromInt(n))
	minTotal := c.p.MinPerChild.Mul(decimal.NewFromInt(n))
	threshold := c.p.ReductionThresholdCouple
	if hh.Type == domain.HouseholdSingleParent {
		maxTotal = maxTotal.Add(c.p.SingleParentSuppMax)
		minTotal = minTotal.Add(c.p.SingleParentSuppMin)
		threshold = c.p.ReductionThresholdSingle
	}

	income, approx := meansTestIncome(hh, inputs)
	reduced := maxTotal.Sub(linearReduction(income, threshold, c.p.ReductionRate))
	allowance := decimal.Max(minTotal, reduced)

	result := domain.CalculationResult{"family_allowance": roundCents(allowance)}
	if approx {
		result[domain.FieldMeansTestApprox] = decimal.NewFromInt(1)
	}
	return result, nil
}

// ChildBenefitCalculator computes the federal child benefit: per-child
// amounts by age band with a two-tier phase-out whose rates depend on the
// number of children.
type ChildBenefitCalculator struct {
	p *params.ChildBenefitParameters
}

// NewChildBenefitCalculator binds the calculator to a year's parameters.
func NewChildBenefitCalculator(cfg *params.Parameters) (*ChildBenefitCalculator, error) {
	if cfg.ChildBenefit == nil {
		return nil, fmt.Errorf("%w: child_benefit, year %d", domain.ErrMissingParameters, cfg.Year)
	}
	return &ChildBenefitCalculator{p: cfg.ChildBenefit}, nil
}

// Name implements Calculator.
func (c *ChildBenefitCalculator) Name() string { return "child_benefit" }

// Calculate implements Calculator.
func (c *ChildBenefitCalculator) Calculate(hh *domain.Household, inputs domain.CalculationResult) (domain.CalculationResult, error) {
	var maxTotal decimal.Decimal
	eligible := 0
	for _, child := range hh.Children {
		switch {
		case child.Age < 6:
			maxTotal = maxTotal.Add(c.p.MaxPerChildUnder6)
			eligible++
		case child.Age <= 17:
			maxTotal = maxTotal.Add(c.p.MaxPerChild6To17)
			eligible++
		}
	}
	if eligible == 0 {
		return domain.CalculationResult{"child_benefit": decimal.Zero}, nil
	}

	rateIdx := eligible - 1
	if rateIdx >= len(c.p.Rates1) {
		rateIdx = len(c.p.Rates1) - 1
	}

	income, approx := meansTestIncome(hh, inputs)
	var reduction decimal.Decimal
	switch {
	case income.LessThanOrEqual(c.p.Threshold1):
		// below the first threshold the full amount is paid
	case income.LessThanOrEqual(c.p.Threshold2):
		reduction = income.Sub(c.p.Threshold1).Mul(c.p.Rates1[rateIdx])
	default:
		reduction = c.p.Threshold2.Sub(c.p.Threshold1).Mul(c.p.Rates1[rateIdx]).
			Add(income.Sub(c.p.Threshold2).Mul(c.p.Rates2[rateIdx]))
	}

	result := domain.CalculationResult{"child_benefit": roundCents(floorZero(maxTotal.Sub(reduction)))}
	if approx {
		result[domain.FieldMeansTestApprox] = decimal.NewFromInt(1)
	}
	return result, nil
}

// GSTCreditCalculator computes the federal sales-tax credit: adult and
// per-child amounts with a single linear phase-out on family net income.
type GSTCreditCalculator struct {
	p *params.GSTCreditParameters
}

// NewGSTCreditCalculator binds the calculator to a year's parameters.
func NewGSTCreditCalculator(cfg *params.Parameters) (*GSTCreditCalculator, error) {
	if cfg.GSTCredit == nil {
		return nil, fmt.Errorf("%w: gst_credit, year %d", domain.ErrMissingParameters, cfg.Year)
	}
	return &GSTCreditCalculator{p: cfg.GSTCredit}, nil
}

// Name implements Calculator.
func (c *GSTCreditCalculator) Name() string { return "gst_credit" }

// Calculate implements Calculator.
func (c *GSTCreditCalculator) Calculate(hh *domain.Household, inputs domain.CalculationResult) (domain.CalculationResult, error) {
	base := c.p.BaseAmount
	if hh.Spouse != nil {
		base = base.Add(c.p.SpouseAmount)
	} else {
		base = base.Add(c.p.SingleSupplement)
	}
	base = base.Add(c.p.PerChildAmount.Mul(decimal.NewFromInt(int64(hh.NumChildren()))))

	income, approx := meansTestIncome(hh, inputs)
	credit := incomeTested{
		MaxAmount:       base,
		MeansTestIncome: income,
		Threshold:       c.p.ReductionThreshold,
		ReductionRate:   c.p.ReductionRate,
	}.Amount()

	result := domain.CalculationResult{"gst_credit": roundCents(credit)}
	if approx {
		result[domain.FieldMeansTestApprox] = decimal.NewFromInt(1)
	}
	return result, nil
}
