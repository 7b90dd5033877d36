package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"revdisp/internal/domain"
	"revdisp/internal/params"
)

// Every income-tested benefit shares one shape:
//
//	benefit = max(0, min(maxAmount, growthRate x eligibleBase)
//	               - reductionRate x max(0, meansTestIncome - threshold))
//
// A zero growth rate means a flat maximum with no phase-in. Benefits are
// household-level: the engine invokes each once per household, never per
// person, so nothing is double-counted.
type incomeTested struct {
	MaxAmount       decimal.Decimal
	GrowthRate      decimal.Decimal // zero: flat maximum
	EligibleBase    decimal.Decimal
	MeansTestIncome decimal.Decimal
	Threshold       decimal.Decimal
	ReductionRate   decimal.Decimal
}

func (b incomeTested) Amount() decimal.Decimal {
	grown := b.MaxAmount
	if !b.GrowthRate.IsZero() {
		grown = decimal.Min(b.MaxAmount, b.GrowthRate.Mul(b.EligibleBase))
	}
	return floorZero(grown.Sub(linearReduction(b.MeansTestIncome, b.Threshold, b.ReductionRate)))
}

// meansTestIncome returns the family net income computed by the provincial
// engine. When that input is absent the gross household income stands in,
// and the second return flags the approximation so the caller publishes it
// instead of silently trusting the cruder base.
func meansTestIncome(hh *domain.Household, inputs domain.CalculationResult) (decimal.Decimal, bool) {
	if v, ok := inputs[domain.FieldQCNetIncomeCombined]; ok {
		return v, false
	}
	return hh.TotalGrossIncome(), true
}

// SolidarityCalculator computes the solidarity tax credit: a QST component
// plus a housing component, phased out on family net income. The phase-out
// rate is lower for filers entitled to the QST component alone; this
// engine models every household as claiming both components, which matches
// the official calculator's default.
type SolidarityCalculator struct {
	p *params.SolidarityParameters
}

// NewSolidarityCalculator binds the calculator to a year's parameters.
func NewSolidarityCalculator(cfg *params.Parameters) (*SolidarityCalculator, error) {
	if cfg.SolidarityCredit == nil {
		return nil, fmt.Errorf("%w: solidarity_credit, year %d", domain.ErrMissingParameters, cfg.Year)
	}
	return &SolidarityCalculator{p: cfg.SolidarityCredit}, nil
}

// Name implements Calculator.
func (c *SolidarityCalculator) Name() string { return "solidarity_credit" }

// Calculate implements Calculator.
func (c *SolidarityCalculator) Calculate(hh *domain.Household, inputs domain.CalculationResult) (domain.CalculationResult, error) {
	qst := c.p.QSTBase
	housing := c.p.HousingSingle
	if hh.Spouse != nil {
		qst = qst.Add(c.p.QSTSpouse)
		housing = c.p.HousingCouple
	} else {
		qst = qst.Add(c.p.QSTLivingAloneSupp)
	}
	housing = housing.Add(c.p.HousingPerChild.Mul(decimal.NewFromInt(int64(hh.NumChildren()))))

	income, approx := meansTestIncome(hh, inputs)
	credit := incomeTested{
		MaxAmount:       qst.Add(housing),
		MeansTestIncome: income,
		Threshold:       c.p.ReductionThreshold,
		ReductionRate:   c.p.ReductionRate,
	}.Amount()

	result := domain.CalculationResult{"solidarity_credit": roundCents(credit)}
	if approx {
		result[domain.FieldMeansTestApprox] = decimal.NewFromInt(1)
	}
	return result, nil
}

// WorkPremiumCalculator computes the earned-income supplement. The premium
// phases in on work income above an excluded floor and phases out on
// family net income; each household category has its own schedule.
type WorkPremiumCalculator struct {
	p *params.WorkPremiumParameters
}

// NewWorkPremiumCalculator binds the calculator to a year's parameters.
func NewWorkPremiumCalculator(cfg *params.Parameters) (*WorkPremiumCalculator, error) {
	if cfg.WorkPremium == nil {
		return nil, fmt.Errorf("%w: work_premium, year %d", domain.ErrMissingParameters, cfg.Year)
	}
	return &WorkPremiumCalculator{p: cfg.WorkPremium}, nil
}

// Name implements Calculator.
func (c *WorkPremiumCalculator) Name() string { return "work_premium" }

func (c *WorkPremiumCalculator) schedule(hh *domain.Household) params.WorkPremiumSchedule {
	switch {
	case hh.Type == domain.HouseholdSingleParent:
		return c.p.SingleParent
	case hh.Spouse != nil && hh.NumChildren() > 0:
		return c.p.CoupleWithChildren
	case hh.Spouse != nil:
		return c.p.Couple
	default:
		return c.p.Single
	}
}

// Calculate implements Calculator.
func (c *WorkPremiumCalculator) Calculate(hh *domain.Household, inputs domain.CalculationResult) (domain.CalculationResult, error) {
	sched := c.schedule(hh)
	eligibleWork := floorZero(hh.TotalWorkIncome().Sub(sched.WorkIncomeExclusion))

	income, approx := meansTestIncome(hh, inputs)
	premium := incomeTested{
		MaxAmount:       sched.MaxAmount,
		GrowthRate:      sched.GrowthRate,
		EligibleBase:    eligibleWork,
		MeansTestIncome: income,
		Threshold:       sched.ReductionThreshold,
		ReductionRate:   sched.ReductionRate,
	}.Amount()

	result := domain.CalculationResult{"work_premium": roundCents(premium)}
	if approx {
		result[domain.FieldMeansTestApprox] = decimal.NewFromInt(1)
	}
	return result, nil
}
