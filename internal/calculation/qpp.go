package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"revdisp/internal/domain"
	"revdisp/internal/params"
)

// QPPContribution is one person's pension-plan contribution. The base tier
// is reported separately because the federal engine deducts the enhanced
// share of it, and the full second tier, from taxable income.
type QPPContribution struct {
	Base   decimal.Decimal
	Second decimal.Decimal
}

// Total returns the sum of both tiers.
func (c QPPContribution) Total() decimal.Decimal {
	return c.Base.Add(c.Second)
}

// QPPCalculator computes the Québec Pension Plan contribution: a basic
// exemption, a base tier up to the first ceiling (YMPE) and a second tier
// between the first and second ceilings (YAMPE). Self-employed earners pay
// both the employee and employer share.
type QPPCalculator struct {
	p *params.QPPParameters
}

// NewQPPCalculator binds the calculator to a year's parameters.
func NewQPPCalculator(cfg *params.Parameters) (*QPPCalculator, error) {
	if cfg.QPP == nil {
		return nil, fmt.Errorf("%w: qpp, year %d", domain.ErrMissingParameters, cfg.Year)
	}
	return &QPPCalculator{p: cfg.QPP}, nil
}

// Name implements Calculator.
func (c *QPPCalculator) Name() string { return "qpp" }

// ForPerson computes one person's contribution at full precision.
func (c *QPPCalculator) ForPerson(p domain.Person) QPPContribution {
	if p.Age > c.p.MaxContributionAge {
		return QPPContribution{}
	}
	if p.IsRetired && p.Age >= c.p.RetirementExemptAge {
		return QPPContribution{}
	}

	pensionable := p.EarnedIncome()
	if pensionable.LessThanOrEqual(c.p.BasicExemption) {
		return QPPContribution{}
	}

	base := decimal.Min(pensionable, c.p.FirstCeiling).Sub(c.p.BasicExemption).Mul(c.p.FirstTierRate)

	var second decimal.Decimal
	if pensionable.GreaterThan(c.p.FirstCeiling) {
		second = decimal.Min(pensionable, c.p.SecondCeiling).Sub(c.p.FirstCeiling).Mul(c.p.SecondTierRate)
	}

	// A self-employed earner pays the employer share too, pro rata on the
	// self-employed portion of pensionable earnings.
	if p.SelfEmployedIncome.IsPositive() {
		selfShare := p.SelfEmployedIncome.Div(p.EarnedIncome())
		extra := c.p.SelfEmployedMultiplier.Sub(decimal.NewFromInt(1)).Mul(selfShare)
		factor := decimal.NewFromInt(1).Add(extra)
		base = base.Mul(factor)
		second = second.Mul(factor)
	}

	return QPPContribution{Base: base, Second: second}
}

// EnhancedDeduction returns the portion of the contribution the federal
// engine deducts from taxable income: the base tier scaled by the
// enhancement share of the tier rate, plus the full second tier.
func (c *QPPCalculator) EnhancedDeduction(contrib QPPContribution) decimal.Decimal {
	factor := c.p.FirstTierEnhancementRate.Div(c.p.FirstTierRate)
	return contrib.Base.Mul(factor).Add(contrib.Second)
}

// Calculate implements Calculator, publishing rounded per-person amounts.
func (c *QPPCalculator) Calculate(hh *domain.Household, _ domain.CalculationResult) (domain.CalculationResult, error) {
	result := domain.CalculationResult{}
	primary := c.ForPerson(hh.PrimaryPerson)
	result[domain.FieldQPPBase] = roundCents(primary.Base)
	result[domain.FieldQPPSecond] = roundCents(primary.Second)
	result[domain.FieldQPPTotal] = roundCents(primary.Total())
	if hh.Spouse != nil {
		spouse := c.ForPerson(*hh.Spouse)
		result[domain.SpouseField(domain.FieldQPPBase)] = roundCents(spouse.Base)
		result[domain.SpouseField(domain.FieldQPPSecond)] = roundCents(spouse.Second)
		result[domain.SpouseField(domain.FieldQPPTotal)] = roundCents(spouse.Total())
	}
	return result, nil
}
