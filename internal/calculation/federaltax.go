package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"revdisp/internal/domain"
	"revdisp/internal/params"
)

// FederalTaxCalculator is the federal income-tax engine. Unlike the
// provincial engine it does not deduct base contributions from taxable
// income; they convert to non-refundable credits at the lowest bracket
// rate. Only the enhanced pension-plan share is deductible. Residents of
// the province receive a fixed-percentage abatement on the post-credit
// base.
type FederalTaxCalculator struct {
	p   *params.FederalTaxParameters
	qpp *params.QPPParameters
}

// NewFederalTaxCalculator binds the engine to a year's parameters. The QPP
// block is required too: the enhanced-contribution deduction is defined in
// terms of the pension-plan tier rates.
func NewFederalTaxCalculator(cfg *params.Parameters) (*FederalTaxCalculator, error) {
	if cfg.FederalTax == nil {
		return nil, fmt.Errorf("%w: federal_tax, year %d", domain.ErrMissingParameters, cfg.Year)
	}
	if cfg.QPP == nil {
		return nil, fmt.Errorf("%w: federal_tax requires qpp, year %d", domain.ErrMissingParameters, cfg.Year)
	}
	return &FederalTaxCalculator{p: cfg.FederalTax, qpp: cfg.QPP}, nil
}

// Name implements Calculator.
func (c *FederalTaxCalculator) Name() string { return "federal_tax" }

// BasicPersonalAmount returns the income-variable basic personal amount:
// the maximum below the phase-out band, the minimum above it, and a linear
// interpolation between the two inside the band.
func (c *FederalTaxCalculator) BasicPersonalAmount(netIncome decimal.Decimal) decimal.Decimal {
	if netIncome.LessThanOrEqual(c.p.PhaseoutStart) {
		return c.p.BasicAmountMax
	}
	if netIncome.GreaterThanOrEqual(c.p.PhaseoutEnd) {
		return c.p.BasicAmountMin
	}
	span := c.p.PhaseoutEnd.Sub(c.p.PhaseoutStart)
	position := netIncome.Sub(c.p.PhaseoutStart).Div(span)
	return c.p.BasicAmountMax.Sub(c.p.BasicAmountMax.Sub(c.p.BasicAmountMin).Mul(position))
}

// enhancedDeduction is the only contribution amount deductible from the
// federal taxable base: the base-tier contribution scaled by the
// enhancement share of the tier rate, plus the full second tier.
func (c *FederalTaxCalculator) enhancedDeduction(qppBase, qppSecond decimal.Decimal) decimal.Decimal {
	factor := c.qpp.FirstTierEnhancementRate.Div(c.qpp.FirstTierRate)
	return qppBase.Mul(factor).Add(qppSecond)
}

// federalFiler carries one filer's intermediate amounts at full precision.
type federalFiler struct {
	person        domain.Person
	taxableIncome decimal.Decimal
	grossTax      decimal.Decimal
	credits       decimal.Decimal
	netTax        decimal.Decimal // after credits and abatement, may be negative
}

func (c *FederalTaxCalculator) filerFor(p domain.Person, qppBase, qppSecond, ei, qpip decimal.Decimal) *federalFiler {
	f := &federalFiler{person: p}
	f.taxableIncome = floorZero(p.TotalIncome().Sub(c.enhancedDeduction(qppBase, qppSecond)))
	f.grossTax = bracketTax(c.p.Brackets, f.taxableIncome)

	creditBase := c.BasicPersonalAmount(f.taxableIncome)

	if p.Age >= 65 {
		age := c.p.AgeAmount.Sub(linearReduction(f.taxableIncome, c.p.AgeAmountThreshold, c.p.AgeAmountReductionRate))
		creditBase = creditBase.Add(floorZero(age))
	}
	creditBase = creditBase.Add(decimal.Min(p.GrossRetirementIncome, c.p.PensionAmountMax))
	creditBase = creditBase.Add(decimal.Min(p.GrossWorkIncome, c.p.EmploymentAmountMax))

	// Base contributions are credits here, not deductions: the creditable
	// pension-plan amount is the total minus the enhanced share already
	// deducted from the base.
	qppCreditable := qppBase.Add(qppSecond).Sub(c.enhancedDeduction(qppBase, qppSecond))
	creditBase = creditBase.Add(qppCreditable).Add(ei).Add(qpip)

	f.credits = creditBase.Mul(lowestRate(c.p.Brackets))

	// Abatement applies to the post-credit base, not the credits, and is
	// not compounded with them.
	one := decimal.NewFromInt(1)
	f.netTax = f.grossTax.Sub(f.credits).Mul(one.Sub(c.p.AbatementRate))
	return f
}

// Calculate implements Calculator.
func (c *FederalTaxCalculator) Calculate(hh *domain.Household, inputs domain.CalculationResult) (domain.CalculationResult, error) {
	primary := c.filerFor(hh.PrimaryPerson,
		inputs.Get(domain.FieldQPPBase),
		inputs.Get(domain.FieldQPPSecond),
		inputs.Get(domain.FieldEIEmployee),
		inputs.Get(domain.FieldQPIPEmployee))

	result := domain.CalculationResult{
		domain.FieldFedGrossTaxPrimary:  roundCents(primary.grossTax),
		domain.FieldFedCreditsPrimary:   roundCents(primary.credits),
		domain.FieldFedNetIncomePrimary: roundCents(primary.taxableIncome),
	}

	if hh.Spouse == nil {
		netTax := floorZero(primary.netTax)
		result[domain.FieldFedNetTaxPrimary] = roundCents(netTax)
		result[domain.FieldFedNetTaxCombined] = roundCents(netTax)
		result[domain.FieldFedNetIncomeCombined] = roundCents(primary.taxableIncome)
		return result, nil
	}

	spouse := c.filerFor(*hh.Spouse,
		inputs.Get(domain.SpouseField(domain.FieldQPPBase)),
		inputs.Get(domain.SpouseField(domain.FieldQPPSecond)),
		inputs.Get(domain.SpouseField(domain.FieldEIEmployee)),
		inputs.Get(domain.SpouseField(domain.FieldQPIPEmployee)))

	primaryNet, spouseNet := applyCreditTransfer(primary.netTax, spouse.netTax)
	result[domain.FieldFedNetTaxPrimary] = roundCents(primaryNet)
	result[domain.FieldFedNetTaxSpouse] = roundCents(spouseNet)
	result[domain.FieldFedNetTaxCombined] = roundCents(primaryNet.Add(spouseNet))
	result[domain.FieldFedGrossTaxSpouse] = roundCents(spouse.grossTax)
	result[domain.FieldFedCreditsSpouse] = roundCents(spouse.credits)
	result[domain.FieldFedNetIncomeSpouse] = roundCents(spouse.taxableIncome)
	result[domain.FieldFedNetIncomeCombined] = roundCents(primary.taxableIncome.Add(spouse.taxableIncome))
	return result, nil
}
