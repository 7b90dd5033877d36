package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"revdisp/internal/domain"
	"revdisp/internal/params"
)

// QuebecTaxCalculator is the provincial income-tax engine. Social-insurance
// contributions reduce the taxable base before the brackets apply;
// non-refundable amounts, including the capped worker deduction, convert
// to tax relief at the lowest bracket rate. The conditional credit bundle
// (age, pension income, living alone) shares a single linear reduction on
// family net income.
type QuebecTaxCalculator struct {
	p *params.QuebecTaxParameters
}

// NewQuebecTaxCalculator binds the engine to a year's parameters.
func NewQuebecTaxCalculator(cfg *params.Parameters) (*QuebecTaxCalculator, error) {
	if cfg.QuebecTax == nil {
		return nil, fmt.Errorf("%w: quebec_tax, year %d", domain.ErrMissingParameters, cfg.Year)
	}
	return &QuebecTaxCalculator{p: cfg.QuebecTax}, nil
}

// Name implements Calculator.
func (c *QuebecTaxCalculator) Name() string { return "quebec_tax" }

// quebecFiler carries one filer's intermediate amounts at full precision.
type quebecFiler struct {
	person       domain.Person
	livingAlone  bool
	singleParent bool

	taxableIncome decimal.Decimal
	grossTax      decimal.Decimal
	credits       decimal.Decimal
	netTax        decimal.Decimal

	// reduced conditional amounts, redistributed for reporting
	ageAmount         decimal.Decimal
	pensionAmount     decimal.Decimal
	livingAloneAmount decimal.Decimal
}

// TaxableIncome deducts social-insurance contributions from a person's
// total income. The worker deduction is handled in the credit step, where
// it is priced at the lowest bracket rate rather than removed from the
// bracket base.
func (c *QuebecTaxCalculator) TaxableIncome(p domain.Person, contributions decimal.Decimal) decimal.Decimal {
	return floorZero(p.TotalIncome().Sub(contributions))
}

// WorkerDeduction is min(rate x work income, cap).
func (c *QuebecTaxCalculator) WorkerDeduction(p domain.Person) decimal.Decimal {
	return decimal.Min(p.EarnedIncome().Mul(c.p.WorkerDeductionRate), c.p.WorkerDeductionCap)
}

// GrossTax runs the bracket schedule over a taxable income.
func (c *QuebecTaxCalculator) GrossTax(taxable decimal.Decimal) decimal.Decimal {
	return bracketTax(c.p.Brackets, taxable)
}

// credits fills the filer's credit amount. The conditional bundle is summed
// first, reduced once by the shared linear reduction on family net income,
// and the reduction is redistributed proportionally across the bundle's
// members for reporting.
func (c *QuebecTaxCalculator) creditsFor(f *quebecFiler, familyNetIncome decimal.Decimal) {
	age := decimal.Zero
	if f.person.Age >= 65 {
		age = c.p.AgeAmount
	}
	pension := decimal.Min(f.person.GrossRetirementIncome, c.p.PensionAmountMax)
	alone := decimal.Zero
	if f.livingAlone {
		alone = c.p.LivingAloneAmount
		if f.singleParent {
			alone = alone.Add(c.p.LivingAloneSingleParentSupp)
		}
	}

	bundle := age.Add(pension).Add(alone)
	reduced := bundle
	if bundle.IsPositive() {
		reduction := linearReduction(familyNetIncome, c.p.CreditReductionThreshold, c.p.CreditReductionRate)
		reduced = floorZero(bundle.Sub(reduction))
		scale := reduced.Div(bundle)
		f.ageAmount = age.Mul(scale)
		f.pensionAmount = pension.Mul(scale)
		f.livingAloneAmount = alone.Mul(scale)
	}

	worker := c.WorkerDeduction(f.person)
	f.credits = c.p.BasicAmount.Add(worker).Add(reduced).Mul(lowestRate(c.p.Brackets))
}

// Calculate implements Calculator. It consumes the contribution outputs
// from its inputs, computes each filer's tax allowing it to go negative,
// transfers unused credits between spouses, and clamps after transfer.
func (c *QuebecTaxCalculator) Calculate(hh *domain.Household, inputs domain.CalculationResult) (domain.CalculationResult, error) {
	primary := &quebecFiler{
		person:       hh.PrimaryPerson,
		livingAlone:  hh.Spouse == nil,
		singleParent: hh.Type == domain.HouseholdSingleParent,
	}
	primaryContribs := inputs.Get(domain.FieldQPPTotal).
		Add(inputs.Get(domain.FieldEIEmployee)).
		Add(inputs.Get(domain.FieldQPIPEmployee))
	primary.taxableIncome = c.TaxableIncome(primary.person, primaryContribs)

	var spouse *quebecFiler
	if hh.Spouse != nil {
		spouse = &quebecFiler{person: *hh.Spouse}
		spouseContribs := inputs.Get(domain.SpouseField(domain.FieldQPPTotal)).
			Add(inputs.Get(domain.SpouseField(domain.FieldEIEmployee))).
			Add(inputs.Get(domain.SpouseField(domain.FieldQPIPEmployee)))
		spouse.taxableIncome = c.TaxableIncome(spouse.person, spouseContribs)
	}

	familyNetIncome := primary.taxableIncome
	if spouse != nil {
		familyNetIncome = familyNetIncome.Add(spouse.taxableIncome)
	}

	for _, f := range []*quebecFiler{primary, spouse} {
		if f == nil {
			continue
		}
		f.grossTax = c.GrossTax(f.taxableIncome)
		c.creditsFor(f, familyNetIncome)
		f.netTax = f.grossTax.Sub(f.credits)
	}

	result := domain.CalculationResult{
		domain.FieldQCGrossTaxPrimary:  roundCents(primary.grossTax),
		domain.FieldQCCreditsPrimary:   roundCents(primary.credits),
		domain.FieldQCNetIncomePrimary: roundCents(primary.taxableIncome),
		"qc_age_amount":                roundCents(primary.ageAmount),
		"qc_pension_amount":            roundCents(primary.pensionAmount),
		"qc_living_alone_amount":       roundCents(primary.livingAloneAmount),
	}

	if spouse == nil {
		netTax := floorZero(primary.netTax)
		result[domain.FieldQCNetTaxPrimary] = roundCents(netTax)
		result[domain.FieldQCNetTaxCombined] = roundCents(netTax)
		result[domain.FieldQCNetIncomeCombined] = roundCents(familyNetIncome)
		return result, nil
	}

	primaryNet, spouseNet := applyCreditTransfer(primary.netTax, spouse.netTax)
	result[domain.FieldQCNetTaxPrimary] = roundCents(primaryNet)
	result[domain.FieldQCNetTaxSpouse] = roundCents(spouseNet)
	result[domain.FieldQCNetTaxCombined] = roundCents(primaryNet.Add(spouseNet))
	result[domain.FieldQCGrossTaxSpouse] = roundCents(spouse.grossTax)
	result[domain.FieldQCCreditsSpouse] = roundCents(spouse.credits)
	result[domain.FieldQCNetIncomeSpouse] = roundCents(spouse.taxableIncome)
	result[domain.FieldQCNetIncomeCombined] = roundCents(familyNetIncome)
	result[domain.SpouseField("qc_age_amount")] = roundCents(spouse.ageAmount)
	result[domain.SpouseField("qc_pension_amount")] = roundCents(spouse.pensionAmount)
	return result, nil
}
