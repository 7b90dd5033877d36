package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"revdisp/internal/domain"
	"revdisp/internal/params"
)

// OldAgeSecurityCalculator computes the OAS pension with its recovery tax
// (clawback) and the guaranteed income supplement. The clawback recovers a
// fixed share of each pensioner's individual net income above the recovery
// threshold; the supplement phases out on the household's non-OAS income.
type OldAgeSecurityCalculator struct {
	p *params.OldAgeSecurityParameters
}

// NewOldAgeSecurityCalculator binds the calculator to a year's parameters.
func NewOldAgeSecurityCalculator(cfg *params.Parameters) (*OldAgeSecurityCalculator, error) {
	if cfg.OldAgeSecurity == nil {
		return nil, fmt.Errorf("%w: old_age_security, year %d", domain.ErrMissingParameters, cfg.Year)
	}
	return &OldAgeSecurityCalculator{p: cfg.OldAgeSecurity}, nil
}

// Name implements Calculator.
func (c *OldAgeSecurityCalculator) Name() string { return "old_age_security" }

// pensionFor returns one pensioner's OAS after the recovery tax.
func (c *OldAgeSecurityCalculator) pensionFor(p domain.Person, netIncome decimal.Decimal) decimal.Decimal {
	if p.Age < c.p.EligibilityAge {
		return decimal.Zero
	}
	pension := c.p.AnnualPension
	if p.Age >= 75 {
		pension = pension.Mul(c.p.Age75Multiplier)
	}
	clawback := linearReduction(netIncome, c.p.ClawbackThreshold, c.p.ClawbackRate)
	return floorZero(pension.Sub(clawback))
}

// Calculate implements Calculator.
func (c *OldAgeSecurityCalculator) Calculate(hh *domain.Household, inputs domain.CalculationResult) (domain.CalculationResult, error) {
	primaryNet := inputs.Get(domain.FieldQCNetIncomePrimary)
	spouseNet := inputs.Get(domain.FieldQCNetIncomeSpouse)

	oas := c.pensionFor(hh.PrimaryPerson, primaryNet)
	eligibleCount := 0
	if hh.PrimaryPerson.Age >= c.p.EligibilityAge {
		eligibleCount++
	}
	if hh.Spouse != nil {
		oas = oas.Add(c.pensionFor(*hh.Spouse, spouseNet))
		if hh.Spouse.Age >= c.p.EligibilityAge {
			eligibleCount++
		}
	}

	// GIS phases out on family income excluding the OAS pension itself.
	var gis decimal.Decimal
	if eligibleCount > 0 {
		income, _ := meansTestIncome(hh, inputs)
		switch {
		case hh.Spouse == nil:
			gis = incomeTested{
				MaxAmount:       c.p.GISMaxSingle,
				MeansTestIncome: income,
				Threshold:       decimal.Zero,
				ReductionRate:   c.p.GISReductionRate,
			}.Amount()
		case eligibleCount == 2:
			perSpouseIncome := income.Div(decimal.NewFromInt(2))
			each := incomeTested{
				MaxAmount:       c.p.GISMaxPerSpouse,
				MeansTestIncome: perSpouseIncome,
				Threshold:       decimal.Zero,
				ReductionRate:   c.p.GISReductionRate,
			}.Amount()
			gis = each.Mul(decimal.NewFromInt(2))
		}
	}

	return domain.CalculationResult{
		"old_age_security":             roundCents(oas),
		"guaranteed_income_supplement": roundCents(gis),
	}, nil
}

// SeniorAssistanceCalculator computes the provincial senior assistance
// amount, a refundable credit for adults at or past the eligibility age,
// phased out on family net income.
type SeniorAssistanceCalculator struct {
	p *params.SeniorAssistanceParameters
}

// NewSeniorAssistanceCalculator binds the calculator to a year's parameters.
func NewSeniorAssistanceCalculator(cfg *params.Parameters) (*SeniorAssistanceCalculator, error) {
	if cfg.SeniorAssistance == nil {
		return nil, fmt.Errorf("%w: senior_assistance, year %d", domain.ErrMissingParameters, cfg.Year)
	}
	return &SeniorAssistanceCalculator{p: cfg.SeniorAssistance}, nil
}

// Name implements Calculator.
func (c *SeniorAssistanceCalculator) Name() string { return "senior_assistance" }

// Calculate implements Calculator.
func (c *SeniorAssistanceCalculator) Calculate(hh *domain.Household, inputs domain.CalculationResult) (domain.CalculationResult, error) {
	eligible := 0
	if hh.PrimaryPerson.Age >= c.p.EligibilityAge {
		eligible++
	}
	if hh.Spouse != nil && hh.Spouse.Age >= c.p.EligibilityAge {
		eligible++
	}
	if eligible == 0 {
		return domain.CalculationResult{"senior_assistance": decimal.Zero}, nil
	}

	maxAmount := c.p.MaxSingle
	threshold := c.p.ReductionThresholdSingle
	if hh.Spouse != nil {
		threshold = c.p.ReductionThresholdCouple
		if eligible == 2 {
			maxAmount = c.p.MaxCouple
		}
	}

	income, approx := meansTestIncome(hh, inputs)
	amount := incomeTested{
		MaxAmount:       maxAmount,
		MeansTestIncome: income,
		Threshold:       threshold,
		ReductionRate:   c.p.ReductionRate,
	}.Amount()

	result := domain.CalculationResult{"senior_assistance": roundCents(amount)}
	if approx {
		result[domain.FieldMeansTestApprox] = decimal.NewFromInt(1)
	}
	return result, nil
}
