package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"revdisp/internal/domain"
	"revdisp/internal/params"
)

// EICalculator computes the employment-insurance premium at the Québec
// rate: a single tier up to the maximum insurable earnings, employer share
// at a fixed multiple of the employee share. Self-employed income is not
// insurable (EI coverage is opt-in for the self-employed and the
// calculator assumes no opt-in).
type EICalculator struct {
	p *params.EIParameters
}

// NewEICalculator binds the calculator to a year's parameters.
func NewEICalculator(cfg *params.Parameters) (*EICalculator, error) {
	if cfg.EI == nil {
		return nil, fmt.Errorf("%w: ei, year %d", domain.ErrMissingParameters, cfg.Year)
	}
	return &EICalculator{p: cfg.EI}, nil
}

// Name implements Calculator.
func (c *EICalculator) Name() string { return "ei" }

// ForPerson returns the employee premium at full precision.
func (c *EICalculator) ForPerson(p domain.Person) decimal.Decimal {
	if p.IsRetired && p.Age >= c.p.RetirementExemptAge {
		return decimal.Zero
	}
	insurable := decimal.Min(p.GrossWorkIncome, c.p.MaxInsurableEarnings)
	if insurable.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return insurable.Mul(c.p.EmployeeRate)
}

// EmployerPremium returns the employer share for a given employee premium.
func (c *EICalculator) EmployerPremium(employee decimal.Decimal) decimal.Decimal {
	return employee.Mul(c.p.EmployerMultiplier)
}

// Calculate implements Calculator.
func (c *EICalculator) Calculate(hh *domain.Household, _ domain.CalculationResult) (domain.CalculationResult, error) {
	result := domain.CalculationResult{}
	primary := c.ForPerson(hh.PrimaryPerson)
	result[domain.FieldEIEmployee] = roundCents(primary)
	result[domain.FieldEIEmployer] = roundCents(c.EmployerPremium(primary))
	if hh.Spouse != nil {
		spouse := c.ForPerson(*hh.Spouse)
		result[domain.SpouseField(domain.FieldEIEmployee)] = roundCents(spouse)
		result[domain.SpouseField(domain.FieldEIEmployer)] = roundCents(c.EmployerPremium(spouse))
	}
	return result, nil
}
