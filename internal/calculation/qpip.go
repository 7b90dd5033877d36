package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"revdisp/internal/domain"
	"revdisp/internal/params"
)

// QPIPCalculator computes the parental-insurance premium: a single tier up
// to the maximum insurable earnings. Employees pay the employee rate on
// work income; the self-employed pay their own published rate on
// self-employed income. No premium is owed below the minimum earnings
// threshold.
type QPIPCalculator struct {
	p *params.QPIPParameters
}

// NewQPIPCalculator binds the calculator to a year's parameters.
func NewQPIPCalculator(cfg *params.Parameters) (*QPIPCalculator, error) {
	if cfg.QPIP == nil {
		return nil, fmt.Errorf("%w: qpip, year %d", domain.ErrMissingParameters, cfg.Year)
	}
	return &QPIPCalculator{p: cfg.QPIP}, nil
}

// Name implements Calculator.
func (c *QPIPCalculator) Name() string { return "qpip" }

// ForPerson returns the person's premium (employee plus self-employed
// share) at full precision.
func (c *QPIPCalculator) ForPerson(p domain.Person) decimal.Decimal {
	if p.EarnedIncome().LessThan(c.p.MinEarnings) {
		return decimal.Zero
	}

	premium := decimal.Min(p.GrossWorkIncome, c.p.MaxInsurableEarnings).Mul(c.p.EmployeeRate)
	if p.SelfEmployedIncome.IsPositive() {
		remaining := c.p.MaxInsurableEarnings.Sub(decimal.Min(p.GrossWorkIncome, c.p.MaxInsurableEarnings))
		premium = premium.Add(decimal.Min(p.SelfEmployedIncome, remaining).Mul(c.p.SelfEmployedRate))
	}
	return premium
}

// EmployerPremium returns the employer share on insurable work income.
func (c *QPIPCalculator) EmployerPremium(p domain.Person) decimal.Decimal {
	if p.GrossWorkIncome.LessThan(c.p.MinEarnings) {
		return decimal.Zero
	}
	return decimal.Min(p.GrossWorkIncome, c.p.MaxInsurableEarnings).Mul(c.p.EmployerRate)
}

// Calculate implements Calculator.
func (c *QPIPCalculator) Calculate(hh *domain.Household, _ domain.CalculationResult) (domain.CalculationResult, error) {
	result := domain.CalculationResult{}
	result[domain.FieldQPIPEmployee] = roundCents(c.ForPerson(hh.PrimaryPerson))
	result[domain.FieldQPIPEmployer] = roundCents(c.EmployerPremium(hh.PrimaryPerson))
	if hh.Spouse != nil {
		result[domain.SpouseField(domain.FieldQPIPEmployee)] = roundCents(c.ForPerson(*hh.Spouse))
		result[domain.SpouseField(domain.FieldQPIPEmployer)] = roundCents(c.EmployerPremium(*hh.Spouse))
	}
	return result, nil
}
