package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"revdisp/internal/domain"
	"revdisp/internal/params"
)

// SocialAssistanceCalculator computes last-resort financial assistance: a
// base amount by household composition, reduced dollar-for-dollar by
// countable income. Work income below the monthly exclusion is not
// counted; retirement income counts in full. Households whose income
// exceeds the base receive nothing.
type SocialAssistanceCalculator struct {
	p *params.SocialAssistanceParameters
}

// NewSocialAssistanceCalculator binds the calculator to a year's parameters.
func NewSocialAssistanceCalculator(cfg *params.Parameters) (*SocialAssistanceCalculator, error) {
	if cfg.SocialAssistance == nil {
		return nil, fmt.Errorf("%w: social_assistance, year %d", domain.ErrMissingParameters, cfg.Year)
	}
	return &SocialAssistanceCalculator{p: cfg.SocialAssistance}, nil
}

// Name implements Calculator.
func (c *SocialAssistanceCalculator) Name() string { return "social_assistance" }

// Calculate implements Calculator.
func (c *SocialAssistanceCalculator) Calculate(hh *domain.Household, _ domain.CalculationResult) (domain.CalculationResult, error) {
	// Retirees are covered by the pension programs, not last-resort aid.
	if hh.Type.IsRetiredVariant() {
		return domain.CalculationResult{"social_assistance": decimal.Zero}, nil
	}

	base := c.p.BaseSingle
	exclusion := c.p.WorkIncomeExclusionSingle
	if hh.Spouse != nil {
		base = c.p.BaseCouple
		exclusion = c.p.WorkIncomeExclusionCouple
	}

	countable := floorZero(hh.TotalWorkIncome().Sub(exclusion))
	for _, adult := range hh.Adults() {
		countable = countable.Add(adult.GrossRetirementIncome)
	}

	return domain.CalculationResult{
		"social_assistance": roundCents(floorZero(base.Sub(countable))),
	}, nil
}
