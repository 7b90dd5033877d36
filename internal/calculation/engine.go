package calculation

import (
	"go.uber.org/zap"

	"revdisp/internal/domain"
	"revdisp/internal/params"
)

// Engine owns the full set of calculator instances bound to one fiscal
// year and sequences them in dependency order: contributions, then the two
// tax engines consuming the contributions, then the income-tested benefits
// consuming the family net income. It is the only component that passes
// one calculator's output as another's input.
type Engine struct {
	year   int
	logger *zap.Logger

	// fixed topological order
	calculators []Calculator
}

// NewEngine resolves the year's parameters and constructs every calculator.
// An unsupported year or a missing parameter block fails here, before any
// arithmetic runs.
func NewEngine(year int, store *params.Store, logger *zap.Logger) (*Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg, err := store.Resolve(year)
	if err != nil {
		return nil, err
	}

	qpp, err := NewQPPCalculator(cfg)
	if err != nil {
		return nil, err
	}
	ei, err := NewEICalculator(cfg)
	if err != nil {
		return nil, err
	}
	qpip, err := NewQPIPCalculator(cfg)
	if err != nil {
		return nil, err
	}
	quebec, err := NewQuebecTaxCalculator(cfg)
	if err != nil {
		return nil, err
	}
	federal, err := NewFederalTaxCalculator(cfg)
	if err != nil {
		return nil, err
	}
	solidarity, err := NewSolidarityCalculator(cfg)
	if err != nil {
		return nil, err
	}
	workPremium, err := NewWorkPremiumCalculator(cfg)
	if err != nil {
		return nil, err
	}
	familyAllowance, err := NewFamilyAllowanceCalculator(cfg)
	if err != nil {
		return nil, err
	}
	childBenefit, err := NewChildBenefitCalculator(cfg)
	if err != nil {
		return nil, err
	}
	gst, err := NewGSTCreditCalculator(cfg)
	if err != nil {
		return nil, err
	}
	oas, err := NewOldAgeSecurityCalculator(cfg)
	if err != nil {
		return nil, err
	}
	seniorAssistance, err := NewSeniorAssistanceCalculator(cfg)
	if err != nil {
		return nil, err
	}
	socialAssistance, err := NewSocialAssistanceCalculator(cfg)
	if err != nil {
		return nil, err
	}

	return &Engine{
		year:   year,
		logger: logger,
		calculators: []Calculator{
			qpp, ei, qpip,
			quebec, federal,
			solidarity, workPremium, familyAllowance, childBenefit, gst,
			oas, seniorAssistance, socialAssistance,
		},
	}, nil
}

// Year returns the fiscal year the engine is bound to.
func (e *Engine) Year() int { return e.year }

// Calculate evaluates one household. The household is validated once here;
// any calculator error aborts the whole request.
func (e *Engine) Calculate(hh *domain.Household) (*domain.HouseholdSummary, error) {
	if err := hh.Validate(); err != nil {
		return nil, err
	}

	merged := domain.CalculationResult{}
	for _, calc := range e.calculators {
		result, err := calc.Calculate(hh, merged)
		if err != nil {
			return nil, &domain.CalculationError{Calculator: calc.Name(), Err: err}
		}
		for name, amount := range result {
			merged[name] = amount
		}
		e.logger.Debug("calculator finished",
			zap.String("calculator", calc.Name()),
			zap.Int("fields", len(result)))
	}

	summary := e.summarize(hh, merged)
	e.logger.Info("household calculated",
		zap.Int("year", e.year),
		zap.String("household_type", string(hh.Type)),
		zap.String("disposable_income", summary.DisposableIncome.StringFixed(2)))
	return summary, nil
}

func (e *Engine) summarize(hh *domain.Household, merged domain.CalculationResult) *domain.HouseholdSummary {
	summary := &domain.HouseholdSummary{
		Year:        e.year,
		GrossIncome: roundCents(hh.TotalGrossIncome()),
		PrimaryContributions: domain.PersonContributions{
			QPPBase:   merged.Get(domain.FieldQPPBase),
			QPPSecond: merged.Get(domain.FieldQPPSecond),
			QPP:       merged.Get(domain.FieldQPPTotal),
			EI:        merged.Get(domain.FieldEIEmployee),
			QPIP:      merged.Get(domain.FieldQPIPEmployee),
		},
		Quebec: domain.JurisdictionTax{
			Primary: domain.PersonTax{
				GrossTax:  merged.Get(domain.FieldQCGrossTaxPrimary),
				Credits:   merged.Get(domain.FieldQCCreditsPrimary),
				NetTax:    merged.Get(domain.FieldQCNetTaxPrimary),
				NetIncome: merged.Get(domain.FieldQCNetIncomePrimary),
			},
			CombinedNetTax:    merged.Get(domain.FieldQCNetTaxCombined),
			CombinedNetIncome: merged.Get(domain.FieldQCNetIncomeCombined),
		},
		Federal: domain.JurisdictionTax{
			Primary: domain.PersonTax{
				GrossTax:  merged.Get(domain.FieldFedGrossTaxPrimary),
				Credits:   merged.Get(domain.FieldFedCreditsPrimary),
				NetTax:    merged.Get(domain.FieldFedNetTaxPrimary),
				NetIncome: merged.Get(domain.FieldFedNetIncomePrimary),
			},
			CombinedNetTax:    merged.Get(domain.FieldFedNetTaxCombined),
			CombinedNetIncome: merged.Get(domain.FieldFedNetIncomeCombined),
		},
		Benefits: domain.BenefitAmounts{
			SolidarityCredit:       merged.Get("solidarity_credit"),
			WorkPremium:            merged.Get("work_premium"),
			FamilyAllowance:        merged.Get("family_allowance"),
			ChildBenefit:           merged.Get("child_benefit"),
			GSTCredit:              merged.Get("gst_credit"),
			OldAgeSecurity:         merged.Get("old_age_security"),
			GuaranteedIncomeSupp:   merged.Get("guaranteed_income_supplement"),
			SeniorAssistanceAmount: merged.Get("senior_assistance"),
			SocialAssistance:       merged.Get("social_assistance"),
		},
	}

	if hh.Spouse != nil {
		summary.SpouseContributions = &domain.PersonContributions{
			QPPBase:   merged.Get(domain.SpouseField(domain.FieldQPPBase)),
			QPPSecond: merged.Get(domain.SpouseField(domain.FieldQPPSecond)),
			QPP:       merged.Get(domain.SpouseField(domain.FieldQPPTotal)),
			EI:        merged.Get(domain.SpouseField(domain.FieldEIEmployee)),
			QPIP:      merged.Get(domain.SpouseField(domain.FieldQPIPEmployee)),
		}
		summary.Quebec.Spouse = &domain.PersonTax{
			GrossTax:  merged.Get(domain.FieldQCGrossTaxSpouse),
			Credits:   merged.Get(domain.FieldQCCreditsSpouse),
			NetTax:    merged.Get(domain.FieldQCNetTaxSpouse),
			NetIncome: merged.Get(domain.FieldQCNetIncomeSpouse),
		}
		summary.Federal.Spouse = &domain.PersonTax{
			GrossTax:  merged.Get(domain.FieldFedGrossTaxSpouse),
			Credits:   merged.Get(domain.FieldFedCreditsSpouse),
			NetTax:    merged.Get(domain.FieldFedNetTaxSpouse),
			NetIncome: merged.Get(domain.FieldFedNetIncomeSpouse),
		}
	}

	summary.TotalContributions = summary.PrimaryContributions.Total()
	if summary.SpouseContributions != nil {
		summary.TotalContributions = summary.TotalContributions.Add(summary.SpouseContributions.Total())
	}
	summary.FamilyNetIncome = summary.Quebec.CombinedNetIncome
	summary.TotalBenefits = summary.Benefits.Total()

	if _, ok := merged[domain.FieldMeansTestApprox]; ok {
		summary.ApproximateMeansTest = true
	}

	summary.DisposableIncome = summary.GrossIncome.
		Sub(summary.TotalContributions).
		Sub(summary.Quebec.CombinedNetTax).
		Sub(summary.Federal.CombinedNetTax).
		Add(summary.TotalBenefits)
	return summary
}
