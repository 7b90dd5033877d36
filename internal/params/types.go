// Package params holds the published government parameters for every
// supported fiscal year as fully-resolved typed trees. Amounts are
// arbitrary-precision decimals; native floats never touch statutory money.
package params

import "github.com/shopspring/decimal"

// amt builds a decimal from its exact string form. Parameter tables are
// literals, so a malformed constant is a programming error and panics at
// package init.
func amt(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// TaxBracket is one slice of a progressive schedule. Brackets are ordered
// and non-overlapping; Max of the last bracket is effectively unbounded.
type TaxBracket struct {
	Min  decimal.Decimal
	Max  decimal.Decimal
	Rate decimal.Decimal
}

// Parameters is the fully-resolved tree for one fiscal year. Each block is
// a pointer so a calculator can detect an absent block at construction time
// instead of silently defaulting.
type Parameters struct {
	Year int

	QPP        *QPPParameters
	EI         *EIParameters
	QPIP       *QPIPParameters
	QuebecTax  *QuebecTaxParameters
	FederalTax *FederalTaxParameters

	SolidarityCredit *SolidarityParameters
	WorkPremium      *WorkPremiumParameters
	FamilyAllowance  *FamilyAllowanceParameters
	ChildBenefit     *ChildBenefitParameters
	GSTCredit        *GSTCreditParameters
	OldAgeSecurity   *OldAgeSecurityParameters
	SeniorAssistance *SeniorAssistanceParameters
	SocialAssistance *SocialAssistanceParameters
}

// QPPParameters drives the Québec Pension Plan contribution. The plan has
// two tiers since 2024: a base tier between the exemption and the first
// ceiling (YMPE) and a second tier between the YMPE and the second ceiling
// (YAMPE). Years before the second tier set SecondCeiling equal to
// FirstCeiling so the tier-two span is empty.
type QPPParameters struct {
	BasicExemption decimal.Decimal
	FirstCeiling   decimal.Decimal // YMPE
	SecondCeiling  decimal.Decimal // YAMPE
	FirstTierRate  decimal.Decimal
	SecondTierRate decimal.Decimal

	// FirstTierEnhancementRate is the enhancement share inside
	// FirstTierRate; the federal engine deducts tier-one contributions
	// scaled by FirstTierEnhancementRate/FirstTierRate.
	FirstTierEnhancementRate decimal.Decimal

	SelfEmployedMultiplier decimal.Decimal
	RetirementExemptAge    int // retiree at or past this age stops contributing
	MaxContributionAge     int // nobody contributes past this age
}

// EIParameters drives the employment-insurance premium (Québec rate).
type EIParameters struct {
	MaxInsurableEarnings decimal.Decimal
	EmployeeRate         decimal.Decimal
	EmployerMultiplier   decimal.Decimal
	RetirementExemptAge  int
}

// QPIPParameters drives the parental-insurance premium.
type QPIPParameters struct {
	MaxInsurableEarnings decimal.Decimal
	EmployeeRate         decimal.Decimal
	EmployerRate         decimal.Decimal
	SelfEmployedRate     decimal.Decimal
	MinEarnings          decimal.Decimal // no premium below this
}

// QuebecTaxParameters drives the provincial income-tax engine.
type QuebecTaxParameters struct {
	Brackets []TaxBracket

	// Contributions are deducted from the taxable base; the worker
	// deduction is min(WorkerDeductionRate x work income, WorkerDeductionCap).
	WorkerDeductionRate decimal.Decimal
	WorkerDeductionCap  decimal.Decimal

	// Non-refundable credit amounts, converted at the lowest bracket rate.
	BasicAmount                 decimal.Decimal
	AgeAmount                   decimal.Decimal // 65+
	PensionAmountMax            decimal.Decimal
	LivingAloneAmount           decimal.Decimal
	LivingAloneSingleParentSupp decimal.Decimal
	CreditReductionThreshold    decimal.Decimal
	CreditReductionRate         decimal.Decimal
}

// FederalTaxParameters drives the federal income-tax engine.
type FederalTaxParameters struct {
	Brackets []TaxBracket

	// The basic personal amount varies with income for recent years:
	// BasicAmountMax below PhaseoutStart, linear down to BasicAmountMin at
	// PhaseoutEnd, BasicAmountMin above.
	BasicAmountMax decimal.Decimal
	BasicAmountMin decimal.Decimal
	PhaseoutStart  decimal.Decimal
	PhaseoutEnd    decimal.Decimal

	AgeAmount              decimal.Decimal
	AgeAmountThreshold     decimal.Decimal
	AgeAmountReductionRate decimal.Decimal
	PensionAmountMax       decimal.Decimal
	EmploymentAmountMax    decimal.Decimal

	// AbatementRate is the Québec abatement applied to the post-credit base.
	AbatementRate decimal.Decimal
}

// WorkPremiumSchedule is one household category's work-premium parameters.
type WorkPremiumSchedule struct {
	WorkIncomeExclusion decimal.Decimal
	GrowthRate          decimal.Decimal
	MaxAmount           decimal.Decimal
	ReductionThreshold  decimal.Decimal
	ReductionRate       decimal.Decimal
}

// WorkPremiumParameters groups the schedules by household category.
type WorkPremiumParameters struct {
	Single             WorkPremiumSchedule
	Couple             WorkPremiumSchedule
	SingleParent       WorkPremiumSchedule
	CoupleWithChildren WorkPremiumSchedule
}

// SolidarityParameters drives the Québec solidarity tax credit. The credit
// has a QST component and a housing component; the phase-out rate is lower
// when only the QST component applies.
type SolidarityParameters struct {
	QSTBase              decimal.Decimal
	QSTSpouse            decimal.Decimal
	QSTLivingAloneSupp   decimal.Decimal
	HousingCouple        decimal.Decimal
	HousingSingle        decimal.Decimal
	HousingPerChild      decimal.Decimal
	ReductionThreshold   decimal.Decimal
	ReductionRate        decimal.Decimal // both components
	ReductionRateQSTOnly decimal.Decimal
}

// FamilyAllowanceParameters drives the Québec family allowance.
type FamilyAllowanceParameters struct {
	MaxPerChild              decimal.Decimal
	MinPerChild              decimal.Decimal
	SingleParentSuppMax      decimal.Decimal
	SingleParentSuppMin      decimal.Decimal
	ReductionThresholdCouple decimal.Decimal
	ReductionThresholdSingle decimal.Decimal
	ReductionRate            decimal.Decimal
}

// ChildBenefitParameters drives the Canada child benefit. Reduction rates
// depend on the number of children; index 0 is one child, the last entry
// covers that many children or more.
type ChildBenefitParameters struct {
	MaxPerChildUnder6 decimal.Decimal
	MaxPerChild6To17  decimal.Decimal
	Threshold1        decimal.Decimal
	Threshold2        decimal.Decimal
	Rates1            []decimal.Decimal
	Rates2            []decimal.Decimal
}

// GSTCreditParameters drives the federal GST/HST credit.
type GSTCreditParameters struct {
	BaseAmount         decimal.Decimal
	SpouseAmount       decimal.Decimal
	PerChildAmount     decimal.Decimal
	SingleSupplement   decimal.Decimal
	ReductionThreshold decimal.Decimal
	ReductionRate      decimal.Decimal
}

// OldAgeSecurityParameters drives the OAS pension with its recovery tax and
// the guaranteed income supplement.
type OldAgeSecurityParameters struct {
	AnnualPension     decimal.Decimal
	Age75Multiplier   decimal.Decimal
	EligibilityAge    int
	ClawbackThreshold decimal.Decimal
	ClawbackRate      decimal.Decimal

	GISMaxSingle     decimal.Decimal
	GISMaxPerSpouse  decimal.Decimal
	GISReductionRate decimal.Decimal
}

// SeniorAssistanceParameters drives the Québec senior assistance amount.
type SeniorAssistanceParameters struct {
	EligibilityAge           int
	MaxSingle                decimal.Decimal
	MaxCouple                decimal.Decimal
	ReductionThresholdSingle decimal.Decimal
	ReductionThresholdCouple decimal.Decimal
	ReductionRate            decimal.Decimal
}

// SocialAssistanceParameters drives last-resort financial assistance.
type SocialAssistanceParameters struct {
	BaseSingle                decimal.Decimal
	BaseCouple                decimal.Decimal
	WorkIncomeExclusionSingle decimal.Decimal
	WorkIncomeExclusionCouple decimal.Decimal
}
