package domain

import "github.com/shopspring/decimal"

// CalculationResult is the named-decimal map every calculator produces. A
// fresh map is constructed per invocation and never reused across
// households.
type CalculationResult map[string]decimal.Decimal

// Get returns the named amount, or zero when the calculator did not publish
// that field.
func (r CalculationResult) Get(name string) decimal.Decimal {
	if v, ok := r[name]; ok {
		return v
	}
	return decimal.Zero
}

// Well-known result field names. Contribution calculators publish per-person
// amounts; the tax engines publish per-filer and combined amounts.
const (
	FieldQPPBase      = "qpp_base"
	FieldQPPSecond    = "qpp_second"
	FieldQPPTotal     = "qpp_total"
	FieldEIEmployee   = "ei_employee"
	FieldEIEmployer   = "ei_employer"
	FieldQPIPEmployee = "qpip_employee"
	FieldQPIPEmployer = "qpip_employer"

	FieldQCGrossTaxPrimary   = "qc_gross_tax_primary"
	FieldQCGrossTaxSpouse    = "qc_gross_tax_spouse"
	FieldQCCreditsPrimary    = "qc_credits_primary"
	FieldQCCreditsSpouse     = "qc_credits_spouse"
	FieldQCNetTaxPrimary     = "qc_net_tax_primary"
	FieldQCNetTaxSpouse      = "qc_net_tax_spouse"
	FieldQCNetTaxCombined    = "qc_net_tax_combined"
	FieldQCNetIncomePrimary  = "qc_net_income_primary"
	FieldQCNetIncomeSpouse   = "qc_net_income_spouse"
	FieldQCNetIncomeCombined = "qc_net_income_combined"

	FieldFedGrossTaxPrimary   = "fed_gross_tax_primary"
	FieldFedGrossTaxSpouse    = "fed_gross_tax_spouse"
	FieldFedCreditsPrimary    = "fed_credits_primary"
	FieldFedCreditsSpouse     = "fed_credits_spouse"
	FieldFedNetTaxPrimary     = "fed_net_tax_primary"
	FieldFedNetTaxSpouse      = "fed_net_tax_spouse"
	FieldFedNetTaxCombined    = "fed_net_tax_combined"
	FieldFedNetIncomePrimary  = "fed_net_income_primary"
	FieldFedNetIncomeSpouse   = "fed_net_income_spouse"
	FieldFedNetIncomeCombined = "fed_net_income_combined"

	// FieldMeansTestApprox is published (with value one) by a benefit
	// calculator that had to fall back to gross income because the family
	// net income was not among its inputs.
	FieldMeansTestApprox = "means_test_approx"

	// SpouseSuffix marks the spouse's copy of a per-person field.
	SpouseSuffix = "_spouse"
)

// SpouseField returns the spouse's copy of a per-person field name.
func SpouseField(name string) string { return name + SpouseSuffix }

// PersonContributions collects one adult's social-insurance contributions.
type PersonContributions struct {
	QPPBase   decimal.Decimal `json:"qppBase"`
	QPPSecond decimal.Decimal `json:"qppSecond"`
	QPP       decimal.Decimal `json:"qpp"`
	EI        decimal.Decimal `json:"ei"`
	QPIP      decimal.Decimal `json:"qpip"`
}

// Total returns the sum the person actually pays out of gross income.
func (pc PersonContributions) Total() decimal.Decimal {
	return pc.QPP.Add(pc.EI).Add(pc.QPIP)
}

// PersonTax is one filer's result under one jurisdiction.
type PersonTax struct {
	GrossTax  decimal.Decimal `json:"grossTax"`
	Credits   decimal.Decimal `json:"credits"`
	NetTax    decimal.Decimal `json:"netTax"`
	NetIncome decimal.Decimal `json:"netIncome"`
}

// JurisdictionTax is a tax engine's full household output: per-filer results
// plus the combined figures after the inter-spouse credit transfer.
type JurisdictionTax struct {
	Primary           PersonTax       `json:"primary"`
	Spouse            *PersonTax      `json:"spouse,omitempty"`
	CombinedNetTax    decimal.Decimal `json:"combinedNetTax"`
	CombinedNetIncome decimal.Decimal `json:"combinedNetIncome"`
}

// BenefitAmounts holds the net amount of each income-tested program. Every
// program is computed once per household.
type BenefitAmounts struct {
	SolidarityCredit       decimal.Decimal `json:"solidarityCredit"`
	WorkPremium            decimal.Decimal `json:"workPremium"`
	FamilyAllowance        decimal.Decimal `json:"familyAllowance"`
	ChildBenefit           decimal.Decimal `json:"childBenefit"`
	GSTCredit              decimal.Decimal `json:"gstCredit"`
	OldAgeSecurity         decimal.Decimal `json:"oldAgeSecurity"`
	GuaranteedIncomeSupp   decimal.Decimal `json:"guaranteedIncomeSupplement"`
	SeniorAssistanceAmount decimal.Decimal `json:"seniorAssistanceAmount"`
	SocialAssistance       decimal.Decimal `json:"socialAssistance"`
}

// Total sums every program's net amount.
func (b BenefitAmounts) Total() decimal.Decimal {
	return b.SolidarityCredit.
		Add(b.WorkPremium).
		Add(b.FamilyAllowance).
		Add(b.ChildBenefit).
		Add(b.GSTCredit).
		Add(b.OldAgeSecurity).
		Add(b.GuaranteedIncomeSupp).
		Add(b.SeniorAssistanceAmount).
		Add(b.SocialAssistance)
}

// HouseholdSummary is the output boundary: everything computed for one
// household under one fiscal year's parameters.
type HouseholdSummary struct {
	Year                 int                  `json:"year"`
	GrossIncome          decimal.Decimal      `json:"grossIncome"`
	PrimaryContributions PersonContributions  `json:"primaryContributions"`
	SpouseContributions  *PersonContributions `json:"spouseContributions,omitempty"`
	TotalContributions   decimal.Decimal      `json:"totalContributions"`
	Quebec               JurisdictionTax      `json:"quebec"`
	Federal              JurisdictionTax      `json:"federal"`
	FamilyNetIncome      decimal.Decimal      `json:"familyNetIncome"`
	Benefits             BenefitAmounts       `json:"benefits"`
	TotalBenefits        decimal.Decimal      `json:"totalBenefits"`
	DisposableIncome     decimal.Decimal      `json:"disposableIncome"`

	// ApproximateMeansTest is set when a benefit had to fall back to a
	// gross-income approximation instead of the computed family net income.
	ApproximateMeansTest bool `json:"approximateMeansTest,omitempty"`
}
