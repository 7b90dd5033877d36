package params

import "github.com/shopspring/decimal"

// year2025 holds the published 2025 parameters.
//
// TODO: the federal lowest rate drops to 14% effective July 2025
// (a 14.5% blended rate for the year); confirm the final blended rate
// against the CRA tables before publishing 2025 results.
func year2025() *Parameters {
	return &Parameters{
		Year: 2025,

		QPP: &QPPParameters{
			BasicExemption:           amt("3500"),
			FirstCeiling:             amt("71300"),
			SecondCeiling:            amt("81200"),
			FirstTierRate:            amt("0.064"),
			SecondTierRate:           amt("0.04"),
			FirstTierEnhancementRate: amt("0.01"),
			SelfEmployedMultiplier:   amt("2"),
			RetirementExemptAge:      65,
			MaxContributionAge:       72,
		},

		EI: &EIParameters{
			MaxInsurableEarnings: amt("65700"),
			EmployeeRate:         amt("0.0131"),
			EmployerMultiplier:   amt("1.4"),
			RetirementExemptAge:  65,
		},

		QPIP: &QPIPParameters{
			MaxInsurableEarnings: amt("98000"),
			EmployeeRate:         amt("0.00494"),
			EmployerRate:         amt("0.00692"),
			SelfEmployedRate:     amt("0.00878"),
			MinEarnings:          amt("2000"),
		},

		QuebecTax: &QuebecTaxParameters{
			Brackets: []TaxBracket{
				{Min: amt("0"), Max: amt("53255"), Rate: amt("0.14")},
				{Min: amt("53255"), Max: amt("106495"), Rate: amt("0.19")},
				{Min: amt("106495"), Max: amt("129590"), Rate: amt("0.24")},
				{Min: amt("129590"), Max: amt("999999999"), Rate: amt("0.2575")},
			},
			WorkerDeductionRate: amt("0.06"),
			WorkerDeductionCap:  amt("1420"),

			BasicAmount:                 amt("18571"),
			AgeAmount:                   amt("3906"),
			PensionAmountMax:            amt("3470"),
			LivingAloneAmount:           amt("2128"),
			LivingAloneSingleParentSupp: amt("2627"),
			CreditReductionThreshold:    amt("43290"),
			CreditReductionRate:         amt("0.1875"),
		},

		FederalTax: &FederalTaxParameters{
			Brackets: []TaxBracket{
				{Min: amt("0"), Max: amt("57375"), Rate: amt("0.15")},
				{Min: amt("57375"), Max: amt("114750"), Rate: amt("0.205")},
				{Min: amt("114750"), Max: amt("177882"), Rate: amt("0.26")},
				{Min: amt("177882"), Max: amt("253414"), Rate: amt("0.29")},
				{Min: amt("253414"), Max: amt("999999999"), Rate: amt("0.33")},
			},
			BasicAmountMax: amt("16129"),
			BasicAmountMin: amt("14538"),
			PhaseoutStart:  amt("177882"),
			PhaseoutEnd:    amt("253414"),

			AgeAmount:              amt("9028"),
			AgeAmountThreshold:     amt("45522"),
			AgeAmountReductionRate: amt("0.15"),
			PensionAmountMax:       amt("2000"),
			EmploymentAmountMax:    amt("1471"),

			AbatementRate: amt("0.165"),
		},

		SolidarityCredit: &SolidarityParameters{
			QSTBase:              amt("356"),
			QSTSpouse:            amt("356"),
			QSTLivingAloneSupp:   amt("124"),
			HousingCouple:        amt("888"),
			HousingSingle:        amt("731"),
			HousingPerChild:      amt("155"),
			ReductionThreshold:   amt("42330"),
			ReductionRate:        amt("0.06"),
			ReductionRateQSTOnly: amt("0.03"),
		},

		WorkPremium: &WorkPremiumParameters{
			Single: WorkPremiumSchedule{
				WorkIncomeExclusion: amt("2400"),
				GrowthRate:          amt("0.116"),
				MaxAmount:           amt("1186.93"),
				ReductionThreshold:  amt("12633.02"),
				ReductionRate:       amt("0.10"),
			},
			Couple: WorkPremiumSchedule{
				WorkIncomeExclusion: amt("3600"),
				GrowthRate:          amt("0.116"),
				MaxAmount:           amt("1851.67"),
				ReductionThreshold:  amt("19566.12"),
				ReductionRate:       amt("0.10"),
			},
			SingleParent: WorkPremiumSchedule{
				WorkIncomeExclusion: amt("2400"),
				GrowthRate:          amt("0.306"),
				MaxAmount:           amt("3075.85"),
				ReductionThreshold:  amt("12452.78"),
				ReductionRate:       amt("0.10"),
			},
			CoupleWithChildren: WorkPremiumSchedule{
				WorkIncomeExclusion: amt("3600"),
				GrowthRate:          amt("0.25"),
				MaxAmount:           amt("3989.86"),
				ReductionThreshold:  amt("19559.44"),
				ReductionRate:       amt("0.10"),
			},
		},

		FamilyAllowance: &FamilyAllowanceParameters{
			MaxPerChild:              amt("3006"),
			MinPerChild:              amt("1196"),
			SingleParentSuppMax:      amt("1055"),
			SingleParentSuppMin:      amt("420"),
			ReductionThresholdCouple: amt("59369"),
			ReductionThresholdSingle: amt("43280"),
			ReductionRate:            amt("0.04"),
		},

		ChildBenefit: &ChildBenefitParameters{
			MaxPerChildUnder6: amt("7997"),
			MaxPerChild6To17:  amt("6748"),
			Threshold1:        amt("37487"),
			Threshold2:        amt("81222"),
			Rates1:            []decimal.Decimal{amt("0.07"), amt("0.135"), amt("0.19"), amt("0.23")},
			Rates2:            []decimal.Decimal{amt("0.032"), amt("0.057"), amt("0.08"), amt("0.095")},
		},

		GSTCredit: &GSTCreditParameters{
			BaseAmount:         amt("349"),
			SpouseAmount:       amt("349"),
			PerChildAmount:     amt("184"),
			SingleSupplement:   amt("184"),
			ReductionThreshold: amt("45521"),
			ReductionRate:      amt("0.05"),
		},

		OldAgeSecurity: &OldAgeSecurityParameters{
			AnnualPension:     amt("8732.28"),
			Age75Multiplier:   amt("1.10"),
			EligibilityAge:    65,
			ClawbackThreshold: amt("93454"),
			ClawbackRate:      amt("0.15"),

			GISMaxSingle:     amt("13131.60"),
			GISMaxPerSpouse:  amt("7904.16"),
			GISReductionRate: amt("0.50"),
		},

		SeniorAssistance: &SeniorAssistanceParameters{
			EligibilityAge:           70,
			MaxSingle:                amt("2000"),
			MaxCouple:                amt("4000"),
			ReductionThresholdSingle: amt("27835"),
			ReductionThresholdCouple: amt("45270"),
			ReductionRate:            amt("0.054"),
		},

		SocialAssistance: &SocialAssistanceParameters{
			BaseSingle:                amt("9624"),
			BaseCouple:                amt("14904"),
			WorkIncomeExclusionSingle: amt("2400"),
			WorkIncomeExclusionCouple: amt("3600"),
		},
	}
}
