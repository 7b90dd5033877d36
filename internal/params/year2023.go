package params

import "github.com/shopspring/decimal"

// year2023 holds the published 2023 parameters. The QPP second tier only
// starts in 2024, so the second ceiling equals the first and the tier-two
// span is empty.
func year2023() *Parameters {
	return &Parameters{
		Year: 2023,

		QPP: &QPPParameters{
			BasicExemption:           amt("3500"),
			FirstCeiling:             amt("66600"),
			SecondCeiling:            amt("66600"),
			FirstTierRate:            amt("0.064"),
			SecondTierRate:           amt("0.04"),
			FirstTierEnhancementRate: amt("0.01"),
			SelfEmployedMultiplier:   amt("2"),
			RetirementExemptAge:      65,
			MaxContributionAge:       72,
		},

		EI: &EIParameters{
			MaxInsurableEarnings: amt("61500"),
			EmployeeRate:         amt("0.0127"),
			EmployerMultiplier:   amt("1.4"),
			RetirementExemptAge:  65,
		},

		QPIP: &QPIPParameters{
			MaxInsurableEarnings: amt("91000"),
			EmployeeRate:         amt("0.00494"),
			EmployerRate:         amt("0.00692"),
			SelfEmployedRate:     amt("0.00878"),
			MinEarnings:          amt("2000"),
		},

		QuebecTax: &QuebecTaxParameters{
			Brackets: []TaxBracket{
				{Min: amt("0"), Max: amt("49275"), Rate: amt("0.14")},
				{Min: amt("49275"), Max: amt("98540"), Rate: amt("0.19")},
				{Min: amt("98540"), Max: amt("119910"), Rate: amt("0.24")},
				{Min: amt("119910"), Max: amt("999999999"), Rate: amt("0.2575")},
			},
			WorkerDeductionRate: amt("0.06"),
			WorkerDeductionCap:  amt("1315"),

			BasicAmount:                 amt("17183"),
			AgeAmount:                   amt("3614"),
			PensionAmountMax:            amt("3211"),
			LivingAloneAmount:           amt("1969"),
			LivingAloneSingleParentSupp: amt("2431"),
			CreditReductionThreshold:    amt("40925"),
			CreditReductionRate:         amt("0.1875"),
		},

		FederalTax: &FederalTaxParameters{
			Brackets: []TaxBracket{
				{Min: amt("0"), Max: amt("53359"), Rate: amt("0.15")},
				{Min: amt("53359"), Max: amt("106717"), Rate: amt("0.205")},
				{Min: amt("106717"), Max: amt("165430"), Rate: amt("0.26")},
				{Min: amt("165430"), Max: amt("235675"), Rate: amt("0.29")},
				{Min: amt("235675"), Max: amt("999999999"), Rate: amt("0.33")},
			},
			BasicAmountMax: amt("15000"),
			BasicAmountMin: amt("13521"),
			PhaseoutStart:  amt("165430"),
			PhaseoutEnd:    amt("235675"),

			AgeAmount:              amt("8396"),
			AgeAmountThreshold:     amt("42335"),
			AgeAmountReductionRate: amt("0.15"),
			PensionAmountMax:       amt("2000"),
			EmploymentAmountMax:    amt("1368"),

			AbatementRate: amt("0.165"),
		},

		SolidarityCredit: &SolidarityParameters{
			QSTBase:              amt("329"),
			QSTSpouse:            amt("329"),
			QSTLivingAloneSupp:   amt("115"),
			HousingCouple:        amt("821"),
			HousingSingle:        amt("677"),
			HousingPerChild:      amt("144"),
			ReductionThreshold:   amt("39160"),
			ReductionRate:        amt("0.06"),
			ReductionRateQSTOnly: amt("0.03"),
		},

		WorkPremium: &WorkPremiumParameters{
			Single: WorkPremiumSchedule{
				WorkIncomeExclusion: amt("2400"),
				GrowthRate:          amt("0.116"),
				MaxAmount:           amt("1095.18"),
				ReductionThreshold:  amt("11841.62"),
				ReductionRate:       amt("0.10"),
			},
			Couple: WorkPremiumSchedule{
				WorkIncomeExclusion: amt("3600"),
				GrowthRate:          amt("0.116"),
				MaxAmount:           amt("1708.62"),
				ReductionThreshold:  amt("18329.14"),
				ReductionRate:       amt("0.10"),
			},
			SingleParent: WorkPremiumSchedule{
				WorkIncomeExclusion: amt("2400"),
				GrowthRate:          amt("0.306"),
				MaxAmount:           amt("2873.16"),
				ReductionThreshold:  amt("11790.42"),
				ReductionRate:       amt("0.10"),
			},
			CoupleWithChildren: WorkPremiumSchedule{
				WorkIncomeExclusion: amt("3600"),
				GrowthRate:          amt("0.25"),
				MaxAmount:           amt("3725.43"),
				ReductionThreshold:  amt("18501.72"),
				ReductionRate:       amt("0.10"),
			},
		},

		FamilyAllowance: &FamilyAllowanceParameters{
			MaxPerChild:              amt("2782"),
			MinPerChild:              amt("1107"),
			SingleParentSuppMax:      amt("977"),
			SingleParentSuppMin:      amt("390"),
			ReductionThresholdCouple: amt("55183"),
			ReductionThresholdSingle: amt("40168"),
			ReductionRate:            amt("0.04"),
		},

		ChildBenefit: &ChildBenefitParameters{
			MaxPerChildUnder6: amt("7437"),
			MaxPerChild6To17:  amt("6275"),
			Threshold1:        amt("34863"),
			Threshold2:        amt("75537"),
			Rates1:            []decimal.Decimal{amt("0.07"), amt("0.135"), amt("0.19"), amt("0.23")},
			Rates2:            []decimal.Decimal{amt("0.032"), amt("0.057"), amt("0.08"), amt("0.095")},
		},

		GSTCredit: &GSTCreditParameters{
			BaseAmount:         amt("325"),
			SpouseAmount:       amt("325"),
			PerChildAmount:     amt("171"),
			SingleSupplement:   amt("171"),
			ReductionThreshold: amt("42335"),
			ReductionRate:      amt("0.05"),
		},

		OldAgeSecurity: &OldAgeSecurityParameters{
			AnnualPension:     amt("8251.32"),
			Age75Multiplier:   amt("1.10"),
			EligibilityAge:    65,
			ClawbackThreshold: amt("86912"),
			ClawbackRate:      amt("0.15"),

			GISMaxSingle:     amt("12312.72"),
			GISMaxPerSpouse:  amt("7412.40"),
			GISReductionRate: amt("0.50"),
		},

		SeniorAssistance: &SeniorAssistanceParameters{
			EligibilityAge:           70,
			MaxSingle:                amt("2000"),
			MaxCouple:                amt("4000"),
			ReductionThresholdSingle: amt("25755"),
			ReductionThresholdCouple: amt("41885"),
			ReductionRate:            amt("0.054"),
		},

		SocialAssistance: &SocialAssistanceParameters{
			BaseSingle:                amt("8700"),
			BaseCouple:                amt("13452"),
			WorkIncomeExclusionSingle: amt("2400"),
			WorkIncomeExclusionCouple: amt("3600"),
		},
	}
}
