package params

import "github.com/shopspring/decimal"

// year2024 holds the published 2024 parameters.
//
// Sources: Revenu Québec TP-1 schedules and rate tables, Retraite Québec
// RRQ contribution table, CEIC premium rate notice, Retraite Québec family
// allowance table, CRA indexed amounts for 2024.
func year2024() *Parameters {
	return &Parameters{
		Year: 2024,

		QPP: &QPPParameters{
			BasicExemption:           amt("3500"),
			FirstCeiling:             amt("68500"),
			SecondCeiling:            amt("73200"),
			FirstTierRate:            amt("0.064"),
			SecondTierRate:           amt("0.04"),
			FirstTierEnhancementRate: amt("0.01"),
			SelfEmployedMultiplier:   amt("2"),
			RetirementExemptAge:      65,
			MaxContributionAge:       72,
		},

		EI: &EIParameters{
			MaxInsurableEarnings: amt("63200"),
			EmployeeRate:         amt("0.0132"),
			EmployerMultiplier:   amt("1.4"),
			RetirementExemptAge:  65,
		},

		QPIP: &QPIPParameters{
			MaxInsurableEarnings: amt("94000"),
			EmployeeRate:         amt("0.00495"),
			EmployerRate:         amt("0.00692"),
			SelfEmployedRate:     amt("0.00878"),
			MinEarnings:          amt("2000"),
		},

		QuebecTax: &QuebecTaxParameters{
			Brackets: []TaxBracket{
				{Min: amt("0"), Max: amt("51780"), Rate: amt("0.14")},
				{Min: amt("51780"), Max: amt("103545"), Rate: amt("0.19")},
				{Min: amt("103545"), Max: amt("126000"), Rate: amt("0.24")},
				{Min: amt("126000"), Max: amt("999999999"), Rate: amt("0.2575")},
			},
			WorkerDeductionRate: amt("0.06"),
			WorkerDeductionCap:  amt("1380"),

			BasicAmount:                 amt("18056"),
			AgeAmount:                   amt("3798"),
			PensionAmountMax:            amt("3374"),
			LivingAloneAmount:           amt("2069"),
			LivingAloneSingleParentSupp: amt("2554"),
			CreditReductionThreshold:    amt("42090"),
			CreditReductionRate:         amt("0.1875"),
		},

		FederalTax: &FederalTaxParameters{
			Brackets: []TaxBracket{
				{Min: amt("0"), Max: amt("55867"), Rate: amt("0.15")},
				{Min: amt("55867"), Max: amt("111733"), Rate: amt("0.205")},
				{Min: amt("111733"), Max: amt("173205"), Rate: amt("0.26")},
				{Min: amt("173205"), Max: amt("246752"), Rate: amt("0.29")},
				{Min: amt("246752"), Max: amt("999999999"), Rate: amt("0.33")},
			},
			BasicAmountMax: amt("15705"),
			BasicAmountMin: amt("14156"),
			PhaseoutStart:  amt("173205"),
			PhaseoutEnd:    amt("246752"),

			AgeAmount:              amt("8790"),
			AgeAmountThreshold:     amt("44325"),
			AgeAmountReductionRate: amt("0.15"),
			PensionAmountMax:       amt("2000"),
			EmploymentAmountMax:    amt("1433"),

			AbatementRate: amt("0.165"),
		},

		SolidarityCredit: &SolidarityParameters{
			QSTBase:              amt("346"),
			QSTSpouse:            amt("346"),
			QSTLivingAloneSupp:   amt("120"),
			HousingCouple:        amt("863"),
			HousingSingle:        amt("711"),
			HousingPerChild:      amt("151"),
			ReductionThreshold:   amt("41150"),
			ReductionRate:        amt("0.06"),
			ReductionRateQSTOnly: amt("0.03"),
		},

		WorkPremium: &WorkPremiumParameters{
			Single: WorkPremiumSchedule{
				WorkIncomeExclusion: amt("2400"),
				GrowthRate:          amt("0.116"),
				MaxAmount:           amt("1152.36"),
				ReductionThreshold:  amt("12335.25"),
				ReductionRate:       amt("0.10"),
			},
			Couple: WorkPremiumSchedule{
				WorkIncomeExclusion: amt("3600"),
				GrowthRate:          amt("0.116"),
				MaxAmount:           amt("1797.74"),
				ReductionThreshold:  amt("19101.33"),
				ReductionRate:       amt("0.10"),
			},
			SingleParent: WorkPremiumSchedule{
				WorkIncomeExclusion: amt("2400"),
				GrowthRate:          amt("0.306"),
				MaxAmount:           amt("2986.26"),
				ReductionThreshold:  amt("12158.50"),
				ReductionRate:       amt("0.10"),
			},
			CoupleWithChildren: WorkPremiumSchedule{
				WorkIncomeExclusion: amt("3600"),
				GrowthRate:          amt("0.25"),
				MaxAmount:           amt("3873.65"),
				ReductionThreshold:  amt("19094.60"),
				ReductionRate:       amt("0.10"),
			},
		},

		FamilyAllowance: &FamilyAllowanceParameters{
			MaxPerChild:              amt("2923"),
			MinPerChild:              amt("1163"),
			SingleParentSuppMax:      amt("1024"),
			SingleParentSuppMin:      amt("408"),
			ReductionThresholdCouple: amt("57822"),
			ReductionThresholdSingle: amt("42136"),
			ReductionRate:            amt("0.04"),
		},

		ChildBenefit: &ChildBenefitParameters{
			MaxPerChildUnder6: amt("7787"),
			MaxPerChild6To17:  amt("6570"),
			Threshold1:        amt("36502"),
			Threshold2:        amt("79087"),
			Rates1:            []decimal.Decimal{amt("0.07"), amt("0.135"), amt("0.19"), amt("0.23")},
			Rates2:            []decimal.Decimal{amt("0.032"), amt("0.057"), amt("0.08"), amt("0.095")},
		},

		GSTCredit: &GSTCreditParameters{
			BaseAmount:         amt("340"),
			SpouseAmount:       amt("340"),
			PerChildAmount:     amt("179"),
			SingleSupplement:   amt("179"),
			ReductionThreshold: amt("44324"),
			ReductionRate:      amt("0.05"),
		},

		OldAgeSecurity: &OldAgeSecurityParameters{
			AnnualPension:     amt("8560.08"),
			Age75Multiplier:   amt("1.10"),
			EligibilityAge:    65,
			ClawbackThreshold: amt("90997"),
			ClawbackRate:      amt("0.15"),

			GISMaxSingle:     amt("12785.28"),
			GISMaxPerSpouse:  amt("7695.48"),
			GISReductionRate: amt("0.50"),
		},

		SeniorAssistance: &SeniorAssistanceParameters{
			EligibilityAge:           70,
			MaxSingle:                amt("2000"),
			MaxCouple:                amt("4000"),
			ReductionThresholdSingle: amt("27065"),
			ReductionThresholdCouple: amt("44015"),
			ReductionRate:            amt("0.054"),
		},

		SocialAssistance: &SocialAssistanceParameters{
			BaseSingle:                amt("9240"),
			BaseCouple:                amt("14304"),
			WorkIncomeExclusionSingle: amt("2400"),
			WorkIncomeExclusionCouple: amt("3600"),
		},
	}
}
