package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"revdisp/internal/domain"
)

func netIncomeInputs(income string) domain.CalculationResult {
	return domain.CalculationResult{
		domain.FieldQCNetIncomeCombined: decimal.RequireFromString(income),
	}
}

func TestIncomeTestedAmount(t *testing.T) {
	tests := []struct {
		name     string
		b        incomeTested
		expected string
	}{
		{
			"flat maximum below threshold",
			incomeTested{
				MaxAmount:       decimal.NewFromInt(1000),
				MeansTestIncome: decimal.NewFromInt(20000),
				Threshold:       decimal.NewFromInt(30000),
				ReductionRate:   decimal.RequireFromString("0.05"),
			},
			"1000",
		},
		{
			"linear reduction above threshold",
			incomeTested{
				MaxAmount:       decimal.NewFromInt(1000),
				MeansTestIncome: decimal.NewFromInt(40000),
				Threshold:       decimal.NewFromInt(30000),
				ReductionRate:   decimal.RequireFromString("0.05"),
			},
			"500",
		},
		{
			"never negative",
			incomeTested{
				MaxAmount:       decimal.NewFromInt(1000),
				MeansTestIncome: decimal.NewFromInt(100000),
				Threshold:       decimal.NewFromInt(30000),
				ReductionRate:   decimal.RequireFromString("0.05"),
			},
			"0",
		},
		{
			"growth rate phases the amount in",
			incomeTested{
				MaxAmount:       decimal.NewFromInt(1000),
				GrowthRate:      decimal.RequireFromString("0.10"),
				EligibleBase:    decimal.NewFromInt(4000),
				MeansTestIncome: decimal.Zero,
				Threshold:       decimal.NewFromInt(30000),
				ReductionRate:   decimal.RequireFromString("0.05"),
			},
			"400",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.b.Amount().String())
		})
	}
}

func TestSolidarityCredit2024(t *testing.T) {
	calc, err := NewSolidarityCalculator(mustParams(t, 2024))
	require.NoError(t, err)

	tests := []struct {
		name     string
		hh       *domain.Household
		income   string
		expected string
	}{
		{
			"single living alone below threshold gets the full credit",
			&domain.Household{
				Type:          domain.HouseholdSingle,
				PrimaryPerson: domain.Person{Age: 35, GrossWorkIncome: decimal.NewFromInt(20000)},
			},
			"20000",
			// QST 346 + living alone 120 + housing 711
			"1177.00",
		},
		{
			"reduction above the threshold",
			&domain.Household{
				Type:          domain.HouseholdSingle,
				PrimaryPerson: domain.Person{Age: 35, GrossWorkIncome: decimal.NewFromInt(50000)},
			},
			"50000",
			// 1177 - 6% x (50000 - 41150)
			"646.00",
		},
		{
			"couple with children",
			&domain.Household{
				Type:          domain.HouseholdCouple,
				PrimaryPerson: domain.Person{Age: 35, GrossWorkIncome: decimal.NewFromInt(15000)},
				Spouse:        &domain.Person{Age: 35},
				Children:      []domain.Child{{Age: 3}, {Age: 7}},
			},
			"15000",
			// QST 346 + 346, housing 863 + 2 x 151
			"1857.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := calc.Calculate(tt.hh, netIncomeInputs(tt.income))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.Get("solidarity_credit").StringFixed(2))
			assert.True(t, result.Get(domain.FieldMeansTestApprox).IsZero())
		})
	}
}

func TestSolidarityCreditFlagsApproximateMeansTest(t *testing.T) {
	calc, err := NewSolidarityCalculator(mustParams(t, 2024))
	require.NoError(t, err)

	hh := &domain.Household{
		Type:          domain.HouseholdSingle,
		PrimaryPerson: domain.Person{Age: 35, GrossWorkIncome: decimal.NewFromInt(20000)},
	}
	result, err := calc.Calculate(hh, domain.CalculationResult{})
	require.NoError(t, err)
	assert.Equal(t, "1", result.Get(domain.FieldMeansTestApprox).String(),
		"gross-income fallback must be flagged")
}

func TestWorkPremium2024(t *testing.T) {
	calc, err := NewWorkPremiumCalculator(mustParams(t, 2024))
	require.NoError(t, err)

	tests := []struct {
		name     string
		hh       *domain.Household
		income   string
		expected string
	}{
		{
			"single phasing in",
			&domain.Household{
				Type:          domain.HouseholdSingle,
				PrimaryPerson: domain.Person{Age: 30, GrossWorkIncome: decimal.NewFromInt(5000)},
			},
			"5000",
			// 11.6% of (5000 - 2400)
			"301.60",
		},
		{
			"single at the maximum with reduction",
			&domain.Household{
				Type:          domain.HouseholdSingle,
				PrimaryPerson: domain.Person{Age: 30, GrossWorkIncome: decimal.NewFromInt(20000)},
			},
			"20000",
			// 1152.36 - 10% x (20000 - 12335.25)
			"385.89",
		},
		{
			"single parent uses its own schedule",
			&domain.Household{
				Type:          domain.HouseholdSingleParent,
				PrimaryPerson: domain.Person{Age: 30, GrossWorkIncome: decimal.NewFromInt(15000)},
				Children:      []domain.Child{{Age: 4}},
			},
			"15000",
			// 2986.26 - 10% x (15000 - 12158.50)
			"2702.11",
		},
		{
			"no work income means no premium",
			&domain.Household{
				Type:          domain.HouseholdSingle,
				PrimaryPerson: domain.Person{Age: 30},
			},
			"0",
			"0.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := calc.Calculate(tt.hh, netIncomeInputs(tt.income))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.Get("work_premium").StringFixed(2))
		})
	}
}
