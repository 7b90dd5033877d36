package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"revdisp/internal/domain"
)

func TestSocialAssistance2024(t *testing.T) {
	calc, err := NewSocialAssistanceCalculator(mustParams(t, 2024))
	require.NoError(t, err)

	tests := []struct {
		name     string
		hh       *domain.Household
		expected string
	}{
		{
			"single with no income gets the full base",
			&domain.Household{
				Type:          domain.HouseholdSingle,
				PrimaryPerson: domain.Person{Age: 30},
			},
			"9240.00",
		},
		{
			"work income above the exclusion counts",
			&domain.Household{
				Type:          domain.HouseholdSingle,
				PrimaryPerson: domain.Person{Age: 30, GrossWorkIncome: decimal.NewFromInt(5000)},
			},
			// 9240 - (5000 - 2400)
			"6640.00",
		},
		{
			"work income below the exclusion is ignored",
			&domain.Household{
				Type:          domain.HouseholdSingle,
				PrimaryPerson: domain.Person{Age: 30, GrossWorkIncome: decimal.NewFromInt(2000)},
			},
			"9240.00",
		},
		{
			"couple base with couple exclusion",
			&domain.Household{
				Type:          domain.HouseholdCouple,
				PrimaryPerson: domain.Person{Age: 30, GrossWorkIncome: decimal.NewFromInt(4000)},
				Spouse:        &domain.Person{Age: 30},
			},
			// 14304 - (4000 - 3600)
			"13904.00",
		},
		{
			"high earners receive nothing",
			&domain.Household{
				Type:          domain.HouseholdSingle,
				PrimaryPerson: domain.Person{Age: 30, GrossWorkIncome: decimal.NewFromInt(45000)},
			},
			"0.00",
		},
		{
			"retired households fall under the pension programs",
			&domain.Household{
				Type:          domain.HouseholdRetiredSingle,
				PrimaryPerson: domain.Person{Age: 70, GrossRetirementIncome: decimal.NewFromInt(3000), IsRetired: true},
			},
			"0.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := calc.Calculate(tt.hh, domain.CalculationResult{})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.Get("social_assistance").StringFixed(2))
		})
	}
}
