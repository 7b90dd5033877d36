package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"revdisp/internal/domain"
	"revdisp/internal/params"
)

func mustParams(t *testing.T, year int) *params.Parameters {
	t.Helper()
	p, err := params.NewStore().Resolve(year)
	require.NoError(t, err)
	return p
}

func TestQPPContribution2024(t *testing.T) {
	calc, err := NewQPPCalculator(mustParams(t, 2024))
	require.NoError(t, err)

	tests := []struct {
		name           string
		person         domain.Person
		expectedBase   string
		expectedSecond string
	}{
		{
			name:           "income at basic exemption",
			person:         domain.Person{Age: 40, GrossWorkIncome: decimal.NewFromInt(3500)},
			expectedBase:   "0",
			expectedSecond: "0",
		},
		{
			name:           "income below basic exemption",
			person:         domain.Person{Age: 40, GrossWorkIncome: decimal.NewFromInt(2000)},
			expectedBase:   "0",
			expectedSecond: "0",
		},
		{
			name:           "income at first ceiling",
			person:         domain.Person{Age: 40, GrossWorkIncome: decimal.NewFromInt(68500)},
			expectedBase:   "4160",
			expectedSecond: "0",
		},
		{
			name:           "income at second ceiling",
			person:         domain.Person{Age: 40, GrossWorkIncome: decimal.NewFromInt(73200)},
			expectedBase:   "4160",
			expectedSecond: "188",
		},
		{
			name:           "income above second ceiling clamps",
			person:         domain.Person{Age: 40, GrossWorkIncome: decimal.NewFromInt(200000)},
			expectedBase:   "4160",
			expectedSecond: "188",
		},
		{
			name:           "retired at 65 is exempt",
			person:         domain.Person{Age: 65, GrossWorkIncome: decimal.NewFromInt(50000), IsRetired: true},
			expectedBase:   "0",
			expectedSecond: "0",
		},
		{
			name:           "working 65 year old still contributes",
			person:         domain.Person{Age: 65, GrossWorkIncome: decimal.NewFromInt(50000)},
			expectedBase:   "2976",
			expectedSecond: "0",
		},
		{
			name:           "past the maximum contribution age",
			person:         domain.Person{Age: 73, GrossWorkIncome: decimal.NewFromInt(50000)},
			expectedBase:   "0",
			expectedSecond: "0",
		},
		{
			name:           "self-employed pays both shares",
			person:         domain.Person{Age: 40, SelfEmployedIncome: decimal.NewFromInt(20000)},
			expectedBase:   "2112", // (20000-3500) x 6.4% x 2
			expectedSecond: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contrib := calc.ForPerson(tt.person)
			assert.True(t, contrib.Base.Equal(decimal.RequireFromString(tt.expectedBase)),
				"base: got %s want %s", contrib.Base, tt.expectedBase)
			assert.True(t, contrib.Second.Equal(decimal.RequireFromString(tt.expectedSecond)),
				"second: got %s want %s", contrib.Second, tt.expectedSecond)
		})
	}
}

func TestQPPSecondTierAbsentBefore2024(t *testing.T) {
	calc, err := NewQPPCalculator(mustParams(t, 2023))
	require.NoError(t, err)

	contrib := calc.ForPerson(domain.Person{Age: 40, GrossWorkIncome: decimal.NewFromInt(150000)})
	// (66600 - 3500) x 6.4%
	assert.Equal(t, "4038.40", contrib.Base.StringFixed(2))
	assert.True(t, contrib.Second.IsZero(), "2023 has no second tier")
}

func TestQPPEnhancedDeduction(t *testing.T) {
	calc, err := NewQPPCalculator(mustParams(t, 2024))
	require.NoError(t, err)

	contrib := QPPContribution{Base: decimal.NewFromInt(4160), Second: decimal.NewFromInt(188)}
	// 4160 x (1.0/6.4) + 188
	assert.Equal(t, "838.00", calc.EnhancedDeduction(contrib).StringFixed(2))
}

func TestQPPCalculatePublishesSpouseFields(t *testing.T) {
	calc, err := NewQPPCalculator(mustParams(t, 2024))
	require.NoError(t, err)

	spouse := domain.Person{Age: 40, GrossWorkIncome: decimal.NewFromInt(30000)}
	hh := &domain.Household{
		Type:          domain.HouseholdCouple,
		PrimaryPerson: domain.Person{Age: 40, GrossWorkIncome: decimal.NewFromInt(45000)},
		Spouse:        &spouse,
	}

	result, err := calc.Calculate(hh, nil)
	require.NoError(t, err)
	assert.Equal(t, "2656.00", result.Get(domain.FieldQPPTotal).StringFixed(2))
	assert.Equal(t, "1696.00", result.Get(domain.SpouseField(domain.FieldQPPTotal)).StringFixed(2))
}

func TestQPPMissingParameters(t *testing.T) {
	_, err := NewQPPCalculator(&params.Parameters{Year: 2024})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingParameters)
}
