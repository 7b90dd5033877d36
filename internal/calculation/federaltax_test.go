package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"revdisp/internal/domain"
)

func TestFederalBasicPersonalAmount2024(t *testing.T) {
	calc, err := NewFederalTaxCalculator(mustParams(t, 2024))
	require.NoError(t, err)

	tests := []struct {
		name      string
		netIncome string
		expected  string
	}{
		{"below phase-out keeps the maximum", "50000", "15705"},
		{"at phase-out start keeps the maximum", "173205", "15705"},
		{"midpoint interpolates linearly", "209978.50", "14930.5"},
		{"at phase-out end hits the minimum", "246752", "14156"},
		{"above phase-out stays at the minimum", "400000", "14156"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.BasicPersonalAmount(decimal.RequireFromString(tt.netIncome))
			assert.Equal(t, tt.expected, got.String())
		})
	}
}

func TestFederalTaxSingleWorker2024(t *testing.T) {
	calc, err := NewFederalTaxCalculator(mustParams(t, 2024))
	require.NoError(t, err)

	hh := &domain.Household{
		Type:          domain.HouseholdSingle,
		PrimaryPerson: domain.Person{Age: 35, GrossWorkIncome: decimal.NewFromInt(45000)},
	}
	inputs := domain.CalculationResult{
		domain.FieldQPPBase:      decimal.RequireFromString("2656.00"),
		domain.FieldEIEmployee:   decimal.RequireFromString("594.00"),
		domain.FieldQPIPEmployee: decimal.RequireFromString("222.75"),
	}

	result, err := calc.Calculate(hh, inputs)
	require.NoError(t, err)

	// only the enhanced share deducts: 2656 x (0.01/0.064) = 415.00
	assert.Equal(t, "44585.00", result.Get(domain.FieldFedNetIncomePrimary).StringFixed(2))
	assert.Equal(t, "6687.75", result.Get(domain.FieldFedGrossTaxPrimary).StringFixed(2))
	// (15705 + 1433 + 2241 + 594 + 222.75) x 15%
	assert.Equal(t, "3029.36", result.Get(domain.FieldFedCreditsPrimary).StringFixed(2))
	// abatement applies to the post-credit base: 3658.3875 x (1 - 0.165)
	assert.Equal(t, "3054.75", result.Get(domain.FieldFedNetTaxPrimary).StringFixed(2))
	assert.Equal(t, "3054.75", result.Get(domain.FieldFedNetTaxCombined).StringFixed(2))
}

func TestFederalTaxAgeAmountReduction(t *testing.T) {
	calc, err := NewFederalTaxCalculator(mustParams(t, 2024))
	require.NoError(t, err)

	build := func(income int64, age int) domain.CalculationResult {
		hh := &domain.Household{
			Type: domain.HouseholdRetiredSingle,
			PrimaryPerson: domain.Person{
				Age:                   age,
				GrossRetirementIncome: decimal.NewFromInt(income),
				IsRetired:             true,
			},
		}
		result, err := calc.Calculate(hh, domain.CalculationResult{})
		require.NoError(t, err)
		return result
	}

	// age 70 at 50000: age amount 8790 - 15% x (50000 - 44325) = 7938.75,
	// plus pension credit capped at 2000
	low := build(50000, 70)
	expected := decimal.RequireFromString("15705").
		Add(decimal.RequireFromString("7938.75")).
		Add(decimal.NewFromInt(2000)).
		Mul(decimal.RequireFromString("0.15"))
	assert.Equal(t, expected.Round(2).StringFixed(2), low.Get(domain.FieldFedCreditsPrimary).StringFixed(2))

	// high income exhausts the age amount entirely but never below zero
	high := build(150000, 70)
	withoutAge := build(150000, 64)
	assert.Equal(t,
		withoutAge.Get(domain.FieldFedCreditsPrimary).StringFixed(2),
		high.Get(domain.FieldFedCreditsPrimary).StringFixed(2),
		"fully reduced age amount must contribute nothing")
}

func TestFederalTaxSpouseCreditTransfer(t *testing.T) {
	calc, err := NewFederalTaxCalculator(mustParams(t, 2024))
	require.NoError(t, err)

	spouse := domain.Person{Age: 35}
	hh := &domain.Household{
		Type:          domain.HouseholdCouple,
		PrimaryPerson: domain.Person{Age: 35, GrossWorkIncome: decimal.NewFromInt(90000)},
		Spouse:        &spouse,
	}
	result, err := calc.Calculate(hh, domain.CalculationResult{})
	require.NoError(t, err)

	assert.True(t, result.Get(domain.FieldFedNetTaxSpouse).IsZero())
	combined := result.Get(domain.FieldFedNetTaxCombined)
	primaryAlone := result.Get(domain.FieldFedNetTaxPrimary)
	assert.True(t, combined.Equal(primaryAlone))

	// the transfer must leave combined tax below what the primary would
	// owe without it
	single := &domain.Household{
		Type:          domain.HouseholdSingle,
		PrimaryPerson: hh.PrimaryPerson,
	}
	alone, err := calc.Calculate(single, domain.CalculationResult{})
	require.NoError(t, err)
	assert.True(t, combined.LessThan(alone.Get(domain.FieldFedNetTaxPrimary)),
		"spouse's unused credits must reduce the couple's combined tax")
}

func TestFederalTaxRequiresQPPParameters(t *testing.T) {
	cfg := mustParams(t, 2024)
	stripped := *cfg
	stripped.QPP = nil
	_, err := NewFederalTaxCalculator(&stripped)
	require.ErrorIs(t, err, domain.ErrMissingParameters)
}
