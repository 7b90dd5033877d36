package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHouseholdValidate(t *testing.T) {
	tests := []struct {
		name     string
		hh       Household
		wantErr  bool
		errField string
	}{
		{
			name: "valid single",
			hh: Household{
				Type:          HouseholdSingle,
				PrimaryPerson: Person{Age: 30, GrossWorkIncome: decimal.NewFromInt(40000)},
			},
		},
		{
			name: "valid couple with children",
			hh: Household{
				Type:          HouseholdCouple,
				PrimaryPerson: Person{Age: 35, GrossWorkIncome: decimal.NewFromInt(60000)},
				Spouse:        &Person{Age: 33},
				Children:      []Child{{Age: 4}},
			},
		},
		{
			name: "valid retired couple",
			hh: Household{
				Type:          HouseholdRetiredCouple,
				PrimaryPerson: Person{Age: 70, GrossRetirementIncome: decimal.NewFromInt(30000), IsRetired: true},
				Spouse:        &Person{Age: 68, IsRetired: true},
			},
		},
		{
			name:     "unknown household type",
			hh:       Household{Type: "commune", PrimaryPerson: Person{Age: 30}},
			wantErr:  true,
			errField: "household_type",
		},
		{
			name: "couple requires a spouse",
			hh: Household{
				Type:          HouseholdCouple,
				PrimaryPerson: Person{Age: 35},
			},
			wantErr:  true,
			errField: "spouse",
		},
		{
			name: "single cannot declare a spouse",
			hh: Household{
				Type:          HouseholdSingle,
				PrimaryPerson: Person{Age: 35},
				Spouse:        &Person{Age: 35},
			},
			wantErr:  true,
			errField: "spouse",
		},
		{
			name: "single cannot declare children",
			hh: Household{
				Type:          HouseholdSingle,
				PrimaryPerson: Person{Age: 35},
				Children:      []Child{{Age: 4}},
			},
			wantErr:  true,
			errField: "children",
		},
		{
			name: "negative work income",
			hh: Household{
				Type:          HouseholdSingle,
				PrimaryPerson: Person{Age: 35, GrossWorkIncome: decimal.NewFromInt(-1)},
			},
			wantErr:  true,
			errField: "primary_person.gross_work_income",
		},
		{
			name: "negative spouse age",
			hh: Household{
				Type:          HouseholdCouple,
				PrimaryPerson: Person{Age: 35},
				Spouse:        &Person{Age: -1},
			},
			wantErr:  true,
			errField: "spouse.age",
		},
		{
			name: "negative child age",
			hh: Household{
				Type:          HouseholdSingleParent,
				PrimaryPerson: Person{Age: 35},
				Children:      []Child{{Age: -2}},
			},
			wantErr:  true,
			errField: "children[0].age",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.hh.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var invalid *InvalidHouseholdError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.errField, invalid.Field)
		})
	}
}

func TestHouseholdIncomeSums(t *testing.T) {
	spouse := Person{
		Age:                   40,
		GrossWorkIncome:       decimal.NewFromInt(20000),
		GrossRetirementIncome: decimal.NewFromInt(5000),
	}
	hh := &Household{
		Type: HouseholdCouple,
		PrimaryPerson: Person{
			Age:                40,
			GrossWorkIncome:    decimal.NewFromInt(50000),
			SelfEmployedIncome: decimal.NewFromInt(10000),
		},
		Spouse: &spouse,
	}

	assert.Equal(t, 2, hh.NumAdults())
	assert.Equal(t, "85000", hh.TotalGrossIncome().String())
	assert.Equal(t, "80000", hh.TotalWorkIncome().String(),
		"retirement income is not earned income")
	assert.Len(t, hh.Adults(), 2)
}
