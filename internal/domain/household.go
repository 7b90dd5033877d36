package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// HouseholdType identifies the family situation being evaluated. The set
// mirrors the situations the official calculator accepts.
type HouseholdType string

const (
	HouseholdSingle        HouseholdType = "single"
	HouseholdCouple        HouseholdType = "couple"
	HouseholdSingleParent  HouseholdType = "single_parent"
	HouseholdRetiredSingle HouseholdType = "retired_single"
	HouseholdRetiredCouple HouseholdType = "retired_couple"
)

// HasSpouse reports whether this household type includes a second adult.
func (ht HouseholdType) HasSpouse() bool {
	return ht == HouseholdCouple || ht == HouseholdRetiredCouple
}

// HasChildren reports whether this household type may declare children.
func (ht HouseholdType) HasChildren() bool {
	return ht == HouseholdSingleParent || ht == HouseholdCouple
}

// IsRetiredVariant reports whether the household is a retirement situation.
func (ht HouseholdType) IsRetiredVariant() bool {
	return ht == HouseholdRetiredSingle || ht == HouseholdRetiredCouple
}

// Person is one adult in the household. A Person is built once from the
// request and never mutated; calculators read it by value.
type Person struct {
	Age                   int             `yaml:"age" json:"age"`
	GrossWorkIncome       decimal.Decimal `yaml:"gross_work_income" json:"grossWorkIncome"`
	GrossRetirementIncome decimal.Decimal `yaml:"gross_retirement_income" json:"grossRetirementIncome"`
	SelfEmployedIncome    decimal.Decimal `yaml:"self_employed_income" json:"selfEmployedIncome"`
	IsRetired             bool            `yaml:"is_retired" json:"isRetired"`
}

// TotalIncome returns the person's gross income from every declared source.
func (p Person) TotalIncome() decimal.Decimal {
	return p.GrossWorkIncome.Add(p.GrossRetirementIncome).Add(p.SelfEmployedIncome)
}

// EarnedIncome returns income from work, employed plus self-employed.
// Retirement income is excluded.
func (p Person) EarnedIncome() decimal.Decimal {
	return p.GrossWorkIncome.Add(p.SelfEmployedIncome)
}

// Child is a dependent child; only the age matters for benefit schedules.
type Child struct {
	Age int `yaml:"age" json:"age"`
}

// Household is the immutable snapshot of the people and amounts being
// evaluated for one fiscal year.
type Household struct {
	Type            HouseholdType    `yaml:"household_type" json:"householdType"`
	PrimaryPerson   Person           `yaml:"primary_person" json:"primaryPerson"`
	Spouse          *Person          `yaml:"spouse,omitempty" json:"spouse,omitempty"`
	Children        []Child          `yaml:"children,omitempty" json:"children,omitempty"`
	MedicalExpenses *decimal.Decimal `yaml:"medical_expenses,omitempty" json:"medicalExpenses,omitempty"`
}

// NumChildren returns the declared number of dependent children.
func (hh *Household) NumChildren() int {
	return len(hh.Children)
}

// NumAdults returns 1 or 2 depending on the household type.
func (hh *Household) NumAdults() int {
	if hh.Spouse != nil {
		return 2
	}
	return 1
}

// Adults returns the primary person and, when present, the spouse.
func (hh *Household) Adults() []Person {
	adults := []Person{hh.PrimaryPerson}
	if hh.Spouse != nil {
		adults = append(adults, *hh.Spouse)
	}
	return adults
}

// TotalGrossIncome sums gross income across every adult.
func (hh *Household) TotalGrossIncome() decimal.Decimal {
	total := hh.PrimaryPerson.TotalIncome()
	if hh.Spouse != nil {
		total = total.Add(hh.Spouse.TotalIncome())
	}
	return total
}

// TotalWorkIncome sums earned income across every adult.
func (hh *Household) TotalWorkIncome() decimal.Decimal {
	total := hh.PrimaryPerson.EarnedIncome()
	if hh.Spouse != nil {
		total = total.Add(hh.Spouse.EarnedIncome())
	}
	return total
}

// Validate checks the structural invariants of the household. It is called
// once at the engine entry point so individual calculators can assume a
// well-formed household and never coerce bad input to zero.
func (hh *Household) Validate() error {
	switch hh.Type {
	case HouseholdSingle, HouseholdCouple, HouseholdSingleParent,
		HouseholdRetiredSingle, HouseholdRetiredCouple:
	default:
		return &InvalidHouseholdError{Field: "household_type", Reason: fmt.Sprintf("unknown type %q", hh.Type)}
	}

	if hh.Spouse != nil && !hh.Type.HasSpouse() {
		return &InvalidHouseholdError{Field: "spouse", Reason: fmt.Sprintf("spouse not allowed for %s household", hh.Type)}
	}
	if hh.Spouse == nil && hh.Type.HasSpouse() {
		return &InvalidHouseholdError{Field: "spouse", Reason: fmt.Sprintf("spouse required for %s household", hh.Type)}
	}
	if len(hh.Children) > 0 && !hh.Type.HasChildren() {
		return &InvalidHouseholdError{Field: "children", Reason: fmt.Sprintf("children not allowed for %s household", hh.Type)}
	}

	if err := validatePerson("primary_person", hh.PrimaryPerson); err != nil {
		return err
	}
	if hh.Spouse != nil {
		if err := validatePerson("spouse", *hh.Spouse); err != nil {
			return err
		}
	}
	for i, child := range hh.Children {
		if child.Age < 0 {
			return &InvalidHouseholdError{Field: fmt.Sprintf("children[%d].age", i), Reason: "age cannot be negative"}
		}
	}
	if hh.MedicalExpenses != nil && hh.MedicalExpenses.IsNegative() {
		return &InvalidHouseholdError{Field: "medical_expenses", Reason: "amount cannot be negative"}
	}
	return nil
}

func validatePerson(field string, p Person) error {
	if p.Age < 0 {
		return &InvalidHouseholdError{Field: field + ".age", Reason: "age cannot be negative"}
	}
	if p.GrossWorkIncome.IsNegative() {
		return &InvalidHouseholdError{Field: field + ".gross_work_income", Reason: "income cannot be negative"}
	}
	if p.GrossRetirementIncome.IsNegative() {
		return &InvalidHouseholdError{Field: field + ".gross_retirement_income", Reason: "income cannot be negative"}
	}
	if p.SelfEmployedIncome.IsNegative() {
		return &InvalidHouseholdError{Field: field + ".self_employed_income", Reason: "income cannot be negative"}
	}
	return nil
}
