// Package calculation implements the statutory calculators and the engine
// that sequences them. Every calculator is a pure function of its inputs
// and its bound year parameters; the engine is the only component that
// routes one calculator's output into another's input.
package calculation

import (
	"github.com/shopspring/decimal"

	"revdisp/internal/domain"
	"revdisp/internal/params"
)

// Calculator is the shared contract every rule implements. Construction
// binds a fiscal year's parameters and fails fast when the needed block is
// absent. Calculate receives the household snapshot plus the merged outputs
// of every calculator that ran before it, and returns a fresh named-decimal
// map. Published monetary amounts are quantized to cents; intermediate
// arithmetic stays at full precision.
type Calculator interface {
	Name() string
	Calculate(hh *domain.Household, inputs domain.CalculationResult) (domain.CalculationResult, error)
}

// roundCents quantizes a published amount to 2 decimal places, half away
// from zero, which matches the statutory half-up rounding for the
// non-negative amounts this engine publishes.
func roundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// floorZero clamps a value at zero.
func floorZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// bracketTax walks an ordered, non-overlapping bracket schedule and
// accumulates rate x slice for every bracket below the taxable income. The
// result is monotone in income and continuous at every bracket boundary.
func bracketTax(brackets []params.TaxBracket, taxable decimal.Decimal) decimal.Decimal {
	var total decimal.Decimal
	for _, b := range brackets {
		if taxable.LessThanOrEqual(b.Min) {
			break
		}
		slice := decimal.Min(taxable, b.Max).Sub(b.Min)
		if slice.GreaterThan(decimal.Zero) {
			total = total.Add(slice.Mul(b.Rate))
		}
	}
	return total
}

// lowestRate returns the first bracket's rate, the statutory conversion
// rate for non-refundable credit amounts.
func lowestRate(brackets []params.TaxBracket) decimal.Decimal {
	if len(brackets) == 0 {
		return decimal.Zero
	}
	return brackets[0].Rate
}

// linearReduction returns rate x max(0, income - threshold). It is a pure
// function: reapplying it to the same inputs yields the same amount.
func linearReduction(income, threshold, rate decimal.Decimal) decimal.Decimal {
	excess := income.Sub(threshold)
	if excess.IsNegative() {
		return decimal.Zero
	}
	return excess.Mul(rate)
}

// applyCreditTransfer moves one spouse's negative net tax (credits in
// excess of tax owed) onto the other spouse, then clamps both at zero.
// The surplus must transfer before clamping; clamping first would discard
// transferable credit.
func applyCreditTransfer(a, b decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	if a.IsNegative() && b.IsPositive() {
		b = b.Add(a)
		a = decimal.Zero
	} else if b.IsNegative() && a.IsPositive() {
		a = a.Add(b)
		b = decimal.Zero
	}
	return floorZero(a), floorZero(b)
}
