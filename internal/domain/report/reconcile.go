package report

import (
	"github.com/shopspring/decimal"
)

// Reconciliation tolerances. A consistency rule holds when the absolute
// difference between actual and expected stays within the tolerance.
var (
	// LineTolerance applies to per-line checks: one minor currency unit.
	LineTolerance = decimal.NewFromInt(1)
	// ReportTolerance applies to aggregate, report-wide totals.
	ReportTolerance = decimal.NewFromInt(10)
	// PercentTolerance applies to variance-percentage checks, in percentage points.
	PercentTolerance = decimal.RequireFromString("0.1")
	// AllocationTolerance applies to quarterly allocation sums.
	AllocationTolerance = decimal.RequireFromString("0.01")
)

// Reconciles reports whether actual matches expected within the tolerance
func Reconciles(actual, expected, tolerance decimal.Decimal) bool {
	return actual.Sub(expected).Abs().LessThanOrEqual(tolerance)
}

// ReconcilesLine reports whether a per-line amount matches within one minor unit
func ReconcilesLine(actual, expected decimal.Decimal) bool {
	return Reconciles(actual, expected, LineTolerance)
}

// ReconcilesReport reports whether a report-wide total matches within ten minor units
func ReconcilesReport(actual, expected decimal.Decimal) bool {
	return Reconciles(actual, expected, ReportTolerance)
}

// ReconcilesPercent reports whether a percentage matches within 0.1 points
func ReconcilesPercent(actual, expected decimal.Decimal) bool {
	return Reconciles(actual, expected, PercentTolerance)
}

// PercentOf returns amount * pct / 100
func PercentOf(amount, pct decimal.Decimal) decimal.Decimal {
	return amount.Mul(pct).Div(decimal.NewFromInt(100))
}

// VariancePct returns (planned - previous) / previous * 100.
// The caller must guarantee previous is non-zero.
func VariancePct(planned, previous decimal.Decimal) decimal.Decimal {
	return planned.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100))
}

var hundred = decimal.NewFromInt(100)

// ValidPercentage reports whether pct lies within [0, 100]
func ValidPercentage(pct decimal.Decimal) bool {
	return !pct.IsNegative() && pct.LessThanOrEqual(hundred)
}
