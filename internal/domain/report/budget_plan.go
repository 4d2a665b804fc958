package report

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Budget expense totals above 1.2x revenue draw a (non-blocking) warning.
var deficitWarningRatio = decimal.RequireFromString("1.2")

// BudgetPlanValidator checks the RAPB: quarterly allocations per line must
// sum to 100, supplied variance percentages must match the derived value,
// and a planned deficit beyond the warning ratio is surfaced without
// blocking persistence.
type BudgetPlanValidator struct{}

// ReportType returns the report type this validator handles
func (v *BudgetPlanValidator) ReportType() ReportType {
	return ReportTypeBudgetPlan
}

// Validate runs the budget plan rule set
func (v *BudgetPlanValidator) Validate(input *ReportInput, baseline *ReportInput) Violations {
	lines := input.Lines.BudgetLines
	var violations Violations

	if len(lines) == 0 {
		violations = append(violations, NewViolation("lines", "WRONG_LINE_KIND",
			"Budget plan requires budget lines"))
		return violations
	}

	var totalRevenue, totalExpense decimal.Decimal
	for i, line := range lines {
		field := func(f string) string { return fmt.Sprintf("lines[%d].%s", i, f) }

		if !line.Category.IsValid() {
			violations = append(violations, NewViolation(field("category"), "INVALID_CATEGORY",
				fmt.Sprintf("Budget category %q is not valid", line.Category)))
		}
		violations = append(violations, requireText(field("item"), line.Item, 200)...)
		if !line.Priority.IsValid() {
			violations = append(violations, NewViolation(field("priority"), "INVALID_PRIORITY",
				fmt.Sprintf("Budget priority %q is not valid", line.Priority)))
		}
		violations = append(violations, checkAmount(field("plannedAmount"), line.PlannedAmount, true)...)
		violations = append(violations, checkAmount(field("previousActual"), line.PreviousActual, true)...)

		for _, q := range []struct {
			name string
			pct  decimal.Decimal
		}{
			{"q1Allocation", line.Q1Allocation},
			{"q2Allocation", line.Q2Allocation},
			{"q3Allocation", line.Q3Allocation},
			{"q4Allocation", line.Q4Allocation},
		} {
			if !ValidPercentage(q.pct) {
				violations = append(violations, NewViolation(field(q.name), "INVALID_PERCENTAGE",
					"Quarterly allocation must be between 0 and 100"))
			}
		}

		// Lines with no allocation at all are allowed; once any quarter is
		// allocated the four must cover the full year.
		if line.HasAllocation() {
			sum := line.AllocationSum()
			if !Reconciles(sum, hundred, AllocationTolerance) {
				violations = append(violations, NewViolation(field("q1Allocation"), "ALLOCATION_SUM",
					fmt.Sprintf("Quarterly allocations sum to %s, expected 100", sum.StringFixed(2))))
			}
		}

		if line.VariancePct != nil && line.PreviousActual.IsPositive() {
			expected := VariancePct(line.PlannedAmount, line.PreviousActual)
			if !ReconcilesPercent(*line.VariancePct, expected) {
				violations = append(violations, NewViolation(field("variancePct"), "VARIANCE_MISMATCH",
					fmt.Sprintf("Variance %s%% does not match derived value %s%%",
						line.VariancePct.StringFixed(2), expected.StringFixed(2))))
			}
		}

		switch line.Category {
		case BudgetCategoryRevenue:
			totalRevenue = totalRevenue.Add(line.PlannedAmount)
		case BudgetCategoryExpense:
			totalExpense = totalExpense.Add(line.PlannedAmount)
		}
	}

	if totalExpense.GreaterThan(totalRevenue.Mul(deficitWarningRatio)) {
		violations = append(violations, NewWarning("lines", "BUDGET_DEFICIT",
			fmt.Sprintf("Planned expenses %s exceed 120%% of planned revenue %s",
				totalExpense.StringFixed(2), totalRevenue.StringFixed(2))))
	}

	return violations
}
