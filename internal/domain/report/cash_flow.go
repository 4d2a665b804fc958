package report

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CashFlowValidator checks the Laporan Arus Kas: the ending cash balance
// must equal beginning cash plus the sum of all non-subtotal activities.
type CashFlowValidator struct{}

// ReportType returns the report type this validator handles
func (v *CashFlowValidator) ReportType() ReportType {
	return ReportTypeCashFlow
}

// Validate runs the cash flow rule set
func (v *CashFlowValidator) Validate(input *ReportInput, baseline *ReportInput) Violations {
	lines := input.Lines.CashFlows
	var violations Violations

	if len(lines) == 0 {
		violations = append(violations, NewViolation("lines", "WRONG_LINE_KIND",
			"Cash flow statement requires activity lines"))
		return violations
	}

	var operatingCount int
	var net decimal.Decimal
	for i, line := range lines {
		field := func(f string) string { return fmt.Sprintf("lines[%d].%s", i, f) }

		if !line.Category.IsValid() {
			violations = append(violations, NewViolation(field("category"), "INVALID_CATEGORY",
				fmt.Sprintf("Cash flow category %q is not valid", line.Category)))
		}
		violations = append(violations, requireText(field("description"), line.Description, 300)...)
		violations = append(violations, checkAmount(field("currentAmount"), line.CurrentAmount, true)...)
		violations = append(violations, checkAmount(field("previousAmount"), line.PreviousAmount, true)...)

		if line.IsSubtotal {
			continue
		}
		if line.Category == CashFlowOperating {
			operatingCount++
		}
		net = net.Add(line.CurrentAmount)
	}

	if operatingCount == 0 {
		violations = append(violations, NewViolation("lines", "MISSING_OPERATING_LINE",
			"Cash flow statement requires at least one operating activity line"))
	}

	if input.BeginningCash == nil {
		violations = append(violations, NewViolation("beginningCashBalance", "REQUIRED",
			"Beginning cash balance is required"))
	} else {
		violations = append(violations, checkAmount("beginningCashBalance", *input.BeginningCash, true)...)
	}
	if input.EndingCash == nil {
		violations = append(violations, NewViolation("endingCashBalance", "REQUIRED",
			"Ending cash balance is required"))
	} else {
		violations = append(violations, checkAmount("endingCashBalance", *input.EndingCash, true)...)
	}

	if input.BeginningCash != nil && input.EndingCash != nil {
		expected := input.BeginningCash.Add(net)
		if !Reconciles(*input.EndingCash, expected, LineTolerance) {
			violations = append(violations, NewViolation("endingCashBalance", "CASH_EQUATION",
				fmt.Sprintf("Ending cash %s does not equal beginning cash plus net activity %s",
					input.EndingCash.StringFixed(2), expected.StringFixed(2))))
		}
	}

	violations = append(violations, checkCashFlowBaseline(lines, baseline)...)

	return violations
}

// checkCashFlowBaseline cross-checks previousAmount per (category,
// description) against the prior period. Warnings only.
func checkCashFlowBaseline(lines []CashFlowActivity, baseline *ReportInput) Violations {
	if baseline == nil || len(baseline.Lines.CashFlows) == 0 {
		return nil
	}

	type key struct {
		category    CashFlowCategory
		description string
	}
	prior := make(map[key]CashFlowActivity, len(baseline.Lines.CashFlows))
	for _, line := range baseline.Lines.CashFlows {
		prior[key{line.Category, line.Description}] = line
	}

	var violations Violations
	for i, line := range lines {
		p, ok := prior[key{line.Category, line.Description}]
		if !ok {
			continue
		}
		if !ReconcilesLine(line.PreviousAmount, p.CurrentAmount) {
			violations = append(violations, NewWarning(fmt.Sprintf("lines[%d].previousAmount", i), "BASELINE_MISMATCH",
				fmt.Sprintf("Previous amount %s does not match prior period amount %s for %q",
					line.PreviousAmount.StringFixed(2), p.CurrentAmount.StringFixed(2), line.Description)))
		}
	}
	return violations
}
