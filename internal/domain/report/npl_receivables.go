package report

import (
	"fmt"
)

// NPLReceivablesValidator checks the Laporan Piutang Bermasalah against the
// delinquency classification engine: every declared bucket and provision is
// re-derived from the day-past-due count supplied by the caller.
type NPLReceivablesValidator struct{}

// ReportType returns the report type this validator handles
func (v *NPLReceivablesValidator) ReportType() ReportType {
	return ReportTypeNPLReceivables
}

// Validate runs the NPL receivables rule set
func (v *NPLReceivablesValidator) Validate(input *ReportInput, baseline *ReportInput) Violations {
	lines := input.Lines.NPLReceivables
	var violations Violations

	if len(lines) == 0 {
		violations = append(violations, NewViolation("lines", "WRONG_LINE_KIND",
			"NPL receivables report requires NPL lines"))
		return violations
	}

	seen := make(map[string]int, len(lines))

	for i, line := range lines {
		field := func(f string) string { return fmt.Sprintf("lines[%d].%s", i, f) }

		violations = append(violations, requireText(field("loanNumber"), line.LoanNumber, 50)...)
		if line.LoanNumber != "" {
			if prev, dup := seen[line.LoanNumber]; dup {
				violations = append(violations, NewViolation(field("loanNumber"), "DUPLICATE_LOAN_NUMBER",
					fmt.Sprintf("Loan number %q already used by line %d", line.LoanNumber, prev)))
			} else {
				seen[line.LoanNumber] = i
			}
		}

		violations = append(violations, checkAmount(field("originalLoanAmount"), line.OriginalLoanAmount, false)...)
		violations = append(violations, checkAmount(field("outstandingBalance"), line.OutstandingBalance, false)...)
		violations = append(violations, checkAmount(field("provisionAmount"), line.ProvisionAmount, false)...)

		if line.OutstandingBalance.GreaterThan(line.OriginalLoanAmount) {
			violations = append(violations, NewViolation(field("outstandingBalance"), "EXCEEDS_ORIGINAL_AMOUNT",
				fmt.Sprintf("Outstanding balance %s exceeds original loan amount %s",
					line.OutstandingBalance.StringFixed(2), line.OriginalLoanAmount.StringFixed(2))))
		}

		expected, err := Classify(line.DaysPastDue)
		if err != nil {
			violations = append(violations, NewViolation(field("daysPastDue"), "BELOW_NPL_THRESHOLD",
				fmt.Sprintf("Days past due %d is below the NPL threshold of %d", line.DaysPastDue, MinDaysPastDue)))
			continue
		}

		if line.Classification != expected {
			violations = append(violations, NewViolation(field("classification"), "CLASSIFICATION_MISMATCH",
				fmt.Sprintf("Classification %q does not match %q implied by %d days past due",
					line.Classification, expected, line.DaysPastDue)))
		}

		minPct := MinimumProvisionPct(expected)
		if line.ProvisionPct.LessThan(minPct) {
			violations = append(violations, NewViolation(field("provisionPct"), "PROVISION_BELOW_MINIMUM",
				fmt.Sprintf("Provision %s%% is below the mandated minimum %s%% for %s",
					line.ProvisionPct.StringFixed(2), minPct.StringFixed(0), expected)))
		}
		if !ValidPercentage(line.ProvisionPct) {
			violations = append(violations, NewViolation(field("provisionPct"), "INVALID_PERCENTAGE",
				"Provision percentage must be between 0 and 100"))
		}

		expectedProvision := PercentOf(line.OutstandingBalance, line.ProvisionPct)
		if !Reconciles(line.ProvisionAmount, expectedProvision, LineTolerance) {
			violations = append(violations, NewViolation(field("provisionAmount"), "PROVISION_MISMATCH",
				fmt.Sprintf("Provision amount %s does not equal outstanding balance times provision percentage %s",
					line.ProvisionAmount.StringFixed(2), expectedProvision.StringFixed(2))))
		}
	}

	return violations
}
