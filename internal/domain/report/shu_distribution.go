package report

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// maxSHUTaxRate is the highest plausible withholding rate on a member's SHU
// share. An implied rate above this almost always signals a data entry error.
var maxSHUTaxRate = decimal.NewFromInt(25)

// SHUDistributionValidator checks the Laporan Pembagian SHU: every member row
// must reconcile internally and the grand total must match the reported
// distributable surplus.
type SHUDistributionValidator struct{}

// ReportType returns the report type this validator handles
func (v *SHUDistributionValidator) ReportType() ReportType {
	return ReportTypeSHUDistribution
}

// Validate runs the SHU distribution rule set
func (v *SHUDistributionValidator) Validate(input *ReportInput, baseline *ReportInput) Violations {
	lines := input.Lines.SHUDistributions
	var violations Violations

	if len(lines) == 0 {
		violations = append(violations, NewViolation("lines", "WRONG_LINE_KIND",
			"SHU distribution report requires distribution lines"))
		return violations
	}

	if input.TotalSHU == nil {
		violations = append(violations, NewViolation("totalSHU", "REQUIRED",
			"Total distributable SHU is required"))
	}

	seen := make(map[string]int, len(lines))
	grandTotal := decimal.Zero

	for i, line := range lines {
		field := func(f string) string { return fmt.Sprintf("lines[%d].%s", i, f) }

		key := line.MemberID.String()
		if prev, dup := seen[key]; dup {
			violations = append(violations, NewViolation(field("memberId"), "DUPLICATE_MEMBER",
				fmt.Sprintf("Member %s already has a distribution on line %d", key, prev)))
		} else {
			seen[key] = i
		}

		violations = append(violations, checkAmount(field("shuFromSavings"), line.SHUFromSavings, false)...)
		violations = append(violations, checkAmount(field("shuFromTransactions"), line.SHUFromTransactions, false)...)
		violations = append(violations, checkAmount(field("totalShuReceived"), line.TotalSHUReceived, false)...)
		violations = append(violations, checkAmount(field("taxDeduction"), line.TaxDeduction, false)...)
		violations = append(violations, checkAmount(field("netShuReceived"), line.NetSHUReceived, false)...)

		expectedTotal := line.SHUFromSavings.Add(line.SHUFromTransactions)
		if !Reconciles(line.TotalSHUReceived, expectedTotal, LineTolerance) {
			violations = append(violations, NewViolation(field("totalShuReceived"), "TOTAL_MISMATCH",
				fmt.Sprintf("Total SHU received %s does not equal savings share plus transaction share %s",
					line.TotalSHUReceived.StringFixed(2), expectedTotal.StringFixed(2))))
		}

		expectedNet := line.TotalSHUReceived.Sub(line.TaxDeduction)
		if !Reconciles(line.NetSHUReceived, expectedNet, LineTolerance) {
			violations = append(violations, NewViolation(field("netShuReceived"), "NET_MISMATCH",
				fmt.Sprintf("Net SHU received %s does not equal total minus tax deduction %s",
					line.NetSHUReceived.StringFixed(2), expectedNet.StringFixed(2))))
		}

		if line.TaxDeduction.GreaterThan(line.TotalSHUReceived) {
			violations = append(violations, NewViolation(field("taxDeduction"), "TAX_EXCEEDS_TOTAL",
				"Tax deduction cannot exceed total SHU received"))
		} else if line.TotalSHUReceived.IsPositive() {
			impliedRate := line.TaxDeduction.Div(line.TotalSHUReceived).Mul(hundred)
			if impliedRate.GreaterThan(maxSHUTaxRate) {
				violations = append(violations, NewViolation(field("taxDeduction"), "TAX_RATE_IMPLAUSIBLE",
					fmt.Sprintf("Implied tax rate %s%% exceeds %s%%",
						impliedRate.StringFixed(2), maxSHUTaxRate.StringFixed(0))))
			}
		}

		grandTotal = grandTotal.Add(line.TotalSHUReceived)
	}

	if input.TotalSHU != nil && !ReconcilesReport(grandTotal, *input.TotalSHU) {
		violations = append(violations, NewViolation("totalSHU", "DISTRIBUTION_SUM_MISMATCH",
			fmt.Sprintf("Sum of member distributions %s does not equal total distributable SHU %s",
				grandTotal.StringFixed(2), input.TotalSHU.StringFixed(2))))
	}

	return violations
}
