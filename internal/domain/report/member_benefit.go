package report

import (
	"fmt"
)

// MemberBenefitValidator checks the Laporan Promosi Ekonomi Anggota: the
// economic benefit each member derived from the cooperative, itemized by
// source and reconciled per line.
type MemberBenefitValidator struct{}

// ReportType returns the report type this validator handles
func (v *MemberBenefitValidator) ReportType() ReportType {
	return ReportTypeMemberBenefit
}

// Validate runs the member benefit rule set
func (v *MemberBenefitValidator) Validate(input *ReportInput, baseline *ReportInput) Violations {
	lines := input.Lines.MemberBenefits
	var violations Violations

	if len(lines) == 0 {
		violations = append(violations, NewViolation("lines", "WRONG_LINE_KIND",
			"Member benefit report requires benefit lines"))
		return violations
	}

	seen := make(map[string]int, len(lines))

	for i, line := range lines {
		field := func(f string) string { return fmt.Sprintf("lines[%d].%s", i, f) }

		key := line.MemberID.String()
		if prev, dup := seen[key]; dup {
			violations = append(violations, NewViolation(field("memberId"), "DUPLICATE_MEMBER",
				fmt.Sprintf("Member %s already has a benefit line %d", key, prev)))
		} else {
			seen[key] = i
		}

		violations = append(violations, checkAmount(field("purchaseBenefit"), line.PurchaseBenefit, false)...)
		violations = append(violations, checkAmount(field("loanInterestBenefit"), line.LoanInterestBenefit, false)...)
		violations = append(violations, checkAmount(field("savingsInterestBenefit"), line.SavingsInterestBenefit, false)...)
		violations = append(violations, checkAmount(field("shuShare"), line.SHUShare, false)...)
		violations = append(violations, checkAmount(field("totalBenefit"), line.TotalBenefit, false)...)

		expected := line.ExpectedTotalBenefit()
		if !Reconciles(line.TotalBenefit, expected, LineTolerance) {
			violations = append(violations, NewViolation(field("totalBenefit"), "TOTAL_MISMATCH",
				fmt.Sprintf("Total benefit %s does not equal the sum of benefit components %s",
					line.TotalBenefit.StringFixed(2), expected.StringFixed(2))))
		}
	}

	return violations
}
