package report

import (
	"fmt"

	"github.com/google/uuid"
)

// MemberSavingsValidator checks the Laporan Simpanan Anggota: each member
// account must roll forward and each (member, savings type) pair appears
// at most once.
type MemberSavingsValidator struct{}

// ReportType returns the report type this validator handles
func (v *MemberSavingsValidator) ReportType() ReportType {
	return ReportTypeMemberSavings
}

// Validate runs the member savings rule set
func (v *MemberSavingsValidator) Validate(input *ReportInput, baseline *ReportInput) Violations {
	lines := input.Lines.MemberSavings
	var violations Violations

	if len(lines) == 0 {
		violations = append(violations, NewViolation("lines", "WRONG_LINE_KIND",
			"Member savings report requires savings lines"))
		return violations
	}

	type key struct {
		memberID    uuid.UUID
		savingsType SavingsType
	}
	seen := make(map[key]int, len(lines))

	for i, line := range lines {
		field := func(f string) string { return fmt.Sprintf("lines[%d].%s", i, f) }

		if line.MemberID == uuid.Nil {
			violations = append(violations, NewViolation(field("memberId"), "REQUIRED",
				"Member ID is required"))
		}
		if !line.SavingsType.IsValid() {
			violations = append(violations, NewViolation(field("savingsType"), "INVALID_SAVINGS_TYPE",
				fmt.Sprintf("Savings type %q is not valid", line.SavingsType)))
		}

		if line.MemberID != uuid.Nil && line.SavingsType.IsValid() {
			k := key{line.MemberID, line.SavingsType}
			if prev, dup := seen[k]; dup {
				violations = append(violations, NewViolation(field("memberId"), "DUPLICATE_MEMBER_SAVINGS",
					fmt.Sprintf("Member %s already has a %s savings line at %d", line.MemberID, line.SavingsType, prev)))
			} else {
				seen[k] = i
			}
		}

		violations = append(violations, checkAmount(field("beginningBalance"), line.BeginningBalance, true)...)
		violations = append(violations, checkAmount(field("deposits"), line.Deposits, false)...)
		violations = append(violations, checkAmount(field("withdrawals"), line.Withdrawals, false)...)
		violations = append(violations, checkAmount(field("interestEarned"), line.InterestEarned, false)...)
		violations = append(violations, checkAmount(field("endingBalance"), line.EndingBalance, true)...)

		expected := line.ExpectedEndingBalance()
		if !Reconciles(line.EndingBalance, expected, LineTolerance) {
			violations = append(violations, NewViolation(field("endingBalance"), "ROLLFORWARD",
				fmt.Sprintf("Ending balance %s does not equal beginning plus deposits minus withdrawals plus interest %s",
					line.EndingBalance.StringFixed(2), expected.StringFixed(2))))
		}
	}

	return violations
}
