package report

import (
	"fmt"
)

// EquityChangesValidator checks the Laporan Perubahan Ekuitas: each
// component's ending balance must roll forward from its beginning balance.
type EquityChangesValidator struct{}

// ReportType returns the report type this validator handles
func (v *EquityChangesValidator) ReportType() ReportType {
	return ReportTypeEquityChanges
}

// Validate runs the equity changes rule set
func (v *EquityChangesValidator) Validate(input *ReportInput, baseline *ReportInput) Violations {
	lines := input.Lines.EquityComponents
	var violations Violations

	if len(lines) == 0 {
		violations = append(violations, NewViolation("lines", "WRONG_LINE_KIND",
			"Equity changes statement requires equity component lines"))
		return violations
	}

	seen := make(map[EquityComponentKind]int, len(lines))
	for i, line := range lines {
		field := func(f string) string { return fmt.Sprintf("lines[%d].%s", i, f) }

		if !line.Component.IsValid() {
			violations = append(violations, NewViolation(field("component"), "INVALID_COMPONENT",
				fmt.Sprintf("Equity component %q is not one of the six fixed kinds", line.Component)))
		} else {
			if prev, dup := seen[line.Component]; dup {
				violations = append(violations, NewViolation(field("component"), "DUPLICATE_COMPONENT",
					fmt.Sprintf("Equity component %q already used by line %d", line.Component, prev)))
			} else {
				seen[line.Component] = i
			}
		}

		violations = append(violations, checkAmount(field("beginningBalance"), line.BeginningBalance, true)...)
		violations = append(violations, checkAmount(field("additions"), line.Additions, false)...)
		violations = append(violations, checkAmount(field("reductions"), line.Reductions, false)...)
		violations = append(violations, checkAmount(field("endingBalance"), line.EndingBalance, true)...)

		expected := line.BeginningBalance.Add(line.Additions).Sub(line.Reductions)
		if !Reconciles(line.EndingBalance, expected, LineTolerance) {
			violations = append(violations, NewViolation(field("endingBalance"), "ROLLFORWARD",
				fmt.Sprintf("Ending balance %s does not equal beginning plus additions minus reductions %s",
					line.EndingBalance.StringFixed(2), expected.StringFixed(2))))
		}
	}

	return violations
}
