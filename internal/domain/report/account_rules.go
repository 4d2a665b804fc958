package report

import (
	"fmt"
)

// accountLineField builds the field path for one account line
func accountLineField(i int, field string) string {
	return fmt.Sprintf("lines[%d].%s", i, field)
}

// checkAccountLines runs the structural rules shared by balance sheet and
// income statement account lines: required fields, category membership,
// code uniqueness, and resolvable acyclic parent references.
func checkAccountLines(lines []AccountLine, categoryOK func(AccountCategory) bool, categoryHint string) Violations {
	var violations Violations

	byCode := make(map[string]int, len(lines))
	for i, line := range lines {
		violations = append(violations, requireText(accountLineField(i, "code"), line.Code, 20)...)
		violations = append(violations, requireText(accountLineField(i, "name"), line.Name, 200)...)
		if !categoryOK(line.Category) {
			violations = append(violations, NewViolation(accountLineField(i, "category"), "INVALID_CATEGORY",
				fmt.Sprintf("Category %q is not valid for %s", line.Category, categoryHint)))
		}
		violations = append(violations, checkAmount(accountLineField(i, "currentAmount"), line.CurrentAmount, true)...)
		violations = append(violations, checkAmount(accountLineField(i, "previousAmount"), line.PreviousAmount, true)...)

		if line.Code == "" {
			continue
		}
		if prev, dup := byCode[line.Code]; dup {
			violations = append(violations, NewViolation(accountLineField(i, "code"), "DUPLICATE_CODE",
				fmt.Sprintf("Account code %q already used by line %d", line.Code, prev)))
			continue
		}
		byCode[line.Code] = i
	}

	// Parent references: must resolve within the report, never to the line
	// itself, and never form a cycle.
	for i, line := range lines {
		if line.ParentCode == "" {
			continue
		}
		if line.ParentCode == line.Code {
			violations = append(violations, NewViolation(accountLineField(i, "parentCode"), "SELF_PARENT",
				fmt.Sprintf("Account %q cannot be its own parent", line.Code)))
			continue
		}
		if _, ok := byCode[line.ParentCode]; !ok {
			violations = append(violations, NewViolation(accountLineField(i, "parentCode"), "UNRESOLVED_PARENT",
				fmt.Sprintf("Parent code %q does not exist in this report", line.ParentCode)))
			continue
		}
		if cyclicParent(lines, byCode, i) {
			violations = append(violations, NewViolation(accountLineField(i, "parentCode"), "PARENT_CYCLE",
				fmt.Sprintf("Parent chain of account %q forms a cycle", line.Code)))
		}
	}

	return violations
}

// cyclicParent walks the parent chain from line start and reports whether it
// revisits a code before terminating.
func cyclicParent(lines []AccountLine, byCode map[string]int, start int) bool {
	seen := make(map[string]bool)
	current := start
	for {
		code := lines[current].Code
		if seen[code] {
			return true
		}
		seen[code] = true

		parent := lines[current].ParentCode
		if parent == "" {
			return false
		}
		next, ok := byCode[parent]
		if !ok {
			return false
		}
		current = next
	}
}

// checkAccountBaseline cross-checks each line's previousAmount against the
// prior period's currentAmount for the same code. Mismatches are warnings:
// the prior period may legitimately have been restated.
func checkAccountBaseline(lines []AccountLine, baseline *ReportInput) Violations {
	if baseline == nil || len(baseline.Lines.Accounts) == 0 {
		return nil
	}

	prior := make(map[string]AccountLine, len(baseline.Lines.Accounts))
	for _, line := range baseline.Lines.Accounts {
		prior[line.Code] = line
	}

	var violations Violations
	for i, line := range lines {
		p, ok := prior[line.Code]
		if !ok {
			continue
		}
		if !ReconcilesLine(line.PreviousAmount, p.CurrentAmount) {
			violations = append(violations, NewWarning(accountLineField(i, "previousAmount"), "BASELINE_MISMATCH",
				fmt.Sprintf("Previous amount %s does not match prior period amount %s for account %q",
					line.PreviousAmount.StringFixed(2), p.CurrentAmount.StringFixed(2), line.Code)))
		}
	}
	return violations
}
