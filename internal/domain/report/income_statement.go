package report

// IncomeStatementValidator checks the Laporan Hasil Usaha: composition and
// account-line structure. The result figure itself is derived by the caller,
// so no equation check applies here beyond the shared account rules.
type IncomeStatementValidator struct{}

// ReportType returns the report type this validator handles
func (v *IncomeStatementValidator) ReportType() ReportType {
	return ReportTypeIncomeStatement
}

// Validate runs the income statement rule set
func (v *IncomeStatementValidator) Validate(input *ReportInput, baseline *ReportInput) Violations {
	lines := input.Lines.Accounts
	var violations Violations

	if len(lines) == 0 {
		violations = append(violations, NewViolation("lines", "WRONG_LINE_KIND",
			"Income statement requires account lines"))
		return violations
	}

	violations = append(violations, checkAccountLines(lines, AccountCategory.IsIncomeStatementCategory, "an income statement")...)

	var revenueCount, expenseCount int
	for _, line := range lines {
		if line.IsSubtotal {
			continue
		}
		switch line.Category {
		case AccountCategoryRevenue:
			revenueCount++
		case AccountCategoryExpense:
			expenseCount++
		}
	}

	if revenueCount == 0 {
		violations = append(violations, NewViolation("lines", "MISSING_REVENUE_LINE",
			"Income statement requires at least one revenue line"))
	}
	if expenseCount == 0 {
		violations = append(violations, NewViolation("lines", "MISSING_EXPENSE_LINE",
			"Income statement requires at least one expense line"))
	}

	violations = append(violations, checkAccountBaseline(lines, baseline)...)

	return violations
}
