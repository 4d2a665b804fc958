package report

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BalanceSheetValidator checks the Neraca for the double-entry balance
// invariant: assets must equal liabilities plus equity.
type BalanceSheetValidator struct{}

// ReportType returns the report type this validator handles
func (v *BalanceSheetValidator) ReportType() ReportType {
	return ReportTypeBalanceSheet
}

// Validate runs the balance sheet rule set
func (v *BalanceSheetValidator) Validate(input *ReportInput, baseline *ReportInput) Violations {
	lines := input.Lines.Accounts
	var violations Violations

	if len(lines) == 0 {
		violations = append(violations, NewViolation("lines", "WRONG_LINE_KIND",
			"Balance sheet requires account lines"))
		return violations
	}

	violations = append(violations, checkAccountLines(lines, AccountCategory.IsBalanceSheetCategory, "a balance sheet")...)

	// Minimum composition: at least one non-subtotal line per side.
	var assets, liabilities, equity decimal.Decimal
	var assetCount, liabilityCount, equityCount int
	for _, line := range lines {
		if line.IsSubtotal {
			continue
		}
		switch line.Category {
		case AccountCategoryAsset:
			assets = assets.Add(line.CurrentAmount)
			assetCount++
		case AccountCategoryLiability:
			liabilities = liabilities.Add(line.CurrentAmount)
			liabilityCount++
		case AccountCategoryEquity:
			equity = equity.Add(line.CurrentAmount)
			equityCount++
		}
	}

	if assetCount == 0 {
		violations = append(violations, NewViolation("lines", "MISSING_ASSET_LINE",
			"Balance sheet requires at least one asset line"))
	}
	if liabilityCount == 0 {
		violations = append(violations, NewViolation("lines", "MISSING_LIABILITY_LINE",
			"Balance sheet requires at least one liability line"))
	}
	if equityCount == 0 {
		violations = append(violations, NewViolation("lines", "MISSING_EQUITY_LINE",
			"Balance sheet requires at least one equity line"))
	}

	// The balance equation runs over non-subtotal lines only, so subtotal
	// rows never double-count.
	if assetCount > 0 && (liabilityCount > 0 || equityCount > 0) {
		if !Reconciles(assets, liabilities.Add(equity), LineTolerance) {
			violations = append(violations, NewViolation("lines", "BALANCE_EQUATION",
				fmt.Sprintf("Assets %s do not equal liabilities plus equity %s",
					assets.StringFixed(2), liabilities.Add(equity).StringFixed(2))))
		}
	}

	violations = append(violations, checkAccountBaseline(lines, baseline)...)

	return violations
}
