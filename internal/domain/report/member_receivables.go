package report

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// CollateralThreshold is the loan amount above which collateral becomes
// mandatory regardless of loan type.
var CollateralThreshold = decimal.NewFromInt(50_000_000)

// MemberReceivablesValidator checks the Laporan Piutang Anggota: outstanding
// balances within loan amounts, date ordering, rate and term bounds, and the
// collateral mandate for large or productive loans.
type MemberReceivablesValidator struct{}

// ReportType returns the report type this validator handles
func (v *MemberReceivablesValidator) ReportType() ReportType {
	return ReportTypeMemberReceivables
}

// Validate runs the member receivables rule set
func (v *MemberReceivablesValidator) Validate(input *ReportInput, baseline *ReportInput) Violations {
	lines := input.Lines.MemberReceivables
	var violations Violations

	if len(lines) == 0 {
		violations = append(violations, NewViolation("lines", "WRONG_LINE_KIND",
			"Member receivables report requires receivable lines"))
		return violations
	}

	today := time.Now()
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

		if !line.LoanType.IsValid() {
			violations = append(violations, NewViolation(field("loanType"), "INVALID_LOAN_TYPE",
				fmt.Sprintf("Loan type %q is not valid", line.LoanType)))
		}
		if !line.PaymentStatus.IsValid() {
			violations = append(violations, NewViolation(field("paymentStatus"), "INVALID_PAYMENT_STATUS",
				fmt.Sprintf("Payment status %q is not valid", line.PaymentStatus)))
		}

		violations = append(violations, checkAmount(field("loanAmount"), line.LoanAmount, false)...)
		violations = append(violations, checkAmount(field("outstandingBalance"), line.OutstandingBalance, false)...)

		if line.OutstandingBalance.GreaterThan(line.LoanAmount) {
			violations = append(violations, NewViolation(field("outstandingBalance"), "EXCEEDS_LOAN_AMOUNT",
				fmt.Sprintf("Outstanding balance %s exceeds loan amount %s",
					line.OutstandingBalance.StringFixed(2), line.LoanAmount.StringFixed(2))))
		}

		if !ValidPercentage(line.InterestRate) {
			violations = append(violations, NewViolation(field("interestRate"), "INVALID_INTEREST_RATE",
				"Interest rate must be between 0 and 100"))
		}
		if line.TermMonths < 1 || line.TermMonths > 360 {
			violations = append(violations, NewViolation(field("termMonths"), "INVALID_TERM",
				"Loan term must be between 1 and 360 months"))
		}

		if line.DisbursementDate.After(today) {
			violations = append(violations, NewViolation(field("disbursementDate"), "FUTURE_DISBURSEMENT",
				"Disbursement date cannot be in the future"))
		}
		if !line.MaturityDate.After(line.DisbursementDate) {
			violations = append(violations, NewViolation(field("maturityDate"), "MATURITY_BEFORE_DISBURSEMENT",
				"Maturity date must be after disbursement date"))
		}

		// Large loans and productive/investment loans must be collateralized.
		needsCollateral := line.LoanAmount.GreaterThan(CollateralThreshold) || line.LoanType.RequiresCollateral()
		if needsCollateral {
			if line.CollateralType == "" {
				violations = append(violations, NewViolation(field("collateralType"), "COLLATERAL_REQUIRED",
					"Collateral type is required for this loan"))
			}
			if !line.CollateralValue.IsPositive() {
				violations = append(violations, NewViolation(field("collateralValue"), "COLLATERAL_REQUIRED",
					"Positive collateral value is required for this loan"))
			}
		}
		if !line.CollateralValue.IsZero() {
			violations = append(violations, checkAmount(field("collateralValue"), line.CollateralValue, false)...)
		}
	}

	return violations
}
