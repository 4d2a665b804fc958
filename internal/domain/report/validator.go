package report

import (
	"fmt"

	"github.com/koperasi/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Validator checks one report type for internal numeric consistency.
// Validate runs the structural phase first, then the cross-field phase, and
// accumulates every violation instead of failing fast. Implementations are
// pure: no mutation of input, no side effects, deterministic output, so a
// validator can serve an interactive preview before anything is persisted.
type Validator interface {
	ReportType() ReportType
	Validate(input *ReportInput, baseline *ReportInput) Violations
}

// ValidatorRegistry resolves the validator strategy for a report type
type ValidatorRegistry struct {
	validators map[ReportType]Validator
}

// NewValidatorRegistry creates a registry with all eleven statutory validators
func NewValidatorRegistry() *ValidatorRegistry {
	r := &ValidatorRegistry{validators: make(map[ReportType]Validator)}
	r.register(
		&BalanceSheetValidator{},
		&IncomeStatementValidator{},
		&CashFlowValidator{},
		&EquityChangesValidator{},
		&BudgetPlanValidator{},
		&MemberSavingsValidator{},
		&MemberReceivablesValidator{},
		&NPLReceivablesValidator{},
		&SHUDistributionValidator{},
		&MemberBenefitValidator{},
		&NotesValidator{},
	)
	return r
}

func (r *ValidatorRegistry) register(validators ...Validator) {
	for _, v := range validators {
		r.validators[v.ReportType()] = v
	}
}

// ValidatorFor returns the validator for the given report type
func (r *ValidatorRegistry) ValidatorFor(t ReportType) (Validator, bool) {
	v, ok := r.validators[t]
	return v, ok
}

// Validate runs the shared header checks and then the type-specific
// validator. All violations are accumulated and returned together.
func (r *ValidatorRegistry) Validate(input *ReportInput, baseline *ReportInput) Violations {
	var violations Violations

	if !input.ReportType.IsValid() {
		violations = append(violations, NewViolation("reportType", "INVALID_REPORT_TYPE",
			"Report type is not one of the statutory kinds"))
		return violations
	}
	if input.ReportingYear < MinReportingYear {
		violations = append(violations, NewViolation("reportingYear", "INVALID_REPORTING_YEAR",
			fmt.Sprintf("Reporting year must be %d or later", MinReportingYear)))
	}
	if !input.ReportingPeriod.IsValid() {
		violations = append(violations, NewViolation("reportingPeriod", "INVALID_REPORTING_PERIOD",
			"Reporting period must be Q1-Q4 or annual"))
	}
	if input.Lines.Count() == 0 {
		violations = append(violations, NewViolation("lines", "EMPTY_REPORT",
			"Report must contain at least one line item"))
		return violations
	}

	v, ok := r.ValidatorFor(input.ReportType)
	if !ok {
		violations = append(violations, NewViolation("reportType", "NO_VALIDATOR",
			fmt.Sprintf("No validator registered for report type %s", input.ReportType)))
		return violations
	}

	return append(violations, v.Validate(input, baseline)...)
}

// checkAmount verifies a monetary field stays within the statutory cap, and
// is non-negative unless the field is explicitly signed.
func checkAmount(field string, amount decimal.Decimal, allowNegative bool) Violations {
	var violations Violations
	m := valueobject.NewIDR(amount)
	if !allowNegative && m.IsNegative() {
		violations = append(violations, NewViolation(field, "NEGATIVE_AMOUNT",
			"Amount cannot be negative"))
	}
	if m.ExceedsCap() {
		violations = append(violations, NewViolation(field, "AMOUNT_EXCEEDS_CAP",
			"Amount exceeds the maximum of 999,999,999,999.99"))
	}
	return violations
}

// requireText verifies a mandatory text field is present and within bounds
func requireText(field, value string, maxLen int) Violations {
	var violations Violations
	if value == "" {
		violations = append(violations, NewViolation(field, "REQUIRED",
			"Field is required"))
	} else if len(value) > maxLen {
		violations = append(violations, NewViolation(field, "TOO_LONG",
			fmt.Sprintf("Field cannot exceed %d characters", maxLen)))
	}
	return violations
}
