package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountLine is one account row on a balance sheet or income statement
type AccountLine struct {
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	Category       AccountCategory `json:"category"`
	Subcategory    string          `json:"subcategory"`
	CurrentAmount  decimal.Decimal `json:"current_amount"`
	PreviousAmount decimal.Decimal `json:"previous_amount"`
	ParentCode     string          `json:"parent_code,omitempty"`
	IsSubtotal     bool            `json:"is_subtotal"`
	SortOrder      int             `json:"sort_order"`
}

// CashFlowActivity is one activity row on a cash flow statement
type CashFlowActivity struct {
	Category       CashFlowCategory `json:"category"`
	Description    string           `json:"description"`
	CurrentAmount  decimal.Decimal  `json:"current_amount"`
	PreviousAmount decimal.Decimal  `json:"previous_amount"`
	IsSubtotal     bool             `json:"is_subtotal"`
	SortOrder      int              `json:"sort_order"`
}

// EquityComponent is one rollforward row on an equity changes statement
type EquityComponent struct {
	Component        EquityComponentKind `json:"component"`
	BeginningBalance decimal.Decimal     `json:"beginning_balance"`
	Additions        decimal.Decimal     `json:"additions"`
	Reductions       decimal.Decimal     `json:"reductions"`
	EndingBalance    decimal.Decimal     `json:"ending_balance"`
}

// BudgetLine is one plan row on a budget plan (RAPB)
type BudgetLine struct {
	Category       BudgetCategory   `json:"category"`
	Subcategory    string           `json:"subcategory"`
	Item           string           `json:"item"`
	PlannedAmount  decimal.Decimal  `json:"planned_amount"`
	PreviousActual decimal.Decimal  `json:"previous_actual"`
	VariancePct    *decimal.Decimal `json:"variance_pct,omitempty"`
	Priority       BudgetPriority   `json:"priority"`
	Q1Allocation   decimal.Decimal  `json:"q1_allocation"`
	Q2Allocation   decimal.Decimal  `json:"q2_allocation"`
	Q3Allocation   decimal.Decimal  `json:"q3_allocation"`
	Q4Allocation   decimal.Decimal  `json:"q4_allocation"`
}

// AllocationSum returns the sum of the four quarterly allocation percentages
func (b BudgetLine) AllocationSum() decimal.Decimal {
	return b.Q1Allocation.Add(b.Q2Allocation).Add(b.Q3Allocation).Add(b.Q4Allocation)
}

// HasAllocation reports whether any quarterly allocation is non-zero
func (b BudgetLine) HasAllocation() bool {
	return !b.Q1Allocation.IsZero() || !b.Q2Allocation.IsZero() ||
		!b.Q3Allocation.IsZero() || !b.Q4Allocation.IsZero()
}

// MemberSavingsLine is one member savings account row
type MemberSavingsLine struct {
	MemberID         uuid.UUID       `json:"member_id"`
	MemberName       string          `json:"member_name"`
	SavingsType      SavingsType     `json:"savings_type"`
	BeginningBalance decimal.Decimal `json:"beginning_balance"`
	Deposits         decimal.Decimal `json:"deposits"`
	Withdrawals      decimal.Decimal `json:"withdrawals"`
	InterestEarned   decimal.Decimal `json:"interest_earned"`
	EndingBalance    decimal.Decimal `json:"ending_balance"`
}

// ExpectedEndingBalance returns beginning + deposits - withdrawals + interest
func (l MemberSavingsLine) ExpectedEndingBalance() decimal.Decimal {
	return l.BeginningBalance.Add(l.Deposits).Sub(l.Withdrawals).Add(l.InterestEarned)
}

// MemberReceivableLine is one performing member loan row
type MemberReceivableLine struct {
	LoanNumber         string            `json:"loan_number"`
	MemberID           uuid.UUID         `json:"member_id"`
	MemberName         string            `json:"member_name"`
	LoanType           LoanType          `json:"loan_type"`
	LoanAmount         decimal.Decimal   `json:"loan_amount"`
	OutstandingBalance decimal.Decimal   `json:"outstanding_balance"`
	InterestRate       decimal.Decimal   `json:"interest_rate"`
	TermMonths         int               `json:"term_months"`
	DisbursementDate   time.Time         `json:"disbursement_date"`
	MaturityDate       time.Time         `json:"maturity_date"`
	PaymentStatus      LoanPaymentStatus `json:"payment_status"`
	CollateralType     string            `json:"collateral_type,omitempty"`
	CollateralValue    decimal.Decimal   `json:"collateral_value"`
}

// NPLReceivableLine is one non-performing loan row (91+ days past due)
type NPLReceivableLine struct {
	LoanNumber         string          `json:"loan_number"`
	MemberID           uuid.UUID       `json:"member_id"`
	MemberName         string          `json:"member_name"`
	OriginalLoanAmount decimal.Decimal `json:"original_loan_amount"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
	DaysPastDue        int             `json:"days_past_due"`
	Classification     Classification  `json:"classification"`
	ProvisionPct       decimal.Decimal `json:"provision_pct"`
	ProvisionAmount    decimal.Decimal `json:"provision_amount"`
}

// SHUDistributionLine is one member profit distribution row
type SHUDistributionLine struct {
	MemberID                uuid.UUID       `json:"member_id"`
	MemberName              string          `json:"member_name"`
	SavingsContribution     decimal.Decimal `json:"savings_contribution"`
	TransactionContribution decimal.Decimal `json:"transaction_contribution"`
	SHUFromSavings          decimal.Decimal `json:"shu_from_savings"`
	SHUFromTransactions     decimal.Decimal `json:"shu_from_transactions"`
	TotalSHUReceived        decimal.Decimal `json:"total_shu_received"`
	TaxDeduction            decimal.Decimal `json:"tax_deduction"`
	NetSHUReceived          decimal.Decimal `json:"net_shu_received"`
}

// MemberBenefitLine is one member economic benefit row (promosi ekonomi anggota)
type MemberBenefitLine struct {
	MemberID               uuid.UUID       `json:"member_id"`
	MemberName             string          `json:"member_name"`
	PurchaseBenefit        decimal.Decimal `json:"purchase_benefit"`
	LoanInterestBenefit    decimal.Decimal `json:"loan_interest_benefit"`
	SavingsInterestBenefit decimal.Decimal `json:"savings_interest_benefit"`
	SHUShare               decimal.Decimal `json:"shu_share"`
	TotalBenefit           decimal.Decimal `json:"total_benefit"`
}

// ExpectedTotalBenefit returns the sum of the four benefit components
func (l MemberBenefitLine) ExpectedTotalBenefit() decimal.Decimal {
	return l.PurchaseBenefit.Add(l.LoanInterestBenefit).
		Add(l.SavingsInterestBenefit).Add(l.SHUShare)
}

// NoteSection is one narrative section of the notes to the financial statements
type NoteSection struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	SortOrder int    `json:"sort_order"`
}

// ReportLines is the tagged union of line item variants. Exactly one slice is
// populated, matching the report type.
type ReportLines struct {
	Accounts          []AccountLine          `json:"accounts,omitempty"`
	CashFlows         []CashFlowActivity     `json:"cash_flows,omitempty"`
	EquityComponents  []EquityComponent      `json:"equity_components,omitempty"`
	BudgetLines       []BudgetLine           `json:"budget_lines,omitempty"`
	MemberSavings     []MemberSavingsLine    `json:"member_savings,omitempty"`
	MemberReceivables []MemberReceivableLine `json:"member_receivables,omitempty"`
	NPLReceivables    []NPLReceivableLine    `json:"npl_receivables,omitempty"`
	SHUDistributions  []SHUDistributionLine  `json:"shu_distributions,omitempty"`
	MemberBenefits    []MemberBenefitLine    `json:"member_benefits,omitempty"`
	NoteSections      []NoteSection          `json:"note_sections,omitempty"`
}

// Count returns the total number of line items across all variants
func (l ReportLines) Count() int {
	return len(l.Accounts) + len(l.CashFlows) + len(l.EquityComponents) +
		len(l.BudgetLines) + len(l.MemberSavings) + len(l.MemberReceivables) +
		len(l.NPLReceivables) + len(l.SHUDistributions) + len(l.MemberBenefits) +
		len(l.NoteSections)
}

// ReportInput is the structured payload a validator consumes. Validators never
// mutate it; they are deterministic and side-effect free so the same input can
// be validated standalone before persistence.
type ReportInput struct {
	ReportType      ReportType       `json:"report_type"`
	ReportingYear   int              `json:"reporting_year"`
	ReportingPeriod ReportingPeriod  `json:"reporting_period"`
	Notes           string           `json:"notes,omitempty"`
	// BeginningCash and EndingCash frame the cash flow equation.
	BeginningCash *decimal.Decimal `json:"beginning_cash,omitempty"`
	EndingCash    *decimal.Decimal `json:"ending_cash,omitempty"`
	// TotalSHU is the report-level distributable surplus for shu_distribution.
	TotalSHU *decimal.Decimal `json:"total_shu,omitempty"`
	Lines    ReportLines      `json:"lines"`
}
