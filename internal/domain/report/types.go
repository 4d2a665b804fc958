package report

// ReportType identifies one of the eleven statutory cooperative financial
// report kinds.
type ReportType string

const (
	ReportTypeBalanceSheet      ReportType = "balance_sheet"      // Neraca
	ReportTypeIncomeStatement   ReportType = "income_statement"   // Laporan Hasil Usaha
	ReportTypeCashFlow          ReportType = "cash_flow"          // Laporan Arus Kas
	ReportTypeEquityChanges     ReportType = "equity_changes"     // Laporan Perubahan Ekuitas
	ReportTypeBudgetPlan        ReportType = "budget_plan"        // RAPB
	ReportTypeMemberSavings     ReportType = "member_savings"     // Laporan Simpanan Anggota
	ReportTypeMemberReceivables ReportType = "member_receivables" // Laporan Piutang Anggota
	ReportTypeNPLReceivables    ReportType = "npl_receivables"    // Laporan Piutang Bermasalah
	ReportTypeSHUDistribution   ReportType = "shu_distribution"   // Laporan Pembagian SHU
	ReportTypeMemberBenefit     ReportType = "member_benefit"     // Laporan Promosi Ekonomi Anggota
	ReportTypeNotesToFinancial  ReportType = "notes_to_financial" // Catatan Atas Laporan Keuangan
)

// AllReportTypes lists every statutory report type
var AllReportTypes = []ReportType{
	ReportTypeBalanceSheet,
	ReportTypeIncomeStatement,
	ReportTypeCashFlow,
	ReportTypeEquityChanges,
	ReportTypeBudgetPlan,
	ReportTypeMemberSavings,
	ReportTypeMemberReceivables,
	ReportTypeNPLReceivables,
	ReportTypeSHUDistribution,
	ReportTypeMemberBenefit,
	ReportTypeNotesToFinancial,
}

// IsValid checks if the report type is one of the eleven statutory kinds
func (t ReportType) IsValid() bool {
	switch t {
	case ReportTypeBalanceSheet, ReportTypeIncomeStatement, ReportTypeCashFlow,
		ReportTypeEquityChanges, ReportTypeBudgetPlan, ReportTypeMemberSavings,
		ReportTypeMemberReceivables, ReportTypeNPLReceivables, ReportTypeSHUDistribution,
		ReportTypeMemberBenefit, ReportTypeNotesToFinancial:
		return true
	}
	return false
}

// String returns the string representation of ReportType
func (t ReportType) String() string {
	return string(t)
}

// DisplayName returns a human-readable name for the report type
func (t ReportType) DisplayName() string {
	switch t {
	case ReportTypeBalanceSheet:
		return "Neraca"
	case ReportTypeIncomeStatement:
		return "Laporan Hasil Usaha"
	case ReportTypeCashFlow:
		return "Laporan Arus Kas"
	case ReportTypeEquityChanges:
		return "Laporan Perubahan Ekuitas"
	case ReportTypeBudgetPlan:
		return "Rencana Anggaran Pendapatan dan Belanja"
	case ReportTypeMemberSavings:
		return "Laporan Simpanan Anggota"
	case ReportTypeMemberReceivables:
		return "Laporan Piutang Anggota"
	case ReportTypeNPLReceivables:
		return "Laporan Piutang Bermasalah"
	case ReportTypeSHUDistribution:
		return "Laporan Pembagian SHU"
	case ReportTypeMemberBenefit:
		return "Laporan Promosi Ekonomi Anggota"
	case ReportTypeNotesToFinancial:
		return "Catatan Atas Laporan Keuangan"
	default:
		return string(t)
	}
}

// ReportingPeriod is the period a report covers within the reporting year
type ReportingPeriod string

const (
	PeriodQ1     ReportingPeriod = "Q1"
	PeriodQ2     ReportingPeriod = "Q2"
	PeriodQ3     ReportingPeriod = "Q3"
	PeriodQ4     ReportingPeriod = "Q4"
	PeriodAnnual ReportingPeriod = "annual"
)

// IsValid checks if the period is valid
func (p ReportingPeriod) IsValid() bool {
	switch p {
	case PeriodQ1, PeriodQ2, PeriodQ3, PeriodQ4, PeriodAnnual:
		return true
	}
	return false
}

// String returns the string representation of ReportingPeriod
func (p ReportingPeriod) String() string {
	return string(p)
}

// MinReportingYear is the earliest reporting year accepted by the engine
const MinReportingYear = 2020

// ReportStatus represents the approval status of one report instance
type ReportStatus string

const (
	ReportStatusDraft     ReportStatus = "draft"     // Editable, not yet submitted
	ReportStatusSubmitted ReportStatus = "submitted" // Awaiting approval
	ReportStatusApproved  ReportStatus = "approved"  // Approved by a reviewer
	ReportStatusRejected  ReportStatus = "rejected"  // Rejected with a reason
)

// IsValid checks if the status is a valid ReportStatus
func (s ReportStatus) IsValid() bool {
	switch s {
	case ReportStatusDraft, ReportStatusSubmitted, ReportStatusApproved, ReportStatusRejected:
		return true
	}
	return false
}

// String returns the string representation of ReportStatus
func (s ReportStatus) String() string {
	return string(s)
}

// IsTerminal returns true if no further transitions are possible
func (s ReportStatus) IsTerminal() bool {
	return s == ReportStatusApproved || s == ReportStatusRejected
}

// CanSubmit returns true if the report can be submitted for approval
func (s ReportStatus) CanSubmit() bool {
	return s == ReportStatusDraft
}

// CanReview returns true if the report can be approved or rejected
func (s ReportStatus) CanReview() bool {
	return s == ReportStatusSubmitted
}

// CanModify returns true if the report contents may still change
func (s ReportStatus) CanModify() bool {
	return s == ReportStatusDraft
}

// AccountCategory classifies a balance sheet or income statement account line
type AccountCategory string

const (
	AccountCategoryAsset        AccountCategory = "asset"
	AccountCategoryLiability    AccountCategory = "liability"
	AccountCategoryEquity       AccountCategory = "equity"
	AccountCategoryRevenue      AccountCategory = "revenue"
	AccountCategoryExpense      AccountCategory = "expense"
	AccountCategoryOtherIncome  AccountCategory = "other_income"
	AccountCategoryOtherExpense AccountCategory = "other_expense"
)

// IsBalanceSheetCategory reports whether the category belongs on a balance sheet
func (c AccountCategory) IsBalanceSheetCategory() bool {
	return c == AccountCategoryAsset || c == AccountCategoryLiability || c == AccountCategoryEquity
}

// IsIncomeStatementCategory reports whether the category belongs on an income statement
func (c AccountCategory) IsIncomeStatementCategory() bool {
	switch c {
	case AccountCategoryRevenue, AccountCategoryExpense, AccountCategoryOtherIncome, AccountCategoryOtherExpense:
		return true
	}
	return false
}

// String returns the string representation of AccountCategory
func (c AccountCategory) String() string {
	return string(c)
}

// CashFlowCategory classifies a cash flow activity line
type CashFlowCategory string

const (
	CashFlowOperating CashFlowCategory = "operating"
	CashFlowInvesting CashFlowCategory = "investing"
	CashFlowFinancing CashFlowCategory = "financing"
)

// IsValid checks if the cash flow category is valid
func (c CashFlowCategory) IsValid() bool {
	return c == CashFlowOperating || c == CashFlowInvesting || c == CashFlowFinancing
}

// EquityComponentKind is one of the six fixed equity components
type EquityComponentKind string

const (
	EquityComponentPrincipalSavings EquityComponentKind = "simpanan_pokok"
	EquityComponentMandatorySavings EquityComponentKind = "simpanan_wajib"
	EquityComponentReserveFund      EquityComponentKind = "dana_cadangan"
	EquityComponentGrants           EquityComponentKind = "hibah"
	EquityComponentRetainedSHU      EquityComponentKind = "shu_ditahan"
	EquityComponentCurrentYearSHU   EquityComponentKind = "shu_tahun_berjalan"
)

// IsValid checks if the component kind is one of the six fixed kinds
func (k EquityComponentKind) IsValid() bool {
	switch k {
	case EquityComponentPrincipalSavings, EquityComponentMandatorySavings,
		EquityComponentReserveFund, EquityComponentGrants,
		EquityComponentRetainedSHU, EquityComponentCurrentYearSHU:
		return true
	}
	return false
}

// BudgetCategory classifies a budget plan line
type BudgetCategory string

const (
	BudgetCategoryRevenue    BudgetCategory = "revenue"
	BudgetCategoryExpense    BudgetCategory = "expense"
	BudgetCategoryInvestment BudgetCategory = "investment"
	BudgetCategoryFinancing  BudgetCategory = "financing"
)

// IsValid checks if the budget category is valid
func (c BudgetCategory) IsValid() bool {
	switch c {
	case BudgetCategoryRevenue, BudgetCategoryExpense, BudgetCategoryInvestment, BudgetCategoryFinancing:
		return true
	}
	return false
}

// BudgetPriority ranks a budget line
type BudgetPriority string

const (
	BudgetPriorityHigh   BudgetPriority = "high"
	BudgetPriorityMedium BudgetPriority = "medium"
	BudgetPriorityLow    BudgetPriority = "low"
)

// IsValid checks if the priority is valid
func (p BudgetPriority) IsValid() bool {
	return p == BudgetPriorityHigh || p == BudgetPriorityMedium || p == BudgetPriorityLow
}

// SavingsType classifies a member savings account
type SavingsType string

const (
	SavingsTypePrincipal SavingsType = "pokok"
	SavingsTypeMandatory SavingsType = "wajib"
	SavingsTypeVoluntary SavingsType = "sukarela"
	SavingsTypeTerm      SavingsType = "berjangka"
)

// IsValid checks if the savings type is valid
func (t SavingsType) IsValid() bool {
	switch t {
	case SavingsTypePrincipal, SavingsTypeMandatory, SavingsTypeVoluntary, SavingsTypeTerm:
		return true
	}
	return false
}

// LoanType classifies a member loan
type LoanType string

const (
	LoanTypeConsumptive LoanType = "konsumtif"
	LoanTypeProductive  LoanType = "produktif"
	LoanTypeInvestment  LoanType = "investasi"
)

// IsValid checks if the loan type is valid
func (t LoanType) IsValid() bool {
	return t == LoanTypeConsumptive || t == LoanTypeProductive || t == LoanTypeInvestment
}

// RequiresCollateral reports whether the loan type mandates collateral regardless of amount
func (t LoanType) RequiresCollateral() bool {
	return t == LoanTypeProductive || t == LoanTypeInvestment
}

// LoanPaymentStatus tracks how a performing member loan is being repaid
type LoanPaymentStatus string

const (
	LoanPaymentCurrent          LoanPaymentStatus = "lancar"
	LoanPaymentSpecialAttention LoanPaymentStatus = "perhatian_khusus"
	LoanPaymentLate             LoanPaymentStatus = "terlambat"
	LoanPaymentRestructured     LoanPaymentStatus = "restrukturisasi"
	LoanPaymentSettled          LoanPaymentStatus = "lunas"
)

// IsValid checks if the payment status is valid
func (s LoanPaymentStatus) IsValid() bool {
	switch s {
	case LoanPaymentCurrent, LoanPaymentSpecialAttention, LoanPaymentLate,
		LoanPaymentRestructured, LoanPaymentSettled:
		return true
	}
	return false
}
