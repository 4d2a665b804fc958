package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/koperasi/backend/internal/domain/report"
	"github.com/shopspring/decimal"
)

// JSONB stores a raw JSON document in a jsonb column
type JSONB json.RawMessage

// Value implements driver.Valuer
func (j JSONB) Value() (driver.Value, error) {
	if len(j) == 0 {
		return "{}", nil
	}
	return string(j), nil
}

// Scan implements sql.Scanner
func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		*j = append((*j)[0:0], v...)
	case string:
		*j = JSONB(v)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", value)
	}
	return nil
}

// Line type discriminators for report_line_items rows
const (
	LineTypeAccount          = "account"
	LineTypeCashFlow         = "cash_flow"
	LineTypeEquityComponent  = "equity_component"
	LineTypeBudget           = "budget"
	LineTypeMemberSavings    = "member_savings"
	LineTypeMemberReceivable = "member_receivable"
	LineTypeNPLReceivable    = "npl_receivable"
	LineTypeSHUDistribution  = "shu_distribution"
	LineTypeMemberBenefit    = "member_benefit"
	LineTypeNoteSection      = "note_section"
)

// FinancialReportModel is the GORM model for financial reports.
// The (cooperative_id, report_type, reporting_year) unique index enforces
// one report per period even under concurrent creation.
type FinancialReportModel struct {
	AggregateModel
	CooperativeID   uuid.UUID        `gorm:"type:uuid;not null;index;uniqueIndex:idx_reports_coop_type_year"`
	CreatedBy       *uuid.UUID       `gorm:"type:uuid;index"`
	ReportType      string           `gorm:"type:varchar(40);not null;uniqueIndex:idx_reports_coop_type_year"`
	ReportingYear   int              `gorm:"not null;uniqueIndex:idx_reports_coop_type_year"`
	ReportingPeriod string           `gorm:"type:varchar(10);not null"`
	Status          string           `gorm:"type:varchar(20);not null;index"`
	Notes           string           `gorm:"type:text"`
	BeginningCash   *decimal.Decimal `gorm:"type:numeric(18,2)"`
	EndingCash      *decimal.Decimal `gorm:"type:numeric(18,2)"`
	TotalSHU        *decimal.Decimal `gorm:"type:numeric(18,2)"`
	SubmittedAt     *time.Time
	SubmittedBy     *uuid.UUID `gorm:"type:uuid"`
	ApprovedAt      *time.Time
	ApprovedBy      *uuid.UUID `gorm:"type:uuid"`
	RejectedAt      *time.Time
	RejectedBy      *uuid.UUID `gorm:"type:uuid"`
	RejectionReason string      `gorm:"type:varchar(500)"`

	Lines []ReportLineItemModel `gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for FinancialReportModel
func (FinancialReportModel) TableName() string {
	return "financial_reports"
}

// ReportLineItemModel is one line item row. The payload holds the typed line
// as JSON; line_type selects the shape on the way back out.
type ReportLineItemModel struct {
	BaseModel
	CooperativeID uuid.UUID `gorm:"type:uuid;not null;index"`
	ReportID      uuid.UUID `gorm:"type:uuid;not null;index"`
	LineType      string    `gorm:"type:varchar(30);not null"`
	Position      int       `gorm:"not null"`
	Payload       JSONB     `gorm:"type:jsonb;not null"`
}

// TableName returns the table name for ReportLineItemModel
func (ReportLineItemModel) TableName() string {
	return "report_line_items"
}

// FinancialReportModelFromDomain converts a domain FinancialReport to its
// persistence model, exploding the line items into child rows.
func FinancialReportModelFromDomain(r *report.FinancialReport) (*FinancialReportModel, error) {
	m := &FinancialReportModel{
		CooperativeID:   r.CooperativeID,
		CreatedBy:       r.CreatedBy,
		ReportType:      r.ReportType.String(),
		ReportingYear:   r.ReportingYear,
		ReportingPeriod: r.ReportingPeriod.String(),
		Status:          r.Status.String(),
		Notes:           r.Notes,
		BeginningCash:   r.Input.BeginningCash,
		EndingCash:      r.Input.EndingCash,
		TotalSHU:        r.Input.TotalSHU,
		SubmittedAt:     r.SubmittedAt,
		SubmittedBy:     r.SubmittedBy,
		ApprovedAt:      r.ApprovedAt,
		ApprovedBy:      r.ApprovedBy,
		RejectedAt:      r.RejectedAt,
		RejectedBy:      r.RejectedBy,
		RejectionReason: r.RejectionReason,
	}
	m.FromDomainAggregateRoot(r.BaseAggregateRoot)

	lines, err := lineModelsFromInput(r.ID, r.CooperativeID, r.Input.Lines)
	if err != nil {
		return nil, err
	}
	m.Lines = lines

	return m, nil
}

// ToDomain converts the persistence model back to a domain FinancialReport
func (m *FinancialReportModel) ToDomain() (*report.FinancialReport, error) {
	lines, err := linesToDomain(m.Lines)
	if err != nil {
		return nil, err
	}

	r := &report.FinancialReport{
		ReportType:      report.ReportType(m.ReportType),
		ReportingYear:   m.ReportingYear,
		ReportingPeriod: report.ReportingPeriod(m.ReportingPeriod),
		Status:          report.ReportStatus(m.Status),
		Notes:           m.Notes,
		Input: report.ReportInput{
			ReportType:      report.ReportType(m.ReportType),
			ReportingYear:   m.ReportingYear,
			ReportingPeriod: report.ReportingPeriod(m.ReportingPeriod),
			Notes:           m.Notes,
			BeginningCash:   m.BeginningCash,
			EndingCash:      m.EndingCash,
			TotalSHU:        m.TotalSHU,
			Lines:           lines,
		},
		SubmittedAt:     m.SubmittedAt,
		SubmittedBy:     m.SubmittedBy,
		ApprovedAt:      m.ApprovedAt,
		ApprovedBy:      m.ApprovedBy,
		RejectedAt:      m.RejectedAt,
		RejectedBy:      m.RejectedBy,
		RejectionReason: m.RejectionReason,
	}

	r.BaseAggregateRoot.BaseEntity.ID = m.ID
	r.BaseAggregateRoot.BaseEntity.CreatedAt = m.CreatedAt
	r.BaseAggregateRoot.BaseEntity.UpdatedAt = m.UpdatedAt
	r.BaseAggregateRoot.Version = m.Version
	r.CooperativeID = m.CooperativeID
	r.CreatedBy = m.CreatedBy

	return r, nil
}

// lineModelsFromInput flattens the tagged union into discriminated rows,
// preserving order within each kind.
func lineModelsFromInput(reportID, cooperativeID uuid.UUID, lines report.ReportLines) ([]ReportLineItemModel, error) {
	out := make([]ReportLineItemModel, 0, lines.Count())

	add := func(lineType string, position int, payload interface{}) error {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal %s line %d: %w", lineType, position, err)
		}
		out = append(out, ReportLineItemModel{
			BaseModel:     BaseModel{ID: uuid.New()},
			CooperativeID: cooperativeID,
			ReportID:      reportID,
			LineType:      lineType,
			Position:      position,
			Payload:       JSONB(data),
		})
		return nil
	}

	for i, l := range lines.Accounts {
		if err := add(LineTypeAccount, i, l); err != nil {
			return nil, err
		}
	}
	for i, l := range lines.CashFlows {
		if err := add(LineTypeCashFlow, i, l); err != nil {
			return nil, err
		}
	}
	for i, l := range lines.EquityComponents {
		if err := add(LineTypeEquityComponent, i, l); err != nil {
			return nil, err
		}
	}
	for i, l := range lines.BudgetLines {
		if err := add(LineTypeBudget, i, l); err != nil {
			return nil, err
		}
	}
	for i, l := range lines.MemberSavings {
		if err := add(LineTypeMemberSavings, i, l); err != nil {
			return nil, err
		}
	}
	for i, l := range lines.MemberReceivables {
		if err := add(LineTypeMemberReceivable, i, l); err != nil {
			return nil, err
		}
	}
	for i, l := range lines.NPLReceivables {
		if err := add(LineTypeNPLReceivable, i, l); err != nil {
			return nil, err
		}
	}
	for i, l := range lines.SHUDistributions {
		if err := add(LineTypeSHUDistribution, i, l); err != nil {
			return nil, err
		}
	}
	for i, l := range lines.MemberBenefits {
		if err := add(LineTypeMemberBenefit, i, l); err != nil {
			return nil, err
		}
	}
	for i, l := range lines.NoteSections {
		if err := add(LineTypeNoteSection, i, l); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// linesToDomain reassembles the tagged union from discriminated rows.
// Rows arrive ordered by position (the repository queries with ORDER BY).
func linesToDomain(rows []ReportLineItemModel) (report.ReportLines, error) {
	var lines report.ReportLines

	for _, row := range rows {
		var err error
		switch row.LineType {
		case LineTypeAccount:
			var l report.AccountLine
			if err = json.Unmarshal(row.Payload, &l); err == nil {
				lines.Accounts = append(lines.Accounts, l)
			}
		case LineTypeCashFlow:
			var l report.CashFlowActivity
			if err = json.Unmarshal(row.Payload, &l); err == nil {
				lines.CashFlows = append(lines.CashFlows, l)
			}
		case LineTypeEquityComponent:
			var l report.EquityComponent
			if err = json.Unmarshal(row.Payload, &l); err == nil {
				lines.EquityComponents = append(lines.EquityComponents, l)
			}
		case LineTypeBudget:
			var l report.BudgetLine
			if err = json.Unmarshal(row.Payload, &l); err == nil {
				lines.BudgetLines = append(lines.BudgetLines, l)
			}
		case LineTypeMemberSavings:
			var l report.MemberSavingsLine
			if err = json.Unmarshal(row.Payload, &l); err == nil {
				lines.MemberSavings = append(lines.MemberSavings, l)
			}
		case LineTypeMemberReceivable:
			var l report.MemberReceivableLine
			if err = json.Unmarshal(row.Payload, &l); err == nil {
				lines.MemberReceivables = append(lines.MemberReceivables, l)
			}
		case LineTypeNPLReceivable:
			var l report.NPLReceivableLine
			if err = json.Unmarshal(row.Payload, &l); err == nil {
				lines.NPLReceivables = append(lines.NPLReceivables, l)
			}
		case LineTypeSHUDistribution:
			var l report.SHUDistributionLine
			if err = json.Unmarshal(row.Payload, &l); err == nil {
				lines.SHUDistributions = append(lines.SHUDistributions, l)
			}
		case LineTypeMemberBenefit:
			var l report.MemberBenefitLine
			if err = json.Unmarshal(row.Payload, &l); err == nil {
				lines.MemberBenefits = append(lines.MemberBenefits, l)
			}
		case LineTypeNoteSection:
			var l report.NoteSection
			if err = json.Unmarshal(row.Payload, &l); err == nil {
				lines.NoteSections = append(lines.NoteSections, l)
			}
		default:
			return lines, fmt.Errorf("unknown line type %q on row %s", row.LineType, row.ID)
		}
		if err != nil {
			return lines, fmt.Errorf("unmarshal %s line: %w", row.LineType, err)
		}
	}

	return lines, nil
}

// CooperativeMemberModel maps a user's membership and role within one
// cooperative. It backs the actor directory.
type CooperativeMemberModel struct {
	BaseModel
	CooperativeID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_members_coop_user_role"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_members_coop_user_role"`
	Role          string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_members_coop_user_role"`
	Active        bool      `gorm:"not null;default:true"`
}

// TableName returns the table name for CooperativeMemberModel
func (CooperativeMemberModel) TableName() string {
	return "cooperative_members"
}
