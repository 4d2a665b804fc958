package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/koperasi/backend/internal/domain/shared"
)

// Event type names for financial report lifecycle events
const (
	EventTypeReportCreated   = "FinancialReportCreated"
	EventTypeReportSubmitted = "FinancialReportSubmitted"
	EventTypeReportApproved  = "FinancialReportApproved"
	EventTypeReportRejected  = "FinancialReportRejected"
)

// ReportCreatedEvent is raised when a new report is created in draft status
type ReportCreatedEvent struct {
	shared.BaseDomainEvent
	ReportID        uuid.UUID       `json:"report_id"`
	ReportType      ReportType      `json:"report_type"`
	ReportingYear   int             `json:"reporting_year"`
	ReportingPeriod ReportingPeriod `json:"reporting_period"`
	LineCount       int             `json:"line_count"`
}

// NewReportCreatedEvent creates a new ReportCreatedEvent
func NewReportCreatedEvent(r *FinancialReport) *ReportCreatedEvent {
	return &ReportCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeReportCreated, "FinancialReport", r.ID, r.CooperativeID),
		ReportID:        r.ID,
		ReportType:      r.ReportType,
		ReportingYear:   r.ReportingYear,
		ReportingPeriod: r.ReportingPeriod,
		LineCount:       r.LineCount(),
	}
}

// ReportSubmittedEvent is raised when a report is submitted for approval
type ReportSubmittedEvent struct {
	shared.BaseDomainEvent
	ReportID      uuid.UUID  `json:"report_id"`
	ReportType    ReportType `json:"report_type"`
	ReportingYear int        `json:"reporting_year"`
	SubmittedBy   uuid.UUID  `json:"submitted_by"`
	SubmittedAt   time.Time  `json:"submitted_at"`
}

// NewReportSubmittedEvent creates a new ReportSubmittedEvent
func NewReportSubmittedEvent(r *FinancialReport) *ReportSubmittedEvent {
	submittedAt := time.Now()
	if r.SubmittedAt != nil {
		submittedAt = *r.SubmittedAt
	}
	var submittedBy uuid.UUID
	if r.SubmittedBy != nil {
		submittedBy = *r.SubmittedBy
	}
	return &ReportSubmittedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeReportSubmitted, "FinancialReport", r.ID, r.CooperativeID),
		ReportID:        r.ID,
		ReportType:      r.ReportType,
		ReportingYear:   r.ReportingYear,
		SubmittedBy:     submittedBy,
		SubmittedAt:     submittedAt,
	}
}

// ReportApprovedEvent is raised when a submitted report is approved
type ReportApprovedEvent struct {
	shared.BaseDomainEvent
	ReportID      uuid.UUID  `json:"report_id"`
	ReportType    ReportType `json:"report_type"`
	ReportingYear int        `json:"reporting_year"`
	ApprovedBy    uuid.UUID  `json:"approved_by"`
	ApprovedAt    time.Time  `json:"approved_at"`
}

// NewReportApprovedEvent creates a new ReportApprovedEvent
func NewReportApprovedEvent(r *FinancialReport) *ReportApprovedEvent {
	approvedAt := time.Now()
	if r.ApprovedAt != nil {
		approvedAt = *r.ApprovedAt
	}
	var approvedBy uuid.UUID
	if r.ApprovedBy != nil {
		approvedBy = *r.ApprovedBy
	}
	return &ReportApprovedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeReportApproved, "FinancialReport", r.ID, r.CooperativeID),
		ReportID:        r.ID,
		ReportType:      r.ReportType,
		ReportingYear:   r.ReportingYear,
		ApprovedBy:      approvedBy,
		ApprovedAt:      approvedAt,
	}
}

// ReportRejectedEvent is raised when a submitted report is rejected.
// It carries the mandatory rejection reason for the notification.
type ReportRejectedEvent struct {
	shared.BaseDomainEvent
	ReportID        uuid.UUID  `json:"report_id"`
	ReportType      ReportType `json:"report_type"`
	ReportingYear   int        `json:"reporting_year"`
	RejectedBy      uuid.UUID  `json:"rejected_by"`
	RejectedAt      time.Time  `json:"rejected_at"`
	RejectionReason string     `json:"rejection_reason"`
}

// NewReportRejectedEvent creates a new ReportRejectedEvent
func NewReportRejectedEvent(r *FinancialReport) *ReportRejectedEvent {
	rejectedAt := time.Now()
	if r.RejectedAt != nil {
		rejectedAt = *r.RejectedAt
	}
	var rejectedBy uuid.UUID
	if r.RejectedBy != nil {
		rejectedBy = *r.RejectedBy
	}
	return &ReportRejectedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeReportRejected, "FinancialReport", r.ID, r.CooperativeID),
		ReportID:        r.ID,
		ReportType:      r.ReportType,
		ReportingYear:   r.ReportingYear,
		RejectedBy:      rejectedBy,
		RejectedAt:      rejectedAt,
		RejectionReason: r.RejectionReason,
	}
}
