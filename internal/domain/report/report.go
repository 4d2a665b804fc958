package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/koperasi/backend/internal/domain/shared"
)

// FinancialReport is the aggregate root for one statutory report instance.
// At most one report exists per (cooperative, report type, reporting year);
// the repository enforces that invariant under concurrent creation. The
// report owns its line items: they are replaced wholesale on update and
// removed with the report while it is still a draft.
type FinancialReport struct {
	shared.CooperativeAggregateRoot
	ReportType      ReportType      `json:"report_type"`
	ReportingYear   int             `json:"reporting_year"`
	ReportingPeriod ReportingPeriod `json:"reporting_period"`
	Status          ReportStatus    `json:"status"`
	Notes           string          `json:"notes"`
	Input           ReportInput     `json:"input"`
	SubmittedAt     *time.Time      `json:"submitted_at"`
	SubmittedBy     *uuid.UUID      `json:"submitted_by"`
	ApprovedAt      *time.Time      `json:"approved_at"`
	ApprovedBy      *uuid.UUID      `json:"approved_by"`
	RejectedAt      *time.Time      `json:"rejected_at"`
	RejectedBy      *uuid.UUID      `json:"rejected_by"`
	RejectionReason string          `json:"rejection_reason"`
}

// NewFinancialReport creates a new report in draft status.
// Cross-field validation is the validators' concern; the constructor guards
// only the header invariants.
func NewFinancialReport(cooperativeID uuid.UUID, input ReportInput, createdBy uuid.UUID) (*FinancialReport, error) {
	if !input.ReportType.IsValid() {
		return nil, shared.NewDomainError("INVALID_REPORT_TYPE", "Report type is not one of the statutory kinds")
	}
	if input.ReportingYear < MinReportingYear {
		return nil, shared.NewDomainError("INVALID_REPORTING_YEAR", "Reporting year must be 2020 or later")
	}
	if !input.ReportingPeriod.IsValid() {
		return nil, shared.NewDomainError("INVALID_REPORTING_PERIOD", "Reporting period must be Q1-Q4 or annual")
	}
	if createdBy == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "Creator user ID cannot be empty")
	}

	r := &FinancialReport{
		CooperativeAggregateRoot: shared.NewCooperativeAggregateRootWithCreator(cooperativeID, createdBy),
		ReportType:               input.ReportType,
		ReportingYear:            input.ReportingYear,
		ReportingPeriod:          input.ReportingPeriod,
		Status:                   ReportStatusDraft,
		Notes:                    input.Notes,
		Input:                    input,
	}

	r.AddDomainEvent(NewReportCreatedEvent(r))

	return r, nil
}

// UpdateDraft replaces the report contents while it is still a draft.
// Line items are replaced in full, never patched.
func (r *FinancialReport) UpdateDraft(input ReportInput) error {
	if !r.Status.CanModify() {
		return NewStateError(r.Status, "update")
	}
	if input.ReportType != r.ReportType {
		return shared.NewDomainError("REPORT_TYPE_IMMUTABLE", "Report type cannot change after creation")
	}
	if input.ReportingYear != r.ReportingYear {
		return shared.NewDomainError("REPORTING_YEAR_IMMUTABLE", "Reporting year cannot change after creation")
	}
	if !input.ReportingPeriod.IsValid() {
		return shared.NewDomainError("INVALID_REPORTING_PERIOD", "Reporting period must be Q1-Q4 or annual")
	}

	r.ReportingPeriod = input.ReportingPeriod
	r.Notes = input.Notes
	r.Input = input
	r.UpdatedAt = time.Now()
	r.IncrementVersion()

	return nil
}

// Submit moves the report from draft to submitted.
// The actor must hold a role capable of submitting.
func (r *FinancialReport) Submit(actorID uuid.UUID, roles RoleSet) error {
	if !r.Status.CanSubmit() {
		return NewStateError(r.Status, "submit")
	}
	if actorID == uuid.Nil {
		return shared.NewDomainError("INVALID_USER", "Submitter user ID cannot be empty")
	}
	if !roles.CanSubmitReports() {
		return NewAuthorizationError("submit", roles)
	}

	now := time.Now()
	r.Status = ReportStatusSubmitted
	r.SubmittedAt = &now
	r.SubmittedBy = &actorID
	r.UpdatedAt = now
	r.IncrementVersion()

	r.AddDomainEvent(NewReportSubmittedEvent(r))

	return nil
}

// Approve moves the report from submitted to approved.
// The actor must hold an approver role.
func (r *FinancialReport) Approve(actorID uuid.UUID, roles RoleSet) error {
	if !r.Status.CanReview() {
		return NewStateError(r.Status, "approve")
	}
	if actorID == uuid.Nil {
		return shared.NewDomainError("INVALID_USER", "Approver user ID cannot be empty")
	}
	if !roles.CanReviewReports() {
		return NewAuthorizationError("approve", roles)
	}
	// Approval must come from someone other than the submitter, even when the
	// submitter also holds an approver role.
	if r.SubmittedBy != nil && *r.SubmittedBy == actorID {
		return NewAuthorizationError("approve their own submission of", roles)
	}

	now := time.Now()
	r.Status = ReportStatusApproved
	r.ApprovedAt = &now
	r.ApprovedBy = &actorID
	r.UpdatedAt = now
	r.IncrementVersion()

	r.AddDomainEvent(NewReportApprovedEvent(r))

	return nil
}

// Reject moves the report from submitted to rejected. The reason is
// mandatory; rejected is terminal, although a fresh report may be recreated
// for the same period once the old one is deleted.
func (r *FinancialReport) Reject(actorID uuid.UUID, roles RoleSet, reason string) error {
	if !r.Status.CanReview() {
		return NewStateError(r.Status, "reject")
	}
	if actorID == uuid.Nil {
		return shared.NewDomainError("INVALID_USER", "Rejector user ID cannot be empty")
	}
	if !roles.CanReviewReports() {
		return NewAuthorizationError("reject", roles)
	}
	if reason == "" {
		return shared.NewDomainError("INVALID_REASON", "Rejection reason is required")
	}
	if len(reason) > 500 {
		return shared.NewDomainError("INVALID_REASON", "Rejection reason cannot exceed 500 characters")
	}

	now := time.Now()
	r.Status = ReportStatusRejected
	r.RejectedAt = &now
	r.RejectedBy = &actorID
	r.RejectionReason = reason
	r.UpdatedAt = now
	r.IncrementVersion()

	r.AddDomainEvent(NewReportRejectedEvent(r))

	return nil
}

// Helper methods

// IsDraft returns true if the report is in draft status
func (r *FinancialReport) IsDraft() bool {
	return r.Status == ReportStatusDraft
}

// IsSubmitted returns true if the report is awaiting review
func (r *FinancialReport) IsSubmitted() bool {
	return r.Status == ReportStatusSubmitted
}

// IsApproved returns true if the report is approved
func (r *FinancialReport) IsApproved() bool {
	return r.Status == ReportStatusApproved
}

// IsRejected returns true if the report is rejected
func (r *FinancialReport) IsRejected() bool {
	return r.Status == ReportStatusRejected
}

// CanDelete returns true if the report may still be deleted (draft only)
func (r *FinancialReport) CanDelete() bool {
	return r.Status == ReportStatusDraft
}

// LineCount returns the number of line items the report carries
func (r *FinancialReport) LineCount() int {
	return r.Input.Lines.Count()
}
