package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/koperasi/backend/internal/domain/report"
)

// ReportResponse represents a financial report in API responses
type ReportResponse struct {
	ID              uuid.UUID          `json:"id"`
	CooperativeID   uuid.UUID          `json:"cooperative_id"`
	ReportType      string             `json:"report_type"`
	ReportTypeName  string             `json:"report_type_name"`
	ReportingYear   int                `json:"reporting_year"`
	ReportingPeriod string             `json:"reporting_period"`
	Status          string             `json:"status"`
	Notes           string             `json:"notes,omitempty"`
	LineCount       int                `json:"line_count"`
	Input           report.ReportInput `json:"input"`
	SubmittedAt     *time.Time         `json:"submitted_at,omitempty"`
	SubmittedBy     *uuid.UUID         `json:"submitted_by,omitempty"`
	ApprovedAt      *time.Time         `json:"approved_at,omitempty"`
	ApprovedBy      *uuid.UUID         `json:"approved_by,omitempty"`
	RejectedAt      *time.Time         `json:"rejected_at,omitempty"`
	RejectedBy      *uuid.UUID         `json:"rejected_by,omitempty"`
	RejectionReason string             `json:"rejection_reason,omitempty"`
	Warnings        report.Violations  `json:"warnings,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
	Version         int                `json:"version"`
}

// ReportSummaryResponse is the compact list representation without line items
type ReportSummaryResponse struct {
	ID              uuid.UUID  `json:"id"`
	ReportType      string     `json:"report_type"`
	ReportTypeName  string     `json:"report_type_name"`
	ReportingYear   int        `json:"reporting_year"`
	ReportingPeriod string     `json:"reporting_period"`
	Status          string     `json:"status"`
	LineCount       int        `json:"line_count"`
	SubmittedAt     *time.Time `json:"submitted_at,omitempty"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// ValidationResponse is the outcome of a standalone validation pass
type ValidationResponse struct {
	Valid      bool              `json:"valid"`
	Violations report.Violations `json:"violations"`
}

// ReportListFilter defines filtering options for report list queries
type ReportListFilter struct {
	ReportType    string `form:"report_type" binding:"omitempty,report_type"`
	ReportingYear int    `form:"reporting_year" binding:"omitempty,gte=1900,lte=2200"`
	Status        string `form:"status" binding:"omitempty,report_status"`
	Page          int    `form:"page" binding:"omitempty,gte=1"`
	PageSize      int    `form:"page_size" binding:"omitempty,gte=1,lte=100"`
}

// RejectReportRequest carries the mandatory rejection reason
type RejectReportRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

// ReportListResponse is a paginated list of report summaries
type ReportListResponse struct {
	Items    []ReportSummaryResponse `json:"items"`
	Total    int64                   `json:"total"`
	Page     int                     `json:"page"`
	PageSize int                     `json:"page_size"`
}

func toReportResponse(r *report.FinancialReport, warnings report.Violations) *ReportResponse {
	return &ReportResponse{
		ID:              r.ID,
		CooperativeID:   r.CooperativeID,
		ReportType:      r.ReportType.String(),
		ReportTypeName:  r.ReportType.DisplayName(),
		ReportingYear:   r.ReportingYear,
		ReportingPeriod: r.ReportingPeriod.String(),
		Status:          r.Status.String(),
		Notes:           r.Notes,
		LineCount:       r.LineCount(),
		Input:           r.Input,
		SubmittedAt:     r.SubmittedAt,
		SubmittedBy:     r.SubmittedBy,
		ApprovedAt:      r.ApprovedAt,
		ApprovedBy:      r.ApprovedBy,
		RejectedAt:      r.RejectedAt,
		RejectedBy:      r.RejectedBy,
		RejectionReason: r.RejectionReason,
		Warnings:        warnings,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
		Version:         r.GetVersion(),
	}
}

func toReportSummaryResponse(r *report.FinancialReport) ReportSummaryResponse {
	return ReportSummaryResponse{
		ID:              r.ID,
		ReportType:      r.ReportType.String(),
		ReportTypeName:  r.ReportType.DisplayName(),
		ReportingYear:   r.ReportingYear,
		ReportingPeriod: r.ReportingPeriod.String(),
		Status:          r.Status.String(),
		LineCount:       r.LineCount(),
		SubmittedAt:     r.SubmittedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}
