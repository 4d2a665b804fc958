package report

import (
	"context"

	"github.com/google/uuid"
	"github.com/koperasi/backend/internal/domain/shared"
)

// ReportFilter defines filtering options for report list queries
type ReportFilter struct {
	shared.Filter
	ReportType    *ReportType
	ReportingYear *int
	Status        *ReportStatus
}

// FinancialReportRepository is the persistence port for financial reports.
// Create and Update must persist the header and all line items in one atomic
// unit of work: a header without its lines (or the reverse) must never be
// observable. SaveWithLock applies an optimistic check-and-set on the
// aggregate version and returns a ConflictError on mismatch.
type FinancialReportRepository interface {
	Create(ctx context.Context, report *FinancialReport) error
	Update(ctx context.Context, report *FinancialReport) error
	SaveWithLock(ctx context.Context, report *FinancialReport) error
	FindByIDForCooperative(ctx context.Context, cooperativeID, id uuid.UUID) (*FinancialReport, error)
	FindAllForCooperative(ctx context.Context, cooperativeID uuid.UUID, filter ReportFilter) ([]FinancialReport, error)
	CountForCooperative(ctx context.Context, cooperativeID uuid.UUID, filter ReportFilter) (int64, error)
	ExistsForPeriod(ctx context.Context, cooperativeID uuid.UUID, reportType ReportType, year int) (bool, error)
	DeleteForCooperative(ctx context.Context, cooperativeID, id uuid.UUID) error
}

// Notifier is the notification port. Dispatch is fire-and-forget from the
// engine's perspective: failures are logged by the collaborator and never
// roll back a committed lifecycle transition.
type Notifier interface {
	NotifySubmitted(ctx context.Context, cooperativeID uuid.UUID, reportType ReportType, year int) error
	NotifyApproved(ctx context.Context, cooperativeID uuid.UUID, reportType ReportType, year int) error
	NotifyRejected(ctx context.Context, cooperativeID uuid.UUID, reportType ReportType, year int, reason string) error
}

// ActorDirectory is the actor/authorization port: it resolves the roles an
// actor holds within a cooperative to gate submit/approve/reject.
type ActorDirectory interface {
	RolesFor(ctx context.Context, cooperativeID, actorID uuid.UUID) (RoleSet, error)
}
