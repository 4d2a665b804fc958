package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/koperasi/backend/internal/domain/report"
	"github.com/koperasi/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ReportService orchestrates validation, persistence and lifecycle
// transitions for financial reports. Validation always runs to completion
// before anything is persisted; blocking violations abort the write,
// warnings ride along on the response.
type ReportService struct {
	repo           report.FinancialReportRepository
	actors         report.ActorDirectory
	registry       *report.ValidatorRegistry
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewReportService creates a new ReportService
func NewReportService(
	repo report.FinancialReportRepository,
	actors report.ActorDirectory,
	logger *zap.Logger,
) *ReportService {
	return &ReportService{
		repo:     repo,
		actors:   actors,
		registry: report.NewValidatorRegistry(),
		logger:   logger,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *ReportService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Validate runs the full validation pass without persisting anything.
// It backs the interactive preview: the input never touches storage.
func (s *ReportService) Validate(ctx context.Context, cooperativeID uuid.UUID, input report.ReportInput) (*ValidationResponse, error) {
	baseline := s.loadBaseline(ctx, cooperativeID, input.ReportType, input.ReportingYear)
	violations := s.registry.Validate(&input, baseline)
	return &ValidationResponse{
		Valid:      !violations.HasBlocking(),
		Violations: violations,
	}, nil
}

// CreateReport validates the input and persists a new draft report.
// At most one report may exist per (cooperative, type, year); the check here
// gives a friendly error early, the repository's unique constraint settles
// concurrent races.
func (s *ReportService) CreateReport(ctx context.Context, cooperativeID, createdBy uuid.UUID, input report.ReportInput) (*ReportResponse, error) {
	violations, err := s.validateBlocking(ctx, cooperativeID, input)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsForPeriod(ctx, cooperativeID, input.ReportType, input.ReportingYear)
	if err != nil {
		return nil, report.NewDependencyError("repository", err)
	}
	if exists {
		return nil, report.NewConflictError(fmt.Sprintf(
			"a %s report already exists for %d", input.ReportType, input.ReportingYear))
	}

	r, err := report.NewFinancialReport(cooperativeID, input, createdBy)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}

	s.logger.Info("financial report created",
		zap.String("cooperative_id", cooperativeID.String()),
		zap.String("report_id", r.ID.String()),
		zap.String("report_type", r.ReportType.String()),
		zap.Int("reporting_year", r.ReportingYear))

	s.publishEvents(ctx, r)

	return toReportResponse(r, violations.Warnings()), nil
}

// GetReport returns one report with its full line item payload
func (s *ReportService) GetReport(ctx context.Context, cooperativeID, id uuid.UUID) (*ReportResponse, error) {
	r, err := s.repo.FindByIDForCooperative(ctx, cooperativeID, id)
	if err != nil {
		return nil, err
	}
	return toReportResponse(r, nil), nil
}

// ListReports returns a paginated summary list
func (s *ReportService) ListReports(ctx context.Context, cooperativeID uuid.UUID, filter ReportListFilter) (*ReportListResponse, error) {
	domainFilter := toDomainFilter(filter)

	reports, err := s.repo.FindAllForCooperative(ctx, cooperativeID, domainFilter)
	if err != nil {
		return nil, report.NewDependencyError("repository", err)
	}
	total, err := s.repo.CountForCooperative(ctx, cooperativeID, domainFilter)
	if err != nil {
		return nil, report.NewDependencyError("repository", err)
	}

	items := make([]ReportSummaryResponse, 0, len(reports))
	for i := range reports {
		items = append(items, toReportSummaryResponse(&reports[i]))
	}

	return &ReportListResponse{
		Items:    items,
		Total:    total,
		Page:     domainFilter.Page,
		PageSize: domainFilter.PageSize,
	}, nil
}

// UpdateReport replaces a draft report's contents in full after validation
func (s *ReportService) UpdateReport(ctx context.Context, cooperativeID, id uuid.UUID, input report.ReportInput) (*ReportResponse, error) {
	r, err := s.repo.FindByIDForCooperative(ctx, cooperativeID, id)
	if err != nil {
		return nil, err
	}

	violations, err := s.validateBlocking(ctx, cooperativeID, input)
	if err != nil {
		return nil, err
	}

	if err := r.UpdateDraft(input); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, r); err != nil {
		return nil, err
	}

	s.logger.Info("financial report updated",
		zap.String("cooperative_id", cooperativeID.String()),
		zap.String("report_id", r.ID.String()),
		zap.Int("line_count", r.LineCount()))

	return toReportResponse(r, violations.Warnings()), nil
}

// DeleteReport removes a draft report and its line items
func (s *ReportService) DeleteReport(ctx context.Context, cooperativeID, id uuid.UUID) error {
	r, err := s.repo.FindByIDForCooperative(ctx, cooperativeID, id)
	if err != nil {
		return err
	}
	if !r.CanDelete() {
		return report.NewStateError(r.Status, "delete")
	}

	if err := s.repo.DeleteForCooperative(ctx, cooperativeID, id); err != nil {
		return report.NewDependencyError("repository", err)
	}

	s.logger.Info("financial report deleted",
		zap.String("cooperative_id", cooperativeID.String()),
		zap.String("report_id", id.String()))

	return nil
}

// SubmitReport moves a draft report into review. The draft is re-validated
// so a report that drifted invalid since its last save cannot be submitted.
func (s *ReportService) SubmitReport(ctx context.Context, cooperativeID, id, actorID uuid.UUID) (*ReportResponse, error) {
	r, err := s.repo.FindByIDForCooperative(ctx, cooperativeID, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.validateBlocking(ctx, cooperativeID, r.Input); err != nil {
		return nil, err
	}

	roles, err := s.rolesFor(ctx, cooperativeID, actorID)
	if err != nil {
		return nil, err
	}

	if err := r.Submit(actorID, roles); err != nil {
		return nil, err
	}

	if err := s.repo.SaveWithLock(ctx, r); err != nil {
		return nil, err
	}

	s.logger.Info("financial report submitted",
		zap.String("cooperative_id", cooperativeID.String()),
		zap.String("report_id", r.ID.String()),
		zap.String("submitted_by", actorID.String()))

	s.publishEvents(ctx, r)

	return toReportResponse(r, nil), nil
}

// ApproveReport finalizes a submitted report
func (s *ReportService) ApproveReport(ctx context.Context, cooperativeID, id, actorID uuid.UUID) (*ReportResponse, error) {
	r, err := s.repo.FindByIDForCooperative(ctx, cooperativeID, id)
	if err != nil {
		return nil, err
	}

	roles, err := s.rolesFor(ctx, cooperativeID, actorID)
	if err != nil {
		return nil, err
	}

	if err := r.Approve(actorID, roles); err != nil {
		return nil, err
	}

	if err := s.repo.SaveWithLock(ctx, r); err != nil {
		return nil, err
	}

	s.logger.Info("financial report approved",
		zap.String("cooperative_id", cooperativeID.String()),
		zap.String("report_id", r.ID.String()),
		zap.String("approved_by", actorID.String()))

	s.publishEvents(ctx, r)

	return toReportResponse(r, nil), nil
}

// RejectReport sends a submitted report back with a mandatory reason
func (s *ReportService) RejectReport(ctx context.Context, cooperativeID, id, actorID uuid.UUID, reason string) (*ReportResponse, error) {
	r, err := s.repo.FindByIDForCooperative(ctx, cooperativeID, id)
	if err != nil {
		return nil, err
	}

	roles, err := s.rolesFor(ctx, cooperativeID, actorID)
	if err != nil {
		return nil, err
	}

	if err := r.Reject(actorID, roles, reason); err != nil {
		return nil, err
	}

	if err := s.repo.SaveWithLock(ctx, r); err != nil {
		return nil, err
	}

	s.logger.Info("financial report rejected",
		zap.String("cooperative_id", cooperativeID.String()),
		zap.String("report_id", r.ID.String()),
		zap.String("rejected_by", actorID.String()))

	s.publishEvents(ctx, r)

	return toReportResponse(r, nil), nil
}

// validateBlocking runs the full pass and converts blocking violations into
// a ValidationError. Warnings are returned for the caller to surface.
func (s *ReportService) validateBlocking(ctx context.Context, cooperativeID uuid.UUID, input report.ReportInput) (report.Violations, error) {
	baseline := s.loadBaseline(ctx, cooperativeID, input.ReportType, input.ReportingYear)
	violations := s.registry.Validate(&input, baseline)
	if violations.HasBlocking() {
		return nil, report.NewValidationError(violations)
	}
	return violations, nil
}

// loadBaseline fetches the prior year's approved report of the same type for
// cross-period warnings. A missing or unreadable baseline simply skips the
// cross-checks; it never blocks validation.
func (s *ReportService) loadBaseline(ctx context.Context, cooperativeID uuid.UUID, reportType report.ReportType, year int) *report.ReportInput {
	priorYear := year - 1
	approved := report.ReportStatusApproved
	filter := report.ReportFilter{
		Filter:        shared.DefaultFilter(),
		ReportType:    &reportType,
		ReportingYear: &priorYear,
		Status:        &approved,
	}

	prior, err := s.repo.FindAllForCooperative(ctx, cooperativeID, filter)
	if err != nil {
		s.logger.Warn("baseline lookup failed, skipping cross-period checks",
			zap.String("cooperative_id", cooperativeID.String()),
			zap.String("report_type", reportType.String()),
			zap.Int("prior_year", priorYear),
			zap.Error(err))
		return nil
	}
	if len(prior) == 0 {
		return nil
	}
	return &prior[0].Input
}

func (s *ReportService) rolesFor(ctx context.Context, cooperativeID, actorID uuid.UUID) (report.RoleSet, error) {
	roles, err := s.actors.RolesFor(ctx, cooperativeID, actorID)
	if err != nil {
		return nil, report.NewDependencyError("actor directory", err)
	}
	return roles, nil
}

func (s *ReportService) publishEvents(ctx context.Context, r *report.FinancialReport) {
	if s.eventPublisher == nil {
		return
	}
	for _, event := range r.GetDomainEvents() {
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			s.logger.Warn("failed to publish domain event",
				zap.String("event_type", event.EventType()),
				zap.String("report_id", r.ID.String()),
				zap.Error(err))
		}
	}
	r.ClearDomainEvents()
}

func toDomainFilter(filter ReportListFilter) report.ReportFilter {
	df := report.ReportFilter{Filter: shared.DefaultFilter()}
	if filter.Page > 0 {
		df.Page = filter.Page
	}
	if filter.PageSize > 0 && filter.PageSize <= 100 {
		df.PageSize = filter.PageSize
	}
	if filter.ReportType != "" {
		rt := report.ReportType(filter.ReportType)
		df.ReportType = &rt
	}
	if filter.ReportingYear > 0 {
		df.ReportingYear = &filter.ReportingYear
	}
	if filter.Status != "" {
		st := report.ReportStatus(filter.Status)
		df.Status = &st
	}
	return df
}
