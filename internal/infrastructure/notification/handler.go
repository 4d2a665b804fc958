package notification

import (
	"context"
	"fmt"

	"github.com/koperasi/backend/internal/domain/report"
	"github.com/koperasi/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ReportEventHandler forwards report lifecycle events to the notifier.
// Delivery is best effort: a failed notification is logged by the event bus
// and never affects the committed report transition.
type ReportEventHandler struct {
	notifier report.Notifier
	logger   *zap.Logger
}

// NewReportEventHandler creates a handler bound to the given notifier
func NewReportEventHandler(notifier report.Notifier, logger *zap.Logger) *ReportEventHandler {
	return &ReportEventHandler{
		notifier: notifier,
		logger:   logger,
	}
}

// EventTypes implements shared.EventHandler
func (h *ReportEventHandler) EventTypes() []string {
	return []string{
		report.EventTypeReportSubmitted,
		report.EventTypeReportApproved,
		report.EventTypeReportRejected,
	}
}

// Handle implements shared.EventHandler
func (h *ReportEventHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	switch e := event.(type) {
	case *report.ReportSubmittedEvent:
		return h.notifier.NotifySubmitted(ctx, e.CooperativeID(), e.ReportType, e.ReportingYear)
	case *report.ReportApprovedEvent:
		return h.notifier.NotifyApproved(ctx, e.CooperativeID(), e.ReportType, e.ReportingYear)
	case *report.ReportRejectedEvent:
		return h.notifier.NotifyRejected(ctx, e.CooperativeID(), e.ReportType, e.ReportingYear, e.RejectionReason)
	default:
		h.logger.Warn("unexpected event type for report notifications",
			zap.String("event_type", event.EventType()),
		)
		return fmt.Errorf("unexpected event type %q", event.EventType())
	}
}

var _ shared.EventHandler = (*ReportEventHandler)(nil)
