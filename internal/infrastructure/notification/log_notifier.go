package notification

import (
	"context"

	"github.com/google/uuid"
	"github.com/koperasi/backend/internal/domain/report"
	"go.uber.org/zap"
)

// LogNotifier implements report.Notifier by writing structured log entries.
// It stands in for an outbound channel (email, WhatsApp gateway) until one is
// wired; the handler and bus plumbing stay the same when it is replaced.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a notifier backed by the given logger
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.Named("notifier")}
}

// NotifySubmitted implements report.Notifier
func (n *LogNotifier) NotifySubmitted(ctx context.Context, cooperativeID uuid.UUID, reportType report.ReportType, year int) error {
	n.logger.Info("report submitted for review",
		zap.String("cooperative_id", cooperativeID.String()),
		zap.String("report_type", reportType.String()),
		zap.Int("reporting_year", year),
	)
	return nil
}

// NotifyApproved implements report.Notifier
func (n *LogNotifier) NotifyApproved(ctx context.Context, cooperativeID uuid.UUID, reportType report.ReportType, year int) error {
	n.logger.Info("report approved",
		zap.String("cooperative_id", cooperativeID.String()),
		zap.String("report_type", reportType.String()),
		zap.Int("reporting_year", year),
	)
	return nil
}

// NotifyRejected implements report.Notifier
func (n *LogNotifier) NotifyRejected(ctx context.Context, cooperativeID uuid.UUID, reportType report.ReportType, year int, reason string) error {
	n.logger.Info("report rejected",
		zap.String("cooperative_id", cooperativeID.String()),
		zap.String("report_type", reportType.String()),
		zap.Int("reporting_year", year),
		zap.String("reason", reason),
	)
	return nil
}

var _ report.Notifier = (*LogNotifier)(nil)
