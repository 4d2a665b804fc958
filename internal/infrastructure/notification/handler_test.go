package notification

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/koperasi/backend/internal/domain/report"
	"github.com/koperasi/backend/internal/domain/shared"
	"github.com/koperasi/backend/internal/infrastructure/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifySubmitted(ctx context.Context, cooperativeID uuid.UUID, reportType report.ReportType, year int) error {
	args := m.Called(ctx, cooperativeID, reportType, year)
	return args.Error(0)
}

func (m *MockNotifier) NotifyApproved(ctx context.Context, cooperativeID uuid.UUID, reportType report.ReportType, year int) error {
	args := m.Called(ctx, cooperativeID, reportType, year)
	return args.Error(0)
}

func (m *MockNotifier) NotifyRejected(ctx context.Context, cooperativeID uuid.UUID, reportType report.ReportType, year int, reason string) error {
	args := m.Called(ctx, cooperativeID, reportType, year, reason)
	return args.Error(0)
}

func TestReportEventHandler(t *testing.T) {
	coopID := uuid.New()
	reportID := uuid.New()

	submitted := &report.ReportSubmittedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(report.EventTypeReportSubmitted, "FinancialReport", reportID, coopID),
		ReportID:        reportID,
		ReportType:      report.ReportTypeBalanceSheet,
		ReportingYear:   2025,
	}
	approved := &report.ReportApprovedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(report.EventTypeReportApproved, "FinancialReport", reportID, coopID),
		ReportID:        reportID,
		ReportType:      report.ReportTypeBalanceSheet,
		ReportingYear:   2025,
	}
	rejected := &report.ReportRejectedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(report.EventTypeReportRejected, "FinancialReport", reportID, coopID),
		ReportID:        reportID,
		ReportType:      report.ReportTypeBalanceSheet,
		ReportingYear:   2025,
		RejectionReason: "saldo tidak seimbang",
	}

	t.Run("submitted event notifies submitters", func(t *testing.T) {
		notifier := new(MockNotifier)
		notifier.On("NotifySubmitted", mock.Anything, coopID, report.ReportTypeBalanceSheet, 2025).Return(nil)

		handler := NewReportEventHandler(notifier, zap.NewNop())
		require.NoError(t, handler.Handle(context.Background(), submitted))
		notifier.AssertExpectations(t)
	})

	t.Run("approved event notifies", func(t *testing.T) {
		notifier := new(MockNotifier)
		notifier.On("NotifyApproved", mock.Anything, coopID, report.ReportTypeBalanceSheet, 2025).Return(nil)

		handler := NewReportEventHandler(notifier, zap.NewNop())
		require.NoError(t, handler.Handle(context.Background(), approved))
		notifier.AssertExpectations(t)
	})

	t.Run("rejected event carries the reason", func(t *testing.T) {
		notifier := new(MockNotifier)
		notifier.On("NotifyRejected", mock.Anything, coopID, report.ReportTypeBalanceSheet, 2025, "saldo tidak seimbang").Return(nil)

		handler := NewReportEventHandler(notifier, zap.NewNop())
		require.NoError(t, handler.Handle(context.Background(), rejected))
		notifier.AssertExpectations(t)
	})

	t.Run("unexpected event type is an error", func(t *testing.T) {
		notifier := new(MockNotifier)
		handler := NewReportEventHandler(notifier, zap.NewNop())

		created := &report.ReportCreatedEvent{
			BaseDomainEvent: shared.NewBaseDomainEvent(report.EventTypeReportCreated, "FinancialReport", reportID, coopID),
		}
		assert.Error(t, handler.Handle(context.Background(), created))
		notifier.AssertNotCalled(t, "NotifySubmitted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("declares lifecycle event types only", func(t *testing.T) {
		handler := NewReportEventHandler(new(MockNotifier), zap.NewNop())
		assert.ElementsMatch(t, []string{
			report.EventTypeReportSubmitted,
			report.EventTypeReportApproved,
			report.EventTypeReportRejected,
		}, handler.EventTypes())
	})

	t.Run("wired through the event bus", func(t *testing.T) {
		notifier := new(MockNotifier)
		notifier.On("NotifySubmitted", mock.Anything, coopID, report.ReportTypeBalanceSheet, 2025).Return(nil)

		bus := event.NewInMemoryEventBus(zap.NewNop())
		bus.Subscribe(NewReportEventHandler(notifier, zap.NewNop()))

		require.NoError(t, bus.Publish(context.Background(), submitted))
		notifier.AssertExpectations(t)

		created := &report.ReportCreatedEvent{
			BaseDomainEvent: shared.NewBaseDomainEvent(report.EventTypeReportCreated, "FinancialReport", reportID, coopID),
		}
		require.NoError(t, bus.Publish(context.Background(), created))
		notifier.AssertNotCalled(t, "NotifyApproved", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
