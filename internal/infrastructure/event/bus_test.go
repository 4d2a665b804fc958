package event

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/koperasi/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testEvent struct {
	shared.BaseDomainEvent
}

func newTestEvent(eventType string) *testEvent {
	return &testEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, "financial_report", uuid.New(), uuid.New()),
	}
}

type recordingHandler struct {
	types    []string
	received []shared.DomainEvent
	err      error
	panics   bool
}

func (h *recordingHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	if h.panics {
		panic("handler exploded")
	}
	h.received = append(h.received, event)
	return h.err
}

func (h *recordingHandler) EventTypes() []string {
	return h.types
}

func TestInMemoryEventBus(t *testing.T) {
	newBus := func() *InMemoryEventBus {
		return NewInMemoryEventBus(zap.NewNop())
	}

	t.Run("delivers to subscribed handler", func(t *testing.T) {
		bus := newBus()
		handler := &recordingHandler{types: []string{"report.submitted"}}
		bus.Subscribe(handler)

		err := bus.Publish(context.Background(), newTestEvent("report.submitted"))
		require.NoError(t, err)
		require.Len(t, handler.received, 1)
		assert.Equal(t, "report.submitted", handler.received[0].EventType())
	})

	t.Run("skips handlers for other event types", func(t *testing.T) {
		bus := newBus()
		handler := &recordingHandler{types: []string{"report.approved"}}
		bus.Subscribe(handler)

		require.NoError(t, bus.Publish(context.Background(), newTestEvent("report.submitted")))
		assert.Empty(t, handler.received)
	})

	t.Run("wildcard handler receives everything", func(t *testing.T) {
		bus := newBus()
		handler := &recordingHandler{}
		bus.Subscribe(handler)

		require.NoError(t, bus.Publish(context.Background(),
			newTestEvent("report.submitted"),
			newTestEvent("report.approved"),
		))
		assert.Len(t, handler.received, 2)
	})

	t.Run("explicit subscription types override handler declaration", func(t *testing.T) {
		bus := newBus()
		handler := &recordingHandler{types: []string{"report.submitted"}}
		bus.Subscribe(handler, "report.rejected")

		require.NoError(t, bus.Publish(context.Background(), newTestEvent("report.submitted")))
		assert.Empty(t, handler.received)

		require.NoError(t, bus.Publish(context.Background(), newTestEvent("report.rejected")))
		assert.Len(t, handler.received, 1)
	})

	t.Run("handler error does not stop other handlers", func(t *testing.T) {
		bus := newBus()
		failing := &recordingHandler{types: []string{"report.submitted"}, err: errors.New("smtp down")}
		healthy := &recordingHandler{types: []string{"report.submitted"}}
		bus.Subscribe(failing)
		bus.Subscribe(healthy)

		require.NoError(t, bus.Publish(context.Background(), newTestEvent("report.submitted")))
		assert.Len(t, healthy.received, 1)
	})

	t.Run("handler panic is contained", func(t *testing.T) {
		bus := newBus()
		panicking := &recordingHandler{types: []string{"report.submitted"}, panics: true}
		healthy := &recordingHandler{types: []string{"report.submitted"}}
		bus.Subscribe(panicking)
		bus.Subscribe(healthy)

		require.NotPanics(t, func() {
			_ = bus.Publish(context.Background(), newTestEvent("report.submitted"))
		})
		assert.Len(t, healthy.received, 1)
	})

	t.Run("unsubscribe stops delivery", func(t *testing.T) {
		bus := newBus()
		handler := &recordingHandler{types: []string{"report.submitted"}}
		bus.Subscribe(handler)
		bus.Unsubscribe(handler)

		require.NoError(t, bus.Publish(context.Background(), newTestEvent("report.submitted")))
		assert.Empty(t, handler.received)
	})

	t.Run("start and stop", func(t *testing.T) {
		bus := newBus()
		require.NoError(t, bus.Start(context.Background()))
		require.NoError(t, bus.Stop(context.Background()))
	})
}

func TestHandlerRegistry(t *testing.T) {
	t.Run("type handlers come before wildcard handlers", func(t *testing.T) {
		registry := NewHandlerRegistry()
		typed := &recordingHandler{}
		wild := &recordingHandler{}
		registry.Register(typed, "report.submitted")
		registry.Register(wild)

		handlers := registry.GetHandlers("report.submitted")
		require.Len(t, handlers, 2)
		assert.Same(t, shared.EventHandler(typed), handlers[0])
		assert.Same(t, shared.EventHandler(wild), handlers[1])
	})

	t.Run("unregister removes empty buckets", func(t *testing.T) {
		registry := NewHandlerRegistry()
		handler := &recordingHandler{}
		registry.Register(handler, "report.submitted")
		registry.Unregister(handler)

		assert.Empty(t, registry.GetHandlers("report.submitted"))
	})
}
