package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-matcher/internal/models"
)

type recordingSink struct {
	mu        sync.Mutex
	delivered []models.Notification
}

func (r *recordingSink) Deliver(_ uuid.UUID, n models.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.delivered = append(r.delivered, n)
}

func (r *recordingSink) titles() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.delivered))
	for _, n := range r.delivered {
		out = append(out, n.Title)
	}
	return out
}

func note(title string) models.Notification {
	return models.Notification{Title: title, Variant: models.VariantNormal}
}

func TestNotificationBus_DeliversInOrderToEverySink(t *testing.T) {
	first, second := &recordingSink{}, &recordingSink{}
	bus := NewNotificationBus(8, first, second)
	bus.Start(context.Background())

	id := uuid.New()
	bus.Notify(id, note("one"))
	bus.Notify(id, note("two"))
	bus.Notify(id, note("three"))
	bus.Stop()

	want := []string{"one", "two", "three"}
	assert.Equal(t, want, first.titles())
	assert.Equal(t, want, second.titles())
}

func TestNotificationBus_NotifyNeverBlocks(t *testing.T) {
	sink := &recordingSink{}
	bus := NewNotificationBus(1, sink)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 10; i++ {
			bus.Notify(uuid.New(), note("spam"))
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify blocked on a full queue")
	}

	bus.Start(context.Background())
	bus.Stop()
	assert.Len(t, sink.titles(), 1)
}

func TestNotificationBus_DropsAfterStop(t *testing.T) {
	sink := &recordingSink{}
	bus := NewNotificationBus(4, sink)
	bus.Start(context.Background())
	bus.Stop()
	bus.Stop()

	bus.Notify(uuid.New(), note("late"))
	assert.Empty(t, sink.titles())
}

func TestNotificationBus_ContextCancelDrains(t *testing.T) {
	sink := &recordingSink{}
	bus := NewNotificationBus(4, sink)
	ctx, cancel := context.WithCancel(context.Background())
	bus.Start(ctx)

	bus.Notify(uuid.New(), note("queued"))
	cancel()

	require.Eventually(t, func() bool {
		return len(sink.titles()) == 1
	}, time.Second, 5*time.Millisecond)
	bus.Stop()
}
