package services

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"

	"alfredoptarigan/resume-matcher/internal/models"
)

// Notifier publishes a toast for one session. Fire-and-forget.
type Notifier interface {
	Notify(sessionID uuid.UUID, n models.Notification)
}

// NotificationSink receives every published notification from the bus.
type NotificationSink interface {
	Deliver(sessionID uuid.UUID, n models.Notification)
}

type envelope struct {
	sessionID    uuid.UUID
	notification models.Notification
}

// NotificationBus is the process-wide toast channel. Publishing never blocks;
// a single dispatcher goroutine fans notifications out to the sinks.
type NotificationBus struct {
	queue    chan envelope
	sinks    []NotificationSink
	wg       sync.WaitGroup
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewNotificationBus(buffer int, sinks ...NotificationSink) *NotificationBus {
	if buffer <= 0 {
		buffer = 1
	}
	return &NotificationBus{
		queue:    make(chan envelope, buffer),
		sinks:    sinks,
		stopChan: make(chan struct{}),
	}
}

// Start launches the dispatcher.
func (b *NotificationBus) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.dispatch(ctx)
	log.Printf("✅ Notification bus started with %d sinks\n", len(b.sinks))
}

// Stop delivers whatever is already queued, then stops the dispatcher.
func (b *NotificationBus) Stop() {
	b.stopOnce.Do(func() {
		log.Println("🛑 Stopping notification bus...")
		close(b.stopChan)
		b.wg.Wait()
		log.Println("✅ Notification bus stopped")
	})
}

// Notify implements Notifier.
func (b *NotificationBus) Notify(sessionID uuid.UUID, n models.Notification) {
	select {
	case <-b.stopChan:
		log.Printf("⚠️  Notification bus stopped, dropping %q for session %s\n", n.Title, sessionID)
		return
	default:
	}

	select {
	case b.queue <- envelope{sessionID: sessionID, notification: n}:
	default:
		log.Printf("⚠️  Notification queue full, dropping %q for session %s\n", n.Title, sessionID)
	}
}

func (b *NotificationBus) dispatch(ctx context.Context) {
	defer b.wg.Done()

	for {
		select {
		case env := <-b.queue:
			b.deliver(env)
		case <-b.stopChan:
			b.drain()
			return
		case <-ctx.Done():
			b.drain()
			return
		}
	}
}

func (b *NotificationBus) drain() {
	for {
		select {
		case env := <-b.queue:
			b.deliver(env)
		default:
			return
		}
	}
}

func (b *NotificationBus) deliver(env envelope) {
	for _, sink := range b.sinks {
		sink.Deliver(env.sessionID, env.notification)
	}
}

// LogSink writes one log line per notification.
type LogSink struct{}

func (LogSink) Deliver(sessionID uuid.UUID, n models.Notification) {
	icon := "🔔"
	if n.Variant == models.VariantDestructive {
		icon = "❗"
	}
	log.Printf("%s [%s] %s: %s\n", icon, sessionID, n.Title, n.Description)
}
