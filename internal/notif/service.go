package notif

import (
	"context"
	"log"
	"sync"
	"time"

	"mediasocial/internal/common"
	"mediasocial/internal/config"
	"mediasocial/internal/database"
)

// Messages sent by the other services.
const (
	MessageNewComment = "New Comment on your post"
	MessagePostSaved  = "Someone saved your post"
	MessageNewChat    = "New Chat message"
)

// Event asks for UserID to be notified. TriggerUserID is the user whose
// action caused it.
type Event struct {
	UserID        uint64
	TriggerUserID uint64
	Message       string
}

// Publisher accepts events after the originating transaction committed.
// Publishing never fails the caller.
type Publisher interface {
	Publish(event Event)
}

// NotificationManager fans events out to observers on a pool of workers.
type NotificationManager struct {
	observers    map[string]Observer
	eventChannel chan Event
	workerPool   int
	timeout      time.Duration
	mu           sync.RWMutex
	closed       bool
	wg           sync.WaitGroup
}

func NewNotificationManager(cfg *config.Config) *NotificationManager {
	workers := cfg.Notification.Workers
	if workers <= 0 {
		workers = 1
	}
	buffer := cfg.Notification.ChannelBufferSize
	if buffer <= 0 {
		buffer = 1000
	}

	nm := &NotificationManager{
		observers:    make(map[string]Observer),
		eventChannel: make(chan Event, buffer),
		workerPool:   workers,
		timeout:      5 * time.Second,
	}

	for i := 0; i < workers; i++ {
		nm.wg.Add(1)
		go nm.processEvents()
	}
	return nm
}

func (nm *NotificationManager) Subscribe(observer Observer) {
	nm.mu.Lock()
	defer nm.mu.Unlock()
	nm.observers[observer.Name()] = observer
	log.Printf("Observer %s subscribed", observer.Name())
}

func (nm *NotificationManager) Unsubscribe(observer Observer) {
	nm.mu.Lock()
	defer nm.mu.Unlock()
	delete(nm.observers, observer.Name())
	log.Printf("Observer %s unsubscribed", observer.Name())
}

// Notify delivers event to every observer synchronously.
func (nm *NotificationManager) Notify(event Event) {
	nm.mu.RLock()
	observers := make([]Observer, 0, len(nm.observers))
	for _, obs := range nm.observers {
		observers = append(observers, obs)
	}
	nm.mu.RUnlock()

	ctx, cancel := context.WithTimeout(context.Background(), nm.timeout)
	defer cancel()

	for _, observer := range observers {
		if err := observer.Update(ctx, event); err != nil {
			log.Printf("Observer %s update failed: %v", observer.Name(), err)
		}
	}
}

// Publish queues event for the workers. A full queue drops the event.
func (nm *NotificationManager) Publish(event Event) {
	nm.mu.RLock()
	defer nm.mu.RUnlock()
	if nm.closed {
		return
	}

	select {
	case nm.eventChannel <- event:
	default:
		log.Printf("Notification channel full, dropping event for user %d", event.UserID)
	}
}

func (nm *NotificationManager) processEvents() {
	defer nm.wg.Done()
	for event := range nm.eventChannel {
		nm.Notify(event)
	}
}

// Shutdown stops accepting events and waits for queued ones to be delivered.
func (nm *NotificationManager) Shutdown() {
	nm.mu.Lock()
	if nm.closed {
		nm.mu.Unlock()
		return
	}
	nm.closed = true
	close(nm.eventChannel)
	nm.mu.Unlock()

	nm.wg.Wait()
	log.Println("NotificationManager shutdown complete")
}

// NoopPublisher drops every event. Used when notifications are disabled.
type NoopPublisher struct{}

func (NoopPublisher) Publish(Event) {}

// NewPublisher builds the manager with its observers, or a NoopPublisher when
// notifications are disabled. The returned func shuts the manager down.
func NewPublisher(cfg *config.Config, repo NotificationRepository) (Publisher, func()) {
	if !cfg.Notification.Enabled {
		return NoopPublisher{}, func() {}
	}

	manager := NewNotificationManager(cfg)
	manager.Subscribe(NewDatabaseNotificationObserver(repo))
	if cfg.Logging.Level == "info" || cfg.Logging.Level == "debug" {
		manager.Subscribe(LogNotificationObserver{})
	}
	return manager, manager.Shutdown
}

type NotificationService interface {
	Send(ctx context.Context, userID uint64, message string) (*database.Notification, error)
	List(ctx context.Context, actor common.Actor) ([]database.Notification, error)
	MarkViewed(ctx context.Context, actor common.Actor, notificationID uint64) error
}

type notificationService struct {
	repo NotificationRepository
}

func NewNotificationService(repo NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

// Send stores a notification directly, without going through the manager.
func (s *notificationService) Send(ctx context.Context, userID uint64, message string) (*database.Notification, error) {
	if userID == 0 {
		return nil, &common.ValidationError{Field: "user_id", Reason: "is required"}
	}
	if err := common.ValidateText("message", message, 255); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, userID, message)
}

func (s *notificationService) List(ctx context.Context, actor common.Actor) ([]database.Notification, error) {
	return s.repo.ListByUser(ctx, actor.UserID)
}

func (s *notificationService) MarkViewed(ctx context.Context, actor common.Actor, notificationID uint64) error {
	return s.repo.MarkViewed(ctx, actor.UserID, notificationID)
}
