package notif

import (
	"context"
	"fmt"
	"log"
)

// Observer receives every published event.
type Observer interface {
	Name() string
	Update(ctx context.Context, event Event) error
}

// DatabaseNotificationObserver stores events as notification rows.
type DatabaseNotificationObserver struct {
	repo NotificationRepository
}

func NewDatabaseNotificationObserver(repo NotificationRepository) *DatabaseNotificationObserver {
	return &DatabaseNotificationObserver{repo: repo}
}

func (d *DatabaseNotificationObserver) Name() string {
	return "database_observer"
}

func (d *DatabaseNotificationObserver) Update(ctx context.Context, event Event) error {
	if _, err := d.repo.Create(ctx, event.UserID, event.Message); err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}
	return nil
}

// LogNotificationObserver writes events to the service log.
type LogNotificationObserver struct{}

func (LogNotificationObserver) Name() string {
	return "log_observer"
}

func (LogNotificationObserver) Update(_ context.Context, event Event) error {
	log.Printf("🔔 notify user=%d from=%d: %s", event.UserID, event.TriggerUserID, event.Message)
	return nil
}
