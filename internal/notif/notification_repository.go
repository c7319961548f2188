package notif

import (
	"context"
	"fmt"

	"mediasocial/internal/database"

	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(ctx context.Context, userID uint64, message string) (*database.Notification, error)
	ListByUser(ctx context.Context, userID uint64) ([]database.Notification, error)
	MarkViewed(ctx context.Context, userID, notificationID uint64) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, userID uint64, message string) (*database.Notification, error) {
	n := &database.Notification{UserID: userID, Message: message}
	if err := r.db.WithContext(ctx).Create(n).Error; err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}
	return n, nil
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID uint64) ([]database.Notification, error) {
	var out []database.Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("notification_id DESC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return out, nil
}

// MarkViewed flags one of the user's notifications as viewed. A notification
// that belongs to someone else is reported as not found.
func (r *notificationRepository) MarkViewed(ctx context.Context, userID, notificationID uint64) error {
	return database.NewMutation().
		Set("viewed", true).
		ExecUpdateExisting(r.db.WithContext(ctx), "notifications", "notification_id = ? AND user_id = ?", notificationID, userID)
}
