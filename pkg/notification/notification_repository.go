package notification

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"saveplate/entities"
)

type (
	NotificationRepository interface {
		CreateNotification(ctx context.Context, notification *entities.Notification) error
		NotificationExists(ctx context.Context, userID string, relatedID string, notificationType string) (bool, error)
		GetNotifications(ctx context.Context, userID string) ([]*entities.Notification, error)
		GetNotificationByID(ctx context.Context, id string) (*entities.Notification, error)
		UpdateNotification(ctx context.Context, notification *entities.Notification) error
	}

	notificationRepository struct {
		db *gorm.DB
	}
)

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) CreateNotification(ctx context.Context, notification *entities.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

// NotificationExists is the dedupe key check: at most one notification per
// (user, related record, type).
func (r *notificationRepository) NotificationExists(ctx context.Context, userID string, relatedID string, notificationType string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Notification{}).
		Where("user_id = ? AND related_id = ? AND type = ?", userID, relatedID, notificationType).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *notificationRepository) GetNotifications(ctx context.Context, userID string) ([]*entities.Notification, error) {
	var notifications []*entities.Notification
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *notificationRepository) GetNotificationByID(ctx context.Context, id string) (*entities.Notification, error) {
	var notification entities.Notification
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&notification).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) UpdateNotification(ctx context.Context, notification *entities.Notification) error {
	return r.db.WithContext(ctx).Save(notification).Error
}
