package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"saveplate/domain"
	"saveplate/entities"
	"saveplate/pkg/inventory"
	"saveplate/pkg/meal"
)

type (
	NotificationService interface {
		GetNotifications(ctx context.Context, userID string) ([]domain.NotificationResponse, error)
		MarkRead(ctx context.Context, id string, userID string) (domain.NotificationResponse, error)
	}

	notificationService struct {
		notificationRepository NotificationRepository
		itemRepository         inventory.ItemRepository
		mealRepository         meal.MealRepository
	}
)

func NewNotificationService(notificationRepository NotificationRepository, itemRepository inventory.ItemRepository, mealRepository meal.MealRepository) NotificationService {
	return &notificationService{
		notificationRepository: notificationRepository,
		itemRepository:         itemRepository,
		mealRepository:         mealRepository,
	}
}

func toNotificationResponse(n *entities.Notification) domain.NotificationResponse {
	return domain.NotificationResponse{
		ID:        n.ID.String(),
		Type:      n.Type,
		Message:   n.Message,
		RelatedID: n.RelatedID,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

// GetNotifications runs the derivation pass before listing: expiring items
// and today's planned meals materialize notifications if the (user,
// relatedId, type) key does not exist yet. Running it twice over unchanged
// state adds nothing. Notifications are never expired here, so one can
// outlive the item or meal it points at.
func (s *notificationService) GetNotifications(ctx context.Context, userID string) ([]domain.NotificationResponse, error) {
	now := time.Now()

	if err := s.generateInventoryAlerts(ctx, userID, now); err != nil {
		return nil, err
	}

	if err := s.generateMealReminders(ctx, userID, now); err != nil {
		return nil, err
	}

	notifications, err := s.notificationRepository.GetNotifications(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		response = append(response, toNotificationResponse(n))
	}

	return response, nil
}

func (s *notificationService) generateInventoryAlerts(ctx context.Context, userID string, now time.Time) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	threeDaysFromNow := now.AddDate(0, 0, 3)

	expiringItems, err := s.itemRepository.GetItemsByExpiryRange(ctx, userID, now, threeDaysFromNow)
	if err != nil {
		return err
	}

	for _, item := range expiringItems {
		exists, err := s.notificationRepository.NotificationExists(ctx, userID, item.ID.String(), domain.NotificationTypeInventory)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		notification := &entities.Notification{
			ID:        uuid.New(),
			UserID:    userUUID,
			Type:      domain.NotificationTypeInventory,
			Message:   fmt.Sprintf("Your %q is expiring soon (%s)!", item.Name, item.ExpiryDate.Format("02 Jan 2006")),
			RelatedID: item.ID.String(),
		}
		if err := s.notificationRepository.CreateNotification(ctx, notification); err != nil {
			return err
		}
	}

	return nil
}

func (s *notificationService) generateMealReminders(ctx context.Context, userID string, now time.Time) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	todaysMeals, err := s.mealRepository.GetMealsForDay(ctx, userID, now.Weekday().String())
	if err != nil {
		return err
	}

	for _, m := range todaysMeals {
		exists, err := s.notificationRepository.NotificationExists(ctx, userID, m.ID.String(), domain.NotificationTypeMeal)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		notification := &entities.Notification{
			ID:        uuid.New(),
			UserID:    userUUID,
			Type:      domain.NotificationTypeMeal,
			Message:   fmt.Sprintf("Reminder: You planned %q for %s today.", m.DishName, m.Slot),
			RelatedID: m.ID.String(),
		}
		if err := s.notificationRepository.CreateNotification(ctx, notification); err != nil {
			return err
		}
	}

	return nil
}

func (s *notificationService) MarkRead(ctx context.Context, id string, userID string) (domain.NotificationResponse, error) {
	notification, err := s.notificationRepository.GetNotificationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotificationResponse{}, domain.ErrNotificationNotFound
		}
		return domain.NotificationResponse{}, err
	}

	if notification.UserID.String() != userID {
		return domain.NotificationResponse{}, domain.ErrUnauthorizedNotificationAccess
	}

	notification.IsRead = true
	if err := s.notificationRepository.UpdateNotification(ctx, notification); err != nil {
		return domain.NotificationResponse{}, err
	}

	return toNotificationResponse(notification), nil
}
