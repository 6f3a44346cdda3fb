package inventory

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"saveplate/entities"
)

type (
	ItemRepository interface {
		AddItem(ctx context.Context, item *entities.Item) error
		GetItemByID(ctx context.Context, id string) (*entities.Item, error)
		UpdateItem(ctx context.Context, item *entities.Item) error
		GetItems(ctx context.Context, userID string, isDonation bool) ([]*entities.Item, error)
		GetItemsByExpiryRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]*entities.Item, error)
		MarkItemUsed(ctx context.Context, item *entities.Item, logEntry *entities.ActivityLog) error
	}

	itemRepository struct {
		db *gorm.DB
	}
)

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) AddItem(ctx context.Context, item *entities.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepository) GetItemByID(ctx context.Context, id string) (*entities.Item, error) {
	var item entities.Item
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) UpdateItem(ctx context.Context, item *entities.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *itemRepository) GetItems(ctx context.Context, userID string, isDonation bool) ([]*entities.Item, error) {
	var items []*entities.Item
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_donation = ?", userID, isDonation).
		Order("expiry_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) GetItemsByExpiryRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]*entities.Item, error) {
	var items []*entities.Item
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND expiry_date BETWEEN ? AND ? AND is_donation = ?",
			userID, startDate, endDate, false).
		Order("expiry_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// MarkItemUsed writes the USED log and removes the item in one transaction
// so a crash cannot leave a spurious log next to a surviving item.
func (r *itemRepository) MarkItemUsed(ctx context.Context, item *entities.Item, logEntry *entities.ActivityLog) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(logEntry).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", item.ID).Delete(&entities.Item{}).Error
	})
}
