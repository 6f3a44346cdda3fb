package donation

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"saveplate/domain"
	"saveplate/entities"
)

type (
	DonationRepository interface {
		FlagDonation(ctx context.Context, item *entities.Item, logEntry *entities.ActivityLog) error
		ClaimItem(ctx context.Context, item *entities.Item, claimantID uuid.UUID, notification *entities.Notification) error
		GetDonations(ctx context.Context) ([]*entities.Item, error)
	}

	donationRepository struct {
		db *gorm.DB
	}
)

func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db: db}
}

// FlagDonation persists the donation fields and the DONATED log together.
func (r *donationRepository) FlagDonation(ctx context.Context, item *entities.Item, logEntry *entities.ActivityLog) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(item).Error; err != nil {
			return err
		}
		return tx.Create(logEntry).Error
	})
}

// ClaimItem transfers ownership with a conditional update: the row must still
// be donation-flagged and still belong to the owner read before the call.
// A concurrent claimant that lost the race gets ErrDonationAlreadyClaimed
// instead of silently overwriting the winner.
func (r *donationRepository) ClaimItem(ctx context.Context, item *entities.Item, claimantID uuid.UUID, notification *entities.Notification) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&entities.Item{}).
			Where("id = ? AND is_donation = ? AND user_id = ?", item.ID, true, item.UserID).
			Updates(map[string]interface{}{
				"user_id":         claimantID,
				"is_donation":     false,
				"pickup_location": "",
				"availability":    "",
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrDonationAlreadyClaimed
		}
		return tx.Create(notification).Error
	})
}

func (r *donationRepository) GetDonations(ctx context.Context) ([]*entities.Item, error) {
	var items []*entities.Item
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("is_donation = ?", true).
		Order("expiry_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
