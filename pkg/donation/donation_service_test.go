package donation

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"saveplate/domain"
	"saveplate/entities"
	"saveplate/pkg/inventory"
	"saveplate/pkg/user"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dial := gormsqlite.Dialector{
		DriverName: "sqlite",
		DSN:        fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()),
	}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	if err := db.AutoMigrate(
		&entities.User{},
		&entities.Item{},
		&entities.ActivityLog{},
		&entities.Notification{},
	); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}
	return db
}

func newTestService(db *gorm.DB) DonationService {
	return NewDonationService(
		NewDonationRepository(db),
		inventory.NewItemRepository(db),
		user.NewUserRepository(db),
	)
}

func seedUser(t *testing.T, db *gorm.DB, name, email string) *entities.User {
	t.Helper()
	u := &entities.User{
		ID:       uuid.New(),
		FullName: name,
		Email:    email,
		Password: "hashed",
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return u
}

func seedItem(t *testing.T, db *gorm.DB, ownerID uuid.UUID, name string, donation bool) *entities.Item {
	t.Helper()
	item := &entities.Item{
		ID:         uuid.New(),
		UserID:     ownerID,
		Name:       name,
		Quantity:   1,
		ExpiryDate: time.Now().AddDate(0, 0, 14),
		Category:   "Canned",
		IsDonation: donation,
	}
	if donation {
		item.PickupLocation = "Front porch"
		item.Availability = "Weekdays 9-5"
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to seed item: %v", err)
	}
	return item
}

func TestFlagDonation(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "Ayu", "ayu@example.com")
	item := seedItem(t, db, owner.ID, "Soup", false)
	service := newTestService(db)

	res, err := service.FlagDonation(context.Background(), item.ID.String(), domain.FlagDonationRequest{
		PickupLocation: "Front porch",
		Availability:   "Weekdays 9-5",
	}, owner.ID.String())

	assert.NoError(t, err)
	assert.True(t, res.IsDonation)
	assert.Equal(t, "Front porch", res.PickupLocation)

	var stored entities.Item
	assert.NoError(t, db.Where("id = ?", item.ID).First(&stored).Error)
	assert.True(t, stored.IsDonation)

	var logs []entities.ActivityLog
	assert.NoError(t, db.Where("user_id = ?", owner.ID).Find(&logs).Error)
	assert.Len(t, logs, 1)
	assert.Equal(t, domain.ActionDonated, logs[0].ActionType)
	assert.Equal(t, "Soup", logs[0].ItemName)
}

func TestFlagDonationMissingDetails(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "Ayu", "ayu@example.com")
	item := seedItem(t, db, owner.ID, "Soup", false)
	service := newTestService(db)

	_, err := service.FlagDonation(context.Background(), item.ID.String(), domain.FlagDonationRequest{
		PickupLocation: "Front porch",
	}, owner.ID.String())
	assert.ErrorIs(t, err, domain.ErrDonationDetailsMissing)
}

func TestFlagDonationNotOwner(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "Ayu", "ayu@example.com")
	stranger := seedUser(t, db, "Budi", "budi@example.com")
	item := seedItem(t, db, owner.ID, "Soup", false)
	service := newTestService(db)

	_, err := service.FlagDonation(context.Background(), item.ID.String(), domain.FlagDonationRequest{
		PickupLocation: "Front porch",
		Availability:   "Weekdays 9-5",
	}, stranger.ID.String())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedItemAccess)
}

func TestClaimTransfersOwnership(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "Ayu", "ayu@example.com")
	claimant := seedUser(t, db, "Budi", "budi@example.com")
	item := seedItem(t, db, owner.ID, "Soup", true)
	service := newTestService(db)

	res, err := service.Claim(context.Background(), item.ID.String(), claimant.ID.String())
	assert.NoError(t, err)
	assert.False(t, res.IsDonation)
	assert.Empty(t, res.PickupLocation)
	assert.Empty(t, res.Availability)

	var stored entities.Item
	assert.NoError(t, db.Where("id = ?", item.ID).First(&stored).Error)
	assert.Equal(t, claimant.ID, stored.UserID)
	assert.False(t, stored.IsDonation)

	var notifications []entities.Notification
	assert.NoError(t, db.Where("user_id = ?", owner.ID).Find(&notifications).Error)
	assert.Len(t, notifications, 1)
	assert.Equal(t, domain.NotificationTypeDonation, notifications[0].Type)
	assert.Equal(t,
		`Good news! Your donation "Soup" has been claimed and saved from waste.`,
		notifications[0].Message)
	assert.Equal(t, item.ID.String(), notifications[0].RelatedID)
}

func TestClaimSelf(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "Ayu", "ayu@example.com")
	item := seedItem(t, db, owner.ID, "Soup", true)
	service := newTestService(db)

	_, err := service.Claim(context.Background(), item.ID.String(), owner.ID.String())
	assert.ErrorIs(t, err, domain.ErrSelfClaim)
}

func TestClaimNotDonation(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "Ayu", "ayu@example.com")
	claimant := seedUser(t, db, "Budi", "budi@example.com")
	item := seedItem(t, db, owner.ID, "Soup", false)
	service := newTestService(db)

	_, err := service.Claim(context.Background(), item.ID.String(), claimant.ID.String())
	assert.ErrorIs(t, err, domain.ErrItemNotDonation)
}

// Two claimants read the same donation snapshot; only the first conditional
// update matches the row.
func TestClaimItemConflict(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "Ayu", "ayu@example.com")
	first := seedUser(t, db, "Budi", "budi@example.com")
	second := seedUser(t, db, "Citra", "citra@example.com")
	item := seedItem(t, db, owner.ID, "Soup", true)
	repo := NewDonationRepository(db)

	snapshot := *item

	err := repo.ClaimItem(context.Background(), &snapshot, first.ID, &entities.Notification{
		ID:        uuid.New(),
		UserID:    owner.ID,
		Type:      domain.NotificationTypeDonation,
		Message:   "claimed",
		RelatedID: item.ID.String(),
	})
	assert.NoError(t, err)

	err = repo.ClaimItem(context.Background(), &snapshot, second.ID, &entities.Notification{
		ID:        uuid.New(),
		UserID:    owner.ID,
		Type:      domain.NotificationTypeDonation,
		Message:   "claimed",
		RelatedID: item.ID.String(),
	})
	assert.ErrorIs(t, err, domain.ErrDonationAlreadyClaimed)

	var stored entities.Item
	assert.NoError(t, db.Where("id = ?", item.ID).First(&stored).Error)
	assert.Equal(t, first.ID, stored.UserID)

	var count int64
	assert.NoError(t, db.Model(&entities.Notification{}).Where("user_id = ?", owner.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestBrowseFeed(t *testing.T) {
	db := newTestDB(t)
	ayu := seedUser(t, db, "Ayu", "ayu@example.com")
	budi := seedUser(t, db, "Budi", "budi@example.com")
	seedItem(t, db, ayu.ID, "Pasta", false)
	seedItem(t, db, ayu.ID, "Soup", true)
	seedItem(t, db, budi.ID, "Beans", true)
	seedItem(t, db, budi.ID, "Secret Stash", false)
	service := newTestService(db)

	feed, err := service.BrowseFeed(context.Background(), ayu.ID.String())
	assert.NoError(t, err)
	assert.Len(t, feed, 3)

	byName := make(map[string]domain.BrowseItem, len(feed))
	for _, entry := range feed {
		byName[entry.Name] = entry
	}

	// another household's private inventory never shows up
	assert.NotContains(t, byName, "Secret Stash")

	assert.Equal(t, "Inventory", byName["Pasta"].DisplayType)
	assert.Equal(t, "Me", byName["Pasta"].OwnerName)

	assert.Equal(t, "Donation", byName["Soup"].DisplayType)
	assert.Equal(t, "Me", byName["Soup"].OwnerName)

	assert.Equal(t, "Donation", byName["Beans"].DisplayType)
	assert.Equal(t, "Budi", byName["Beans"].OwnerName)
	assert.Equal(t, "Front porch", byName["Beans"].PickupLocation)
}
