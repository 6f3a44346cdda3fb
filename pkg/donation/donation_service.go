package donation

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"saveplate/domain"
	"saveplate/entities"
	"saveplate/internal/utils/mailing"
	"saveplate/pkg/inventory"
	"saveplate/pkg/user"
)

type (
	DonationService interface {
		FlagDonation(ctx context.Context, id string, req domain.FlagDonationRequest, userID string) (domain.ItemResponse, error)
		Claim(ctx context.Context, id string, userID string) (domain.ItemResponse, error)
		BrowseFeed(ctx context.Context, userID string) ([]domain.BrowseItem, error)
	}

	donationService struct {
		donationRepository DonationRepository
		itemRepository     inventory.ItemRepository
		userRepository     user.UserRepository
	}
)

func NewDonationService(donationRepository DonationRepository, itemRepository inventory.ItemRepository, userRepository user.UserRepository) DonationService {
	return &donationService{
		donationRepository: donationRepository,
		itemRepository:     itemRepository,
		userRepository:     userRepository,
	}
}

func toItemResponse(item *entities.Item) domain.ItemResponse {
	return domain.ItemResponse{
		ID:              item.ID.String(),
		Name:            item.Name,
		Quantity:        item.Quantity,
		ExpiryDate:      item.ExpiryDate,
		Category:        item.Category,
		StorageLocation: item.StorageLocation,
		IsDonation:      item.IsDonation,
		PickupLocation:  item.PickupLocation,
		Availability:    item.Availability,
		ImageURL:        item.ImageURL,
		CreatedAt:       item.CreatedAt,
	}
}

func (s *donationService) FlagDonation(ctx context.Context, id string, req domain.FlagDonationRequest, userID string) (domain.ItemResponse, error) {
	if req.PickupLocation == "" || req.Availability == "" {
		return domain.ItemResponse{}, domain.ErrDonationDetailsMissing
	}

	item, err := s.itemRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ItemResponse{}, domain.ErrItemNotFound
		}
		return domain.ItemResponse{}, err
	}

	if item.UserID.String() != userID {
		return domain.ItemResponse{}, domain.ErrUnauthorizedItemAccess
	}

	item.IsDonation = true
	item.PickupLocation = req.PickupLocation
	item.Availability = req.Availability

	logEntry := &entities.ActivityLog{
		ID:         uuid.New(),
		UserID:     item.UserID,
		ActionType: domain.ActionDonated,
		ItemName:   item.Name,
		Quantity:   item.Quantity,
		Category:   item.Category,
	}

	if err := s.donationRepository.FlagDonation(ctx, item, logEntry); err != nil {
		return domain.ItemResponse{}, err
	}

	return toItemResponse(item), nil
}

func (s *donationService) Claim(ctx context.Context, id string, userID string) (domain.ItemResponse, error) {
	item, err := s.itemRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ItemResponse{}, domain.ErrItemNotFound
		}
		return domain.ItemResponse{}, err
	}

	if !item.IsDonation {
		return domain.ItemResponse{}, domain.ErrItemNotDonation
	}

	if item.UserID.String() == userID {
		return domain.ItemResponse{}, domain.ErrSelfClaim
	}

	claimantUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ItemResponse{}, domain.ErrParseUUID
	}

	originalOwnerID := item.UserID

	notification := &entities.Notification{
		ID:        uuid.New(),
		UserID:    originalOwnerID,
		Type:      domain.NotificationTypeDonation,
		Message:   fmt.Sprintf("Good news! Your donation %q has been claimed and saved from waste.", item.Name),
		RelatedID: item.ID.String(),
	}

	if err := s.donationRepository.ClaimItem(ctx, item, claimantUUID, notification); err != nil {
		return domain.ItemResponse{}, err
	}

	// Courtesy email to the original owner, best effort only.
	if owner, err := s.userRepository.GetUserByID(ctx, originalOwnerID.String()); err == nil {
		go func(email, itemName string) {
			if err := mailing.SendMail(
				email,
				"Your donation was claimed",
				fmt.Sprintf("<p>Your donation <b>%s</b> has been claimed and saved from waste.</p>", itemName),
			); err != nil {
				log.Printf("failed to send claim email: %v", err)
			}
		}(owner.Email, item.Name)
	}

	item.UserID = claimantUUID
	item.IsDonation = false
	item.PickupLocation = ""
	item.Availability = ""

	return toItemResponse(item), nil
}

func (s *donationService) BrowseFeed(ctx context.Context, userID string) ([]domain.BrowseItem, error) {
	myItems, err := s.itemRepository.GetItems(ctx, userID, false)
	if err != nil {
		return nil, err
	}

	donations, err := s.donationRepository.GetDonations(ctx)
	if err != nil {
		return nil, err
	}

	feed := make([]domain.BrowseItem, 0, len(myItems)+len(donations))

	for _, item := range myItems {
		feed = append(feed, domain.BrowseItem{
			ItemResponse: toItemResponse(item),
			DisplayType:  "Inventory",
			OwnerName:    "Me",
		})
	}

	for _, item := range donations {
		ownerName := "Anonymous"
		if item.UserID.String() == userID {
			ownerName = "Me"
		} else if item.User != nil {
			ownerName = item.User.FullName
		}
		feed = append(feed, domain.BrowseItem{
			ItemResponse: toItemResponse(item),
			DisplayType:  "Donation",
			OwnerName:    ownerName,
		})
	}

	return feed, nil
}
