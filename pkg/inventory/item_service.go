package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"saveplate/domain"
	"saveplate/entities"
	"saveplate/internal/utils/storage"
)

type (
	ItemService interface {
		AddItem(ctx context.Context, req domain.AddItemRequest, userID string) (domain.ItemResponse, error)
		UpdateItem(ctx context.Context, id string, req domain.UpdateItemRequest, userID string) (domain.ItemResponse, error)
		MarkUsed(ctx context.Context, id string, userID string) error
		GetItems(ctx context.Context, userID string, listType string) ([]domain.ItemResponse, error)
		GetItemByID(ctx context.Context, id string, userID string) (domain.ItemResponse, error)
		UploadItemImage(ctx context.Context, req domain.UploadItemImageRequest, userID string) error
	}

	itemService struct {
		itemRepository ItemRepository
		s3             storage.AwsS3
	}
)

func NewItemService(itemRepository ItemRepository, s3 storage.AwsS3) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		s3:             s3,
	}
}

func validCategory(category string) bool {
	for _, c := range domain.ItemCategories {
		if category == c {
			return true
		}
	}
	return false
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

func (s *itemService) AddItem(ctx context.Context, req domain.AddItemRequest, userID string) (domain.ItemResponse, error) {
	expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
	if err != nil {
		return domain.ItemResponse{}, domain.ErrInvalidExpiryDate
	}

	if req.Quantity < 0 {
		return domain.ItemResponse{}, domain.ErrInvalidQuantity
	}

	if !validCategory(req.Category) {
		return domain.ItemResponse{}, domain.ErrInvalidCategory
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ItemResponse{}, domain.ErrParseUUID
	}

	item := &entities.Item{
		ID:              uuid.New(),
		UserID:          userUUID,
		Name:            req.Name,
		Quantity:        req.Quantity,
		ExpiryDate:      expiryDate,
		Category:        req.Category,
		StorageLocation: req.StorageLocation,
		IsDonation:      false,
	}

	if err := s.itemRepository.AddItem(ctx, item); err != nil {
		return domain.ItemResponse{}, err
	}

	return toItemResponse(item), nil
}

func (s *itemService) UpdateItem(ctx context.Context, id string, req domain.UpdateItemRequest, userID string) (domain.ItemResponse, error) {
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

	if req.Name != "" {
		item.Name = req.Name
	}

	if req.Quantity != nil {
		if *req.Quantity < 0 {
			return domain.ItemResponse{}, domain.ErrInvalidQuantity
		}
		item.Quantity = *req.Quantity
	}

	if req.ExpiryDate != "" {
		expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return domain.ItemResponse{}, domain.ErrInvalidExpiryDate
		}
		item.ExpiryDate = expiryDate
	}

	if req.Category != "" {
		if !validCategory(req.Category) {
			return domain.ItemResponse{}, domain.ErrInvalidCategory
		}
		item.Category = req.Category
	}

	if req.StorageLocation != "" {
		item.StorageLocation = req.StorageLocation
	}

	if err := s.itemRepository.UpdateItem(ctx, item); err != nil {
		return domain.ItemResponse{}, err
	}

	return toItemResponse(item), nil
}

func (s *itemService) MarkUsed(ctx context.Context, id string, userID string) error {
	item, err := s.itemRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrItemNotFound
		}
		return err
	}

	if item.UserID.String() != userID {
		return domain.ErrUnauthorizedItemAccess
	}

	logEntry := &entities.ActivityLog{
		ID:         uuid.New(),
		UserID:     item.UserID,
		ActionType: domain.ActionUsed,
		ItemName:   item.Name,
		Quantity:   item.Quantity,
		Category:   item.Category,
	}

	return s.itemRepository.MarkItemUsed(ctx, item, logEntry)
}

func (s *itemService) GetItems(ctx context.Context, userID string, listType string) ([]domain.ItemResponse, error) {
	isDonation := listType == "Donation"

	items, err := s.itemRepository.GetItems(ctx, userID, isDonation)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toItemResponse(item))
	}

	return response, nil
}

func (s *itemService) GetItemByID(ctx context.Context, id string, userID string) (domain.ItemResponse, error) {
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

	return toItemResponse(item), nil
}

func (s *itemService) UploadItemImage(ctx context.Context, req domain.UploadItemImageRequest, userID string) error {
	item, err := s.itemRepository.GetItemByID(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrItemNotFound
		}
		return err
	}

	if item.UserID.String() != userID {
		return domain.ErrUnauthorizedItemAccess
	}

	fileName := fmt.Sprintf("item-%s", item.ID.String())
	var objectKey string
	var uploadErr error

	if item.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(item.ImageURL)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "items", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "items", storage.AllowImage...)
	}

	if uploadErr != nil {
		return uploadErr
	}

	item.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	return s.itemRepository.UpdateItem(ctx, item)
}
