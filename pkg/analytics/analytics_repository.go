package analytics

import (
	"context"

	"gorm.io/gorm"

	"saveplate/entities"
)

type (
	CategoryCount struct {
		Category string
		Count    int
	}

	AnalyticsRepository interface {
		CountByAction(ctx context.Context, userID string, actionType string) (int64, error)
		GetCategoryBreakdown(ctx context.Context, userID string) ([]CategoryCount, error)
		GetRecentLogs(ctx context.Context, userID string, limit int) ([]*entities.ActivityLog, error)
	}

	analyticsRepository struct {
		db *gorm.DB
	}
)

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) CountByAction(ctx context.Context, userID string, actionType string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.ActivityLog{}).
		Where("user_id = ? AND action_type = ?", userID, actionType).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *analyticsRepository) GetCategoryBreakdown(ctx context.Context, userID string) ([]CategoryCount, error) {
	var breakdown []CategoryCount
	if err := r.db.WithContext(ctx).Model(&entities.ActivityLog{}).
		Select("category, COUNT(*) as count").
		Where("user_id = ?", userID).
		Group("category").
		Order("category asc").
		Scan(&breakdown).Error; err != nil {
		return nil, err
	}
	return breakdown, nil
}

// GetRecentLogs returns the newest entries first; the caller restores
// insertion order.
func (r *analyticsRepository) GetRecentLogs(ctx context.Context, userID string, limit int) ([]*entities.ActivityLog, error) {
	var logs []*entities.ActivityLog
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
