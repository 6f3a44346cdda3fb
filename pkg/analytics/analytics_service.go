package analytics

import (
	"context"

	"saveplate/domain"
)

const recentActivityLimit = 5

type (
	AnalyticsService interface {
		Summarize(ctx context.Context, userID string) (domain.AnalyticsSummary, error)
	}

	analyticsService struct {
		analyticsRepository AnalyticsRepository
	}
)

func NewAnalyticsService(analyticsRepository AnalyticsRepository) AnalyticsService {
	return &analyticsService{analyticsRepository: analyticsRepository}
}

// Summarize reduces the requester's activity log. Counts come from the log
// snapshots, not live items, so history stays stable after items change or
// disappear.
func (s *analyticsService) Summarize(ctx context.Context, userID string) (domain.AnalyticsSummary, error) {
	totalSaved, err := s.analyticsRepository.CountByAction(ctx, userID, domain.ActionUsed)
	if err != nil {
		return domain.AnalyticsSummary{}, err
	}

	totalDonated, err := s.analyticsRepository.CountByAction(ctx, userID, domain.ActionDonated)
	if err != nil {
		return domain.AnalyticsSummary{}, err
	}

	breakdown, err := s.analyticsRepository.GetCategoryBreakdown(ctx, userID)
	if err != nil {
		return domain.AnalyticsSummary{}, err
	}

	pieData := make([]domain.CategorySlice, 0, len(breakdown))
	for _, entry := range breakdown {
		pieData = append(pieData, domain.CategorySlice{
			Name:  entry.Category,
			Value: entry.Count,
		})
	}

	logs, err := s.analyticsRepository.GetRecentLogs(ctx, userID, recentActivityLimit)
	if err != nil {
		return domain.AnalyticsSummary{}, err
	}

	// Logs arrive newest-first; flip them back to insertion order.
	recentActivity := make([]domain.RecentActivityEntry, 0, len(logs))
	for i := len(logs) - 1; i >= 0; i-- {
		recentActivity = append(recentActivity, domain.RecentActivityEntry{
			Date:   logs[i].CreatedAt.Format("02 Jan 2006"),
			Name:   logs[i].ItemName,
			Action: logs[i].ActionType,
		})
	}

	return domain.AnalyticsSummary{
		TotalSaved:     int(totalSaved),
		TotalDonated:   int(totalDonated),
		PieData:        pieData,
		RecentActivity: recentActivity,
		HasHistory:     totalSaved+totalDonated > 0,
	}, nil
}
