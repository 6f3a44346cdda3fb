package domain

const (
	ActionUsed    = "USED"
	ActionDonated = "DONATED"
)

var (
	MessageSuccessGetAnalytics = "analytics retrieved successfully"
	MessageFailedGetAnalytics  = "failed to retrieve analytics"
)

type (
	CategorySlice struct {
		Name  string `json:"name"`
		Value int    `json:"value"`
	}

	RecentActivityEntry struct {
		Date   string `json:"date"`
		Name   string `json:"name"`
		Action string `json:"action"`
	}

	AnalyticsSummary struct {
		TotalSaved     int                   `json:"totalSaved"`
		TotalDonated   int                   `json:"totalDonated"`
		PieData        []CategorySlice       `json:"pieData"`
		RecentActivity []RecentActivityEntry `json:"recentActivity"`
		HasHistory     bool                  `json:"hasHistory"`
	}
)
