package dashboard

// Summary is the "day at a glance" aggregate for the landing dashboard.
type Summary struct {
	UpcomingMeetings  int     `json:"upcoming_meetings"`
	PendingFollowUps  int     `json:"pending_follow_ups"`
	CompletionRate    int     `json:"completion_rate"`
	Level             string  `json:"level"`
	RecentSalesTotal  float64 `json:"recent_sales_total"`
	NextSuggestedSlot string  `json:"next_suggested_slot"`
}
