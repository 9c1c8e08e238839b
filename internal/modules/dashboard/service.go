package dashboard

import (
	"context"
	"time"

	"github.com/globalsync/globalsync-backend/internal/modules/followup"
	"github.com/globalsync/globalsync-backend/internal/modules/meeting"
	"github.com/globalsync/globalsync-backend/internal/modules/sales"
)

// Service assembles the dashboard summary from the other modules.
type Service interface {
	Summarize(ctx context.Context) (*Summary, error)
}

type service struct {
	meetings  meeting.Service
	followups followup.Service
	sales     sales.Service
	now       func() time.Time
}

// NewService creates a new dashboard service.
func NewService(meetings meeting.Service, followups followup.Service, salesSvc sales.Service) Service {
	return &service{meetings: meetings, followups: followups, sales: salesSvc, now: time.Now}
}

func (s *service) Summarize(ctx context.Context) (*Summary, error) {
	scheduled, err := s.meetings.List(ctx, string(meeting.StatusScheduled))
	if err != nil {
		return nil, err
	}

	stats, err := s.followups.Stats(ctx)
	if err != nil {
		return nil, err
	}

	salesSummary, err := s.sales.Summarize(ctx)
	if err != nil {
		return nil, err
	}

	return &Summary{
		UpcomingMeetings:  len(scheduled),
		PendingFollowUps:  stats.Pending,
		CompletionRate:    stats.CompletionRate,
		Level:             stats.Level,
		RecentSalesTotal:  salesSummary.RecentTotal,
		NextSuggestedSlot: s.nextSuggestedSlot(),
	}, nil
}

// nextSuggestedSlot proposes a default meeting time two days out at 14:00.
func (s *service) nextSuggestedSlot() string {
	now := s.now()
	slot := time.Date(now.Year(), now.Month(), now.Day(), 14, 0, 0, 0, now.Location()).AddDate(0, 0, 2)
	return slot.Format("Monday, Jan 2, 03:04 PM")
}
