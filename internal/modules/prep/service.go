package prep

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Service defines the prep note business logic.
type Service interface {
	// Save creates or replaces the prep note for a meeting. Edits persist
	// across sessions instead of living only in page state.
	Save(ctx context.Context, meetingID string, req SaveRequest) (*PrepNote, error)

	// Get retrieves the prep note for a meeting.
	Get(ctx context.Context, meetingID string) (*PrepNote, error)
}

type service struct {
	repo Repository
}

// NewService creates a new prep note service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Validate requires at least one note line.
func (r SaveRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Notes, validation.Required),
	)
}

func (s *service) Save(ctx context.Context, meetingID string, req SaveRequest) (*PrepNote, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	uid, err := uuid.Parse(meetingID)
	if err != nil {
		return nil, fmt.Errorf("invalid meeting id: %w", err)
	}

	note := &PrepNote{
		MeetingID:          uid,
		Notes:              req.Notes,
		KeyTopics:          req.KeyTopics,
		LastMeetingSummary: req.LastMeetingSummary,
	}
	if err := s.repo.Upsert(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to persist prep note: %w", err)
	}
	return note, nil
}

func (s *service) Get(ctx context.Context, meetingID string) (*PrepNote, error) {
	return s.repo.GetByMeetingID(ctx, meetingID)
}
