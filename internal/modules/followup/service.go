package followup

import (
	"context"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// Service defines the follow-up tracker business logic.
type Service interface {
	// Create adds a pending follow-up with a fresh identifier.
	Create(ctx context.Context, req CreateRequest) (*FollowUp, error)

	// List returns follow-ups, optionally filtered by status.
	List(ctx context.Context, status string) ([]*FollowUp, error)

	// ToggleStatus flips a follow-up between pending and completed.
	// Toggling twice restores the original status.
	ToggleStatus(ctx context.Context, id string) (*FollowUp, error)

	// Stats returns progress counters and the derived level label.
	Stats(ctx context.Context) (*Stats, error)
}

type service struct {
	repo Repository
}

// NewService creates a new follow-up service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Validate enforces the follow-up creation rules.
func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.MeetingID, validation.Required, is.UUID),
		validation.Field(&r.Task, validation.Required),
		validation.Field(&r.Assignee, validation.Required),
		validation.Field(&r.DueDate, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&r.Priority, validation.Required, validation.In("high", "medium", "low")),
	)
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*FollowUp, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	meetingID, err := uuid.Parse(req.MeetingID)
	if err != nil {
		return nil, fmt.Errorf("invalid meeting_id: %w", err)
	}

	f := &FollowUp{
		ID:        uuid.New(),
		MeetingID: meetingID,
		Task:      req.Task,
		Assignee:  req.Assignee,
		DueDate:   req.DueDate,
		Status:    StatusPending,
		Priority:  Priority(strings.ToLower(req.Priority)),
	}

	if err := s.repo.Create(ctx, f); err != nil {
		return nil, fmt.Errorf("failed to persist follow-up: %w", err)
	}
	return f, nil
}

func (s *service) List(ctx context.Context, status string) ([]*FollowUp, error) {
	return s.repo.List(ctx, strings.ToLower(status))
}

func (s *service) ToggleStatus(ctx context.Context, id string) (*FollowUp, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("follow-up not found: %w", err)
	}

	next := StatusPending
	if f.Status == StatusPending {
		next = StatusCompleted
	}

	if err := s.repo.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}
	f.Status = next
	return f, nil
}

func (s *service) Stats(ctx context.Context) (*Stats, error) {
	total, pending, completed, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	// An empty set reports 0%, not a division by zero.
	rate := 0
	if total > 0 {
		rate = int(float64(completed)/float64(total)*100 + 0.5)
	}

	return &Stats{
		Total:          total,
		Pending:        pending,
		Completed:      completed,
		CompletionRate: rate,
		Level:          levelFor(rate),
	}, nil
}

// levelFor maps a completion rate to the four-tier progress label.
func levelFor(rate int) string {
	switch {
	case rate >= 90:
		return "Expert"
	case rate >= 70:
		return "Pro"
	case rate >= 50:
		return "Growing"
	default:
		return "Starter"
	}
}
