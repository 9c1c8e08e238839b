package meeting

import (
	"context"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// Service defines the meeting lifecycle business logic.
type Service interface {
	// Schedule validates the request and persists a new scheduled meeting.
	Schedule(ctx context.Context, req ScheduleRequest) (*Meeting, error)

	// Get retrieves a full meeting by UUID.
	Get(ctx context.Context, id string) (*Meeting, error)

	// List returns meetings, optionally filtered by status
	// (the schedule page lists "scheduled", the past-meetings page "completed").
	List(ctx context.Context, status string) ([]*Meeting, error)

	// Complete closes a scheduled meeting, recording its outcome.
	Complete(ctx context.Context, id string, req CompleteRequest) (*Meeting, error)

	// Cancel cancels a scheduled meeting.
	Cancel(ctx context.Context, id string) (*Meeting, error)
}

type service struct {
	repo Repository
}

// NewService creates a new meeting service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// validTransitions defines the allowed status state machine.
// Completed and cancelled are terminal.
var validTransitions = map[Status][]Status{
	StatusScheduled: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

func canTransition(current, next Status) bool {
	for _, s := range validTransitions[current] {
		if s == next {
			return true
		}
	}
	return false
}

// Validate enforces the scheduling field rules. Date and time use the
// zero-padded formats the rest of the system relies on for ordering.
func (r ScheduleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Topic, validation.Required),
		validation.Field(&r.Date, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&r.Time, validation.Required, validation.Date("15:04")),
		validation.Field(&r.Participants, validation.Required, validation.Length(1, 0)),
		validation.Field(&r.VendorID, validation.Required, is.UUID),
		validation.Field(&r.DistributorID, validation.Required, is.UUID),
	)
}

func (s *service) Schedule(ctx context.Context, req ScheduleRequest) (*Meeting, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	vendorID, err := uuid.Parse(req.VendorID)
	if err != nil {
		return nil, fmt.Errorf("invalid vendor_id: %w", err)
	}
	distributorID, err := uuid.Parse(req.DistributorID)
	if err != nil {
		return nil, fmt.Errorf("invalid distributor_id: %w", err)
	}

	tz := req.Timezone
	if tz == "" {
		tz = "UTC"
	}

	agenda := req.Agenda
	if len(agenda) == 0 && req.AutoAgenda {
		agenda = defaultAgenda(req.Topic)
	}

	m := &Meeting{
		ID:            uuid.New(),
		Reference:     generateReference(),
		Topic:         req.Topic,
		Date:          req.Date,
		Time:          req.Time,
		Participants:  req.Participants,
		Status:        StatusScheduled,
		Agenda:        agenda,
		VendorID:      vendorID,
		DistributorID: distributorID,
		Timezone:      tz,
	}

	if err := s.repo.CreateMeeting(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to persist meeting: %w", err)
	}
	return m, nil
}

func (s *service) Get(ctx context.Context, id string) (*Meeting, error) {
	return s.repo.GetMeetingByID(ctx, id)
}

func (s *service) List(ctx context.Context, status string) ([]*Meeting, error) {
	return s.repo.ListMeetings(ctx, strings.ToLower(status))
}

func (s *service) Complete(ctx context.Context, id string, req CompleteRequest) (*Meeting, error) {
	return s.transition(ctx, id, StatusCompleted, req.Outcome)
}

func (s *service) Cancel(ctx context.Context, id string) (*Meeting, error) {
	return s.transition(ctx, id, StatusCancelled, "")
}

func (s *service) transition(ctx context.Context, id string, next Status, outcome string) (*Meeting, error) {
	m, err := s.repo.GetMeetingByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("meeting not found: %w", err)
	}
	if !canTransition(m.Status, next) {
		return nil, fmt.Errorf("cannot transition meeting from %s to %s", m.Status, next)
	}
	if err := s.repo.UpdateStatus(ctx, id, next, outcome); err != nil {
		return nil, err
	}
	m.Status = next
	m.Outcome = outcome
	return m, nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

// generateReference creates a human-readable meeting reference: MTG-YYYYMMDD-XXXX
func generateReference() string {
	date := time.Now().UTC().Format("20060102")
	suffix := strings.ToUpper(uuid.New().String()[:4])
	return fmt.Sprintf("MTG-%s-%s", date, suffix)
}

// defaultAgenda produces a starter agenda when the caller asked for one but
// supplied no items.
func defaultAgenda(topic string) []string {
	return []string{
		"Review previous action items",
		fmt.Sprintf("Discuss: %s", topic),
		"Review recent sales performance",
		"Agree on next steps and follow-ups",
	}
}
