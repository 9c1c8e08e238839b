package availability

import (
	"context"
	"fmt"
	"regexp"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// NoOverlapMessage is the operator-facing outcome when no common slot exists.
const NoOverlapMessage = "No overlapping slots found. Please select more time slots or choose different dates."

var slotPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// Service defines the availability and slot-matching business logic.
type Service interface {
	// SetSlots publishes a participant's free slots for a date, replacing any
	// previous publication for that date.
	SetSlots(ctx context.Context, userID string, req SetSlotsRequest) (*CalendarSlot, error)

	// GetSlots retrieves a participant's published slots for a date.
	GetSlots(ctx context.Context, userID, date string) (*CalendarSlot, error)

	// Analyze computes the overlap between vendor and distributor slot
	// selections, recommends the earliest common slot, and records the outcome.
	Analyze(ctx context.Context, req AnalyzeRequest) (*SlotMatch, error)

	// ListMatches returns past analyses, newest first.
	ListMatches(ctx context.Context) ([]*SlotMatch, error)
}

type service struct {
	repo Repository
}

// NewService creates a new availability service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Overlap returns the sorted set intersection of two slot lists. Duplicates
// are collapsed; the result is the same whichever way the arguments are
// passed.
func Overlap(a, b []string) []string {
	inB := make(map[string]bool, len(b))
	for _, s := range b {
		inB[s] = true
	}
	seen := make(map[string]bool, len(a))
	var common []string
	for _, s := range a {
		if inB[s] && !seen[s] {
			common = append(common, s)
			seen[s] = true
		}
	}
	sort.Strings(common)
	return common
}

// Validate enforces the slot publication rules.
func (r SetSlotsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Date, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&r.FreeSlots, validation.Required,
			validation.Each(validation.Match(slotPattern).Error("must be a zero-padded HH:MM label"))),
	)
}

// Validate enforces the analysis payload rules: both sides must offer at
// least one well-formed slot label.
func (r AnalyzeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.VendorSlots, validation.Required,
			validation.Each(validation.Match(slotPattern).Error("must be a zero-padded HH:MM label"))),
		validation.Field(&r.DistributorSlots, validation.Required,
			validation.Each(validation.Match(slotPattern).Error("must be a zero-padded HH:MM label"))),
	)
}

func (s *service) SetSlots(ctx context.Context, userID string, req SetSlotsRequest) (*CalendarSlot, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user_id: %w", err)
	}

	tz := req.Timezone
	if tz == "" {
		tz = "UTC"
	}

	slots := append([]string(nil), req.FreeSlots...)
	sort.Strings(slots)

	slot := &CalendarSlot{
		UserID:    uid,
		Date:      req.Date,
		FreeSlots: slots,
		Timezone:  tz,
	}
	if err := s.repo.UpsertSlots(ctx, slot); err != nil {
		return nil, fmt.Errorf("failed to persist slots: %w", err)
	}
	return slot, nil
}

func (s *service) GetSlots(ctx context.Context, userID, date string) (*CalendarSlot, error) {
	return s.repo.GetSlots(ctx, userID, date)
}

func (s *service) Analyze(ctx context.Context, req AnalyzeRequest) (*SlotMatch, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	overlap := Overlap(req.VendorSlots, req.DistributorSlots)

	match := &SlotMatch{
		ID:                  uuid.New(),
		VendorSlots:         req.VendorSlots,
		DistributorSlots:    req.DistributorSlots,
		Overlap:             overlap,
		VendorTimezone:      req.VendorTimezone,
		DistributorTimezone: req.DistributorTimezone,
	}

	if len(overlap) > 0 {
		// Earliest common slot: lexicographic min, which is chronological for
		// zero-padded HH:MM labels.
		match.Success = true
		match.Recommended = overlap[0]
		match.Message = fmt.Sprintf("Found %d overlapping slots. Recommended: %s (earliest common slot).",
			len(overlap), match.Recommended)
	} else {
		match.Success = false
		match.Message = NoOverlapMessage
	}

	if err := s.repo.CreateMatch(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to persist slot match: %w", err)
	}
	return match, nil
}

func (s *service) ListMatches(ctx context.Context) ([]*SlotMatch, error) {
	return s.repo.ListMatches(ctx)
}
