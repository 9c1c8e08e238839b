package availability

import "context"

type Repository interface {
	// UpsertSlots replaces a participant's free slots for a date.
	UpsertSlots(ctx context.Context, slot *CalendarSlot) error

	// GetSlots retrieves a participant's free slots for a date.
	GetSlots(ctx context.Context, userID, date string) (*CalendarSlot, error)

	// CreateMatch persists an immutable slot analysis record.
	CreateMatch(ctx context.Context, match *SlotMatch) error

	// ListMatches returns past analyses, newest first.
	ListMatches(ctx context.Context) ([]*SlotMatch, error)
}
