package prep

import "context"

type Repository interface {
	// Upsert creates or replaces the prep note for a meeting.
	Upsert(ctx context.Context, note *PrepNote) error

	// GetByMeetingID retrieves the prep note for a meeting.
	GetByMeetingID(ctx context.Context, meetingID string) (*PrepNote, error)
}
