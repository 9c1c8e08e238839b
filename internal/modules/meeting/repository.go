package meeting

import "context"

type Repository interface {
	// CreateMeeting persists a meeting and its agenda items atomically.
	CreateMeeting(ctx context.Context, m *Meeting) error

	// GetMeetingByID retrieves a meeting with its agenda by UUID.
	GetMeetingByID(ctx context.Context, id string) (*Meeting, error)

	// ListMeetings returns meetings ordered by date, optionally filtered by status.
	ListMeetings(ctx context.Context, status string) ([]*Meeting, error)

	// UpdateStatus advances a meeting's lifecycle status, recording the outcome
	// when the meeting is completed.
	UpdateStatus(ctx context.Context, id string, status Status, outcome string) error
}
