package followup

import "context"

type Repository interface {
	Create(ctx context.Context, f *FollowUp) error
	GetByID(ctx context.Context, id string) (*FollowUp, error)

	// List returns follow-ups ordered by due date, optionally filtered by status.
	List(ctx context.Context, status string) ([]*FollowUp, error)

	UpdateStatus(ctx context.Context, id string, status Status) error

	// CountByStatus returns total, pending, and completed counts in one pass.
	CountByStatus(ctx context.Context) (total, pending, completed int, err error)
}
