package sales

import "context"

type Repository interface {
	Create(ctx context.Context, rec *Record) error

	// List returns records newest first, optionally filtered by region.
	List(ctx context.Context, region string) ([]*Record, error)
}
