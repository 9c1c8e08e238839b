package sales

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Service defines the sales aggregation business logic.
type Service interface {
	// Create records a closed sale.
	Create(ctx context.Context, req CreateRequest) (*Record, error)

	// List returns records newest first, optionally filtered by region.
	List(ctx context.Context, region string) ([]*Record, error)

	// Summarize computes the aggregate figures the dashboard consumes.
	Summarize(ctx context.Context) (*Summary, error)
}

type service struct {
	repo Repository
}

// NewService creates a new sales service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Validate enforces the sale recording rules. Amounts must be positive.
func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Date, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&r.Product, validation.Required),
		validation.Field(&r.Vendor, validation.Required),
		validation.Field(&r.Distributor, validation.Required),
		validation.Field(&r.Amount, validation.Required, validation.Min(0.01)),
		validation.Field(&r.Region, validation.Required),
	)
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Record, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	rec := &Record{
		ID:          uuid.New(),
		Date:        req.Date,
		Product:     req.Product,
		Vendor:      req.Vendor,
		Distributor: req.Distributor,
		Amount:      req.Amount,
		Region:      req.Region,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to persist sales record: %w", err)
	}
	return rec, nil
}

func (s *service) List(ctx context.Context, region string) ([]*Record, error) {
	return s.repo.List(ctx, region)
}

func (s *service) Summarize(ctx context.Context) (*Summary, error) {
	records, err := s.repo.List(ctx, "")
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		RecordCount: len(records),
		ByRegion:    make(map[string]float64),
	}
	for i, rec := range records {
		summary.TotalAmount += rec.Amount
		summary.ByRegion[rec.Region] += rec.Amount
		if i < 3 { // records arrive newest first
			summary.RecentTotal += rec.Amount
		}
	}
	return summary, nil
}
