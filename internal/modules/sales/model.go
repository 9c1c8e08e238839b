package sales

import (
	"time"

	"github.com/google/uuid"
)

// Record is a single closed sale between a vendor and a distributor.
type Record struct {
	ID          uuid.UUID `json:"id"`
	Date        string    `json:"date"` // YYYY-MM-DD
	Product     string    `json:"product"`
	Vendor      string    `json:"vendor"`
	Distributor string    `json:"distributor"`
	Amount      float64   `json:"amount"`
	Region      string    `json:"region"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateRequest is the payload for recording a sale.
type CreateRequest struct {
	Date        string  `json:"date"`
	Product     string  `json:"product"`
	Vendor      string  `json:"vendor"`
	Distributor string  `json:"distributor"`
	Amount      float64 `json:"amount"`
	Region      string  `json:"region"`
}

// Summary aggregates sales for the dashboard and agenda pages.
// RecentTotal covers the three most recent records by date.
type Summary struct {
	TotalAmount float64            `json:"total_amount"`
	RecordCount int                `json:"record_count"`
	RecentTotal float64            `json:"recent_total"`
	ByRegion    map[string]float64 `json:"by_region"`
}
