package availability

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("availability not found")

// CalendarSlot is one participant's free time-of-day labels for a given date.
// Slots are zero-padded 24-hour "HH:MM" strings; their lexicographic order is
// their chronological order, which the matcher relies on.
type CalendarSlot struct {
	UserID    uuid.UUID `json:"user_id"`
	Date      string    `json:"date"` // YYYY-MM-DD
	FreeSlots []string  `json:"free_slots"`
	Timezone  string    `json:"timezone"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SlotMatch is an immutable audit record of one slot analysis.
//
// The overlap is a naive label intersection: a vendor's "14:00" and a
// distributor's "14:00" are treated as the same slot even when their calendars
// carry different timezones. Both zones are recorded on the match so the gap
// is visible to consumers; timezone-aware matching is an open requirements
// question, not something this module silently decides.
type SlotMatch struct {
	ID                  uuid.UUID `json:"id"`
	VendorSlots         []string  `json:"vendor_slots"`
	DistributorSlots    []string  `json:"distributor_slots"`
	Overlap             []string  `json:"overlap"`
	Recommended         string    `json:"recommended,omitempty"`
	Success             bool      `json:"success"`
	Message             string    `json:"message"`
	VendorTimezone      string    `json:"vendor_timezone,omitempty"`
	DistributorTimezone string    `json:"distributor_timezone,omitempty"`
	AnalyzedAt          time.Time `json:"analyzed_at"`
}

// SetSlotsRequest is the payload for publishing a participant's free slots.
type SetSlotsRequest struct {
	Date      string   `json:"date"`
	FreeSlots []string `json:"free_slots"`
	Timezone  string   `json:"timezone,omitempty"` // defaults to UTC
}

// AnalyzeRequest is the payload for a slot overlap analysis.
type AnalyzeRequest struct {
	VendorSlots         []string `json:"vendor_slots"`
	DistributorSlots    []string `json:"distributor_slots"`
	VendorTimezone      string   `json:"vendor_timezone,omitempty"`
	DistributorTimezone string   `json:"distributor_timezone,omitempty"`
}
