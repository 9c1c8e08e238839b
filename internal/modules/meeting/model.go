package meeting

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Status represents the lifecycle state of a meeting.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var ErrNotFound = errors.New("meeting not found")

// Meeting represents a vendor-distributor meeting.
type Meeting struct {
	ID            uuid.UUID `json:"id"`
	Reference     string    `json:"reference"`
	Topic         string    `json:"topic"`
	Date          string    `json:"date"` // YYYY-MM-DD
	Time          string    `json:"time"` // HH:MM
	Participants  []string  `json:"participants"`
	Status        Status    `json:"status"`
	Agenda        []string  `json:"agenda,omitempty"`
	Outcome       string    `json:"outcome,omitempty"`
	VendorID      uuid.UUID `json:"vendor_id"`
	DistributorID uuid.UUID `json:"distributor_id"`
	Timezone      string    `json:"timezone"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ScheduleRequest is the payload for creating a new meeting.
type ScheduleRequest struct {
	Topic         string   `json:"topic"`
	Date          string   `json:"date"`
	Time          string   `json:"time"`
	Participants  []string `json:"participants"`
	Agenda        []string `json:"agenda,omitempty"`
	AutoAgenda    bool     `json:"auto_agenda,omitempty"`
	VendorID      string   `json:"vendor_id"`
	DistributorID string   `json:"distributor_id"`
	Timezone      string   `json:"timezone,omitempty"` // defaults to UTC
}

// CompleteRequest is the payload for closing out a meeting with its outcome.
type CompleteRequest struct {
	Outcome string `json:"outcome"`
}
