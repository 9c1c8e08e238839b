package followup

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Status represents a follow-up's completion state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Priority is the three-tier urgency tag.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

var ErrNotFound = errors.New("follow-up not found")

// FollowUp is an action item arising from a meeting.
type FollowUp struct {
	ID        uuid.UUID `json:"id"`
	MeetingID uuid.UUID `json:"meeting_id"`
	Task      string    `json:"task"`
	Assignee  string    `json:"assignee"`
	DueDate   string    `json:"due_date"` // YYYY-MM-DD
	Status    Status    `json:"status"`
	Priority  Priority  `json:"priority"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateRequest is the payload for adding a follow-up. New follow-ups always
// start pending.
type CreateRequest struct {
	MeetingID string `json:"meeting_id"`
	Task      string `json:"task"`
	Assignee  string `json:"assignee"`
	DueDate   string `json:"due_date"`
	Priority  string `json:"priority"`
}

// Stats summarises follow-up progress for the tracker header.
// CompletionRate is 0 for an empty set rather than undefined.
type Stats struct {
	Total          int    `json:"total"`
	Pending        int    `json:"pending"`
	Completed      int    `json:"completed"`
	CompletionRate int    `json:"completion_rate"`
	Level          string `json:"level"`
}
