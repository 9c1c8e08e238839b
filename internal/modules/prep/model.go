package prep

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("prep note not found")

// PrepNote holds preparation material for a single meeting.
type PrepNote struct {
	MeetingID          uuid.UUID `json:"meeting_id"`
	Notes              []string  `json:"notes"`
	KeyTopics          []string  `json:"key_topics"`
	LastMeetingSummary string    `json:"last_meeting_summary"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// SaveRequest is the payload for creating or replacing a meeting's prep note.
type SaveRequest struct {
	Notes              []string `json:"notes"`
	KeyTopics          []string `json:"key_topics,omitempty"`
	LastMeetingSummary string   `json:"last_meeting_summary,omitempty"`
}
