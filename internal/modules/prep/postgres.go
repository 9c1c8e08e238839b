package prep

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Upsert(ctx context.Context, note *PrepNote) error {
	note.UpdatedAt = time.Now()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO prep_notes (meeting_id, notes, key_topics, last_meeting_summary, updated_at)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (meeting_id)
		DO UPDATE SET notes=$2, key_topics=$3, last_meeting_summary=$4, updated_at=$5`,
		note.MeetingID, pq.Array(note.Notes), pq.Array(note.KeyTopics),
		note.LastMeetingSummary, note.UpdatedAt)
	return err
}

func (r *postgresRepo) GetByMeetingID(ctx context.Context, meetingID string) (*PrepNote, error) {
	uid, err := uuid.Parse(meetingID)
	if err != nil {
		return nil, ErrNotFound
	}
	note := &PrepNote{}
	err = r.db.QueryRowContext(ctx, `
		SELECT meeting_id, notes, key_topics, last_meeting_summary, updated_at
		FROM prep_notes WHERE meeting_id=$1`, uid).Scan(
		&note.MeetingID, pq.Array(&note.Notes), pq.Array(&note.KeyTopics),
		&note.LastMeetingSummary, &note.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return note, nil
}
