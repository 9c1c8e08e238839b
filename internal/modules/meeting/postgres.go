package meeting

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

// CreateMeeting inserts the meeting and its agenda items inside a single transaction.
func (r *postgresRepo) CreateMeeting(ctx context.Context, m *Meeting) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO meetings
		  (id, reference, topic, meeting_date, meeting_time, participants,
		   status, outcome, vendor_id, distributor_id, timezone)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		m.ID, m.Reference, m.Topic, m.Date, m.Time, pq.Array(m.Participants),
		m.Status, m.Outcome, m.VendorID, m.DistributorID, m.Timezone)
	if err != nil {
		return fmt.Errorf("insert meeting: %w", err)
	}

	for i, item := range m.Agenda {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO meeting_agenda_items (id, meeting_id, position, item)
			VALUES ($1,$2,$3,$4)`,
			uuid.New(), m.ID, i, item)
		if err != nil {
			return fmt.Errorf("insert agenda item: %w", err)
		}
	}

	return tx.Commit()
}

func (r *postgresRepo) GetMeetingByID(ctx context.Context, id string) (*Meeting, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	m, err := r.scanMeeting(r.db.QueryRowContext(ctx, `
		SELECT id, reference, topic, meeting_date, meeting_time, participants,
		       status, outcome, vendor_id, distributor_id, timezone, created_at, updated_at
		FROM meetings WHERE id=$1`, uid))
	if err != nil {
		return nil, err
	}
	m.Agenda, err = r.listAgenda(ctx, m.ID)
	return m, err
}

func (r *postgresRepo) ListMeetings(ctx context.Context, status string) ([]*Meeting, error) {
	query := `SELECT id, reference, topic, meeting_date, meeting_time, participants,
	                 status, outcome, vendor_id, distributor_id, timezone, created_at, updated_at
	          FROM meetings`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE status=$1`
		args = append(args, status)
	}
	query += ` ORDER BY meeting_date ASC, meeting_time ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var meetings []*Meeting
	for rows.Next() {
		m := &Meeting{}
		if err := rows.Scan(&m.ID, &m.Reference, &m.Topic, &m.Date, &m.Time,
			pq.Array(&m.Participants), &m.Status, &m.Outcome,
			&m.VendorID, &m.DistributorID, &m.Timezone, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		meetings = append(meetings, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, m := range meetings {
		if m.Agenda, err = r.listAgenda(ctx, m.ID); err != nil {
			return nil, err
		}
	}
	return meetings, nil
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id string, status Status, outcome string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE meetings SET status=$1, outcome=$2, updated_at=$3 WHERE id=$4`,
		status, outcome, time.Now(), id)
	return err
}

// ── helpers ──────────────────────────────────────────────────────────────────

func (r *postgresRepo) scanMeeting(row *sql.Row) (*Meeting, error) {
	m := &Meeting{}
	err := row.Scan(&m.ID, &m.Reference, &m.Topic, &m.Date, &m.Time,
		pq.Array(&m.Participants), &m.Status, &m.Outcome,
		&m.VendorID, &m.DistributorID, &m.Timezone, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *postgresRepo) listAgenda(ctx context.Context, meetingID uuid.UUID) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT item FROM meeting_agenda_items WHERE meeting_id=$1 ORDER BY position ASC`, meetingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var agenda []string
	for rows.Next() {
		var item string
		if err := rows.Scan(&item); err != nil {
			return nil, err
		}
		agenda = append(agenda, item)
	}
	return agenda, rows.Err()
}
