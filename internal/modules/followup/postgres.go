package followup

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

const followUpColumns = `id, meeting_id, task, assignee, due_date, status, priority, created_at, updated_at`

func (r *postgresRepo) Create(ctx context.Context, f *FollowUp) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO follow_ups (id, meeting_id, task, assignee, due_date, status, priority)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		f.ID, f.MeetingID, f.Task, f.Assignee, f.DueDate, f.Status, f.Priority)
	return err
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*FollowUp, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	f := &FollowUp{}
	err = r.db.QueryRowContext(ctx,
		`SELECT `+followUpColumns+` FROM follow_ups WHERE id=$1`, uid).Scan(
		&f.ID, &f.MeetingID, &f.Task, &f.Assignee, &f.DueDate, &f.Status, &f.Priority,
		&f.CreatedAt, &f.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (r *postgresRepo) List(ctx context.Context, status string) ([]*FollowUp, error) {
	query := `SELECT ` + followUpColumns + ` FROM follow_ups`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE status=$1`
		args = append(args, status)
	}
	query += ` ORDER BY due_date ASC, created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var followUps []*FollowUp
	for rows.Next() {
		f := &FollowUp{}
		if err := rows.Scan(&f.ID, &f.MeetingID, &f.Task, &f.Assignee, &f.DueDate,
			&f.Status, &f.Priority, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		followUps = append(followUps, f)
	}
	return followUps, rows.Err()
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id string, status Status) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE follow_ups SET status=$1, updated_at=$2 WHERE id=$3`,
		status, time.Now(), id)
	return err
}

func (r *postgresRepo) CountByStatus(ctx context.Context) (total, pending, completed int, err error) {
	err = r.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'pending'),
		       COUNT(*) FILTER (WHERE status = 'completed')
		FROM follow_ups`).Scan(&total, &pending, &completed)
	return total, pending, completed, err
}
