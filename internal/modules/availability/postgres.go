package availability

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

func (r *postgresRepo) UpsertSlots(ctx context.Context, slot *CalendarSlot) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO calendar_slots (user_id, slot_date, free_slots, timezone, updated_at)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (user_id, slot_date)
		DO UPDATE SET free_slots=$3, timezone=$4, updated_at=$5`,
		slot.UserID, slot.Date, pq.Array(slot.FreeSlots), slot.Timezone, time.Now())
	return err
}

func (r *postgresRepo) GetSlots(ctx context.Context, userID, date string) (*CalendarSlot, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, ErrNotFound
	}
	slot := &CalendarSlot{}
	err = r.db.QueryRowContext(ctx, `
		SELECT user_id, slot_date, free_slots, timezone, updated_at
		FROM calendar_slots WHERE user_id=$1 AND slot_date=$2`, uid, date).Scan(
		&slot.UserID, &slot.Date, pq.Array(&slot.FreeSlots), &slot.Timezone, &slot.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return slot, nil
}

func (r *postgresRepo) CreateMatch(ctx context.Context, match *SlotMatch) error {
	match.AnalyzedAt = time.Now()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO slot_matches
		  (id, vendor_slots, distributor_slots, overlap, recommended, success,
		   message, vendor_timezone, distributor_timezone, analyzed_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		match.ID, pq.Array(match.VendorSlots), pq.Array(match.DistributorSlots),
		pq.Array(match.Overlap), match.Recommended, match.Success,
		match.Message, match.VendorTimezone, match.DistributorTimezone, match.AnalyzedAt)
	return err
}

func (r *postgresRepo) ListMatches(ctx context.Context) ([]*SlotMatch, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, vendor_slots, distributor_slots, overlap, recommended, success,
		       message, vendor_timezone, distributor_timezone, analyzed_at
		FROM slot_matches ORDER BY analyzed_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []*SlotMatch
	for rows.Next() {
		m := &SlotMatch{}
		if err := rows.Scan(&m.ID, pq.Array(&m.VendorSlots), pq.Array(&m.DistributorSlots),
			pq.Array(&m.Overlap), &m.Recommended, &m.Success,
			&m.Message, &m.VendorTimezone, &m.DistributorTimezone, &m.AnalyzedAt); err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}
