package sales

import (
	"context"
	"database/sql"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, rec *Record) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sales_records (id, sale_date, product, vendor, distributor, amount, region)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		rec.ID, rec.Date, rec.Product, rec.Vendor, rec.Distributor, rec.Amount, rec.Region)
	return err
}

func (r *postgresRepo) List(ctx context.Context, region string) ([]*Record, error) {
	query := `SELECT id, sale_date, product, vendor, distributor, amount, region, created_at
	          FROM sales_records`
	args := []interface{}{}
	if region != "" {
		query += ` WHERE region=$1`
		args = append(args, region)
	}
	query += ` ORDER BY sale_date DESC, created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		rec := &Record{}
		if err := rows.Scan(&rec.ID, &rec.Date, &rec.Product, &rec.Vendor,
			&rec.Distributor, &rec.Amount, &rec.Region, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
