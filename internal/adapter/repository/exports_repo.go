package repository

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v4/pgxpool"

	"cv-folio/internal/domain"
)

// ExportsRepo stores export history in postgres. A nil pool disables it.
type ExportsRepo struct {
	pool *pgxpool.Pool
}

func NewExportsRepo(pool *pgxpool.Pool) *ExportsRepo {
	return &ExportsRepo{pool: pool}
}

func (r *ExportsRepo) Save(ctx context.Context, j *domain.ExportJob) error {
	if r.pool == nil {
		return nil
	}
	_, err := r.pool.Exec(ctx, `INSERT INTO cv_exports (id, language, status, filename, bytes, duration_ms, error, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (id) DO UPDATE SET status = EXCLUDED.status, bytes = EXCLUDED.bytes, duration_ms = EXCLUDED.duration_ms, error = EXCLUDED.error`,
		j.ID, j.Language, j.Status, j.Filename, j.Bytes, j.DurationMS, j.Error, j.CreatedAt)
	return err
}

// Recent returns the latest n exports, newest first.
func (r *ExportsRepo) Recent(ctx context.Context, n int) ([]domain.ExportJob, error) {
	if r.pool == nil {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx, `SELECT id::text, language, status, filename, bytes, duration_ms, error, created_at
		FROM cv_exports ORDER BY created_at DESC LIMIT $1`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ExportJob
	for rows.Next() {
		var (
			j  domain.ExportJob
			id string
		)
		if err := rows.Scan(&id, &j.Language, &j.Status, &j.Filename, &j.Bytes, &j.DurationMS, &j.Error, &j.CreatedAt); err != nil {
			return nil, err
		}
		if err := j.ID.UnmarshalText([]byte(id)); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

// SQLiteExportsRepo stores export history in a local sqlite file.
type SQLiteExportsRepo struct {
	db *sql.DB
}

func NewSQLiteExportsRepo(db *sql.DB) *SQLiteExportsRepo {
	return &SQLiteExportsRepo{db: db}
}

func (r *SQLiteExportsRepo) Save(ctx context.Context, j *domain.ExportJob) error {
	if r.db == nil {
		return nil
	}
	_, err := r.db.ExecContext(ctx, `INSERT INTO cv_exports (id, language, status, filename, bytes, duration_ms, error, created_at)
		VALUES (?,?,?,?,?,?,?,?)
		ON CONFLICT (id) DO UPDATE SET status = excluded.status, bytes = excluded.bytes, duration_ms = excluded.duration_ms, error = excluded.error`,
		j.ID.String(), j.Language, j.Status, j.Filename, j.Bytes, j.DurationMS, j.Error, j.CreatedAt.UTC())
	return err
}

// Recent returns the latest n exports, newest first.
func (r *SQLiteExportsRepo) Recent(ctx context.Context, n int) ([]domain.ExportJob, error) {
	if r.db == nil {
		return nil, nil
	}
	rows, err := r.db.QueryContext(ctx, `SELECT id, language, status, filename, bytes, duration_ms, error, created_at
		FROM cv_exports ORDER BY created_at DESC LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ExportJob
	for rows.Next() {
		var (
			j  domain.ExportJob
			id string
		)
		if err := rows.Scan(&id, &j.Language, &j.Status, &j.Filename, &j.Bytes, &j.DurationMS, &j.Error, &j.CreatedAt); err != nil {
			return nil, err
		}
		if err := j.ID.UnmarshalText([]byte(id)); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}
