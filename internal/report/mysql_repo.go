package report

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

type MySQLRepo struct {
	db      *sqlx.DB
	timeout time.Duration
}

func NewMySQLRepo(db *sqlx.DB, timeout time.Duration) *MySQLRepo {
	return &MySQLRepo{db: db, timeout: timeout}
}

func (r *MySQLRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *MySQLRepo) Create(ctx context.Context, rep *Report) error {
	const query = `
		INSERT INTO reports (id, status, requested_by, created_at, updated_at)
		VALUES (:id, :status, :requested_by, :created_at, :updated_at)`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	_, err := r.db.NamedExecContext(timeoutCtx, query, rep)
	return err
}

func (r *MySQLRepo) GetByID(ctx context.Context, id string) (Report, error) {
	const query = `
		SELECT id, status, requested_by, COALESCE(result_json, '') AS result_json,
		       COALESCE(error, '') AS error, created_at, updated_at
		FROM reports
		WHERE id = ?
		LIMIT 1`

	var rep Report
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.GetContext(timeoutCtx, &rep, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Report{}, ErrNotFound
		}
		return Report{}, err
	}
	return rep, nil
}

func (r *MySQLRepo) SetStatus(ctx context.Context, id, status string) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	res, err := r.db.ExecContext(timeoutCtx,
		`UPDATE reports SET status = ?, updated_at = NOW() WHERE id = ?`, status, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (r *MySQLRepo) Complete(ctx context.Context, id string, resultJSON []byte) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	res, err := r.db.ExecContext(timeoutCtx,
		`UPDATE reports SET status = ?, result_json = ?, updated_at = NOW() WHERE id = ?`,
		StatusCompleted, resultJSON, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (r *MySQLRepo) Fail(ctx context.Context, id, errMsg string) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	res, err := r.db.ExecContext(timeoutCtx,
		`UPDATE reports SET status = ?, error = ?, updated_at = NOW() WHERE id = ?`,
		StatusFailed, errMsg, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func checkAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
