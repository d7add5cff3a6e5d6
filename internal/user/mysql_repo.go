package user

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

func (r *MySQLRepo) Create(ctx context.Context, u *User) error {
	const query = `
		INSERT INTO users (id, username, email, password_hash, role, created_at, updated_at)
		VALUES (:id, :username, :email, :password_hash, :role, :created_at, :updated_at)`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	_, err := r.db.NamedExecContext(timeoutCtx, query, u)
	return err
}

func (r *MySQLRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	const query = `
		SELECT id, username, email, password_hash, role, created_at, updated_at
		FROM users
		WHERE email = ?
		LIMIT 1`

	var u User
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.GetContext(timeoutCtx, &u, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}

func (r *MySQLRepo) GetByID(ctx context.Context, id string) (User, error) {
	const query = `
		SELECT id, username, email, password_hash, role, created_at, updated_at
		FROM users
		WHERE id = ?
		LIMIT 1`

	var u User
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.GetContext(timeoutCtx, &u, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}
