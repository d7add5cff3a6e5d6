package book

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
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

func (r *MySQLRepo) List(ctx context.Context, q Query) ([]Book, int, error) {
	clauses := []string{"1=1"}
	args := []any{}

	if q.Author != "" {
		clauses = append(clauses, "author = ?")
		args = append(args, q.Author)
	}

	if q.Q != "" {
		clauses = append(clauses, "(title LIKE ? OR author LIKE ? OR description LIKE ?)")
		pattern := "%" + q.Q + "%"
		args = append(args, pattern, pattern, pattern)
	}

	where := "WHERE " + strings.Join(clauses, " AND ")

	sortCol := "title"
	switch q.Sort {
	case "created_at":
		sortCol = "created_at"
	case "published_date":
		sortCol = "published_date"
	case "author":
		sortCol = "author"
	}
	order := "ASC"
	if q.Desc {
		order = "DESC"
	}

	countSQL := fmt.Sprintf("SELECT COUNT(*) FROM books %s", where)
	var total int
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.GetContext(timeoutCtx, &total, countSQL, args...); err != nil {
		return nil, 0, err
	}

	dataSQL := fmt.Sprintf(`
		SELECT id, title, author, description, published_date, created_at, updated_at
		FROM books
		%s
		ORDER BY %s %s
		LIMIT ? OFFSET ?`,
		where, sortCol, order)

	argsWithPage := append([]any{}, args...)
	argsWithPage = append(argsWithPage, q.Limit, q.Offset)
	timeoutCtx2, cancel2 := r.withTimeout(ctx)
	defer cancel2()

	var out []Book
	if err := r.db.SelectContext(timeoutCtx2, &out, dataSQL, argsWithPage...); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *MySQLRepo) GetByID(ctx context.Context, id string) (Book, error) {
	const query = `
		SELECT id, title, author, description, published_date, created_at, updated_at
		FROM books
		WHERE id = ?
		LIMIT 1`

	var b Book
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.GetContext(timeoutCtx, &b, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func (r *MySQLRepo) Create(ctx context.Context, b *Book) error {
	const query = `
		INSERT INTO books (id, title, author, description, published_date, created_at, updated_at)
		VALUES (:id, :title, :author, :description, :published_date, :created_at, :updated_at)`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	_, err := r.db.NamedExecContext(timeoutCtx, query, b)
	return err
}

func (r *MySQLRepo) Update(ctx context.Context, b *Book) error {
	const query = `
		UPDATE books SET
			title = :title,
			author = :author,
			description = :description,
			published_date = :published_date,
			updated_at = :updated_at
		WHERE id = :id`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	res, err := r.db.NamedExecContext(timeoutCtx, query, b)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MySQLRepo) Delete(ctx context.Context, id string) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	res, err := r.db.ExecContext(timeoutCtx, `DELETE FROM books WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
