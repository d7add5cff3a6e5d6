package listing

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

// sortClause maps the query's sort parameters onto a whitelisted ORDER BY
// fragment. Explicit sort columns honor the desc flag; anything else falls
// back to newest first.
func sortClause(q Query) string {
	switch q.Sort {
	case "created_at", "price", "name":
	default:
		return "created_at DESC"
	}
	if q.Desc {
		return q.Sort + " DESC"
	}
	return q.Sort + " ASC"
}

func (r *MySQLRepo) List(ctx context.Context, q Query) ([]Listing, int, error) {
	clauses := []string{"1=1"}
	args := []any{}

	if q.Location != "" {
		clauses = append(clauses, "location = ?")
		args = append(args, q.Location)
	}

	if q.MinPrice != nil {
		clauses = append(clauses, "price >= ?")
		args = append(args, *q.MinPrice)
	}

	if q.MaxPrice != nil {
		clauses = append(clauses, "price <= ?")
		args = append(args, *q.MaxPrice)
	}

	if q.Q != "" {
		clauses = append(clauses, "(name LIKE ? OR location LIKE ? OR description LIKE ?)")
		pattern := "%" + q.Q + "%"
		args = append(args, pattern, pattern, pattern)
	}

	where := "WHERE " + strings.Join(clauses, " AND ")

	countSQL := fmt.Sprintf("SELECT COUNT(*) FROM listings %s", where)
	var total int
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.GetContext(timeoutCtx, &total, countSQL, args...); err != nil {
		return nil, 0, err
	}

	dataSQL := fmt.Sprintf(`
		SELECT id, name, location, description, price, created_at, updated_at
		FROM listings
		%s
		ORDER BY %s
		LIMIT ? OFFSET ?`,
		where, sortClause(q))

	argsWithPage := append([]any{}, args...)
	argsWithPage = append(argsWithPage, q.Limit, q.Offset)
	timeoutCtx2, cancel2 := r.withTimeout(ctx)
	defer cancel2()

	var out []Listing
	if err := r.db.SelectContext(timeoutCtx2, &out, dataSQL, argsWithPage...); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *MySQLRepo) GetByID(ctx context.Context, id string) (Listing, error) {
	const query = `
		SELECT id, name, location, description, price, created_at, updated_at
		FROM listings
		WHERE id = ?
		LIMIT 1`

	var l Listing
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.GetContext(timeoutCtx, &l, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Listing{}, ErrNotFound
		}
		return Listing{}, err
	}
	return l, nil
}

func (r *MySQLRepo) Create(ctx context.Context, l *Listing) error {
	const query = `
		INSERT INTO listings (id, name, location, description, price, created_at, updated_at)
		VALUES (:id, :name, :location, :description, :price, :created_at, :updated_at)`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	_, err := r.db.NamedExecContext(timeoutCtx, query, l)
	return err
}

func (r *MySQLRepo) Update(ctx context.Context, l *Listing) error {
	const query = `
		UPDATE listings SET
			name = :name,
			location = :location,
			description = :description,
			price = :price,
			updated_at = :updated_at
		WHERE id = :id`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	res, err := r.db.NamedExecContext(timeoutCtx, query, l)
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
	res, err := r.db.ExecContext(timeoutCtx, `DELETE FROM listings WHERE id = ?`, id)
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

// ListAll streams the full listing set for report generation. Reports run in
// the background so this uses a longer timeout than request-path queries.
func (r *MySQLRepo) ListAll(ctx context.Context) ([]Listing, error) {
	const query = `
		SELECT id, name, location, description, price, created_at, updated_at
		FROM listings
		ORDER BY created_at DESC`

	timeoutCtx, cancel := context.WithTimeout(ctx, 4*r.timeout)
	defer cancel()

	var out []Listing
	if err := r.db.SelectContext(timeoutCtx, &out, query); err != nil {
		return nil, err
	}
	return out, nil
}
