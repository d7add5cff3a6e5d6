package mysql

import (
	"context"
	"strings"
	"time"

	driver "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

// Open connects to MySQL and verifies the connection with a short ping.
func Open(ctx context.Context, dsn string) (*sqlx.DB, error) {
	dsn, err := withFoundRows(dsn)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// withFoundRows rewrites the DSN so UPDATE reports rows matched instead of
// rows changed. Repositories treat rows-affected == 0 as not-found, which
// under the driver default would turn a no-op update of an existing row
// into a spurious 404.
func withFoundRows(dsn string) (string, error) {
	cfg, err := driver.ParseDSN(dsn)
	if err != nil {
		return "", err
	}
	cfg.ClientFoundRows = true
	return cfg.FormatDSN(), nil
}

// RedactDSN hides credentials in a mysql DSN (user:pass@tcp(host)/db) so it
// can appear in logs.
func RedactDSN(dsn string) string {
	at := strings.LastIndex(dsn, "@")
	if at < 0 {
		return dsn
	}
	return "***" + dsn[at:]
}
