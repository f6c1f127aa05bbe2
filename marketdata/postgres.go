package marketdata

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// PostgresZeroRateFeed reads zero rate snapshots from a Postgres table:
//
//	zero_quotes(curve_id text, asof_date date, quote_date date, zero_rate double precision)
//
// keyed by (curve_id, asof_date) with one row per observation date.
type PostgresZeroRateFeed struct {
	db *sql.DB
}

// NewPostgresZeroRateFeed wraps an existing database handle.
func NewPostgresZeroRateFeed(db *sql.DB) *PostgresZeroRateFeed {
	return &PostgresZeroRateFeed{db: db}
}

// OpenPostgresZeroRateFeed opens a connection from a DSN and verifies it.
func OpenPostgresZeroRateFeed(dsn string) (*PostgresZeroRateFeed, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres feed: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres feed: %w", err)
	}
	return &PostgresZeroRateFeed{db: db}, nil
}

func (f *PostgresZeroRateFeed) Snapshot(curveID string, asOf time.Time) ([]ZeroQuote, error) {
	rows, err := f.db.Query(
		`SELECT quote_date, zero_rate
		   FROM zero_quotes
		  WHERE curve_id = $1 AND asof_date = $2
		  ORDER BY quote_date`,
		curveID, asOf.Format("2006-01-02"),
	)
	if err != nil {
		return nil, fmt.Errorf("query zero quotes: %w", err)
	}
	defer rows.Close()

	var quotes []ZeroQuote
	for rows.Next() {
		var q ZeroQuote
		if err := rows.Scan(&q.Date, &q.Rate); err != nil {
			return nil, fmt.Errorf("scan zero quote: %w", err)
		}
		quotes = append(quotes, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read zero quotes: %w", err)
	}
	if len(quotes) == 0 {
		return nil, fmt.Errorf("%w: %s @ %s", ErrNoSnapshot, curveID, asOf.Format("2006-01-02"))
	}
	return quotes, nil
}

// Close releases the underlying database handle.
func (f *PostgresZeroRateFeed) Close() error {
	return f.db.Close()
}
