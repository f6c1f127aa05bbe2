package marketdata

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

type dummyErr struct{}

func (dummyErr) Error() string { return "dummy" }

const snapshotQueryRegex = `SELECT quote_date, zero_rate\s+FROM zero_quotes\s+WHERE curve_id = \$1 AND asof_date = \$2\s+ORDER BY quote_date`

func newMockFeed(t *testing.T) (*PostgresZeroRateFeed, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	feed := NewPostgresZeroRateFeed(db)
	cleanup := func() { _ = db.Close() }
	return feed, mock, cleanup
}

func TestPostgresSnapshot_SQLMock(t *testing.T) {
	feed, mock, done := newMockFeed(t)
	defer done()

	asOf := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	d1 := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"quote_date", "zero_rate"}).
		AddRow(d1, 0.02).
		AddRow(d2, 0.025)
	mock.ExpectQuery(snapshotQueryRegex).
		WithArgs("USD.ZERO", "2020-01-01").
		WillReturnRows(rows)

	quotes, err := feed.Snapshot("USD.ZERO", asOf)
	if err != nil {
		t.Fatalf("Snapshot error: %v", err)
	}
	if len(quotes) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(quotes))
	}
	if !quotes[0].Date.Equal(d1) || quotes[0].Rate != 0.02 {
		t.Fatalf("first quote mismatch: %+v", quotes[0])
	}
	if !quotes[1].Date.Equal(d2) || quotes[1].Rate != 0.025 {
		t.Fatalf("second quote mismatch: %+v", quotes[1])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostgresSnapshot_Empty(t *testing.T) {
	feed, mock, done := newMockFeed(t)
	defer done()

	asOf := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(snapshotQueryRegex).
		WithArgs("EUR.ZERO", "2020-01-01").
		WillReturnRows(sqlmock.NewRows([]string{"quote_date", "zero_rate"}))

	_, err := feed.Snapshot("EUR.ZERO", asOf)
	if !errors.Is(err, ErrNoSnapshot) {
		t.Fatalf("expected ErrNoSnapshot, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostgresSnapshot_ScanError(t *testing.T) {
	feed, mock, done := newMockFeed(t)
	defer done()

	asOf := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	// A NULL quote_date cannot scan into time.Time.
	rows := sqlmock.NewRows([]string{"quote_date", "zero_rate"}).
		AddRow(nil, 0.02)
	mock.ExpectQuery(snapshotQueryRegex).
		WithArgs("USD.ZERO", "2020-01-01").
		WillReturnRows(rows)

	if _, err := feed.Snapshot("USD.ZERO", asOf); err == nil {
		t.Fatal("expected scan error, got nil")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostgresSnapshot_RowAndQueryErrors(t *testing.T) {
	feed, mock, done := newMockFeed(t)
	defer done()

	asOf := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	d1 := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)

	// Error surfaced while iterating rows.
	rows := sqlmock.NewRows([]string{"quote_date", "zero_rate"}).
		AddRow(d1, 0.02).
		RowError(0, dummyErr{})
	mock.ExpectQuery(snapshotQueryRegex).
		WithArgs("USD.ZERO", "2020-01-01").
		WillReturnRows(rows)
	if _, err := feed.Snapshot("USD.ZERO", asOf); err == nil {
		t.Fatal("expected row iteration error, got nil")
	}

	// Query itself fails.
	mock.ExpectQuery(snapshotQueryRegex).
		WithArgs("USD.ZERO", "2020-01-01").
		WillReturnError(dummyErr{})
	if _, err := feed.Snapshot("USD.ZERO", asOf); err == nil {
		t.Fatal("expected query error, got nil")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
