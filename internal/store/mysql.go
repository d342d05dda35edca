package store

import (
    "context"
    "database/sql"
    "fmt"

    "github.com/khobkhun/massage-booking/internal/model"
)

// MySQLStore keeps the booking log in a MySQL table with the same
// append-only contract as the file store.  Rows are never updated or
// deleted; insertion order doubles as commit order.
type MySQLStore struct {
    db *sql.DB
}

// NewMySQLStore returns a MySQLStore bound to the given database.
func NewMySQLStore(db *sql.DB) *MySQLStore { return &MySQLStore{db: db} }

// Init creates the bookings table when it does not exist yet.  start_hour
// is stored as DECIMAL(4,1): the grid only produces half-hour values, so
// one fractional digit is exact.
func (s *MySQLStore) Init(ctx context.Context) error {
    const q = `CREATE TABLE IF NOT EXISTS bookings (
        id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
        booking_date CHAR(10) NOT NULL,
        start_hour DECIMAL(4,1) NOT NULL,
        blocks INT NOT NULL,
        created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
        KEY idx_bookings_date (booking_date)
    )`
    _, err := s.db.ExecContext(ctx, q)
    return err
}

// LoadAll returns every booking oldest first.  A query failure reads as
// an empty list, matching the file store's lenient-recovery policy.
func (s *MySQLStore) LoadAll(ctx context.Context) ([]model.Booking, error) {
    const q = `SELECT booking_date, start_hour, blocks FROM bookings ORDER BY id ASC`
    rows, err := s.db.QueryContext(ctx, q)
    if err != nil {
        return []model.Booking{}, nil
    }
    defer rows.Close()
    bookings := make([]model.Booking, 0)
    for rows.Next() {
        var b model.Booking
        if err := rows.Scan(&b.Date, &b.Start, &b.Blocks); err != nil {
            return []model.Booking{}, nil
        }
        bookings = append(bookings, b)
    }
    if err := rows.Err(); err != nil {
        return []model.Booking{}, nil
    }
    return bookings, nil
}

// Append inserts one booking row.  The insert either lands durably or the
// request fails; there is no partial state to clean up.
func (s *MySQLStore) Append(ctx context.Context, b model.Booking) error {
    const q = `INSERT INTO bookings (booking_date, start_hour, blocks) VALUES (?, ?, ?)`
    if _, err := s.db.ExecContext(ctx, q, b.Date, b.Start, b.Blocks); err != nil {
        return fmt.Errorf("%w: %v", ErrNotStored, err)
    }
    return nil
}
