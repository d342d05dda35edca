package store

import (
    "context"
    "encoding/json"
    "fmt"
    "os"
    "sync"

    "github.com/khobkhun/massage-booking/internal/model"
)

// FileStore persists bookings as a pretty-printed JSON array in a single
// file, the same layout the shop has always used.  Reads are lenient: a
// missing or corrupt file is treated as an empty booking list so a bad
// byte on disk never takes availability down.  Writes rewrite the whole
// array under a mutex; the file stays small at this scale.
type FileStore struct {
    mu   sync.Mutex
    path string
}

// NewFileStore returns a FileStore backed by the file at path.  The file
// is created on first append.
func NewFileStore(path string) *FileStore {
    return &FileStore{path: path}
}

// LoadAll returns all committed bookings oldest first.  Any read or
// decode failure yields an empty slice, by policy.
func (s *FileStore) LoadAll(ctx context.Context) ([]model.Booking, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    return s.readLocked(), nil
}

// Append durably adds one booking to the end of the file.  The write goes
// through a temporary file and rename so a crash mid-write cannot leave a
// half-written array behind.
func (s *FileStore) Append(ctx context.Context, b model.Booking) error {
    s.mu.Lock()
    defer s.mu.Unlock()

    bookings := append(s.readLocked(), b)
    data, err := json.MarshalIndent(bookings, "", "  ")
    if err != nil {
        return fmt.Errorf("%w: %v", ErrNotStored, err)
    }
    tmp := s.path + ".tmp"
    if err := os.WriteFile(tmp, data, 0o644); err != nil {
        return fmt.Errorf("%w: %v", ErrNotStored, err)
    }
    if err := os.Rename(tmp, s.path); err != nil {
        return fmt.Errorf("%w: %v", ErrNotStored, err)
    }
    return nil
}

// readLocked loads the booking array from disk.  Caller holds s.mu.
func (s *FileStore) readLocked() []model.Booking {
    data, err := os.ReadFile(s.path)
    if err != nil {
        return []model.Booking{}
    }
    var bookings []model.Booking
    if err := json.Unmarshal(data, &bookings); err != nil {
        return []model.Booking{}
    }
    return bookings
}
