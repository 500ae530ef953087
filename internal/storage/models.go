package storage

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// User is one row of the users table, created on the first /start.
type User struct {
	ChatID       int64
	Username     string
	FirstStartAt time.Time
	LastStartAt  time.Time
	Blocked      bool
}
