// Package locker serialises booking creation per staff member.
package locker

import (
	"errors"
	"strconv"
)

var (
	ErrLockWait = errors.New("locker: waiting for lock aborted")
	ErrBackend  = errors.New("locker: backend error")
)

// Unlock releases a held lock. It is safe to call once.
type Unlock func()

// StaffKey is the lock key guarding one staff member's calendar.
func StaffKey(staffID int64) string {
	return "staff:" + strconv.FormatInt(staffID, 10)
}
