// Package pgerr classifies PostgreSQL errors returned by lib/pq.
package pgerr

import (
	"errors"

	"github.com/lib/pq"
)

const (
	CodeUniqueViolation      = "23505"
	CodeExclusionViolation   = "23P01"
	CodeSerializationFailure = "40001"
	CodeDeadlockDetected     = "40P01"
)

// ErrSerialization marks an error chain that ended in a serialization failure.
// Repositories wrap with it because they format the driver error with %v.
var ErrSerialization = errors.New("pgerr: serialization failure")

// Code returns the SQLSTATE of err, or "" when err is not a pq error.
func Code(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// IsOverlap reports an exclusion or unique constraint violation.
func IsOverlap(err error) bool {
	switch Code(err) {
	case CodeExclusionViolation, CodeUniqueViolation:
		return true
	}
	return false
}

// IsSerializationFailure reports a retryable transaction failure.
func IsSerializationFailure(err error) bool {
	if errors.Is(err, ErrSerialization) {
		return true
	}
	switch Code(err) {
	case CodeSerializationFailure, CodeDeadlockDetected:
		return true
	}
	return false
}
