package types

import (
	"time"

	"github.com/google/uuid"
)

// AssignmentID represents a UUIDv7 lab-pack assignment identifier.
// String alias enables type safety while maintaining JSON string
// serialization. UUIDv7 time-ordering keeps manifest references sortable.
type AssignmentID string

// NewAssignmentID generates a UUIDv7 assignment identifier.
// Panics on clock regression (uuid.Must); acceptable for ID generation.
func NewAssignmentID() AssignmentID {
	return AssignmentID(uuid.Must(uuid.NewV7()).String())
}

// ParseAssignmentID validates and converts a string to AssignmentID.
// Rejects malformed UUIDs to prevent invalid IDs from entering manifests.
func ParseAssignmentID(s string) (AssignmentID, error) {
	_, err := uuid.Parse(s)
	if err != nil {
		return "", err
	}
	return AssignmentID(s), nil
}

// AssignmentIDTime extracts the timestamp embedded in a UUIDv7 ID.
// Returns zero time for invalid UUIDs; caller should check IsZero().
func AssignmentIDTime(id AssignmentID) time.Time {
	u, err := uuid.Parse(string(id))
	if err != nil {
		return time.Time{}
	}
	sec, nsec := u.Time().UnixTime()
	return time.Unix(sec, nsec)
}
