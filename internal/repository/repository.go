package repository

import "errors"

// ErrNotFound is returned when an id does not resolve to an existing record.
// Malformed ids are treated the same way since the client is known to hold
// stale references.
var ErrNotFound = errors.New("record not found")
