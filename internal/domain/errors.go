package domain

import "errors"

// ErrNotFound is returned when an operation targets an id that is not in the
// store.
var ErrNotFound = errors.New("not found")
