package domain

import "errors"

// ErrNotFound is returned by catalog sources when a referenced record does
// not exist.
var ErrNotFound = errors.New("record not found")
