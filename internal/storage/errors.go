package storage

import "errors"

// EmptyIntValue marks an int query parameter the client did not supply.
const EmptyIntValue = -1

var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
)
