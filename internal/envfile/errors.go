package envfile

import "errors"

var (
	// ErrIO is returned when an env file cannot be opened or read.
	ErrIO = errors.New("envfile: cannot read file")
	// ErrAllocation is returned when the store has no room for another entry.
	ErrAllocation = errors.New("envfile: cannot record entry")
)
