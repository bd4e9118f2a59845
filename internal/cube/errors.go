package cube

import "errors"

// Error taxonomy for the move algebra and dictionary. OutOfMemory is
// deliberately absent: Go's allocator gives no operation in this package a
// way to observe or recover from exhaustion, and no error path is
// fabricated to simulate a condition that can never actually be returned.
var (
	// ErrMalformedInput is returned by Parse when the input contains an
	// unrecognized token.
	ErrMalformedInput = errors.New("cube: malformed move text")

	// ErrOutOfBounds is returned by Insert/Delete when the index is invalid.
	ErrOutOfBounds = errors.New("cube: index out of bounds")

	// ErrTableFull is returned by Dict.Insert/InsertIfNew when a probe
	// wraps around the table without finding a free or matching slot.
	ErrTableFull = errors.New("cube: dictionary is full")

	// ErrLookupMiss is returned by callers of Dict.Lookup (the solver
	// stages) when a queried key is absent.
	ErrLookupMiss = errors.New("cube: key not present in dictionary")
)
