package task

import (
	"context"
	"time"
)

// Awaitable is the minimal contract the combinators need from a future type.
// *Task implements it; any conforming single-resolution future can be passed
// to Continue, Join, seq and race in its place.
type Awaitable[T any] interface {
	// Await blocks until the value settles or ctx expires
	Await(ctx context.Context) (T, error)
}

// ResultProvider gives access to a settled value and its metadata.
type ResultProvider[T any] interface {
	// Result returns the successful result value
	Result() T
	// SettledAt time of settlement (UTC)
	SettledAt() time.Time
}

// WithError defines an interface for types that can return a result or an error
type WithError[T any] interface {
	ResultProvider[T]
	// Err returns the error if operation failed
	Err() error
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}
