package task

import (
	"time"

	"github.com/google/uuid"
)

// Result is the immutable snapshot of a settled Task: either a value or an
// error, never both, plus bookkeeping metadata.
type Result[T any] struct {
	id        uuid.UUID
	settledAt time.Time
	result    T
	err       error
	isSuccess bool
	hasResult bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		err:       nil,
		isSuccess: true,
		hasResult: true,
		settledAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Failure[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isSuccess: false,
		hasResult: false,
		settledAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

func (r Result[T]) HasResult() bool {
	return r.hasResult
}

func (r Result[T]) SettledAt() time.Time {
	return r.settledAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
