package retry

import (
	"errors"
	"strings"
)

// ExhaustedError is the failure returned once the attempt budget is spent.
// It carries every attempt's error in the order they happened; an immediate
// exhaustion (Times 0 on entry) carries none.
type ExhaustedError struct {
	Prefix string
	Errs   []error
}

func (e *ExhaustedError) Error() string {
	var b strings.Builder
	if e.Prefix != "" {
		b.WriteString(e.Prefix)
		b.WriteString(" ")
	}
	b.WriteString("exhausted retries")
	if len(e.Errs) > 0 {
		b.WriteString(":\n")
		msgs := make([]string, len(e.Errs))
		for i, err := range e.Errs {
			msgs[i] = err.Error()
		}
		b.WriteString(strings.Join(msgs, "\n"))
	}
	return b.String()
}

// Unwrap allows errors.Is/As to reach the underlying attempt errors.
func (e *ExhaustedError) Unwrap() []error {
	return e.Errs
}

// IsExhausted returns true if err is the final result of a spent retry run.
func IsExhausted(err error) bool {
	var ee *ExhaustedError
	return errors.As(err, &ee)
}
