package events

import (
	"errors"
	"fmt"
)

// ErrRuntimeQuery marks a per-event failure: identity lookup, opening the log
// or writing to it. Such failures abandon one record and nothing else.
var ErrRuntimeQuery = errors.New("runtime query failed")

type queryError struct {
	op  string
	err error
}

func (e *queryError) Error() string {
	if e.err == nil {
		return e.op
	}
	return fmt.Sprintf("%s: %v", e.op, e.err)
}

func (e *queryError) Is(target error) bool {
	return target == ErrRuntimeQuery
}

func (e *queryError) Unwrap() error {
	return e.err
}

func queryErr(op string, err error) error {
	return &queryError{op: op, err: err}
}
