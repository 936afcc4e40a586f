package task

import "fmt"

// NotFoundError reports that no task with the given id exists.
type NotFoundError struct {
	ID uint64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task with id %d not found", e.ID)
}

// EmptyFieldError reports a required field that was empty after trimming.
type EmptyFieldError struct {
	Field string
}

func (e *EmptyFieldError) Error() string {
	return fmt.Sprintf("field %q needs a value, please provide one", e.Field)
}

// MalformedDataError reports a tasks file that exists but cannot be parsed.
type MalformedDataError struct {
	Path string
	Err  error
}

func (e *MalformedDataError) Error() string {
	return fmt.Sprintf("parse tasks file %s: %s", e.Path, e.Err)
}

// Unwrap returns the underlying parse error.
func (e *MalformedDataError) Unwrap() error {
	return e.Err
}
