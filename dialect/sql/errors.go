package sql

import (
	"errors"
	"fmt"
)

// ErrUnsupportedDialect is returned when a statement is built against a
// dialect outside the supported set.
var ErrUnsupportedDialect = errors.New("sql: unsupported dialect")

// ArityError reports an INSERT row whose length does not match the
// declared column list.
type ArityError struct {
	Columns int // Number of declared columns.
	Values  int // Length of the offending row.
}

// Error returns the error string.
func (e *ArityError) Error() string {
	return fmt.Sprintf("sql: columns and values length mismatch: %d != %d", e.Columns, e.Values)
}

// IsArityMismatch returns true if the error is an ArityError.
func IsArityMismatch(err error) bool {
	if err == nil {
		return false
	}
	var e *ArityError
	return errors.As(err, &e)
}

// UnsupportedOperationError reports an operation that has no correct
// spelling in the selected dialect, such as dropping a foreign key on
// SQLite. It is returned instead of silently emitting another dialect's
// syntax.
type UnsupportedOperationError struct {
	Dialect string // Dialect name.
	Op      string // Operation description.
}

// Error returns the error string.
func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("sql: %s is not supported by dialect %q", e.Op, e.Dialect)
}

// IsUnsupportedOperation returns true if the error is an UnsupportedOperationError.
func IsUnsupportedOperation(err error) bool {
	if err == nil {
		return false
	}
	var e *UnsupportedOperationError
	return errors.As(err, &e)
}

// InjectError reports a mismatch between the placeholders of a rendered
// statement and the parameter list handed to Inject. It indicates a
// defect in the caller: parameters must be passed in exactly the order
// the collector received them.
type InjectError struct {
	msg string
}

// Error returns the error string.
func (e *InjectError) Error() string {
	return "sql: inject: " + e.msg
}

func injectErrorf(format string, args ...any) error {
	return &InjectError{msg: fmt.Sprintf(format, args...)}
}
