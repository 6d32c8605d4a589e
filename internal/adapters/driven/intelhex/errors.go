package intelhex

import "fmt"

// RecordError reports a record that matched the record pattern but could
// not be decoded. It wraps a domain error so callers can use errors.Is.
type RecordError struct {
	Line   int
	Reason string
	Err    error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("%s: %s at line %d", e.Err, e.Reason, e.Line)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
