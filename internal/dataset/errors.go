package dataset

import "fmt"

// LoadError reports a source file that is absent, malformed, or missing
// required columns. It aborts the report generation that triggered it.
type LoadError struct {
	File   string
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("load %s: %s: %v", e.File, e.Reason, e.Err)
	}
	return fmt.Sprintf("load %s: %s", e.File, e.Reason)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func loadErr(file, reason string, err error) *LoadError {
	return &LoadError{File: file, Reason: reason, Err: err}
}

func rowErr(file string, row int, format string, args ...any) *LoadError {
	return &LoadError{File: file, Reason: fmt.Sprintf("line %d: %s", row+2, fmt.Sprintf(format, args...))}
}
