// internal/cli/errors.go
package cli

// UsageError marks command-line validation failures so the entry point
// can map them to exit code 2.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}
