// errors.go
package nixsearch

import (
	"errors"
	"fmt"
)

var (
	// ErrUnreachable indicates the search service could not be reached
	ErrUnreachable = errors.New("could not reach search service")
)

// StatusError reports a non-2xx response from the search service
type StatusError struct {
	StatusCode int    // HTTP status code
	Status     string // status line, e.g. "500 Internal Server Error"
}

func (e *StatusError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("search service returned %s", e.Status)
	}
	return fmt.Sprintf("search service returned HTTP %d", e.StatusCode)
}
