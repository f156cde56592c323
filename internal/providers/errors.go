package providers

import (
	"errors"
	"fmt"
)

// FetchError captures any failed scoreboard fetch: transport errors,
// timeouts, and non-success HTTP statuses all collapse into this one
// type. Callers only need to know the fetch failed and why, not which
// category of failure it was.
type FetchError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	msg := "scoreboard fetch failed"
	if e.Provider != "" {
		msg = fmt.Sprintf("%s: %s", e.Provider, msg)
	}
	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// AsFetchError attempts to unwrap an error into a FetchError.
func AsFetchError(err error) (*FetchError, bool) {
	var fErr *FetchError
	if errors.As(err, &fErr) {
		return fErr, true
	}
	return nil, false
}
