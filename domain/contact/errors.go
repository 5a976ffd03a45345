package contact

import (
	"errors"
	"fmt"
)

// ErrSubmissionInFlight is returned when a form is asked to submit or reset
// while its previous attempt has not settled.
var ErrSubmissionInFlight = errors.New("contact: submission already in flight")

// ApplicationRejection means the relay answered and declined the submission.
type ApplicationRejection struct {
	// Message is the relay's own text, possibly empty.
	Message string
}

func (e *ApplicationRejection) Error() string {
	if e.Message == "" {
		return "contact: relay rejected submission"
	}
	return fmt.Sprintf("contact: relay rejected submission: %s", e.Message)
}

// TransportFailure means no usable response was obtained.
type TransportFailure struct {
	Err error
}

func (e *TransportFailure) Error() string {
	return fmt.Sprintf("contact: relay unreachable: %v", e.Err)
}

func (e *TransportFailure) Unwrap() error {
	return e.Err
}

// errNoResponse stands in for a relay that returned neither a response
// nor an error.
var errNoResponse = errors.New("relay returned no response")
