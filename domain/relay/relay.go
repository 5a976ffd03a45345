// Package relay delivers contact form submissions to the third-party
// service that forwards them to the site owner.
package relay

import (
	"context"
	"errors"
)

// Submission is one contact form payload plus the relay's access key.
type Submission struct {
	Fields    map[string]string
	AccessKey string
}

// Field returns a field value or "".
func (s Submission) Field(name string) string {
	return s.Fields[name]
}

// Response is the relay's verdict. A Response with Success=false is an
// application-level rejection; Message may be empty.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Relay sends submissions. Any returned error means no usable response
// was obtained and is treated as a transport failure by callers.
type Relay interface {
	Send(ctx context.Context, sub Submission) (*Response, error)
}

// ErrMalformedResponse is returned when the relay answered with something
// that is not its JSON verdict.
var ErrMalformedResponse = errors.New("relay: malformed response")

// ErrNotConfigured is returned by the relay of a provider that is missing
// its credentials.
var ErrNotConfigured = errors.New("relay: provider not configured")
