package contact

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/amamam1231/ai-project-312/domain/i18n"
	"github.com/amamam1231/ai-project-312/domain/relay"
)

// State is what the page reads back to render the form: the phase, the
// inline error text and the values to refill the inputs with.
type State struct {
	Phase        Phase  `json:"phase"`
	ErrorMessage string `json:"error_message,omitempty"`
	Draft        Fields `json:"-"`
}

// Outcome describes one settled attempt.
type Outcome struct {
	State    State
	Cause    error
	Duration time.Duration
}

// Controller owns the submission lifecycle of a single contact form:
//
//	Idle --Submit--> Submitting --accepted--> Succeeded
//	                 Submitting --rejected|transport--> Failed
//	Failed|Succeeded --Submit--> Submitting
//	Failed|Succeeded --Reset--> Idle
//
// ErrorMessage is non-empty exactly when the phase is Failed.
type Controller struct {
	relay    relay.Relay
	onSettle func(Outcome)
	now      func() time.Time

	mu       sync.Mutex
	messages i18n.Messages
	state    State
	cause    error
}

type Option func(*Controller)

// WithObserver registers a callback invoked after every settled attempt.
func WithObserver(fn func(Outcome)) Option {
	return func(c *Controller) { c.onSettle = fn }
}

// WithClock replaces time.Now for attempt durations.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

func NewController(r relay.Relay, messages i18n.Messages, opts ...Option) *Controller {
	c := &Controller{
		relay:    r,
		messages: messages,
		now:      time.Now,
		state:    State{Phase: PhaseIdle},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// LastFailure returns the cause of the last failed attempt, nil unless the
// phase is Failed. It is an *ApplicationRejection or a *TransportFailure.
func (c *Controller) LastFailure() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cause
}

// SetMessages switches the locale used for fallback texts of later attempts.
func (c *Controller) SetMessages(messages i18n.Messages) {
	c.mu.Lock()
	c.messages = messages
	c.mu.Unlock()
}

// Submit moves to Submitting, sends exactly one relay request carrying
// fields and accessToken, and settles in Succeeded or Failed. Rejections
// and transport failures are recorded in the returned state, not returned
// as errors. The only error is ErrSubmissionInFlight, in which case
// nothing was sent and the state is unchanged.
func (c *Controller) Submit(ctx context.Context, fields Fields, accessToken string) (State, error) {
	c.mu.Lock()
	if c.state.Phase == PhaseSubmitting {
		st := c.snapshot()
		c.mu.Unlock()
		return st, ErrSubmissionInFlight
	}
	c.state = State{Phase: PhaseSubmitting, Draft: fields.Clone()}
	c.cause = nil
	messages := c.messages
	c.mu.Unlock()

	started := c.now()
	resp, err := c.send(ctx, relay.Submission{Fields: fields.Clone(), AccessKey: accessToken})

	c.mu.Lock()
	switch {
	case err != nil:
		c.fail(messages.NetworkFailure, &TransportFailure{Err: err})
	case resp == nil:
		c.fail(messages.NetworkFailure, &TransportFailure{Err: errNoResponse})
	case resp.Success:
		c.state = State{Phase: PhaseSucceeded}
	default:
		text := strings.TrimSpace(resp.Message)
		if text == "" {
			text = messages.GenericFailure
		}
		c.fail(text, &ApplicationRejection{Message: resp.Message})
	}
	outcome := Outcome{State: c.snapshot(), Cause: c.cause, Duration: c.now().Sub(started)}
	c.mu.Unlock()

	if c.onSettle != nil {
		c.onSettle(outcome)
	}
	return outcome.State, nil
}

// Reset returns a settled form to Idle and clears the error. Resetting an
// in-flight attempt is refused with ErrSubmissionInFlight.
func (c *Controller) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Phase == PhaseSubmitting {
		return ErrSubmissionInFlight
	}
	c.state = State{Phase: PhaseIdle}
	c.cause = nil
	return nil
}

// send calls the relay, turning a panic into a transport failure so the
// attempt still settles.
func (c *Controller) send(ctx context.Context, sub relay.Submission) (resp *relay.Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			resp, err = nil, fmt.Errorf("relay panic: %v", r)
		}
	}()
	return c.relay.Send(ctx, sub)
}

// fail records a Failed state; the draft survives so inputs can be refilled.
func (c *Controller) fail(message string, cause error) {
	c.state = State{Phase: PhaseFailed, ErrorMessage: message, Draft: c.state.Draft}
	c.cause = cause
}

func (c *Controller) snapshot() State {
	st := c.state
	st.Draft = st.Draft.Clone()
	return st
}
