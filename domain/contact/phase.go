package contact

import "fmt"

// Phase is the lifecycle stage of a form's current submission attempt.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSubmitting
	PhaseSucceeded
	PhaseFailed
)

var phaseNames = [...]string{
	PhaseIdle:       "idle",
	PhaseSubmitting: "submitting",
	PhaseSucceeded:  "succeeded",
	PhaseFailed:     "failed",
}

func (p Phase) Valid() bool {
	return p >= PhaseIdle && p <= PhaseFailed
}

func (p Phase) String() string {
	if !p.Valid() {
		return fmt.Sprintf("phase(%d)", int(p))
	}
	return phaseNames[p]
}

func (p Phase) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("contact: invalid phase %d", int(p))
	}
	return []byte(phaseNames[p]), nil
}

func (p *Phase) UnmarshalText(text []byte) error {
	for i, name := range phaseNames {
		if name == string(text) {
			*p = Phase(i)
			return nil
		}
	}
	return fmt.Errorf("contact: unknown phase %q", text)
}

// Terminal reports whether p settles an attempt.
func (p Phase) Terminal() bool {
	return p == PhaseSucceeded || p == PhaseFailed
}
