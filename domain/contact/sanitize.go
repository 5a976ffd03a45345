package contact

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer strips markup from visitor input before it is relayed.
type Sanitizer struct {
	policy *bluemonday.Policy
}

func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

// Text removes all tags from v and trims it. Entities escaped by the
// policy are decoded again so "Tom & Jerry" survives unchanged.
func (s *Sanitizer) Text(v string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(v)))
}

// Fields sanitizes the named fields of raw into a new Fields value.
func (s *Sanitizer) Fields(raw map[string]string, names ...string) Fields {
	out := make(Fields, len(names))
	for _, name := range names {
		out[name] = s.Text(raw[name])
	}
	return out
}
