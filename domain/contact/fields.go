package contact

import "strings"

// Form field names sent to the relay.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldSubject = "subject"
	FieldMessage = "message"
)

// RequiredFields are the inputs the form marks as required, in form order.
var RequiredFields = []string{FieldName, FieldEmail, FieldSubject, FieldMessage}

// Fields maps form field names to their text.
type Fields map[string]string

func (f Fields) Clone() Fields {
	if f == nil {
		return nil
	}
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Get returns the value for name, "" when absent.
func (f Fields) Get(name string) string {
	return f[name]
}

// Missing lists the names whose values are absent or blank.
func (f Fields) Missing(names ...string) []string {
	var missing []string
	for _, name := range names {
		if strings.TrimSpace(f[name]) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}
