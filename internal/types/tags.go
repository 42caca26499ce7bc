package types

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Tags is the open, sparsely populated key/value bag attached to a venue.
// A missing key reads as the empty string, which never satisfies a
// condition.
type Tags map[string]string

// Get returns the value for key, or "" when absent.
func (t Tags) Get(key string) string {
	if t == nil {
		return ""
	}
	return t[key]
}

// Is reports whether key is present with exactly value.
func (t Tags) Is(key, value string) bool {
	v, ok := t[key]
	return ok && v == value
}

// Has reports whether key is present with a non-empty value.
func (t Tags) Has(key string) bool {
	return t.Get(key) != ""
}

// UnmarshalJSON accepts scalar values of any JSON type. Booleans become
// "yes"/"no", numbers keep their literal text, and nulls, arrays and
// objects are dropped. A value that is not an object at all decodes as
// empty tags.
func (t *Tags) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*t = nil
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		*t = Tags{}
		return nil
	}

	out := make(Tags, len(raw))
	for k, v := range raw {
		if s, ok := scalarString(v); ok {
			out[k] = s
		}
	}
	*t = out
	return nil
}

func scalarString(v json.RawMessage) (string, bool) {
	trimmed := strings.TrimSpace(string(v))
	if trimmed == "" {
		return "", false
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return "", false
		}
		return s, true
	case 't':
		return "yes", trimmed == "true"
	case 'f':
		return "no", trimmed == "false"
	case 'n', '[', '{':
		return "", false
	default:
		var n json.Number
		if err := json.Unmarshal(v, &n); err != nil {
			return "", false
		}
		return n.String(), true
	}
}
