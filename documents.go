package getbd

import (
	"encoding/json"
	"strings"
)

// NIDKey is the document key holding the National ID.
const NIDKey = "nid"

// DocumentField describes one document a TLD asks the registrant for.
type DocumentField struct {
	Name        string `json:"name" yaml:"name" mapstructure:"name"`
	Description string `json:"description" yaml:"description" mapstructure:"description"`
	Type        string `json:"type" yaml:"type" mapstructure:"type"`
	Required    bool   `json:"required" yaml:"required" mapstructure:"required"`
}

// DocumentRequirements maps a TLD ("com.bd") to its document fields by key.
type DocumentRequirements map[string]map[string]DocumentField

// Field looks up a document field for tld; the leading dot and case are ignored.
func (r DocumentRequirements) Field(tld, key string) (DocumentField, bool) {
	want := trimDotLower(tld)
	for t, fields := range r {
		if trimDotLower(t) != want {
			continue
		}
		f, ok := fields[key]
		return f, ok
	}
	return DocumentField{}, false
}

// RequiresNID reports whether tld demands a National ID.
func (r DocumentRequirements) RequiresNID(tld string) bool {
	f, ok := r.Field(tld, NIDKey)
	return ok && f.Required
}

// DocumentValue is an ordered sequence of submitted values. Platforms send a
// single string or a list; only the first element is ever used.
type DocumentValue []string

// Single wraps one value.
func Single(v string) DocumentValue { return DocumentValue{v} }

// First returns the first element or "".
func (d DocumentValue) First() string {
	if len(d) == 0 {
		return ""
	}
	return d[0]
}

func (d *DocumentValue) UnmarshalJSON(b []byte) error {
	var list []json.RawMessage
	if err := json.Unmarshal(b, &list); err != nil {
		var one json.RawMessage = b
		list = []json.RawMessage{one}
	}
	out := make(DocumentValue, 0, len(list))
	for _, raw := range list {
		out = append(out, scalarText(raw))
	}
	*d = out
	return nil
}

// scalarText renders a JSON scalar without quotes; numeric NIDs arrive unquoted.
func scalarText(raw json.RawMessage) string {
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return s
	}
	t := strings.TrimSpace(string(raw))
	if t == "null" {
		return ""
	}
	return t
}

// Documents are the registrant's submitted documents by key.
type Documents map[string]DocumentValue

// ValidateNID returns the digits-only NID when tld requires one, or "" when it does not.
// The NID must have 10, 13 or 17 digits.
func ValidateNID(tld string, docs Documents, reqs DocumentRequirements) (string, error) {
	if !reqs.RequiresNID(tld) {
		return "", nil
	}
	nid := digitsOnly(docs[NIDKey].First())
	switch len(nid) {
	case 10, 13, 17:
		return nid, nil
	}
	raw, _ := json.Marshal(docs)
	msg := "NID must have 10, 13 or 17 digits"
	if nid == "" {
		msg = "NID is required for ." + trimDotLower(tld)
	}
	return "", newError(KindValidation, "validate nid", msg, &ValidationError{
		Field:  NIDKey,
		Reason: msg,
		Parsed: nid,
		Raw:    string(raw),
	})
}
