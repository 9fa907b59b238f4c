package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type PayloadKind int

const (
	PayloadNull PayloadKind = iota
	PayloadBool
	PayloadNumber
	PayloadString
	PayloadArray
	PayloadObject
)

func (k PayloadKind) String() string {
	switch k {
	case PayloadNull:
		return "null"
	case PayloadBool:
		return "bool"
	case PayloadNumber:
		return "number"
	case PayloadString:
		return "string"
	case PayloadArray:
		return "array"
	case PayloadObject:
		return "object"
	default:
		return "unknown"
	}
}

// Payload is a validated JSON value tagged with its kind.
type Payload struct {
	kind PayloadKind
	raw  json.RawMessage
}

// ParsePayload validates raw as a single JSON value.
func ParsePayload(raw []byte) (Payload, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return Payload{}, fmt.Errorf("empty payload")
	}
	if !json.Valid(trimmed) {
		return Payload{}, fmt.Errorf("invalid JSON payload")
	}

	var kind PayloadKind
	switch trimmed[0] {
	case 'n':
		kind = PayloadNull
	case 't', 'f':
		kind = PayloadBool
	case '"':
		kind = PayloadString
	case '[':
		kind = PayloadArray
	case '{':
		kind = PayloadObject
	default:
		kind = PayloadNumber
	}

	return Payload{kind: kind, raw: append(json.RawMessage(nil), trimmed...)}, nil
}

// MustPayload is ParsePayload for literals known to be valid.
func MustPayload(raw string) Payload {
	p, err := ParsePayload([]byte(raw))
	if err != nil {
		panic(err)
	}
	return p
}

func (p Payload) Kind() PayloadKind    { return p.kind }
func (p Payload) Raw() json.RawMessage { return p.raw }
func (p Payload) IsZero() bool         { return p.raw == nil }

// Object returns the members of an object payload.
func (p Payload) Object() (map[string]json.RawMessage, bool) {
	if p.kind != PayloadObject {
		return nil, false
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(p.raw, &m); err != nil {
		return nil, false
	}
	return m, true
}

// Field returns a member of an object payload.
func (p Payload) Field(name string) (Payload, bool) {
	m, ok := p.Object()
	if !ok {
		return Payload{}, false
	}
	raw, ok := m[name]
	if !ok {
		return Payload{}, false
	}
	field, err := ParsePayload(raw)
	if err != nil {
		return Payload{}, false
	}
	return field, true
}

// StringField returns a string member, or "" when absent or not a string.
func (p Payload) StringField(name string) string {
	field, ok := p.Field(name)
	if !ok || field.kind != PayloadString {
		return ""
	}
	var s string
	if err := json.Unmarshal(field.raw, &s); err != nil {
		return ""
	}
	return s
}

// Equal compares payloads by decoded value.
func (p Payload) Equal(other Payload) bool {
	if p.kind != other.kind {
		return false
	}
	var a, b any
	if json.Unmarshal(p.raw, &a) != nil || json.Unmarshal(other.raw, &b) != nil {
		return bytes.Equal(p.raw, other.raw)
	}
	ca, _ := json.Marshal(a)
	cb, _ := json.Marshal(b)
	return bytes.Equal(ca, cb)
}

// String renders the payload indented by two spaces.
func (p Payload) String() string {
	if p.raw == nil {
		return ""
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, p.raw, "", "  "); err != nil {
		return string(p.raw)
	}
	return buf.String()
}

func (p Payload) MarshalJSON() ([]byte, error) {
	if p.raw == nil {
		return []byte("null"), nil
	}
	return p.raw, nil
}

func (p *Payload) UnmarshalJSON(data []byte) error {
	parsed, err := ParsePayload(data)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
