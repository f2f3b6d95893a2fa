// Package answer holds the tagged-union value type for question answers.
// An answer is a scalar string, a list of strings (checkbox, ranking) or a
// string-keyed record (matrix, multi-field, address, date-range).
package answer

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

type Kind int

const (
	KindNone Kind = iota
	KindText
	KindList
	KindRecord
)

// Value is immutable once constructed. The zero Value means "not answered".
type Value struct {
	kind   Kind
	text   string
	list   []string
	record map[string]string
}

func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

func List(items ...string) Value {
	return Value{kind: KindList, list: items}
}

func Record(m map[string]string) Value {
	return Value{kind: KindRecord, record: m}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) Text() string { return v.text }

func (v Value) List() []string { return v.list }

func (v Value) Record() map[string]string { return v.record }

// Get returns the record entry for key, or "" when absent or not a record.
func (v Value) Get(key string) string { return v.record[key] }

// IsEmpty reports whether the value counts as unanswered: absent, a
// whitespace-only scalar, or an empty list/record.
func (v Value) IsEmpty() bool {
	switch v.kind {
	case KindText:
		return strings.TrimSpace(v.text) == ""
	case KindList:
		return len(v.list) == 0
	case KindRecord:
		return len(v.record) == 0
	}
	return true
}

// Wire splits the value into the textValue/jsonValue pair used on the wire:
// scalars populate textValue, structured values populate jsonValue.
func (v Value) Wire() (textValue *string, jsonValue any) {
	switch v.kind {
	case KindText:
		s := v.text
		return &s, nil
	case KindList:
		return nil, v.list
	case KindRecord:
		return nil, v.record
	}
	return nil, nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindText:
		return json.Marshal(v.text)
	case KindList:
		return json.Marshal(v.list)
	case KindRecord:
		return json.Marshal(v.record)
	}
	return []byte("null"), nil
}

func (v *Value) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		*v = Value{}
		return nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.Wrap(err, "answer: unmarshal scalar")
		}
		*v = Text(s)
	case '[':
		var items []string
		if err := json.Unmarshal(data, &items); err != nil {
			return errors.Wrap(err, "answer: unmarshal list")
		}
		*v = List(items...)
	case '{':
		var m map[string]string
		if err := json.Unmarshal(data, &m); err != nil {
			return errors.Wrap(err, "answer: unmarshal record")
		}
		*v = Record(m)
	default:
		// numbers and booleans arrive as scalars from loose clients
		var raw any
		if err := json.Unmarshal(data, &raw); err != nil {
			return errors.Wrap(err, "answer: unmarshal")
		}
		*v = Text(trimmed)
	}
	return nil
}

// FromWire rebuilds a Value from the textValue/jsonValue wire pair.
func FromWire(textValue *string, jsonValue any) (Value, error) {
	if textValue != nil {
		return Text(*textValue), nil
	}
	switch j := jsonValue.(type) {
	case nil:
		return Value{}, nil
	case []string:
		return List(j...), nil
	case map[string]string:
		return Record(j), nil
	case []any:
		items := make([]string, len(j))
		for i, e := range j {
			s, ok := e.(string)
			if !ok {
				return Value{}, errors.Errorf("answer: list element %d is not a string", i)
			}
			items[i] = s
		}
		return List(items...), nil
	case map[string]any:
		m := make(map[string]string, len(j))
		for k, e := range j {
			s, ok := e.(string)
			if !ok {
				return Value{}, errors.Errorf("answer: record value for %q is not a string", k)
			}
			m[k] = s
		}
		return Record(m), nil
	}
	return Value{}, errors.Errorf("answer: unsupported wire value %T", jsonValue)
}
