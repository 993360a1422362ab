package validation

import (
	"bytes"
	"encoding/json"
)

// Field is a raw request value that remembers whether its key was sent.
// Absent keys leave Present false; an explicit null sets Present with a nil Value.
type Field struct {
	Present bool
	Value   any
}

func (f *Field) UnmarshalJSON(data []byte) error {
	f.Present = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.Value = nil
		return nil
	}
	return json.Unmarshal(data, &f.Value)
}

func (f Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Value)
}

// Set reports whether the field carries a non-null value.
func (f Field) Set() bool {
	return f.Value != nil
}

func (f Field) Str() (string, bool) {
	s, ok := f.Value.(string)
	return s, ok
}

func (f Field) Number() (float64, bool) {
	n, ok := f.Value.(float64)
	return n, ok
}

func Value(v any) Field {
	return Field{Present: true, Value: v}
}
