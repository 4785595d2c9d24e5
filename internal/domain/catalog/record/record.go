package record

import (
	"fmt"
	"strconv"

	"github.com/kailas-cloud/econpath/internal/domain/catalog/label"
)

// Field is one named value of a record. Value is a string or an int64.
type Field struct {
	Name  string
	Value any
}

// String renders the value as text.
func (f Field) String() string {
	switch v := f.Value.(type) {
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// Record is one catalog entry (immutable value object).
type Record struct {
	fields []Field
	labels map[string]label.Set
}

// New validates and creates a Record. Field names must be unique and non-empty;
// labels are keyed by dimension key.
func New(fields []Field, labels map[string]label.Set) (Record, error) {
	if len(fields) == 0 {
		return Record{}, fmt.Errorf("record has no fields")
	}
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if f.Name == "" {
			return Record{}, fmt.Errorf("record field name is required")
		}
		if _, dup := seen[f.Name]; dup {
			return Record{}, fmt.Errorf("duplicate record field %q", f.Name)
		}
		switch f.Value.(type) {
		case string, int64:
		default:
			return Record{}, fmt.Errorf("field %q: unsupported value type %T", f.Name, f.Value)
		}
		seen[f.Name] = struct{}{}
	}

	fs := make([]Field, len(fields))
	copy(fs, fields)
	ls := make(map[string]label.Set, len(labels))
	for k, v := range labels {
		ls[k] = v
	}
	return Record{fields: fs, labels: ls}, nil
}

// Fields returns the fields in catalog order.
func (r Record) Fields() []Field {
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}

// FieldNames returns the field names in catalog order.
func (r Record) FieldNames() []string {
	out := make([]string, len(r.fields))
	for i, f := range r.fields {
		out[i] = f.Name
	}
	return out
}

// Value returns the value of the named field.
func (r Record) Value(name string) (any, bool) {
	for _, f := range r.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Text returns the named field rendered as text, or "" if absent.
func (r Record) Text(name string) string {
	for _, f := range r.fields {
		if f.Name == name {
			return f.String()
		}
	}
	return ""
}

// Labels returns the label set for a dimension key. Unknown keys yield an empty set.
func (r Record) Labels(dimension string) label.Set {
	return r.labels[dimension]
}
