package dimension

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/econpath/internal/domain/catalog/label"
)

// Kind is the selection shape of a filter dimension.
type Kind string

// Selection kinds.
const (
	// Single selects one option or the "all" sentinel.
	Single Kind = "single"
	// Multi selects any subset of options; an empty subset selects everything.
	Multi Kind = "multi"
)

// IsValid checks if the kind is supported.
func (k Kind) IsValid() bool { return k == Single || k == Multi }

// Match is the rule that turns a raw field value into labels.
type Match string

// Matching rules.
const (
	// Exact uses the whole field value as one label.
	Exact Match = "exact"
	// Labels splits a comma-joined field value into labels.
	Labels Match = "labels"
	// Level expands a level or level range over the option scale.
	Level Match = "level"
)

// IsValid checks if the match rule is supported.
func (m Match) IsValid() bool { return m == Exact || m == Labels || m == Level }

// Dimension describes one filterable axis of a catalog (immutable value object).
type Dimension struct {
	key     string
	field   string
	kind    Kind
	match   Match
	options []string
}

// New validates and creates a Dimension. field defaults to key.
// Level dimensions need their ordered scale as options.
func New(key, field string, kind Kind, match Match, options []string) (Dimension, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return Dimension{}, fmt.Errorf("dimension key is required")
	}
	if field == "" {
		field = key
	}
	if !kind.IsValid() {
		return Dimension{}, fmt.Errorf("dimension %q: unsupported kind %q", key, kind)
	}
	if !match.IsValid() {
		return Dimension{}, fmt.Errorf("dimension %q: unsupported match %q", key, match)
	}
	if match == Level && len(options) == 0 {
		return Dimension{}, fmt.Errorf("dimension %q: level match requires ordered options", key)
	}
	return Dimension{
		key:     key,
		field:   field,
		kind:    kind,
		match:   match,
		options: label.NewSet(options...).Items(),
	}, nil
}

// Key returns the criteria key.
func (d Dimension) Key() string { return d.key }

// Field returns the record field the labels come from.
func (d Dimension) Field() string { return d.field }

// Kind returns the selection kind.
func (d Dimension) Kind() Kind { return d.kind }

// Match returns the matching rule.
func (d Dimension) Match() Match { return d.match }

// Options returns the selectable options in display order.
func (d Dimension) Options() []string {
	out := make([]string, len(d.options))
	copy(out, d.options)
	return out
}

// WithOptions returns a copy of d with the given options.
func (d Dimension) WithOptions(options []string) Dimension {
	d.options = label.NewSet(options...).Items()
	return d
}

// Tokenize turns a raw field value into the record's label set for this dimension.
func (d Dimension) Tokenize(raw string) label.Set {
	switch d.match {
	case Labels:
		return label.Split(raw)
	case Level:
		return label.Scale(d.options).Expand(raw)
	default:
		return label.NewSet(raw)
	}
}
