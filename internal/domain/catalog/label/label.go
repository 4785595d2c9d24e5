// Package label holds the discrete classification labels attached to catalog records.
package label

import "strings"

// separators split a composite label string. Arabic content uses "،" and "؛".
const separators = ",،؛"

// rangeSeparators join the two ends of a level range, e.g. "مبتدئ إلى متوسط".
var rangeSeparators = []string{" إلى ", " to "}

// Set is an ordered set of labels. The zero value is an empty set.
type Set struct {
	items []string
}

// NewSet builds a set from raw labels. Blank labels are dropped, duplicates keep
// their first position.
func NewSet(items ...string) Set {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it == "" {
			continue
		}
		if _, ok := seen[it]; ok {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
	}
	return Set{items: out}
}

// Split tokenizes a comma-joined label string into a set.
func Split(raw string) Set {
	return NewSet(strings.FieldsFunc(raw, func(r rune) bool {
		return strings.ContainsRune(separators, r)
	})...)
}

// Items returns a copy of the labels in order.
func (s Set) Items() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of labels.
func (s Set) Len() int { return len(s.items) }

// IsEmpty reports whether the set has no labels.
func (s Set) IsEmpty() bool { return len(s.items) == 0 }

// Has reports whether v is one of the labels.
func (s Set) Has(v string) bool {
	for _, it := range s.items {
		if it == v {
			return true
		}
	}
	return false
}

// Intersects reports whether any of values is in the set.
func (s Set) Intersects(values []string) bool {
	for _, v := range values {
		if s.Has(v) {
			return true
		}
	}
	return false
}

// Scale is an ordered list of levels, lowest first.
type Scale []string

// Expand turns a level string into the set of levels it covers.
// A single level maps to itself; a range "A إلى B" covers every level of the
// scale from A to B inclusive. Unknown levels are kept verbatim.
func (sc Scale) Expand(raw string) Set {
	raw = strings.TrimSpace(raw)
	from, to, isRange := "", "", false
	for _, sep := range rangeSeparators {
		if from, to, isRange = strings.Cut(raw, sep); isRange {
			break
		}
	}
	if !isRange {
		return NewSet(raw)
	}
	lo, hi := sc.index(from), sc.index(to)
	if lo < 0 || hi < 0 {
		return NewSet(from, to)
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	return NewSet(sc[lo : hi+1]...)
}

func (sc Scale) index(level string) int {
	level = strings.TrimSpace(level)
	for i, l := range sc {
		if l == level {
			return i
		}
	}
	return -1
}
