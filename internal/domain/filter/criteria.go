// Package filter narrows a catalog to the records matching user-selected criteria.
package filter

import (
	"slices"

	"github.com/kailas-cloud/econpath/internal/domain/catalog/dimension"
	"github.com/kailas-cloud/econpath/internal/domain/catalog/label"
)

// All is the single-select sentinel that disables a dimension.
const All = "all"

// Selection is the value chosen for one dimension.
type Selection struct {
	kind   dimension.Kind
	values []string
}

// Single selects one option. An empty option or All selects everything.
func Single(option string) Selection {
	items := label.NewSet(option).Items()
	if len(items) == 1 && items[0] == All {
		items = nil
	}
	return Selection{kind: dimension.Single, values: items}
}

// Multi selects any of the given labels. No labels selects everything.
func Multi(labels ...string) Selection {
	return Selection{kind: dimension.Multi, values: label.NewSet(labels...).Items()}
}

// Kind returns the selection shape.
func (s Selection) Kind() dimension.Kind { return s.kind }

// Values returns the selected options.
func (s Selection) Values() []string { return slices.Clone(s.values) }

// IsAll reports whether the selection lets every record through.
func (s Selection) IsAll() bool { return len(s.values) == 0 }

// Accepts reports whether a record with the given labels passes this selection.
func (s Selection) Accepts(labels label.Set) bool {
	if s.IsAll() {
		return true
	}
	return labels.Intersects(s.values)
}

// Criteria maps dimension keys to selections (immutable value object).
type Criteria struct {
	keys       []string
	selections map[string]Selection
}

// NewCriteria returns empty criteria that select every record.
func NewCriteria() Criteria {
	return Criteria{}
}

// With returns a copy of c with key set to s.
func (c Criteria) With(key string, s Selection) Criteria {
	out := Criteria{
		keys:       slices.Clone(c.keys),
		selections: make(map[string]Selection, len(c.selections)+1),
	}
	for k, v := range c.selections {
		out.selections[k] = v
	}
	if _, ok := out.selections[key]; !ok {
		out.keys = append(out.keys, key)
	}
	out.selections[key] = s
	return out
}

// Keys returns the dimension keys in the order they were added.
func (c Criteria) Keys() []string { return slices.Clone(c.keys) }

// Selection returns the selection for key.
func (c Criteria) Selection(key string) (Selection, bool) {
	s, ok := c.selections[key]
	return s, ok
}

// Active returns the keys whose selection actually narrows the result.
func (c Criteria) Active() []string {
	var out []string
	for _, k := range c.keys {
		if !c.selections[k].IsAll() {
			out = append(out, k)
		}
	}
	return out
}

// IsEmpty reports whether no dimension narrows the result.
func (c Criteria) IsEmpty() bool { return len(c.Active()) == 0 }
