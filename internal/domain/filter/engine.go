package filter

import (
	"fmt"

	"github.com/kailas-cloud/econpath/internal/domain"
	"github.com/kailas-cloud/econpath/internal/domain/catalog"
	"github.com/kailas-cloud/econpath/internal/domain/catalog/dimension"
	"github.com/kailas-cloud/econpath/internal/domain/catalog/record"
)

// Apply returns the records of c that pass every selection in crit, in catalog order.
// A key with no matching dimension filters on an empty label set, so any
// non-"all" selection on it excludes every record.
func Apply(c catalog.Catalog, crit Criteria) []record.Record {
	recs := c.Records()
	if crit.IsEmpty() {
		return recs
	}
	out := make([]record.Record, 0, len(recs))
	for _, r := range recs {
		if Match(r, crit) {
			out = append(out, r)
		}
	}
	return out
}

// Match reports whether r passes every selection in crit.
func Match(r record.Record, crit Criteria) bool {
	for _, key := range crit.Active() {
		s, _ := crit.Selection(key)
		if !s.Accepts(r.Labels(key)) {
			return false
		}
	}
	return true
}

// Validate checks crit against the dimensions declared by c.
func Validate(c catalog.Catalog, crit Criteria) error {
	for _, key := range crit.Keys() {
		d, ok := c.Dimension(key)
		if !ok {
			return fmt.Errorf("%w: catalog %q has no dimension %q", domain.ErrInvalidCriteria, c.Name(), key)
		}
		s, _ := crit.Selection(key)
		if d.Kind() == dimension.Single && len(s.Values()) > 1 {
			return fmt.Errorf("%w: dimension %q accepts a single option", domain.ErrInvalidCriteria, key)
		}
	}
	return nil
}
