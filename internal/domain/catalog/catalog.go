package catalog

import (
	"fmt"
	"regexp"
	"slices"

	"github.com/kailas-cloud/econpath/internal/domain/catalog/dimension"
	"github.com/kailas-cloud/econpath/internal/domain/catalog/record"
)

var nameRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Catalog is an ordered collection of homogeneous records (immutable aggregate).
type Catalog struct {
	name       string
	title      string
	section    string
	columns    []string
	dimensions []dimension.Dimension
	records    []record.Record
}

// New validates and creates a Catalog.
// All records must share the field names of the first one, in the same order.
// Columns default to every field; dimensions without options get them derived
// from record labels in first-seen order.
func New(
	name, title, section string,
	columns []string, dimensions []dimension.Dimension, records []record.Record,
) (Catalog, error) {
	if !nameRegex.MatchString(name) {
		return Catalog{}, fmt.Errorf("catalog name %q must be lowercase snake_case", name)
	}

	var fields []string
	if len(records) > 0 {
		fields = records[0].FieldNames()
	}
	for i, r := range records[min(1, len(records)):] {
		if !slices.Equal(fields, r.FieldNames()) {
			return Catalog{}, fmt.Errorf("catalog %q: record %d fields %v differ from %v", name, i+1, r.FieldNames(), fields)
		}
	}

	if len(columns) == 0 {
		columns = fields
	}
	for _, c := range columns {
		if len(records) > 0 && !slices.Contains(fields, c) {
			return Catalog{}, fmt.Errorf("catalog %q: unknown column %q", name, c)
		}
	}

	dims := make([]dimension.Dimension, 0, len(dimensions))
	seen := make(map[string]struct{}, len(dimensions))
	for _, d := range dimensions {
		if _, dup := seen[d.Key()]; dup {
			return Catalog{}, fmt.Errorf("catalog %q: duplicate dimension %q", name, d.Key())
		}
		seen[d.Key()] = struct{}{}
		if len(records) > 0 && !slices.Contains(fields, d.Field()) {
			return Catalog{}, fmt.Errorf("catalog %q: dimension %q refers to unknown field %q", name, d.Key(), d.Field())
		}
		if len(d.Options()) == 0 {
			d = d.WithOptions(observedOptions(d.Key(), records))
		}
		dims = append(dims, d)
	}

	return Catalog{
		name:       name,
		title:      title,
		section:    section,
		columns:    slices.Clone(columns),
		dimensions: dims,
		records:    slices.Clone(records),
	}, nil
}

func observedOptions(key string, records []record.Record) []string {
	var out []string
	for _, r := range records {
		out = append(out, r.Labels(key).Items()...)
	}
	return out
}

// Name returns the catalog identifier.
func (c Catalog) Name() string { return c.name }

// Title returns the display title.
func (c Catalog) Title() string { return c.title }

// Section returns the dashboard section the catalog belongs to.
func (c Catalog) Section() string { return c.section }

// Columns returns the fields shown by default.
func (c Catalog) Columns() []string { return slices.Clone(c.columns) }

// Dimensions returns the filterable dimensions in declaration order.
func (c Catalog) Dimensions() []dimension.Dimension { return slices.Clone(c.dimensions) }

// Dimension looks up a dimension by key.
func (c Catalog) Dimension(key string) (dimension.Dimension, bool) {
	for _, d := range c.dimensions {
		if d.Key() == key {
			return d, true
		}
	}
	return dimension.Dimension{}, false
}

// Records returns the records in display order.
func (c Catalog) Records() []record.Record { return slices.Clone(c.records) }

// Len returns the number of records.
func (c Catalog) Len() int { return len(c.records) }
