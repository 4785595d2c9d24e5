package econpath

import (
	"context"
	"time"

	domcat "github.com/kailas-cloud/econpath/internal/domain/catalog"
	"github.com/kailas-cloud/econpath/internal/domain/catalog/record"
	"github.com/kailas-cloud/econpath/internal/domain/filter"
)

// Criterion narrows one filter dimension.
type Criterion struct {
	key    string
	values []string
	multi  bool
}

// Select picks one option of a single-choice dimension. "all" or "" selects everything.
func Select(key, option string) Criterion {
	return Criterion{key: key, values: []string{option}}
}

// SelectAny keeps records carrying any of the labels of a multi-choice dimension.
// No labels selects everything.
func SelectAny(key string, labels ...string) Criterion {
	return Criterion{key: key, values: labels, multi: true}
}

// selection converts c; a zero Criterion selects everything.
func (c Criterion) selection() filter.Selection {
	if c.multi {
		return filter.Multi(c.values...)
	}
	if len(c.values) == 0 {
		return filter.Single("")
	}
	return filter.Single(c.values[0])
}

// CatalogService browses and filters catalogs.
type CatalogService struct {
	svc catalogUseCase
	obs *observer
}

// List returns the catalogs of a section, or every catalog when section is empty.
func (s *CatalogService) List(ctx context.Context, section string) []CatalogInfo {
	start := time.Now()
	defer func() { s.obs.observe("catalogs.list", start, nil) }()

	cats := s.svc.List(ctx, section)
	out := make([]CatalogInfo, len(cats))
	for i, c := range cats {
		out[i] = catalogFromDomain(c)
	}
	return out
}

// Get returns catalog metadata. Unknown names fail with ErrNotFound.
func (s *CatalogService) Get(ctx context.Context, name string) (_ CatalogInfo, err error) {
	start := time.Now()
	defer func() { s.obs.observe("catalogs.get", start, err) }()

	c, err := s.svc.Get(ctx, name)
	if err != nil {
		return CatalogInfo{}, err
	}
	return catalogFromDomain(c), nil
}

// Filter returns the records matching every criterion, in catalog order.
// A later criterion for the same key replaces an earlier one.
func (s *CatalogService) Filter(ctx context.Context, name string, criteria ...Criterion) (_ FilterResult, err error) {
	start := time.Now()
	defer func() { s.obs.observe("catalogs.filter", start, err) }()

	crit := filter.NewCriteria()
	for _, c := range criteria {
		crit = crit.With(c.key, c.selection())
	}

	view, err := s.svc.Filter(ctx, name, crit)
	if err != nil {
		return FilterResult{}, err
	}

	rows := make([]Row, len(view.Records))
	for i, r := range view.Records {
		rows[i] = rowFromDomain(r)
	}
	return FilterResult{Catalog: name, Rows: rows, Total: view.Total()}, nil
}

func catalogFromDomain(c domcat.Catalog) CatalogInfo {
	dims := c.Dimensions()
	out := make([]DimensionInfo, len(dims))
	for i, d := range dims {
		out[i] = DimensionInfo{
			Key:     d.Key(),
			Field:   d.Field(),
			Kind:    string(d.Kind()),
			Match:   string(d.Match()),
			Options: d.Options(),
		}
	}
	return CatalogInfo{
		Name:       c.Name(),
		Title:      c.Title(),
		Section:    c.Section(),
		Columns:    c.Columns(),
		Dimensions: out,
		Records:    c.Len(),
	}
}

func rowFromDomain(r record.Record) Row {
	fields := r.Fields()
	out := make([]Field, len(fields))
	for i, f := range fields {
		out[i] = Field{Name: f.Name, Value: f.Value}
	}
	return Row{Fields: out}
}
