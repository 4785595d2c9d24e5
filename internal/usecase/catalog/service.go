package catalog

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	domcat "github.com/kailas-cloud/econpath/internal/domain/catalog"
	"github.com/kailas-cloud/econpath/internal/domain/catalog/record"
	"github.com/kailas-cloud/econpath/internal/domain/filter"
	"github.com/kailas-cloud/econpath/internal/logger"
	"github.com/kailas-cloud/econpath/internal/metrics"
)

// View is the visible part of a catalog for one set of criteria.
type View struct {
	Catalog  domcat.Catalog
	Criteria filter.Criteria
	Records  []record.Record
}

// Total returns the number of records before filtering.
func (v View) Total() int { return v.Catalog.Len() }

// Service serves catalogs and their filtered views.
type Service struct {
	store Store
}

// New creates a catalog service.
func New(store Store) *Service {
	return &Service{store: store}
}

// List returns the catalogs of a section, or every catalog when section is empty.
func (s *Service) List(_ context.Context, section string) []domcat.Catalog {
	all := s.store.Load()
	if section == "" {
		return all
	}
	out := make([]domcat.Catalog, 0, len(all))
	for _, c := range all {
		if c.Section() == section {
			out = append(out, c)
		}
	}
	return out
}

// Get returns a catalog by name.
func (s *Service) Get(_ context.Context, name string) (domcat.Catalog, error) {
	c, err := s.store.Get(name)
	if err != nil {
		return domcat.Catalog{}, fmt.Errorf("get catalog: %w", err)
	}
	return c, nil
}

// Filter validates crit against the catalog and returns the matching records.
func (s *Service) Filter(ctx context.Context, name string, crit filter.Criteria) (View, error) {
	c, err := s.store.Get(name)
	if err != nil {
		return View{}, fmt.Errorf("get catalog: %w", err)
	}
	if err := filter.Validate(c, crit); err != nil {
		return View{}, err
	}

	recs := filter.Apply(c, crit)

	metrics.FilterRequestsTotal.WithLabelValues(name, strconv.FormatBool(!crit.IsEmpty())).Inc()
	metrics.FilterResultRows.WithLabelValues(name).Observe(float64(len(recs)))
	logger.FromContext(ctx).Debug("catalog filtered",
		zap.Strings("dimensions", crit.Active()),
		zap.Int("matched", len(recs)),
		zap.Int("total", c.Len()),
	)

	return View{Catalog: c, Criteria: crit, Records: recs}, nil
}
