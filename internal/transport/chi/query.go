package chi

import (
	"fmt"
	"maps"
	"net/http"
	"net/url"
	"slices"

	"github.com/oapi-codegen/runtime"

	"github.com/kailas-cloud/econpath/internal/domain"
	domcat "github.com/kailas-cloud/econpath/internal/domain/catalog"
	"github.com/kailas-cloud/econpath/internal/domain/catalog/dimension"
	"github.com/kailas-cloud/econpath/internal/domain/filter"
)

func bindOptionalString(r *http.Request, key string, dest *string) error {
	return runtime.BindQueryParameter("form", true, false, key, r.URL.Query(), dest)
}

// criteriaFromQuery reads one selection per query parameter.
// Single dimensions take one value; multi dimensions repeat the parameter.
// Parameters naming no dimension are kept so validation can reject them.
func criteriaFromQuery(c domcat.Catalog, q url.Values) (filter.Criteria, error) {
	crit := filter.NewCriteria()
	known := make(map[string]struct{}, len(q))

	for _, d := range c.Dimensions() {
		key := d.Key()
		if _, ok := q[key]; !ok {
			continue
		}
		known[key] = struct{}{}

		if d.Kind() == dimension.Single {
			if len(q[key]) > 1 {
				return filter.Criteria{}, fmt.Errorf("%w: dimension %q accepts a single option", domain.ErrInvalidCriteria, key)
			}
			var v string
			if err := runtime.BindQueryParameter("form", true, false, key, q, &v); err != nil {
				return filter.Criteria{}, fmt.Errorf("%w: %v", domain.ErrInvalidCriteria, err)
			}
			crit = crit.With(key, filter.Single(v))
			continue
		}

		var vs []string
		if err := runtime.BindQueryParameter("form", true, false, key, q, &vs); err != nil {
			return filter.Criteria{}, fmt.Errorf("%w: %v", domain.ErrInvalidCriteria, err)
		}
		crit = crit.With(key, filter.Multi(vs...))
	}

	for _, key := range slices.Sorted(maps.Keys(q)) {
		if _, ok := known[key]; !ok {
			crit = crit.With(key, filter.Multi(q[key]...))
		}
	}
	return crit, nil
}
