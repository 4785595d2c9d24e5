package catalog

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/kailas-cloud/econpath/internal/domain"
	domcat "github.com/kailas-cloud/econpath/internal/domain/catalog"
	"github.com/kailas-cloud/econpath/internal/domain/catalog/dimension"
	"github.com/kailas-cloud/econpath/internal/domain/catalog/label"
	"github.com/kailas-cloud/econpath/internal/domain/catalog/record"
	"github.com/kailas-cloud/econpath/internal/domain/filter"
	"github.com/kailas-cloud/econpath/internal/metrics"
)

// --- Mocks ---

type mockStore struct {
	catalogs []domcat.Catalog
}

func (m *mockStore) Load() []domcat.Catalog { return m.catalogs }

func (m *mockStore) Get(name string) (domcat.Catalog, error) {
	for _, c := range m.catalogs {
		if c.Name() == name {
			return c, nil
		}
	}
	return domcat.Catalog{}, fmt.Errorf("catalog %q: %w", name, domain.ErrNotFound)
}

func newCatalog(t *testing.T, name, section string, categories ...string) domcat.Catalog {
	t.Helper()
	dim, err := dimension.New("category", "", dimension.Multi, dimension.Labels, nil)
	if err != nil {
		t.Fatalf("dimension.New: %v", err)
	}
	recs := make([]record.Record, 0, len(categories))
	for i, cat := range categories {
		r, err := record.New(
			[]record.Field{{Name: "title", Value: fmt.Sprintf("%s-%d", name, i+1)}, {Name: "category", Value: cat}},
			map[string]label.Set{"category": dim.Tokenize(cat)},
		)
		if err != nil {
			t.Fatalf("record.New: %v", err)
		}
		recs = append(recs, r)
	}
	c, err := domcat.New(name, name, section, nil, []dimension.Dimension{dim}, recs)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return c
}

func newService(t *testing.T) *Service {
	t.Helper()
	return New(&mockStore{catalogs: []domcat.Catalog{
		newCatalog(t, "books", "references", "econometrics", "data science", "econometrics, statistics"),
		newCatalog(t, "blogs", "references", "statistics"),
		newCatalog(t, "tools", "econometrics", "software"),
	}})
}

// --- Tests ---

func TestList(t *testing.T) {
	svc := newService(t)

	names := func(cs []domcat.Catalog) []string {
		out := make([]string, len(cs))
		for i, c := range cs {
			out[i] = c.Name()
		}
		return out
	}

	if diff := cmp.Diff([]string{"books", "blogs", "tools"}, names(svc.List(context.Background(), ""))); diff != "" {
		t.Errorf("all catalogs mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"books", "blogs"}, names(svc.List(context.Background(), "references"))); diff != "" {
		t.Errorf("section mismatch (-want +got):\n%s", diff)
	}
	if got := svc.List(context.Background(), "nowhere"); len(got) != 0 {
		t.Errorf("expected no catalogs, got %d", len(got))
	}
}

func TestGet_NotFound(t *testing.T) {
	_, err := newService(t).Get(context.Background(), "podcasts")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestFilter(t *testing.T) {
	svc := newService(t)
	before := testutil.ToFloat64(metrics.FilterRequestsTotal.WithLabelValues("books", "true"))

	v, err := svc.Filter(context.Background(), "books",
		filter.NewCriteria().With("category", filter.Multi("econometrics")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []string
	for _, r := range v.Records {
		got = append(got, r.Text("title"))
	}
	if diff := cmp.Diff([]string{"books-1", "books-3"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if v.Total() != 3 {
		t.Errorf("Total() = %d, want 3", v.Total())
	}

	after := testutil.ToFloat64(metrics.FilterRequestsTotal.WithLabelValues("books", "true"))
	if after != before+1 {
		t.Errorf("filter_requests_total = %f, want %f", after, before+1)
	}
}

func TestFilter_EmptyResultIsNotAnError(t *testing.T) {
	v, err := newService(t).Filter(context.Background(), "books",
		filter.NewCriteria().With("category", filter.Multi("podcasting")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(v.Records) != 0 {
		t.Errorf("expected no records, got %d", len(v.Records))
	}
}

func TestFilter_Errors(t *testing.T) {
	svc := newService(t)

	tests := []struct {
		name    string
		catalog string
		crit    filter.Criteria
		wantErr error
	}{
		{"unknown catalog", "podcasts", filter.NewCriteria(), domain.ErrNotFound},
		{"unknown dimension", "books", filter.NewCriteria().With("level", filter.Single("advanced")), domain.ErrInvalidCriteria},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Filter(context.Background(), tt.catalog, tt.crit)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
