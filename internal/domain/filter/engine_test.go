package filter

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kailas-cloud/econpath/internal/domain"
	"github.com/kailas-cloud/econpath/internal/domain/catalog"
	"github.com/kailas-cloud/econpath/internal/domain/catalog/dimension"
	"github.com/kailas-cloud/econpath/internal/domain/catalog/label"
	"github.com/kailas-cloud/econpath/internal/domain/catalog/record"
)

type row struct {
	title, category, level, language string
}

func buildCatalog(t *testing.T, rows []row) catalog.Catalog {
	t.Helper()
	category, _ := dimension.New("category", "", dimension.Multi, dimension.Labels, nil)
	level, _ := dimension.New("level", "", dimension.Single, dimension.Level, []string{"beginner", "intermediate", "advanced"})
	language, _ := dimension.New("language", "", dimension.Single, dimension.Exact, nil)
	dims := []dimension.Dimension{category, level, language}

	recs := make([]record.Record, 0, len(rows))
	for _, r := range rows {
		fields := []record.Field{
			{Name: "title", Value: r.title},
			{Name: "category", Value: r.category},
			{Name: "level", Value: r.level},
			{Name: "language", Value: r.language},
		}
		labels := make(map[string]label.Set, len(dims))
		for _, d := range dims {
			for _, f := range fields {
				if f.Name == d.Field() {
					labels[d.Key()] = d.Tokenize(f.String())
				}
			}
		}
		rec, err := record.New(fields, labels)
		if err != nil {
			t.Fatalf("record.New: %v", err)
		}
		recs = append(recs, rec)
	}

	c, err := catalog.New("books", "Books", "references", nil, dims, recs)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return c
}

func titles(rs []record.Record) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Text("title")
	}
	return out
}

var library = []row{
	{"Introduction to Econometrics", "econometrics", "beginner to intermediate", "en"},
	{"Python for Data Analysis", "data analysis", "beginner to intermediate", "en"},
	{"Pattern Recognition", "data science, machine learning", "advanced", "en"},
	{"Time Series Analysis", "econometrics, statistics", "advanced", "en"},
	{"الإحصاء للاقتصاديين", "statistics", "beginner", "ar"},
	{"مقدمة في علم البيانات", "data science", "beginner", "ar"},
}

func TestApply_BookScenario(t *testing.T) {
	c := buildCatalog(t, []row{
		{"one", "econometrics", "beginner", "en"},
		{"two", "data science", "beginner", "en"},
		{"three", "econometrics, statistics", "beginner", "en"},
	})

	got := Apply(c, NewCriteria().With("category", Multi("econometrics")))
	if diff := cmp.Diff([]string{"one", "three"}, titles(got)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestApply(t *testing.T) {
	c := buildCatalog(t, library)

	tests := []struct {
		name string
		crit Criteria
		want []string
	}{
		{
			name: "no criteria returns everything",
			crit: NewCriteria(),
			want: titles(c.Records()),
		},
		{
			name: "single all sentinel",
			crit: NewCriteria().With("language", Single(All)),
			want: titles(c.Records()),
		},
		{
			name: "single empty option behaves as all",
			crit: NewCriteria().With("language", Single("")),
			want: titles(c.Records()),
		},
		{
			name: "single exact",
			crit: NewCriteria().With("language", Single("ar")),
			want: []string{"الإحصاء للاقتصاديين", "مقدمة في علم البيانات"},
		},
		{
			name: "level range covers intermediate",
			crit: NewCriteria().With("level", Single("intermediate")),
			want: []string{"Introduction to Econometrics", "Python for Data Analysis"},
		},
		{
			name: "multi is OR within dimension",
			crit: NewCriteria().With("category", Multi("statistics", "machine learning")),
			want: []string{"Pattern Recognition", "Time Series Analysis", "الإحصاء للاقتصاديين"},
		},
		{
			name: "AND across dimensions",
			crit: NewCriteria().
				With("category", Multi("statistics", "data science")).
				With("language", Single("ar")),
			want: []string{"الإحصاء للاقتصاديين", "مقدمة في علم البيانات"},
		},
		{
			name: "no partial label match",
			crit: NewCriteria().With("category", Multi("data")),
			want: []string{},
		},
		{
			name: "unknown dimension excludes everything",
			crit: NewCriteria().With("publisher", Single("Wiley")),
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := titles(Apply(c, tt.crit))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApply_Idempotent(t *testing.T) {
	c := buildCatalog(t, library)
	crit := NewCriteria().With("category", Multi("econometrics", "data science"))

	first := titles(Apply(c, crit))
	second := titles(Apply(c, crit))
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("results differ between calls (-first +second):\n%s", diff)
	}
}

func TestApply_PreservesOrder(t *testing.T) {
	c := buildCatalog(t, library)
	all := titles(c.Records())

	crits := []Criteria{
		NewCriteria().With("category", Multi("statistics", "econometrics")),
		NewCriteria().With("level", Single("advanced")),
		NewCriteria().With("language", Single("en")).With("category", Multi("data science")),
	}
	for _, crit := range crits {
		got := titles(Apply(c, crit))
		if !isSubsequence(got, all) {
			t.Errorf("%v is not a subsequence of %v", got, all)
		}
	}
}

func isSubsequence(sub, seq []string) bool {
	i := 0
	for _, s := range seq {
		if i < len(sub) && sub[i] == s {
			i++
		}
	}
	return i == len(sub)
}

func TestApply_EmptyMultiEqualsOmitted(t *testing.T) {
	c := buildCatalog(t, library)
	base := NewCriteria().With("language", Single("en"))

	omitted := titles(Apply(c, base))
	empty := titles(Apply(c, base.With("category", Multi())))
	if diff := cmp.Diff(omitted, empty); diff != "" {
		t.Errorf("empty selection changed the result (-omitted +empty):\n%s", diff)
	}
}

func TestApply_Monotonic(t *testing.T) {
	c := buildCatalog(t, library)
	options := []string{"econometrics", "statistics", "data science", "machine learning", "data analysis"}

	prev := -1
	for i := range options {
		n := len(Apply(c, NewCriteria().With("category", Multi(options[:i+1]...))))
		if n < prev {
			t.Errorf("adding %q shrank the result from %d to %d", options[i], prev, n)
		}
		prev = n
	}

	crit := NewCriteria().With("category", Multi("econometrics", "data science"))
	before := len(Apply(c, crit))
	after := len(Apply(c, crit.With("language", Single("en"))))
	if after > before {
		t.Errorf("adding a dimension grew the result from %d to %d", before, after)
	}
}

func TestCriteria_WithDoesNotMutate(t *testing.T) {
	base := NewCriteria().With("language", Single("en"))
	_ = base.With("category", Multi("x"))
	_ = base.With("language", Single("ar"))

	if diff := cmp.Diff([]string{"language"}, base.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
	s, _ := base.Selection("language")
	if diff := cmp.Diff([]string{"en"}, s.Values()); diff != "" {
		t.Errorf("selection mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate(t *testing.T) {
	c := buildCatalog(t, library)

	if err := Validate(c, NewCriteria().With("category", Multi("a", "b")).With("level", Single("beginner"))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name string
		crit Criteria
	}{
		{"unknown dimension", NewCriteria().With("publisher", Single("x"))},
		{"multi values on single dimension", NewCriteria().With("language", Multi("en", "ar"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(c, tt.crit)
			if !errors.Is(err, domain.ErrInvalidCriteria) {
				t.Errorf("expected ErrInvalidCriteria, got %v", err)
			}
		})
	}
}
