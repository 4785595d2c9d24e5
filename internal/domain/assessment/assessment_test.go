package assessment

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kailas-cloud/econpath/internal/domain"
	"github.com/kailas-cloud/econpath/internal/domain/assessment/tier"
)

func mustRatings(t *testing.T, items ...Rating) Ratings {
	t.Helper()
	r, err := NewRatings(items...)
	if err != nil {
		t.Fatalf("NewRatings: %v", err)
	}
	return r
}

func TestClassify_Scenario(t *testing.T) {
	res, err := Classify(mustRatings(t,
		Rating{Skill: "SQL", Value: 30},
		Rating{Skill: "ML", Value: 65},
		Rating{Skill: "Stats", Value: 90},
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Result{
		NeedsDevelopment: []string{"SQL"},
		Developing:       []string{"ML"},
		Strength:         []string{"Stats"},
	}
	if diff := cmp.Diff(want, res); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestClassify_Boundaries(t *testing.T) {
	res, err := Classify(mustRatings(t,
		Rating{Skill: "a", Value: 49},
		Rating{Skill: "b", Value: 50},
		Rating{Skill: "c", Value: 79},
		Rating{Skill: "d", Value: 80},
		Rating{Skill: "e", Value: 0},
		Rating{Skill: "f", Value: 100},
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Result{
		NeedsDevelopment: []string{"a", "e"},
		Developing:       []string{"b", "c"},
		Strength:         []string{"d", "f"},
	}
	if diff := cmp.Diff(want, res); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestClassify_PartitionIsComplete(t *testing.T) {
	var items []Rating
	for v := 0; v <= 100; v++ {
		items = append(items, Rating{Skill: fmt.Sprintf("skill-%d", v), Value: v})
	}
	res, err := Classify(mustRatings(t, items...))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := make(map[string]int)
	for _, tr := range tier.All() {
		for _, s := range res.Of(tr) {
			seen[s]++
		}
	}
	if len(seen) != len(items) {
		t.Errorf("classified %d skills, want %d", len(seen), len(items))
	}
	for s, n := range seen {
		if n != 1 {
			t.Errorf("skill %q appears in %d tiers", s, n)
		}
	}
}

func TestClassify_Empty(t *testing.T) {
	res, err := Classify(mustRatings(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.NeedsDevelopment)+len(res.Developing)+len(res.Strength) != 0 {
		t.Errorf("expected empty result, got %+v", res)
	}
}

func TestClassify_OutOfRange(t *testing.T) {
	for _, v := range []int{-1, 101} {
		_, err := Classify(mustRatings(t, Rating{Skill: "SQL", Value: v}))
		if !errors.Is(err, domain.ErrInvalidRating) {
			t.Errorf("value %d: expected ErrInvalidRating, got %v", v, err)
		}
	}
}

func TestNewRatings_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		items []Rating
	}{
		{"blank skill", []Rating{{Skill: "  ", Value: 10}}},
		{"duplicate skill", []Rating{{Skill: "SQL", Value: 10}, {Skill: "SQL", Value: 20}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRatings(tt.items...)
			if !errors.Is(err, domain.ErrInvalidRating) {
				t.Errorf("expected ErrInvalidRating, got %v", err)
			}
		})
	}
}

func TestForm_Recommend(t *testing.T) {
	f, err := NewForm("Self assessment", []string{"SQL", "ML", "Stats"}, 50, map[tier.Tier]Guidance{
		tier.NeedsDevelopment: {Heading: "Needs work", Advice: "start with basics"},
		tier.Developing:       {Heading: "Growing", Advice: "take advanced courses"},
		tier.Strength:         {Heading: "Strengths", Advice: "specialize"},
	})
	if err != nil {
		t.Fatalf("NewForm: %v", err)
	}

	_, recs, err := f.Recommend(mustRatings(t,
		Rating{Skill: "Stats", Value: 90},
		Rating{Skill: "SQL", Value: 30},
		Rating{Skill: "ML", Value: 65},
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Recommendation{
		{Skill: "SQL", Rating: 30, Tier: tier.NeedsDevelopment, Advice: "start with basics"},
		{Skill: "ML", Rating: 65, Tier: tier.Developing, Advice: "take advanced courses"},
		{Skill: "Stats", Rating: 90, Tier: tier.Strength, Advice: "specialize"},
	}
	if diff := cmp.Diff(want, recs); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestForm_Defaults(t *testing.T) {
	f, err := NewForm("", []string{"SQL", "ML"}, 50, nil)
	if err != nil {
		t.Fatalf("NewForm: %v", err)
	}
	res, err := Classify(f.Defaults())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"SQL", "ML"}, res.Developing); diff != "" {
		t.Errorf("untouched form should be all developing (-want +got):\n%s", diff)
	}
}

func TestNewForm_Invalid(t *testing.T) {
	if _, err := NewForm("", nil, 50, nil); err == nil {
		t.Error("expected error for no skills")
	}
	if _, err := NewForm("", []string{"a"}, 120, nil); err == nil {
		t.Error("expected error for default out of range")
	}
	if _, err := NewForm("", []string{"a", "a"}, 50, nil); err == nil {
		t.Error("expected error for duplicate skills")
	}
	if _, err := NewForm("", []string{"a"}, 50, map[tier.Tier]Guidance{"expert": {}}); err == nil {
		t.Error("expected error for unknown tier")
	}
}
