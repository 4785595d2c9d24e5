// Package assessment classifies self-assessed skill ratings into recommendation tiers.
package assessment

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/econpath/internal/domain"
	"github.com/kailas-cloud/econpath/internal/domain/assessment/tier"
)

// Rating bounds (inclusive).
const (
	MinRating = 0
	MaxRating = 100
)

// Rating is one self-assessed skill.
type Rating struct {
	Skill string
	Value int
}

// Ratings is an ordered set of ratings with unique skill names.
type Ratings struct {
	items []Rating
}

// NewRatings validates skill names and keeps the given order.
// Values are range-checked by Classify.
func NewRatings(items ...Rating) (Ratings, error) {
	out := make([]Rating, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		it.Skill = strings.TrimSpace(it.Skill)
		if it.Skill == "" {
			return Ratings{}, fmt.Errorf("%w: skill name is required", domain.ErrInvalidRating)
		}
		if _, dup := seen[it.Skill]; dup {
			return Ratings{}, fmt.Errorf("%w: duplicate skill %q", domain.ErrInvalidRating, it.Skill)
		}
		seen[it.Skill] = struct{}{}
		out = append(out, it)
	}
	return Ratings{items: out}, nil
}

// Items returns the ratings in input order.
func (r Ratings) Items() []Rating {
	out := make([]Rating, len(r.items))
	copy(out, r.items)
	return out
}

// Len returns the number of ratings.
func (r Ratings) Len() int { return len(r.items) }

// Result holds skill names per tier, each list in input order.
type Result struct {
	NeedsDevelopment []string
	Developing       []string
	Strength         []string
}

// Of returns the skills in tier t.
func (r Result) Of(t tier.Tier) []string {
	switch t {
	case tier.NeedsDevelopment:
		return r.NeedsDevelopment
	case tier.Developing:
		return r.Developing
	case tier.Strength:
		return r.Strength
	default:
		return nil
	}
}

// Classify partitions every rated skill into exactly one tier.
// A value outside [MinRating, MaxRating] is a caller bug and fails with ErrInvalidRating.
func Classify(ratings Ratings) (Result, error) {
	res := Result{
		NeedsDevelopment: []string{},
		Developing:       []string{},
		Strength:         []string{},
	}
	for _, r := range ratings.items {
		if r.Value < MinRating || r.Value > MaxRating {
			return Result{}, fmt.Errorf("%w: %q rated %d, want %d..%d",
				domain.ErrInvalidRating, r.Skill, r.Value, MinRating, MaxRating)
		}
		switch tier.Of(r.Value) {
		case tier.NeedsDevelopment:
			res.NeedsDevelopment = append(res.NeedsDevelopment, r.Skill)
		case tier.Developing:
			res.Developing = append(res.Developing, r.Skill)
		case tier.Strength:
			res.Strength = append(res.Strength, r.Skill)
		}
	}
	return res, nil
}
