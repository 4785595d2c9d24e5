package assessment

import (
	"fmt"

	"github.com/kailas-cloud/econpath/internal/domain/assessment/tier"
)

// Guidance is the text shown for one tier.
type Guidance struct {
	Heading string
	Advice  string
}

// Form is the self-assessment questionnaire: which skills to rate, the
// starting position of each control and what to tell the user per tier.
type Form struct {
	title         string
	skills        []string
	defaultRating int
	guidance      map[tier.Tier]Guidance
}

// NewForm validates and creates a Form.
func NewForm(title string, skills []string, defaultRating int, guidance map[tier.Tier]Guidance) (Form, error) {
	if len(skills) == 0 {
		return Form{}, fmt.Errorf("form needs at least one skill")
	}
	if defaultRating < MinRating || defaultRating > MaxRating {
		return Form{}, fmt.Errorf("default rating %d out of range %d..%d", defaultRating, MinRating, MaxRating)
	}
	if _, err := NewRatings(defaultRatings(skills, defaultRating)...); err != nil {
		return Form{}, fmt.Errorf("form skills: %w", err)
	}
	g := make(map[tier.Tier]Guidance, len(guidance))
	for t, v := range guidance {
		if !t.IsValid() {
			return Form{}, fmt.Errorf("unknown tier %q", t)
		}
		g[t] = v
	}
	s := make([]string, len(skills))
	copy(s, skills)
	return Form{title: title, skills: s, defaultRating: defaultRating, guidance: g}, nil
}

func defaultRatings(skills []string, value int) []Rating {
	out := make([]Rating, len(skills))
	for i, s := range skills {
		out[i] = Rating{Skill: s, Value: value}
	}
	return out
}

// Title returns the form title.
func (f Form) Title() string { return f.title }

// Skills returns the skills to rate, in display order.
func (f Form) Skills() []string {
	out := make([]string, len(f.skills))
	copy(out, f.skills)
	return out
}

// DefaultRating returns the initial value of every rating control.
func (f Form) DefaultRating() int { return f.defaultRating }

// Guidance returns the text for tier t.
func (f Form) Guidance(t tier.Tier) Guidance { return f.guidance[t] }

// Defaults returns the ratings of an untouched form.
func (f Form) Defaults() Ratings {
	return Ratings{items: defaultRatings(f.skills, f.defaultRating)}
}

// Recommendation is the advice for one rated skill.
type Recommendation struct {
	Skill  string
	Rating int
	Tier   tier.Tier
	Advice string
}

// Recommend classifies ratings and attaches per-tier advice.
// Recommendations are grouped by tier (lowest first) and keep input order within a tier.
func (f Form) Recommend(ratings Ratings) (Result, []Recommendation, error) {
	res, err := Classify(ratings)
	if err != nil {
		return Result{}, nil, err
	}
	values := make(map[string]int, ratings.Len())
	for _, r := range ratings.items {
		values[r.Skill] = r.Value
	}

	recs := make([]Recommendation, 0, ratings.Len())
	for _, t := range tier.All() {
		for _, skill := range res.Of(t) {
			recs = append(recs, Recommendation{
				Skill:  skill,
				Rating: values[skill],
				Tier:   t,
				Advice: f.guidance[t].Advice,
			})
		}
	}
	return res, recs, nil
}
