package econpath

import (
	"context"
	"time"

	domassess "github.com/kailas-cloud/econpath/internal/domain/assessment"
	"github.com/kailas-cloud/econpath/internal/domain/assessment/tier"
)

// Form returns the self-assessment questionnaire.
func (c *Client) Form(ctx context.Context) Form {
	f := c.assessments.Form(ctx)

	tiers := tier.All()
	guidance := make([]Guidance, len(tiers))
	for i, t := range tiers {
		g := f.Guidance(t)
		guidance[i] = Guidance{Tier: string(t), Heading: g.Heading, Advice: g.Advice}
	}
	return Form{
		Title:         f.Title(),
		Skills:        f.Skills(),
		DefaultRating: f.DefaultRating(),
		Guidance:      guidance,
	}
}

// Assess classifies ratings into tiers. With no ratings the form defaults are assessed.
// Values outside [0,100], blank or repeated skills fail with ErrInvalidRating.
func (c *Client) Assess(ctx context.Context, ratings ...Rating) (_ Assessment, err error) {
	start := time.Now()
	defer func() { c.obs.observe("assess", start, err) }()

	items := make([]domassess.Rating, len(ratings))
	for i, r := range ratings {
		items[i] = domassess.Rating{Skill: r.Skill, Value: r.Value}
	}
	rs, err := domassess.NewRatings(items...)
	if err != nil {
		return Assessment{}, err
	}

	report, err := c.assessments.Assess(ctx, rs)
	if err != nil {
		return Assessment{}, err
	}

	recs := make([]Recommendation, len(report.Recommendations))
	for i, r := range report.Recommendations {
		recs[i] = Recommendation{Skill: r.Skill, Rating: r.Rating, Tier: string(r.Tier), Advice: r.Advice}
	}
	return Assessment{
		NeedsDevelopment: report.Result.NeedsDevelopment,
		Developing:       report.Result.Developing,
		Strength:         report.Result.Strength,
		Recommendations:  recs,
	}, nil
}
