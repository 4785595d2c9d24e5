package chi

import (
	domassess "github.com/kailas-cloud/econpath/internal/domain/assessment"
	"github.com/kailas-cloud/econpath/internal/domain/assessment/tier"
	domcat "github.com/kailas-cloud/econpath/internal/domain/catalog"
	"github.com/kailas-cloud/econpath/internal/domain/catalog/record"
	assessmentuc "github.com/kailas-cloud/econpath/internal/usecase/assessment"
	cataloguc "github.com/kailas-cloud/econpath/internal/usecase/catalog"
)

func catalogToSummary(c domcat.Catalog) CatalogSummary {
	dims := c.Dimensions()
	keys := make([]string, len(dims))
	for i, d := range dims {
		keys[i] = d.Key()
	}
	return CatalogSummary{
		Name:       c.Name(),
		Title:      c.Title(),
		Section:    c.Section(),
		Records:    c.Len(),
		Dimensions: keys,
	}
}

func catalogToResponse(c domcat.Catalog) CatalogResponse {
	dims := c.Dimensions()
	out := make([]Dimension, len(dims))
	for i, d := range dims {
		out[i] = Dimension{
			Key:     d.Key(),
			Field:   d.Field(),
			Kind:    string(d.Kind()),
			Match:   string(d.Match()),
			Options: d.Options(),
		}
	}
	return CatalogResponse{
		Name:       c.Name(),
		Title:      c.Title(),
		Section:    c.Section(),
		Columns:    c.Columns(),
		Dimensions: out,
		Records:    c.Len(),
	}
}

func viewToResponse(v cataloguc.View) RecordsResponse {
	criteria := make(map[string][]string)
	for _, key := range v.Criteria.Active() {
		sel, _ := v.Criteria.Selection(key)
		criteria[key] = sel.Values()
	}

	var fields []string
	if all := v.Catalog.Records(); len(all) > 0 {
		fields = all[0].FieldNames()
	}

	rows := make([][]any, len(v.Records))
	for i, r := range v.Records {
		rows[i] = recordToRow(r)
	}

	return RecordsResponse{
		Catalog:  v.Catalog.Name(),
		Criteria: criteria,
		Fields:   fields,
		Columns:  v.Catalog.Columns(),
		Rows:     rows,
		Matched:  len(v.Records),
		Total:    v.Total(),
	}
}

func recordToRow(r record.Record) []any {
	fields := r.Fields()
	row := make([]any, len(fields))
	for i, f := range fields {
		row[i] = f.Value
	}
	return row
}

func formToResponse(f domassess.Form) AssessmentFormResponse {
	tiers := tier.All()
	bands := make([]TierBand, len(tiers))
	for i, t := range tiers {
		from, to := tierBounds(t)
		g := f.Guidance(t)
		bands[i] = TierBand{Tier: string(t), From: from, To: to, Heading: g.Heading, Advice: g.Advice}
	}
	return AssessmentFormResponse{
		Title:         f.Title(),
		Skills:        f.Skills(),
		DefaultRating: f.DefaultRating(),
		MinRating:     domassess.MinRating,
		MaxRating:     domassess.MaxRating,
		Tiers:         bands,
	}
}

func tierBounds(t tier.Tier) (int, int) {
	switch t {
	case tier.Strength:
		return tier.StrengthFrom, domassess.MaxRating
	case tier.Developing:
		return tier.DevelopingFrom, tier.StrengthFrom - 1
	default:
		return domassess.MinRating, tier.DevelopingFrom - 1
	}
}

func reportToResponse(r assessmentuc.Report) AssessmentResponse {
	items := r.Ratings.Items()
	ratings := make([]RatingItem, len(items))
	for i, it := range items {
		ratings[i] = RatingItem{Skill: it.Skill, Rating: it.Value}
	}

	recs := make([]Recommendation, len(r.Recommendations))
	for i, rec := range r.Recommendations {
		recs[i] = Recommendation{
			Skill:  rec.Skill,
			Rating: rec.Rating,
			Tier:   string(rec.Tier),
			Advice: rec.Advice,
		}
	}

	return AssessmentResponse{
		NeedsDevelopment: r.Result.NeedsDevelopment,
		Developing:       r.Result.Developing,
		Strength:         r.Result.Strength,
		Ratings:          ratings,
		Recommendations:  recs,
	}
}
