package assessment

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	domassess "github.com/kailas-cloud/econpath/internal/domain/assessment"
	"github.com/kailas-cloud/econpath/internal/domain/assessment/tier"
	"github.com/kailas-cloud/econpath/internal/logger"
	"github.com/kailas-cloud/econpath/internal/metrics"
)

// Report is a classified self-assessment.
type Report struct {
	Ratings         domassess.Ratings
	Result          domassess.Result
	Recommendations []domassess.Recommendation
}

// Service classifies self-assessments.
type Service struct {
	forms FormProvider
}

// New creates an assessment service.
func New(forms FormProvider) *Service {
	return &Service{forms: forms}
}

// Form returns the questionnaire shown to the user.
func (s *Service) Form(_ context.Context) domassess.Form {
	return s.forms.Form()
}

// Assess classifies ratings into tiers and attaches advice.
// An empty rating set is assessed as the untouched form.
func (s *Service) Assess(ctx context.Context, ratings domassess.Ratings) (Report, error) {
	form := s.forms.Form()
	if ratings.Len() == 0 {
		ratings = form.Defaults()
	}

	res, recs, err := form.Recommend(ratings)
	if err != nil {
		return Report{}, fmt.Errorf("classify ratings: %w", err)
	}

	metrics.AssessmentsTotal.Inc()
	for _, t := range tier.All() {
		metrics.AssessmentSkillsTotal.WithLabelValues(string(t)).Add(float64(len(res.Of(t))))
	}
	logger.FromContext(ctx).Debug("self-assessment classified",
		zap.Int("skills", ratings.Len()),
		zap.Int("needs_development", len(res.NeedsDevelopment)),
		zap.Int("developing", len(res.Developing)),
		zap.Int("strength", len(res.Strength)),
	)

	return Report{Ratings: ratings, Result: res, Recommendations: recs}, nil
}
