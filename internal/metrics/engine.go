package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Filter and assessment Prometheus metrics.
var (
	FilterRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "econpath",
			Name:      "filter_requests_total",
			Help:      "Total number of catalog filter evaluations",
		},
		[]string{"catalog", "filtered"}, // filtered: "true" when any dimension narrowed the result
	)

	FilterResultRows = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "econpath",
			Name:      "filter_result_rows",
			Help:      "Number of records returned by a filter evaluation",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50},
		},
		[]string{"catalog"},
	)

	AssessmentsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "econpath",
			Name:      "assessments_total",
			Help:      "Total number of classified self-assessments",
		},
	)

	AssessmentSkillsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "econpath",
			Name:      "assessment_skills_total",
			Help:      "Rated skills by resulting tier",
		},
		[]string{"tier"},
	)
)

var registerEngineOnce sync.Once

// RegisterEngineMetrics registers filter and assessment metrics with the default registry.
// Safe to call more than once.
func RegisterEngineMetrics() {
	registerEngineOnce.Do(func() {
		prometheus.MustRegister(FilterRequestsTotal, FilterResultRows, AssessmentsTotal, AssessmentSkillsTotal)
	})
}
