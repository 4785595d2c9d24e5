package chi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/econpath/internal/domain"
	domassess "github.com/kailas-cloud/econpath/internal/domain/assessment"
	logpkg "github.com/kailas-cloud/econpath/internal/logger"
	assessmentuc "github.com/kailas-cloud/econpath/internal/usecase/assessment"
	cataloguc "github.com/kailas-cloud/econpath/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/econpath/internal/usecase/health"
	"github.com/kailas-cloud/econpath/internal/version"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server serves the catalog and self-assessment HTTP API.
type Server struct {
	catalogs      *cataloguc.Service
	assessments   *assessmentuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	catalogs *cataloguc.Service,
	assessments *assessmentuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		catalogs:    catalogs,
		assessments: assessments,
		health:      health,
		logger:      logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, ErrorCodeCatalogNotFound, false),
		sentinelHandler(domain.ErrInvalidCriteria, http.StatusBadRequest, ErrorCodeInvalidCriteria, true),
		sentinelHandler(domain.ErrInvalidRating, http.StatusBadRequest, ErrorCodeInvalidRating, true),
	}
	return s
}

// Routes mounts the API on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/catalogs", s.ListCatalogs)
	r.Get("/catalogs/{name}", s.GetCatalog)
	r.Get("/catalogs/{name}/records", s.FilterRecords)
	r.Get("/assessment/form", s.GetAssessmentForm)
	r.Post("/assessment", s.Assess)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// ListCatalogs handles GET /catalogs.
func (s *Server) ListCatalogs(w http.ResponseWriter, r *http.Request) {
	var section string
	if err := bindOptionalString(r, "section", &section); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, err.Error())
		return
	}

	cats := s.catalogs.List(r.Context(), section)
	items := make([]CatalogSummary, len(cats))
	for i, c := range cats {
		items[i] = catalogToSummary(c)
	}
	writeJSON(w, http.StatusOK, CatalogListResponse{Items: items, Count: len(items)})
}

// GetCatalog handles GET /catalogs/{name}.
func (s *Server) GetCatalog(w http.ResponseWriter, r *http.Request) {
	c, err := s.catalogs.Get(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, catalogToResponse(c))
}

// FilterRecords handles GET /catalogs/{name}/records.
func (s *Server) FilterRecords(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	ctx := logpkg.WithFields(r.Context(), zap.String("catalog", name))

	c, err := s.catalogs.Get(ctx, name)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	crit, err := criteriaFromQuery(c, r.URL.Query())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	view, err := s.catalogs.Filter(ctx, name, crit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewToResponse(view))
}

// GetAssessmentForm handles GET /assessment/form.
func (s *Server) GetAssessmentForm(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, formToResponse(s.assessments.Form(r.Context())))
}

// Assess handles POST /assessment.
func (s *Server) Assess(w http.ResponseWriter, r *http.Request) {
	var req AssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	items := make([]domassess.Rating, len(req.Ratings))
	for i, it := range req.Ratings {
		if it.Rating == nil {
			s.handleDomainError(w, fmt.Errorf("%w: %q has no rating", domain.ErrInvalidRating, it.Skill))
			return
		}
		items[i] = domassess.Rating{Skill: it.Skill, Value: *it.Rating}
	}
	ratings, err := domassess.NewRatings(items...)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	report, err := s.assessments.Assess(r.Context(), ratings)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reportToResponse(report))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}
	writeJSON(w, httpStatus, HealthResponse{
		Status:  string(report.Status),
		Version: version.String(),
		Checks:  checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{Code: code, Message: message})
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
// With detailed set, the full error text reaches the client; otherwise only the sentinel's.
func sentinelHandler(sentinel error, status int, code ErrorCode, detailed bool) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		msg := sentinel.Error()
		if detailed {
			msg = err.Error()
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	for _, h := range s.errorHandlers {
		if h(w, err) {
			s.logger.Warn("domain error", zap.Error(err))
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "internal error")
}
