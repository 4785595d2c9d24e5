package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service runs named health checks.
type Service struct {
	names   []string
	pingers map[string]Pinger
}

// New creates a Service with no checks.
func New() *Service {
	return &Service{pingers: make(map[string]Pinger)}
}

// WithCheck registers a named component check.
func (s *Service) WithCheck(name string, p Pinger) *Service {
	if _, ok := s.pingers[name]; !ok {
		s.names = append(s.names, name)
	}
	s.pingers[name] = p
	return s
}

// Check runs every registered check.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult, len(s.names))
	status := Healthy
	for _, name := range s.names {
		if err := s.pingers[name].Ping(ctx); err != nil {
			checks[name] = CheckError
			status = Degraded
			continue
		}
		checks[name] = CheckOK
	}
	return Report{Status: status, Checks: checks}
}
