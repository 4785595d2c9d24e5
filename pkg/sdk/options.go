package econpath

import (
	"io/fs"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	catalogs fs.FS

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithCatalogFS loads catalogs and the assessment form from fsys instead of
// the built-in dataset. The layout is one YAML file per catalog plus assessment.yaml.
func WithCatalogFS(fsys fs.FS) Option {
	return optionFunc(func(c *clientConfig) {
		c.catalogs = fsys
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
