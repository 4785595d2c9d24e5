package econpath

import (
	"context"
	"fmt"
	"io/fs"
	"time"

	"go.uber.org/zap"

	domassess "github.com/kailas-cloud/econpath/internal/domain/assessment"
	domcat "github.com/kailas-cloud/econpath/internal/domain/catalog"
	"github.com/kailas-cloud/econpath/internal/domain/filter"
	catalogrepo "github.com/kailas-cloud/econpath/internal/repository/catalog"
	assessmentuc "github.com/kailas-cloud/econpath/internal/usecase/assessment"
	cataloguc "github.com/kailas-cloud/econpath/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/econpath/internal/usecase/health"
)

// Internal interfaces, replaced by mocks in tests.
type catalogUseCase interface {
	List(ctx context.Context, section string) []domcat.Catalog
	Get(ctx context.Context, name string) (domcat.Catalog, error)
	Filter(ctx context.Context, name string, crit filter.Criteria) (cataloguc.View, error)
}

type assessmentUseCase interface {
	Form(ctx context.Context) domassess.Form
	Assess(ctx context.Context, ratings domassess.Ratings) (assessmentuc.Report, error)
}

type pinger interface {
	Ping(ctx context.Context) error
}

// Client is the econpath SDK entry point. It is safe for concurrent use.
type Client struct {
	store       pinger
	catalogs    catalogUseCase
	assessments assessmentUseCase
	healthSvc   healthUseCase
	obs         *observer
}

// New loads the catalogs and wires the engine.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	fsys := cfg.catalogs
	if fsys == nil {
		fsys = catalogrepo.Builtin()
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}
	return wireClient(fsys, obs)
}

func wireClient(fsys fs.FS, obs *observer) (*Client, error) {
	store, err := catalogrepo.New(fsys, zap.NewNop())
	if err != nil {
		return nil, fmt.Errorf("econpath: load catalogs: %w", err)
	}

	return &Client{
		store:       store,
		catalogs:    cataloguc.New(store),
		assessments: assessmentuc.New(store),
		healthSvc:   healthuc.New().WithCheck("catalog", store),
		obs:         obs,
	}, nil
}

// Ping checks that catalogs are loaded.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Catalogs returns the catalog service.
func (c *Client) Catalogs() *CatalogService {
	return &CatalogService{svc: c.catalogs, obs: c.obs}
}
