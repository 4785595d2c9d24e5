package catalog

import (
	domcat "github.com/kailas-cloud/econpath/internal/domain/catalog"
)

// Store reads catalogs.
type Store interface {
	Load() []domcat.Catalog
	Get(name string) (domcat.Catalog, error)
}
