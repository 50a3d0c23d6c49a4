package bootstrap

import (
	"fmt"

	domain "booking-intake/internal/domain/catalog"
	"booking-intake/internal/infra/catalog"
	"booking-intake/internal/pkg/config"

	"go.uber.org/fx"
)

var CatalogModule = fx.Module("catalog",
	fx.Provide(
		NewCatalogReader,
	),
)

// NewCatalogReader only opens a database pool for the postgres driver.
func NewCatalogReader(lc fx.Lifecycle, cfg config.Config) (domain.Reader, error) {
	switch cfg.Catalog.Driver {
	case "", "file":
		return catalog.NewFile(cfg.Catalog.File)
	case "postgres":
		pool, err := NewDB(lc, cfg)
		if err != nil {
			return nil, err
		}
		return catalog.NewPostgres(pool), nil
	default:
		return nil, fmt.Errorf("unknown CATALOG_DRIVER %q", cfg.Catalog.Driver)
	}
}
