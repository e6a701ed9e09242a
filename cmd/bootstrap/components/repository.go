package components

import (
	"log/slog"

	"github.com/romainbeka/dashboardsteph/internal/infra/assets"
	"github.com/romainbeka/dashboardsteph/internal/infra/filestore"
	"github.com/romainbeka/dashboardsteph/internal/infra/seed"
	"github.com/romainbeka/dashboardsteph/internal/pkg/clock"
	"github.com/romainbeka/dashboardsteph/internal/pkg/config"
	"github.com/romainbeka/dashboardsteph/internal/usecase/shared"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			NewJDRFileStore,
			fx.As(fx.Self()),
			fx.As(new(shared.JDRStore)),
		),
		fx.Annotate(
			NewImageStore,
			fx.As(fx.Self()),
			fx.As(new(shared.ImageStore)),
			fx.As(new(shared.ImageReader)),
		),
		fx.Annotate(
			NewReductionSource,
			fx.As(new(shared.ReductionSource)),
		),
	),
)

func NewJDRFileStore(cfg config.Config, logger *slog.Logger) *filestore.JDRFileStore {
	return filestore.NewJDRFileStore(cfg.Storage.DataFile, logger)
}

func NewImageStore(cfg config.Config, clk clock.Clock, logger *slog.Logger) *assets.ImageStore {
	return assets.NewImageStore(cfg.Storage.UploadDir, cfg.Storage.UploadURLPrefix, clk, logger)
}

func NewReductionSource(cfg config.Config, logger *slog.Logger) (*seed.ReductionSource, error) {
	return seed.NewReductionSource(cfg.Reduction.SeedFile, logger)
}
