package bootstrap

import (
	"context"
	"log/slog"

	"github.com/romainbeka/dashboardsteph/internal/infra/assets"
	"github.com/romainbeka/dashboardsteph/internal/infra/filestore"
	"github.com/romainbeka/dashboardsteph/internal/pkg/config"

	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Invoke(PrepareStorage),
)

// PrepareStorage creates the uploads root and, when enabled, an empty data
// file before the server starts accepting requests.
func PrepareStorage(lc fx.Lifecycle, cfg config.Config, store *filestore.JDRFileStore, images *assets.ImageStore, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := images.EnsureDir(); err != nil {
				return err
			}
			if cfg.Storage.InitDataFile {
				if err := store.EnsureFile(ctx); err != nil {
					return err
				}
			}
			logger.Info("storage ready",
				"data_file", store.Path(),
				"uploads_dir", images.Root(),
			)
			return nil
		},
	})
}
