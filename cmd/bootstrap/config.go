package bootstrap

import (
	"github.com/romainbeka/dashboardsteph/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
