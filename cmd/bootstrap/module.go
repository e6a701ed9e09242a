package bootstrap

import (
	"github.com/romainbeka/dashboardsteph/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
	StorageModule,
	SchedulerModule,
)
