package components

import (
	"github.com/romainbeka/dashboardsteph/internal/domain/reduction"
	"github.com/romainbeka/dashboardsteph/internal/pkg/clock"
	"github.com/romainbeka/dashboardsteph/internal/pkg/config"
	"github.com/romainbeka/dashboardsteph/internal/usecase/commands"
	"github.com/romainbeka/dashboardsteph/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(clk clock.Clock, cfg config.Config) *reduction.Evaluator {
		return reduction.NewEvaluator(clk, cfg.Reduction.Location(), cfg.Reduction.ExpiringSoonDays)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewJDRCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewJDRQueries,
		queries.NewReductionQueries,
		queries.NewImageQueries,
	),
)
