package components

import (
	"github.com/romainbeka/dashboardsteph/internal/handler"
	"github.com/romainbeka/dashboardsteph/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewJDRHandler,
		api.NewReductionHandler,
		api.NewUploadHandler,
		func(jdr *api.JDRHandler, reduction *api.ReductionHandler, upload *api.UploadHandler) handler.Handlers {
			return handler.Handlers{JDR: jdr, Reduction: reduction, Upload: upload}
		},
	),
	fx.Invoke(handler.NewRouter),
)
