package bootstrap

import (
	"context"
	"log/slog"

	"github.com/romainbeka/dashboardsteph/internal/pkg/config"
	"github.com/romainbeka/dashboardsteph/internal/pkg/errs"
	"github.com/romainbeka/dashboardsteph/internal/usecase/queries"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(StartScheduler),
)

// StartScheduler registers the relation audit job. An empty schedule
// disables it.
func StartScheduler(lc fx.Lifecycle, cfg config.Config, q queries.JDRQueries, logger *slog.Logger) error {
	if cfg.Audit.Schedule == "" {
		logger.Info("relation audit disabled")
		return nil
	}

	c := cron.New(
		cron.WithLocation(cfg.Reduction.Location()),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
	if _, err := c.AddFunc(cfg.Audit.Schedule, func() {
		RunRelationAudit(context.Background(), q, logger)
	}); err != nil {
		return errs.Wrapf(err, "invalid RELATION_AUDIT_SCHEDULE %q", cfg.Audit.Schedule)
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			c.Start()
			logger.Info("relation audit scheduled", "schedule", cfg.Audit.Schedule)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			select {
			case <-c.Stop().Done():
			case <-ctx.Done():
			}
			return nil
		},
	})
	return nil
}

// RunRelationAudit logs every inconsistency between associatedProducts links.
// It returns the number of findings.
func RunRelationAudit(ctx context.Context, q queries.JDRQueries, logger *slog.Logger) int {
	findings, err := q.RelationAudit(ctx)
	if err != nil {
		logger.Error("relation audit failed", "error", err)
		return 0
	}
	for _, f := range findings {
		logger.Warn("relation inconsistency",
			"kind", f.Kind,
			"record_id", f.RecordID,
			"record_name", f.RecordName,
			"reference", f.Reference,
		)
	}
	logger.Info("relation audit completed", "findings", len(findings))
	return len(findings)
}
