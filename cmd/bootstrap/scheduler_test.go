//go:build unit

package bootstrap_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/romainbeka/dashboardsteph/cmd/bootstrap"
	"github.com/romainbeka/dashboardsteph/internal/domain/jdr"
	"github.com/romainbeka/dashboardsteph/internal/pkg/config"
	queriesmock "github.com/romainbeka/dashboardsteph/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"go.uber.org/mock/gomock"
)

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func TestRunRelationAudit(t *testing.T) {
	t.Run("logs each finding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := queriesmock.NewMockJDRQueries(ctrl)
		q.EXPECT().RelationAudit(gomock.Any()).Return([]jdr.Finding{
			{RecordID: 1, RecordName: "Core", Reference: "Ghost", Kind: jdr.FindingDangling},
			{RecordID: 2, RecordName: "Écran", Reference: "Core", Kind: jdr.FindingOneSided},
		}, nil)
		logger, buf := newBufferLogger()

		n := bootstrap.RunRelationAudit(context.Background(), q, logger)

		assert.Equal(t, 2, n)
		assert.Contains(t, buf.String(), "reference=Ghost")
		assert.Contains(t, buf.String(), "kind=one_sided")
	})

	t.Run("query failure reports zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := queriesmock.NewMockJDRQueries(ctrl)
		q.EXPECT().RelationAudit(gomock.Any()).Return(nil, fmt.Errorf("read failed"))
		logger, buf := newBufferLogger()

		n := bootstrap.RunRelationAudit(context.Background(), q, logger)

		assert.Zero(t, n)
		assert.Contains(t, buf.String(), "relation audit failed")
	})
}

func TestStartScheduler(t *testing.T) {
	logger, _ := newBufferLogger()

	t.Run("empty schedule disables the job", func(t *testing.T) {
		lc := fxtest.NewLifecycle(t)
		cfg := config.NewTestConfig("", "")

		require.NoError(t, bootstrap.StartScheduler(lc, cfg, nil, logger))
		lc.RequireStart().RequireStop()
	})

	t.Run("valid schedule starts and stops", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := queriesmock.NewMockJDRQueries(ctrl)
		q.EXPECT().RelationAudit(gomock.Any()).Return(nil, nil).AnyTimes()

		lc := fxtest.NewLifecycle(t)
		cfg := config.NewTestConfig("", "")
		cfg.Audit.Schedule = "@every 1h"

		require.NoError(t, bootstrap.StartScheduler(lc, cfg, q, logger))
		lc.RequireStart().RequireStop()
	})

	t.Run("invalid schedule is rejected", func(t *testing.T) {
		lc := fxtest.NewLifecycle(t)
		cfg := config.NewTestConfig("", "")
		cfg.Audit.Schedule = "every tuesday"

		err := bootstrap.StartScheduler(lc, cfg, nil, logger)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid RELATION_AUDIT_SCHEDULE")
	})
}
