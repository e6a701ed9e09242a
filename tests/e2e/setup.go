//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/romainbeka/dashboardsteph/cmd/bootstrap"
	"github.com/romainbeka/dashboardsteph/cmd/bootstrap/components"
	"github.com/romainbeka/dashboardsteph/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// ------------------------------------------------------------
// Per-suite environment: a scratch data file and uploads directory
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (*gin.Engine, config.Config) {
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	cfg := config.NewTestConfig(filepath.Join(dir, "data", "jdr.json"), filepath.Join(dir, "uploads"))

	router, app := buildE2EApp(cfg)
	require.NotNil(t, router, "router setup failed")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})

	return router, cfg
}

// ------------------------------------------------------------
// Application wiring for e2e runs
// Returns router and fx.App for proper lifecycle management
// ------------------------------------------------------------
func buildE2EApp(cfg config.Config) (*gin.Engine, *fx.App) {
	var router *gin.Engine

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config { return cfg }),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		components.RepositoryModule,
		components.UseCaseModule,
		components.HandlerModule,
		bootstrap.StorageModule,

		fx.Populate(&router),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	return router, app
}

// ------------------------------------------------------------
// Shared setup for e2e suites
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	Config config.Config
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	router, cfg := setupE2EEnvironment(t)
	s.Router = router
	s.Config = cfg
	require.NotEmpty(t, s.Config.Storage.DataFile, "config missing data file")
	require.NotNil(t, s.Router, "router setup failed")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

func (s *SharedSuite) SetupSubTest() {
	s.ResetDataFile()
}

// ResetDataFile empties the catalog and the uploads directory.
func (s *SharedSuite) ResetDataFile() {
	t := s.T()
	require.NoError(t, os.WriteFile(s.Config.Storage.DataFile, []byte("[]"), 0o644), "reset data file")
	require.NoError(t, os.RemoveAll(s.Config.Storage.UploadDir), "reset uploads")
	require.NoError(t, os.MkdirAll(s.Config.Storage.UploadDir, 0o755), "recreate uploads")
}

// Seed writes records as the whole catalog.
func (s *SharedSuite) Seed(raw string) {
	require.NoError(s.T(), os.WriteFile(s.Config.Storage.DataFile, []byte(raw), 0o644), "seed data file")
}

// ReadDataFile returns the catalog exactly as persisted.
func (s *SharedSuite) ReadDataFile() []byte {
	b, err := os.ReadFile(s.Config.Storage.DataFile)
	require.NoError(s.T(), err, "read data file")
	return b
}
