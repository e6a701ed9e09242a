//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/romainbeka/dashboardsteph/internal/handler/api"
	"github.com/romainbeka/dashboardsteph/internal/pkg/errs"
	"github.com/romainbeka/dashboardsteph/internal/usecase/queries"
	"github.com/romainbeka/dashboardsteph/tests/common/httptest"
	queriesmock "github.com/romainbeka/dashboardsteph/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UploadHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockImageQueries
	dir         string
}

func (s *UploadHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.dir = s.T().TempDir()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockImageQueries(s.mockCtrl)
	s.router.GET("/uploads/*image", api.NewUploadHandler(s.mockQueries).Serve)
}

func (s *UploadHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUploadHandlerSuite(t *testing.T) {
	suite.Run(t, new(UploadHandlerTestSuite))
}

func (s *UploadHandlerTestSuite) TestServe() {
	s.Run("success: streams the file with its content type", func() {
		full := filepath.Join(s.dir, "cover-1.png")
		s.Require().NoError(os.WriteFile(full, []byte("png-bytes"), 0o644))
		s.mockQueries.EXPECT().Open("cover-1.png").
			Return(&queries.StoredImage{Path: full, ContentType: "image/png"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/uploads/cover-1.png", nil)

		s.Equal(http.StatusOK, rec.Code)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Content-Type": "image/png"})
		s.Equal("png-bytes", rec.Body.String())
	})

	s.Run("success: nested path is passed through", func() {
		full := filepath.Join(s.dir, "nested.jpg")
		s.Require().NoError(os.WriteFile(full, []byte("jpg"), 0o644))
		s.mockQueries.EXPECT().Open("covers/nested.jpg").
			Return(&queries.StoredImage{Path: full, ContentType: "image/jpeg"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/uploads/covers/nested.jpg", nil)

		s.Equal(http.StatusOK, rec.Code)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Content-Type": "image/jpeg"})
	})

	s.Run("error: 400 when no image is named", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/uploads/", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Image non spécifiée.")
	})

	s.Run("error: 404 when the file does not exist", func() {
		s.mockQueries.EXPECT().Open("missing.png").
			Return(nil, errs.Mark(fmt.Errorf("no such file"), errs.ErrNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/uploads/missing.png", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Fichier introuvable.")
	})

	s.Run("error: 400 when the path escapes the uploads root", func() {
		s.mockQueries.EXPECT().Open(gomock.Any()).
			Return(nil, errs.Mark(fmt.Errorf("path escapes root"), errs.ErrInvalidRequest))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/uploads/%2e%2e%2fsecret", nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
