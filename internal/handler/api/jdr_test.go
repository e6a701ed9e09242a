//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/romainbeka/dashboardsteph/internal/domain/jdr"
	"github.com/romainbeka/dashboardsteph/internal/handler/api"
	resdto "github.com/romainbeka/dashboardsteph/internal/handler/dto/response"
	"github.com/romainbeka/dashboardsteph/internal/pkg/errs"
	"github.com/romainbeka/dashboardsteph/internal/usecase/commands"
	"github.com/romainbeka/dashboardsteph/tests/common/builder"
	"github.com/romainbeka/dashboardsteph/tests/common/httptest"
	"github.com/romainbeka/dashboardsteph/tests/common/testutil"
	commandsmock "github.com/romainbeka/dashboardsteph/tests/mock/commands"
	queriesmock "github.com/romainbeka/dashboardsteph/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type JDRHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockJDRCommands
	mockQueries  *queriesmock.MockJDRQueries
	handler      *api.JDRHandler
}

func (s *JDRHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockJDRCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockJDRQueries(s.mockCtrl)
	s.handler = api.NewJDRHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/jdr", s.handler.List)
	s.router.POST("/jdr", s.handler.Create)
	s.router.DELETE("/jdr", s.handler.Delete)
	s.router.GET("/jdr/audit", s.handler.Audit)
}

func (s *JDRHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestJDRHandlerSuite(t *testing.T) {
	suite.Run(t, new(JDRHandlerTestSuite))
}

type testCaseJDR struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
	expectMsg  string
}

// ================================================================================
// TestList
// ================================================================================

func (s *JDRHandlerTestSuite) TestList() {
	s.Run("success: returns the stored collection", func() {
		stored := []jdr.JDR{
			builder.NewJDRBuilder().WithID(1).WithName("A").BuildDomain(),
			builder.NewJDRBuilder().WithID(2).WithName("B").BuildDomain(),
		}
		s.mockQueries.EXPECT().List(gomock.Any()).Return(stored, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/jdr", nil)

		var body []jdr.JDR
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(stored, body)
	})

	s.Run("success: empty collection is an empty array", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/jdr", nil)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("error: storage failure is a 500", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return(nil, errs.Mark(fmt.Errorf("read failed"), errs.ErrStorageUnavailable))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/jdr", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to load catalog")
	})
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *JDRHandlerTestSuite) TestCreate() {
	url := "/jdr"
	b := builder.NewJDRBuilder().WithAssociated("Écran")
	form := b.BuildForm()
	created := b.WithID(12).BuildDomain()

	s.Run("success: returns message and new entry", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), b.BuildDraft(), (*commands.ImageUpload)(nil)).
			Return(&created, nil).Times(1)

		rec := httptest.PerformMultipart(s.T(), s.router, http.MethodPost, url, form)

		var body resdto.CreateJDRResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Ajouté avec succès", body.Message)
		s.Equal(created, body.NewEntry)
	})

	s.Run("success: image is forwarded to the command", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), &commands.ImageUpload{Filename: "cover.png", Data: []byte("png")}).
			Return(&created, nil).Times(1)

		rec := httptest.PerformMultipart(s.T(), s.router, http.MethodPost, url, form,
			httptest.FormFile{Field: "image", Filename: "cover.png", Data: []byte("png")})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: second image reports the duplicate, not missing data", func() {
		rec := httptest.PerformMultipart(s.T(), s.router, http.MethodPost, url, form,
			httptest.FormFile{Field: "image", Filename: "a.png", Data: []byte("a")},
			httptest.FormFile{Field: "image", Filename: "b.png", Data: []byte("b")})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "only one image may be uploaded")
	})

	s.Run("error: 400 when no form data is sent", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Aucune donnée reçue.")
	})

	s.Run("error: 400 on invalid fields", func() {
		cases := []testCaseJDR{
			{name: "missing name", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest, expectMsg: "malformed form field"},
			{name: "price as text", mutate: testutil.Field("price", "gratuit"), expectCode: http.StatusBadRequest, expectMsg: `field "price": expected a number`},
			{name: "negative pages", mutate: testutil.Field("pages", -3), expectCode: http.StatusBadRequest, expectMsg: "malformed form field"},
			{name: "unknown theme", mutate: testutil.Field("theme", "Western"), expectCode: http.StatusBadRequest, expectMsg: "malformed form field"},
			{name: "unknown field", mutate: testutil.Field("editor", "X"), expectCode: http.StatusBadRequest, expectMsg: `"editor": unknown form field`},
			{name: "zero price allowed", mutate: testutil.Field("price", 0), expectCode: http.StatusOK},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				if tc.expectCode == http.StatusOK {
					s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
						Return(&created, nil).Times(1)
				}
				rec := httptest.PerformMultipart(s.T(), s.router, http.MethodPost, url, testutil.FormMap(s.T(), form, tc.mutate))
				if tc.expectCode == http.StatusOK {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					msg := httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
					s.NotEqual("Aucune donnée reçue.", msg)
				}
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "domain validation error",
				commandsError:  jdr.ErrNameRequired,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "jdr name is required",
			},
			{
				name:           "write failure",
				commandsError:  errs.Mark(fmt.Errorf("disk full"), errs.ErrWriteFailure),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Failed to create entry",
			},
			{
				name:           "unexpected error",
				commandsError:  fmt.Errorf("boom"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Failed to create entry",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformMultipart(s.T(), s.router, http.MethodPost, url, form)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *JDRHandlerTestSuite) TestDelete() {
	s.Run("success: returns success true", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), 3).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/jdr?id=3", nil)

		var body resdto.DeleteJDRResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Success)
	})

	s.Run("error: 400 when id is not an integer", func() {
		for _, path := range []string{"/jdr", "/jdr?id=", "/jdr?id=abc", "/jdr?id=1.5"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, path, nil)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
		}
	})

	s.Run("error: 404 when no record has the id", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), 99).
			Return(errs.Wrapf(jdr.ErrJDRNotFound, "id %d", 99)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/jdr?id=99", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "JDR not found")
	})

	s.Run("error: 500 when the save fails", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), 1).
			Return(errs.Mark(fmt.Errorf("rename failed"), errs.ErrWriteFailure)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/jdr?id=1", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to delete entry")
	})
}

// ================================================================================
// TestAudit
// ================================================================================

func (s *JDRHandlerTestSuite) TestAudit() {
	s.Run("success: consistent catalog", func() {
		s.mockQueries.EXPECT().RelationAudit(gomock.Any()).Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/jdr/audit", nil)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"consistent":true,"findings":[]}`, rec.Body.String())
	})

	s.Run("success: findings are listed", func() {
		finding := jdr.Finding{RecordID: 1, RecordName: "A", Reference: "Ghost", Kind: jdr.FindingDangling}
		s.mockQueries.EXPECT().RelationAudit(gomock.Any()).Return([]jdr.Finding{finding}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/jdr/audit", nil)

		var body resdto.RelationAuditResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Consistent)
		s.Equal([]jdr.Finding{finding}, body.Findings)
	})
}
