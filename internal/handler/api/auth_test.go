//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"comma-backend/internal/handler/api"
	resdto "comma-backend/internal/handler/dto/response"
	"comma-backend/internal/pkg/errs"
	"comma-backend/internal/usecase/commands"
	"comma-backend/tests/common/httptest"
	commandsmock "comma-backend/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands)

	s.router.POST("/auth/login", s.handler.Login)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := map[string]any{"national_id": "29901011234567", "password": "secret-pass"}

	s.Run("success: returns 200 OK with a token", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), "29901011234567", "secret-pass").
			Return(&commands.LoginResult{
				Token:      "signed-jwt",
				EmployeeID: 7,
				Name:       "Sara",
				Role:       "manager",
				Branch:     "Cairo",
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("signed-jwt", response.Token)
		s.Equal(int64(7), response.EmployeeID)
		s.Equal("manager", response.Role)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name string
			body map[string]any
		}{
			{name: "missing national_id", body: map[string]any{"password": "secret-pass"}},
			{name: "missing password", body: map[string]any{"national_id": "29901011234567"}},
			{name: "empty national_id", body: map[string]any{"national_id": "", "password": "secret-pass"}},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, tc.body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid credentials",
				commandsError:  errs.ErrInvalidCredentials,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Invalid credentials",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Login(gomock.Any(), "29901011234567", "secret-pass").
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
