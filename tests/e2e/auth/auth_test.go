//go:build e2e

package auth_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"comma-backend/internal/handler/dto/request"
	resdto "comma-backend/internal/handler/dto/response"
	"comma-backend/tests/common/dbtest"
	"comma-backend/tests/common/httptest"
	"comma-backend/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const loginURL = "/api/auth/login"

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestEmployee(s.T(), s.DB, "29901011234567", "admin")
	dbtest.CreateTestEmployee(s.T(), s.DB, "29805053344556", "staff")
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		nationalID     string
		password       string
		expectedStatus int
	}{
		{
			name:           "valid credentials",
			nationalID:     "29901011234567",
			password:       dbtest.TestEmployeePassword,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown national id",
			nationalID:     "00000000000000",
			password:       dbtest.TestEmployeePassword,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong password",
			nationalID:     "29901011234567",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "empty national id",
			nationalID:     "",
			password:       dbtest.TestEmployeePassword,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty password",
			nationalID:     "29901011234567",
			password:       "",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{
				NationalID: tt.nationalID,
				Password:   tt.password,
			}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var response resdto.LoginResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				require.NotEmpty(t, response.Token)
				require.Equal(t, "admin", response.Role)
				require.Equal(t, dbtest.SeedBranchName, response.Branch)
			}
		})
	}
}

func (s *authSuite) TestTokenGuardsRoutes() {
	s.Run("request without a token is rejected", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/bookings", nil, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})

	s.Run("staff cannot reach admin-only routes", func() {
		token := s.login("29805053344556")
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/employees", nil, token)
		require.Equal(s.T(), http.StatusForbidden, w.Code)
	})

	s.Run("admin can reach admin-only routes", func() {
		token := s.login("29901011234567")
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/employees", nil, token)
		require.Equal(s.T(), http.StatusOK, w.Code)
	})
}

func (s *authSuite) login(nationalID string) string {
	t := s.T()
	t.Helper()

	reqBody := request.LoginRequest{NationalID: nationalID, Password: dbtest.TestEmployeePassword}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
	require.Equal(t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())

	var response resdto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response.Token
}
