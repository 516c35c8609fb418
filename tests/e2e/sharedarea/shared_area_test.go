//go:build e2e

package sharedarea_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"comma-backend/internal/handler/dto/request"
	resdto "comma-backend/internal/handler/dto/response"
	"comma-backend/internal/usecase/queries"
	"comma-backend/tests/common/dbtest"
	"comma-backend/tests/common/httptest"
	"comma-backend/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	checkInURL = "/api/shared-area/checkin"
	staffID    = "29805053344556"
)

type sharedAreaSuite struct {
	e2e.SharedSuite
	token  string
	itemID int64
}

func TestSharedAreaSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(sharedAreaSuite))
}

func (s *sharedAreaSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestEmployee(s.T(), s.DB, staffID, "staff")
	dbtest.CreateTestCustomer(s.T(), s.DB, "CAI-01", "Omar")
	s.itemID = dbtest.CreateTestKitchenItem(s.T(), s.DB, "Mint Tea", 15)
	s.token = s.login(staffID)
}

func (s *sharedAreaSuite) TestCheckInCheckOutFlow() {
	s.Run("vip hourly billing", func() {
		t := s.T()

		view := s.checkIn("CAI-01", "VIP")
		require.Equal(t, "active", view.Status)

		// 90 minutes in the VIP area at 30/hr
		s.backdate(90)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/shared-area/"+view.ID.String()+"/checkout", nil, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var response resdto.SharedAreaCheckOutResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.InDelta(t, 45.0, response.AreaCost, 1e-9)
		require.Equal(t, "checked_out", response.Checkin.Status)
	})

	s.Run("kitchen orders are settled with the stay", func() {
		t := s.T()

		view := s.checkIn("CAI-01", "VIP")

		// one hour in the VIP area at 30/hr plus two teas at 15
		s.backdate(60)

		reqBody := request.SharedAreaCheckOutRequest{
			KitchenOrders: []request.KitchenOrderRequest{{ItemID: s.itemID, Quantity: 2}},
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/shared-area/"+view.ID.String()+"/checkout", reqBody, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var response resdto.SharedAreaCheckOutResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.InDelta(t, 30.0, response.AreaCost, 1e-9)
		require.InDelta(t, 30.0, response.KitchenCost, 1e-9)
		require.NotNil(t, response.Checkin.TotalCost)
		require.InDelta(t, 60.0, *response.Checkin.TotalCost, 1e-9)
	})

	s.Run("long stay flattens to the daily rate", func() {
		t := s.T()

		view := s.checkIn("CAI-01", "General Area")
		s.backdate(8 * 60)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/shared-area/"+view.ID.String()+"/checkout", nil, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var response resdto.SharedAreaCheckOutResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.InDelta(t, 100.0, response.AreaCost, 1e-9)
	})

	s.Run("unknown area type is rejected", func() {
		t := s.T()

		reqBody := request.SharedAreaCheckInRequest{CustomerID: "CAI-01", Type: "Balcony"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkInURL, reqBody, s.token)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("customer cannot hold two active check-ins", func() {
		t := s.T()

		s.checkIn("CAI-01", "VIP")

		reqBody := request.SharedAreaCheckInRequest{CustomerID: "CAI-01", Type: "General Area"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkInURL, reqBody, s.token)
		require.Equal(t, http.StatusConflict, w.Code)
	})
}

func (s *sharedAreaSuite) backdate(minutes int) {
	t := s.T()
	t.Helper()

	ctx := t.Context()
	_, err := s.DB.Exec(ctx,
		"UPDATE shared_area_checkins SET check_in_time = check_in_time - make_interval(mins => $1) WHERE status = 'active'", minutes)
	require.NoError(t, err)
	_, err = s.DB.Exec(ctx,
		"UPDATE active_shared_area_customers SET check_in_time = check_in_time - make_interval(mins => $1)", minutes)
	require.NoError(t, err)
}

func (s *sharedAreaSuite) checkIn(customerID, areaType string) *queries.SharedAreaCheckinView {
	t := s.T()
	t.Helper()

	reqBody := request.SharedAreaCheckInRequest{CustomerID: customerID, Type: areaType}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkInURL, reqBody, s.token)
	require.Equal(t, http.StatusCreated, w.Code, "check-in failed: %s", w.Body.String())

	var response resdto.SharedAreaCheckInResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotNil(t, response.Checkin)
	require.NotEmpty(t, response.ActiveCustomers)
	return response.Checkin
}

func (s *sharedAreaSuite) login(nationalID string) string {
	t := s.T()
	t.Helper()

	reqBody := request.LoginRequest{NationalID: nationalID, Password: dbtest.TestEmployeePassword}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/login", reqBody, "")
	require.Equal(t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())

	var response resdto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response.Token
}
