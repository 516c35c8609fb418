//go:build e2e

package booking_test

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
	checkInURL = "/api/bookings/checkin"
	staffID    = "29805053344556"
	managerID  = "29911220987665"
)

type bookingSuite struct {
	e2e.SharedSuite
	token  string
	itemID int64
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestEmployee(s.T(), s.DB, staffID, "staff")
	dbtest.CreateTestCustomer(s.T(), s.DB, "CAI-01", "Omar")
	dbtest.CreateTestCustomer(s.T(), s.DB, "CAI-02", "Sara")
	dbtest.CreateTestRoom(s.T(), s.DB, "Room A", 100, "hour")
	dbtest.CreateTestRoom(s.T(), s.DB, "Room B", 200, "day")
	s.itemID = dbtest.CreateTestKitchenItem(s.T(), s.DB, "Espresso", 20)
	s.token = s.login(staffID)
}

func (s *bookingSuite) TestCheckInCheckOutFlow() {
	s.Run("hourly stay with kitchen orders and discount", func() {
		t := s.T()

		view := s.checkIn("CAI-01", "Room A")
		require.Equal(t, "active", view.Status)

		// 90 minutes of stay: 3 half-hour units at 100/hr = 150
		dbtest.BackdateCheckIn(t, s.DB, "bookings", 90)

		reqBody := request.CheckOutRequest{
			DiscountPercentage: 0,
			KitchenOrders:      []request.KitchenOrderRequest{{ItemID: s.itemID, Quantity: 1}},
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings/"+view.ID.String()+"/checkout", reqBody, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var response resdto.CheckOutResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.InDelta(t, 150.0, response.RoomCost, 1e-9)
		require.InDelta(t, 20.0, response.KitchenCost, 1e-9)
		require.Equal(t, "checked_out", response.Booking.Status)
		require.NotNil(t, response.Booking.TotalCost)
		require.InDelta(t, 170.0, *response.Booking.TotalCost, 1e-9)
	})

	s.Run("discount is applied to the combined subtotal", func() {
		t := s.T()

		view := s.checkIn("CAI-01", "Room A")
		dbtest.BackdateCheckIn(t, s.DB, "bookings", 60)

		reqBody := request.CheckOutRequest{DiscountPercentage: 50}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings/"+view.ID.String()+"/checkout", reqBody, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var response resdto.CheckOutResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.NotNil(t, response.Booking.TotalCost)
		require.InDelta(t, 50.0, *response.Booking.TotalCost, 1e-9)
	})

	s.Run("daily tariff bills at least one day", func() {
		t := s.T()

		view := s.checkIn("CAI-01", "Room B")
		dbtest.BackdateCheckIn(t, s.DB, "bookings", 120)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings/"+view.ID.String()+"/checkout", request.CheckOutRequest{}, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var response resdto.CheckOutResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.InDelta(t, 200.0, response.RoomCost, 1e-9)
	})

	s.Run("checking out twice conflicts", func() {
		t := s.T()

		view := s.checkIn("CAI-01", "Room A")
		url := "/api/bookings/" + view.ID.String() + "/checkout"

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, request.CheckOutRequest{}, s.token)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, url, request.CheckOutRequest{}, s.token)
		require.Equal(t, http.StatusConflict, w.Code)
	})
}

func (s *bookingSuite) TestOccupancyGuards() {
	s.Run("room occupied by another customer", func() {
		t := s.T()

		s.checkIn("CAI-01", "Room A")

		reqBody := request.CheckInRequest{CustomerID: "CAI-02", Room: "Room A"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkInURL, reqBody, s.token)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("customer already checked in elsewhere", func() {
		t := s.T()

		s.checkIn("CAI-01", "Room A")

		reqBody := request.CheckInRequest{CustomerID: "CAI-01", Room: "Room B"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkInURL, reqBody, s.token)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("unknown room", func() {
		t := s.T()

		reqBody := request.CheckInRequest{CustomerID: "CAI-01", Room: "Room Z"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkInURL, reqBody, s.token)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("unknown customer", func() {
		t := s.T()

		reqBody := request.CheckInRequest{CustomerID: "CAI-99", Room: "Room A"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkInURL, reqBody, s.token)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func (s *bookingSuite) TestCancel() {
	s.Run("cancelling frees the room", func() {
		t := s.T()

		view := s.checkIn("CAI-01", "Room A")

		reqBody := request.CancelRequest{Reason: "customer changed plans"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings/"+view.ID.String()+"/cancel", reqBody, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		// Room must be immediately bookable again
		second := s.checkIn("CAI-02", "Room A")
		require.Equal(t, "active", second.Status)
	})

	s.Run("cancelling a checked-out booking conflicts", func() {
		t := s.T()

		view := s.checkIn("CAI-01", "Room A")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings/"+view.ID.String()+"/checkout", request.CheckOutRequest{}, s.token)
		require.Equal(t, http.StatusOK, w.Code)

		reqBody := request.CancelRequest{Reason: "too late"}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings/"+view.ID.String()+"/cancel", reqBody, s.token)
		require.Equal(t, http.StatusConflict, w.Code)
	})
}

func (s *bookingSuite) TestCustomerDeletionClearsSales() {
	s.Run("deleting a customer removes their kitchen sales too", func() {
		t := s.T()

		dbtest.CreateTestEmployee(t, s.DB, managerID, "manager")
		managerToken := s.login(managerID)

		view := s.checkIn("CAI-01", "Room A")
		reqBody := request.CheckOutRequest{
			KitchenOrders: []request.KitchenOrderRequest{{ItemID: s.itemID, Quantity: 2}},
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings/"+view.ID.String()+"/checkout", reqBody, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, "/api/customers/CAI-01", nil, managerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var sales int
		err := s.DB.QueryRow(t.Context(), "SELECT COUNT(*) FROM kitchen_sales WHERE customer_id = $1", "CAI-01").Scan(&sales)
		require.NoError(t, err)
		require.Zero(t, sales)
	})
}

func (s *bookingSuite) TestActiveRoster() {
	s.Run("check-in response carries the refreshed roster", func() {
		t := s.T()

		reqBody := request.CheckInRequest{CustomerID: "CAI-01", Room: "Room A"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkInURL, reqBody, s.token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var response resdto.CheckInResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.ActiveCustomers, 1)
		require.Equal(t, "CAI-01", response.ActiveCustomers[0].CustomerID)
	})

	s.Run("active customers show up with their room", func() {
		t := s.T()

		s.checkIn("CAI-01", "Room A")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/bookings/active", nil, s.token)
		require.Equal(t, http.StatusOK, w.Code)

		var roster []*queries.ActiveCustomerView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &roster))
		require.Len(t, roster, 1)
		require.Equal(t, "CAI-01", roster[0].CustomerID)
		require.NotNil(t, roster[0].Room)
		require.Equal(t, "Room A", *roster[0].Room)
	})
}

func (s *bookingSuite) checkIn(customerID, room string) *queries.BookingView {
	t := s.T()
	t.Helper()

	reqBody := request.CheckInRequest{CustomerID: customerID, Room: room}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkInURL, reqBody, s.token)
	require.Equal(t, http.StatusCreated, w.Code, "check-in failed: %s", w.Body.String())

	var response resdto.CheckInResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotNil(t, response.Booking)
	return response.Booking
}

func (s *bookingSuite) login(nationalID string) string {
	t := s.T()
	t.Helper()

	reqBody := request.LoginRequest{NationalID: nationalID, Password: dbtest.TestEmployeePassword}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/login", reqBody, "")
	require.Equal(t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())

	var response resdto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response.Token
}
