//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"comma-backend/internal/handler/api"
	resdto "comma-backend/internal/handler/dto/response"
	"comma-backend/internal/pkg/errs"
	"comma-backend/internal/usecase/commands"
	"comma-backend/internal/usecase/queries"
	"comma-backend/tests/common/httptest"
	commandsmock "comma-backend/tests/mock/commands"
	queriesmock "comma-backend/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/bookings", s.handler.List)
	s.router.GET("/bookings/active", s.handler.ActiveCustomers)
	s.router.GET("/bookings/:id", s.handler.Get)
	s.router.POST("/bookings/checkin", s.handler.CheckIn)
	s.router.POST("/bookings/:id/checkout", s.handler.CheckOut)
	s.router.POST("/bookings/:id/cancel", s.handler.Cancel)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func sampleBookingView() *queries.BookingView {
	name := "Omar"
	return &queries.BookingView{
		ID:           uuid.New(),
		CustomerID:   "CAI-01",
		CustomerName: &name,
		Room:         "Room A",
		CheckInTime:  time.Now().Add(-time.Hour),
		Status:       "active",
	}
}

func (s *BookingHandlerTestSuite) TestCheckIn() {
	url := "/bookings/checkin"
	reqBody := map[string]any{"customer_id": "CAI-01", "room": "Room A"}
	view := sampleBookingView()

	s.Run("success: returns 201 Created with the refreshed roster", func() {
		room := "Room A"
		roster := []*queries.ActiveCustomerView{
			{CustomerID: "CAI-01", Name: "Omar", CheckInTime: time.Now(), Room: &room},
		}
		s.mockCommands.EXPECT().
			CheckIn(gomock.Any(), commands.CheckInInput{CustomerID: "CAI-01", RoomName: "Room A"}).
			Return(view, nil).Times(1)
		s.mockQueries.EXPECT().ActiveCustomers(gomock.Any()).Return(roster, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CheckInResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.Booking.ID)
		s.Equal("Room A", response.Booking.Room)
		s.Require().Len(response.ActiveCustomers, 1)
		s.Equal("CAI-01", response.ActiveCustomers[0].CustomerID)
	})

	s.Run("error: 400 Bad Request on missing fields", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"room": "Room A"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "customer not found", commandsError: errs.ErrCustomerNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Customer not found"},
			{name: "room not found", commandsError: errs.ErrRoomNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Room not found"},
			{name: "room occupied", commandsError: errs.ErrRoomOccupied, expectedStatus: http.StatusConflict, expectedMsg: "Room is currently occupied"},
			{name: "customer already active", commandsError: errs.ErrCustomerAlreadyActive, expectedStatus: http.StatusConflict, expectedMsg: "Customer already has an active session"},
			{name: "internal error", commandsError: errors.New("boom"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CheckIn(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestCheckOut() {
	id := uuid.New()
	url := "/bookings/" + id.String() + "/checkout"
	reqBody := map[string]any{
		"discount_percentage": 10,
		"kitchen_orders":      []map[string]any{{"item_id": 1, "quantity": 2}},
	}

	s.Run("success: returns 200 OK with the bill breakdown", func() {
		view := sampleBookingView()
		s.mockCommands.EXPECT().
			CheckOut(gomock.Any(), commands.CheckOutInput{
				BookingID:          id,
				DiscountPercentage: 10,
				KitchenOrders:      []commands.KitchenOrderLine{{ItemID: 1, Quantity: 2}},
			}).
			Return(&commands.CheckOutResult{
				Booking:      view,
				RoomCost:     150,
				KitchenCost:  40,
				TotalMinutes: 90,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CheckOutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.InDelta(150.0, response.RoomCost, 1e-9)
		s.InDelta(40.0, response.KitchenCost, 1e-9)
		s.Equal(int32(90), response.TotalMinutes)
	})

	s.Run("error: 400 Bad Request on malformed booking id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/not-a-uuid/checkout", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "booking not found", commandsError: errs.ErrBookingNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Booking not found"},
			{name: "already checked out", commandsError: errs.ErrSessionNotActive, expectedStatus: http.StatusConflict, expectedMsg: "Booking is not active"},
			{name: "invalid discount", commandsError: errs.ErrInvalidDiscount, expectedStatus: http.StatusBadRequest, expectedMsg: "Invalid discount percentage"},
			{name: "non-positive quantity", commandsError: errs.ErrInvalidQuantity, expectedStatus: http.StatusBadRequest, expectedMsg: "quantity must be positive"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CheckOut(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestCancel() {
	id := uuid.New()
	url := "/bookings/" + id.String() + "/cancel"
	reqBody := map[string]any{"reason": "customer changed plans"}

	s.Run("success: returns 200 OK", func() {
		s.mockCommands.EXPECT().
			Cancel(gomock.Any(), id, "customer changed plans").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Booking cancelled", response.Message)
	})

	s.Run("error: 400 Bad Request when reason is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 409 Conflict when the booking is already closed", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id, "customer changed plans").
			Return(errs.ErrSessionNotActive).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Booking is not active")
	})
}

func (s *BookingHandlerTestSuite) TestList() {
	s.Run("success: returns all bookings", func() {
		views := []*queries.BookingView{sampleBookingView(), sampleBookingView()}
		s.mockQueries.EXPECT().List(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "")

		var response []*queries.BookingView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})
}

func (s *BookingHandlerTestSuite) TestGet() {
	view := sampleBookingView()

	s.Run("success: returns the booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "")

		var response queries.BookingView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
	})

	s.Run("error: 404 Not Found for unknown id", func() {
		unknown := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), unknown).Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+unknown.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestActiveCustomers() {
	s.Run("success: returns the active roster", func() {
		room := "Room A"
		views := []*queries.ActiveCustomerView{
			{CustomerID: "CAI-01", Name: "Omar", CheckInTime: time.Now(), Room: &room},
		}
		s.mockQueries.EXPECT().ActiveCustomers(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/active", nil, "")

		var response []*queries.ActiveCustomerView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal("CAI-01", response[0].CustomerID)
	})
}
