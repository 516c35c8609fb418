package api

import (
	"errors"
	"net/http"

	reqdto "comma-backend/internal/handler/dto/request"
	resdto "comma-backend/internal/handler/dto/response"
	"comma-backend/internal/handler/httperr"
	"comma-backend/internal/pkg/errs"
	"comma-backend/internal/usecase/commands"
	"comma-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingUseCase commands.BookingCommands
	bookingQueries queries.BookingQueries
}

func NewBookingHandler(bookingUseCase commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
		bookingQueries: bookingQueries,
	}
}

// @Summary Check in a customer to a room
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CheckInRequest true "Check-in request"
// @Success 201 {object} resdto.CheckInResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/checkin [post]
func (h *BookingHandler) CheckIn(c *gin.Context) {
	var req reqdto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.bookingUseCase.CheckIn(c.Request.Context(), commands.CheckInInput{
		CustomerID: req.CustomerID,
		RoomName:   req.Room,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrCustomerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found", nil)
		case errors.Is(err, errs.ErrRoomNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
		case errors.Is(err, errs.ErrRoomOccupied):
			httperr.AbortWithError(c, http.StatusConflict, err, "Room is currently occupied", nil)
		case errors.Is(err, errs.ErrCustomerAlreadyActive):
			httperr.AbortWithError(c, http.StatusConflict, err, "Customer already has an active session", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	active, err := h.bookingQueries.ActiveCustomers(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.CheckInResponse{Booking: view, ActiveCustomers: active})
}

// @Summary Check out a booking
// @Description Settle room time and kitchen orders, apply the discount
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.CheckOutRequest true "Check-out request"
// @Success 200 {object} resdto.CheckOutResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/checkout [post]
func (h *BookingHandler) CheckOut(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	var req reqdto.CheckOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.bookingUseCase.CheckOut(c.Request.Context(), commands.CheckOutInput{
		BookingID:          id,
		DiscountPercentage: req.DiscountPercentage,
		KitchenOrders:      req.ToOrders(),
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, errs.ErrSessionNotActive):
			httperr.AbortWithError(c, http.StatusConflict, err, "Booking is not active", nil)
		case errors.Is(err, errs.ErrInvalidDiscount):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid discount percentage", nil)
		case errors.Is(err, errs.ErrInvalidQuantity):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Kitchen item quantity must be positive", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCheckOutResult(result))
}

// @Summary Cancel a booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.CancelRequest true "Cancellation reason"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	var req reqdto.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.bookingUseCase.Cancel(c.Request.Context(), id, req.Reason); err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, errs.ErrSessionNotActive):
			httperr.AbortWithError(c, http.StatusConflict, err, "Booking is not active", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Booking cancelled"})
}

// @Summary List bookings
// @Description Active bookings first, newest check-in first within each group
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.BookingView
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	views, err := h.bookingQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} queries.BookingView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary List active room customers
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.ActiveCustomerView
// @Router /bookings/active [get]
func (h *BookingHandler) ActiveCustomers(c *gin.Context) {
	views, err := h.bookingQueries.ActiveCustomers(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, views)
}
