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

type SharedAreaHandler struct {
	sharedAreaUseCase commands.SharedAreaCommands
	sharedAreaQueries queries.SharedAreaQueries
}

func NewSharedAreaHandler(sharedAreaUseCase commands.SharedAreaCommands, sharedAreaQueries queries.SharedAreaQueries) *SharedAreaHandler {
	return &SharedAreaHandler{
		sharedAreaUseCase: sharedAreaUseCase,
		sharedAreaQueries: sharedAreaQueries,
	}
}

// @Summary Check in a customer to a shared area
// @Tags shared-area
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SharedAreaCheckInRequest true "Check-in request"
// @Success 201 {object} resdto.SharedAreaCheckInResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /shared-area/checkin [post]
func (h *SharedAreaHandler) CheckIn(c *gin.Context) {
	var req reqdto.SharedAreaCheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.sharedAreaUseCase.CheckIn(c.Request.Context(), commands.SharedAreaCheckInInput{
		CustomerID: req.CustomerID,
		AreaType:   req.Type,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUnknownAreaType):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown shared area type", nil)
		case errors.Is(err, errs.ErrCustomerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found", nil)
		case errors.Is(err, errs.ErrCustomerAlreadyActive):
			httperr.AbortWithError(c, http.StatusConflict, err, "Customer already has an active session", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	active, err := h.sharedAreaQueries.ActiveCustomers(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.SharedAreaCheckInResponse{Checkin: view, ActiveCustomers: active})
}

// @Summary Check out a shared area session
// @Tags shared-area
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Check-in ID"
// @Param request body reqdto.SharedAreaCheckOutRequest false "Kitchen orders to settle with the stay"
// @Success 200 {object} resdto.SharedAreaCheckOutResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /shared-area/{id}/checkout [post]
func (h *SharedAreaHandler) CheckOut(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid check-in ID format", nil)
		return
	}

	var req reqdto.SharedAreaCheckOutRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
			return
		}
	}

	result, err := h.sharedAreaUseCase.CheckOut(c.Request.Context(), commands.SharedAreaCheckOutInput{
		CheckinID:     id,
		KitchenOrders: req.ToOrders(),
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrCheckinNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Check-in not found", nil)
		case errors.Is(err, errs.ErrSessionNotActive):
			httperr.AbortWithError(c, http.StatusConflict, err, "Check-in is not active", nil)
		case errors.Is(err, errs.ErrUnknownAreaType):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown shared area type", nil)
		case errors.Is(err, errs.ErrInvalidQuantity):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Quantity must be positive", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSharedAreaCheckOutResult(result))
}

// @Summary Cancel a shared area session
// @Tags shared-area
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Check-in ID"
// @Param request body reqdto.CancelRequest true "Cancellation reason"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /shared-area/{id}/cancel [post]
func (h *SharedAreaHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid check-in ID format", nil)
		return
	}

	var req reqdto.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.sharedAreaUseCase.Cancel(c.Request.Context(), id, req.Reason); err != nil {
		switch {
		case errors.Is(err, errs.ErrCheckinNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Check-in not found", nil)
		case errors.Is(err, errs.ErrSessionNotActive):
			httperr.AbortWithError(c, http.StatusConflict, err, "Check-in is not active", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Check-in cancelled"})
}

// @Summary List shared area check-ins
// @Tags shared-area
// @Produce json
// @Security BearerAuth
// @Param type query string false "Filter by area type"
// @Success 200 {array} queries.SharedAreaCheckinView
// @Router /shared-area [get]
func (h *SharedAreaHandler) List(c *gin.Context) {
	var (
		views []*queries.SharedAreaCheckinView
		err   error
	)
	if areaType := c.Query("type"); areaType != "" {
		views, err = h.sharedAreaQueries.ListByType(c.Request.Context(), areaType)
	} else {
		views, err = h.sharedAreaQueries.List(c.Request.Context())
	}
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Get shared area check-in
// @Tags shared-area
// @Produce json
// @Security BearerAuth
// @Param id path string true "Check-in ID"
// @Success 200 {object} queries.SharedAreaCheckinView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /shared-area/{id} [get]
func (h *SharedAreaHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid check-in ID format", nil)
		return
	}

	view, err := h.sharedAreaQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrCheckinNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Check-in not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary List active shared area customers
// @Tags shared-area
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.ActiveCustomerView
// @Router /shared-area/active [get]
func (h *SharedAreaHandler) ActiveCustomers(c *gin.Context) {
	views, err := h.sharedAreaQueries.ActiveCustomers(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, views)
}
