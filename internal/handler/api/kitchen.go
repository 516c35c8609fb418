package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "comma-backend/internal/handler/dto/request"
	resdto "comma-backend/internal/handler/dto/response"
	"comma-backend/internal/handler/httperr"
	"comma-backend/internal/pkg/errs"
	"comma-backend/internal/usecase/commands"
	"comma-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type KitchenHandler struct {
	itemUseCase commands.KitchenItemCommands
	saleUseCase commands.KitchenSaleCommands
	itemQueries queries.KitchenItemQueries
	saleQueries queries.KitchenSaleQueries
}

func NewKitchenHandler(
	itemUseCase commands.KitchenItemCommands,
	saleUseCase commands.KitchenSaleCommands,
	itemQueries queries.KitchenItemQueries,
	saleQueries queries.KitchenSaleQueries,
) *KitchenHandler {
	return &KitchenHandler{
		itemUseCase: itemUseCase,
		saleUseCase: saleUseCase,
		itemQueries: itemQueries,
		saleQueries: saleQueries,
	}
}

// @Summary Create a kitchen item
// @Tags kitchen
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.KitchenItemRequest true "Item data"
// @Success 201 {object} queries.KitchenItemView
// @Failure 400 {object} httperr.Response
// @Router /kitchen/items [post]
func (h *KitchenHandler) CreateItem(c *gin.Context) {
	var req reqdto.KitchenItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.itemUseCase.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, view)
}

// @Summary Update a kitchen item
// @Tags kitchen
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Param request body reqdto.KitchenItemRequest true "Item data"
// @Success 200 {object} queries.KitchenItemView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /kitchen/items/{id} [put]
func (h *KitchenHandler) UpdateItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item ID format", nil)
		return
	}

	var req reqdto.KitchenItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.itemUseCase.Update(c.Request.Context(), id, req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrKitchenItemNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Kitchen item not found", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Delete a kitchen item
// @Tags kitchen
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /kitchen/items/{id} [delete]
func (h *KitchenHandler) DeleteItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item ID format", nil)
		return
	}

	if err := h.itemUseCase.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, errs.ErrKitchenItemNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Kitchen item not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Kitchen item deleted"})
}

// @Summary List kitchen items
// @Tags kitchen
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.KitchenItemView
// @Router /kitchen/items [get]
func (h *KitchenHandler) ListItems(c *gin.Context) {
	views, err := h.itemQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Import kitchen items from a spreadsheet
// @Tags kitchen
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Spreadsheet file"
// @Success 200 {object} resdto.ImportResponse
// @Failure 400 {object} httperr.Response
// @Router /kitchen/items/import [post]
func (h *KitchenHandler) ImportItems(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Spreadsheet file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Failed to read uploaded file", nil)
		return
	}
	defer func() { _ = file.Close() }()

	result, err := h.itemUseCase.ImportExcel(c.Request.Context(), file)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEmptyImportFile):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Import file has no data rows", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.ImportResponse{Imported: result.Imported, Skipped: result.Skipped})
}

// @Summary Record a kitchen sale
// @Description Requires an active booking on the room
// @Tags kitchen
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateKitchenSaleRequest true "Sale data"
// @Success 201 {object} queries.KitchenSaleView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /kitchen/sales [post]
func (h *KitchenHandler) CreateSale(c *gin.Context) {
	var req reqdto.CreateKitchenSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.saleUseCase.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNoActiveBooking):
			httperr.AbortWithError(c, http.StatusConflict, err, "No active booking for this room", nil)
		case errors.Is(err, errs.ErrKitchenItemNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Kitchen item not found", nil)
		case errors.Is(err, errs.ErrInvalidQuantity):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Kitchen item quantity must be positive", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, view)
}

// @Summary List kitchen sales
// @Tags kitchen
// @Produce json
// @Security BearerAuth
// @Param room_id query int false "Filter by room ID"
// @Success 200 {array} queries.KitchenSaleView
// @Router /kitchen/sales [get]
func (h *KitchenHandler) ListSales(c *gin.Context) {
	var (
		views []*queries.KitchenSaleView
		err   error
	)
	if roomIDStr := c.Query("room_id"); roomIDStr != "" {
		roomID, parseErr := strconv.ParseInt(roomIDStr, 10, 64)
		if parseErr != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, parseErr, "Invalid room ID format", nil)
			return
		}
		views, err = h.saleQueries.ListByRoom(c.Request.Context(), roomID)
	} else {
		views, err = h.saleQueries.List(c.Request.Context())
	}
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Get kitchen sale
// @Tags kitchen
// @Produce json
// @Security BearerAuth
// @Param id path string true "Sale ID"
// @Success 200 {object} queries.KitchenSaleView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /kitchen/sales/{id} [get]
func (h *KitchenHandler) GetSale(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid sale ID format", nil)
		return
	}

	view, err := h.saleQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrSaleNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Sale not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, view)
}
