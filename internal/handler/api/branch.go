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
)

type BranchHandler struct {
	branchUseCase commands.BranchCommands
	branchQueries queries.BranchQueries
}

func NewBranchHandler(branchUseCase commands.BranchCommands, branchQueries queries.BranchQueries) *BranchHandler {
	return &BranchHandler{
		branchUseCase: branchUseCase,
		branchQueries: branchQueries,
	}
}

// @Summary Create a branch
// @Tags branches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BranchRequest true "Branch data"
// @Success 201 {object} queries.BranchView
// @Failure 400 {object} httperr.Response
// @Router /branches [post]
func (h *BranchHandler) Create(c *gin.Context) {
	var req reqdto.BranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.branchUseCase.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusCreated, view)
}

// @Summary Update a branch
// @Tags branches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Branch ID"
// @Param request body reqdto.BranchRequest true "Branch data"
// @Success 200 {object} queries.BranchView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /branches/{id} [put]
func (h *BranchHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid branch ID format", nil)
		return
	}

	var req reqdto.BranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.branchUseCase.Update(c.Request.Context(), id, req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBranchNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Branch not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Delete a branch
// @Tags branches
// @Produce json
// @Security BearerAuth
// @Param id path int true "Branch ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /branches/{id} [delete]
func (h *BranchHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid branch ID format", nil)
		return
	}

	if err := h.branchUseCase.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, errs.ErrBranchNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Branch not found", nil)
		case errors.Is(err, errs.ErrBranchInUse):
			httperr.AbortWithError(c, http.StatusConflict, err, "Branch still has rooms or employees", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Branch deleted"})
}

// @Summary List branches
// @Tags branches
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.BranchView
// @Router /branches [get]
func (h *BranchHandler) List(c *gin.Context) {
	views, err := h.branchQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Get branch
// @Tags branches
// @Produce json
// @Security BearerAuth
// @Param id path int true "Branch ID"
// @Success 200 {object} queries.BranchView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /branches/{id} [get]
func (h *BranchHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid branch ID format", nil)
		return
	}

	view, err := h.branchQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBranchNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Branch not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, view)
}
