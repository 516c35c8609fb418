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
)

type CustomerHandler struct {
	customerUseCase commands.CustomerCommands
	customerQueries queries.CustomerQueries
}

func NewCustomerHandler(customerUseCase commands.CustomerCommands, customerQueries queries.CustomerQueries) *CustomerHandler {
	return &CustomerHandler{
		customerUseCase: customerUseCase,
		customerQueries: customerQueries,
	}
}

// @Summary Register a customer
// @Description Assigns the next branch-prefixed customer code
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCustomerRequest true "Customer data"
// @Success 201 {object} queries.CustomerView
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var req reqdto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.customerUseCase.Create(c.Request.Context(), commands.CreateCustomerInput{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		NationalID: req.NationalID,
		Branch:     req.Branch,
	})
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

// @Summary Update a customer
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer code"
// @Param request body reqdto.UpdateCustomerRequest true "Customer data"
// @Success 200 {object} queries.CustomerView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /customers/{id} [put]
func (h *CustomerHandler) Update(c *gin.Context) {
	var req reqdto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.customerUseCase.Update(c.Request.Context(), commands.UpdateCustomerInput{
		ID:         c.Param("id"),
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		NationalID: req.NationalID,
		Warnings:   req.Warnings,
		IsActive:   req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrCustomerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Delete a customer
// @Description Removes the customer with their session history
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer code"
// @Success 200 {object} resdto.MessageResponse
// @Failure 404 {object} httperr.Response
// @Router /customers/{id} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
	if err := h.customerUseCase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		switch {
		case errors.Is(err, errs.ErrCustomerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Customer deleted"})
}

// @Summary List customers
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.CustomerView
// @Router /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	views, err := h.customerQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Get customer
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer code"
// @Success 200 {object} queries.CustomerView
// @Failure 404 {object} httperr.Response
// @Router /customers/{id} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
	view, err := h.customerQueries.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrCustomerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Import customers from a spreadsheet
// @Description Multipart upload; first sheet, columns name, phone, email
// @Tags customers
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param branch formData string true "Branch name for code prefixes"
// @Param file formData file true "Spreadsheet file"
// @Success 200 {object} resdto.ImportResponse
// @Failure 400 {object} httperr.Response
// @Router /customers/import [post]
func (h *CustomerHandler) ImportExcel(c *gin.Context) {
	branch := c.PostForm("branch")
	if branch == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("branch is required"), "Branch is required", nil)
		return
	}

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

	result, err := h.customerUseCase.ImportExcel(c.Request.Context(), branch, file)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEmptyImportFile):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Import file has no data rows", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.ImportResponse{Imported: result.Imported, Skipped: result.Skipped})
}
