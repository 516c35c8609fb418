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

type EmployeeHandler struct {
	employeeUseCase commands.EmployeeCommands
	employeeQueries queries.EmployeeQueries
}

func NewEmployeeHandler(employeeUseCase commands.EmployeeCommands, employeeQueries queries.EmployeeQueries) *EmployeeHandler {
	return &EmployeeHandler{
		employeeUseCase: employeeUseCase,
		employeeQueries: employeeQueries,
	}
}

// @Summary Create an employee
// @Tags employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateEmployeeRequest true "Employee data"
// @Success 201 {object} map[string]int64
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /employees [post]
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req reqdto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.employeeUseCase.Create(c.Request.Context(), commands.CreateEmployeeInput{
		Name:       req.Name,
		Password:   req.Password,
		Role:       req.Role,
		NationalID: req.NationalID,
		Branch:     req.Branch,
		Age:        req.Age,
		Faculty:    req.Faculty,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDuplicateNationalID):
			httperr.AbortWithError(c, http.StatusConflict, err, "National ID already exists", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// @Summary Update an employee
// @Tags employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Employee ID"
// @Param request body reqdto.UpdateEmployeeRequest true "Employee data"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /employees/{id} [put]
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid employee ID format", nil)
		return
	}

	var req reqdto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	err = h.employeeUseCase.Update(c.Request.Context(), commands.UpdateEmployeeInput{
		ID:         id,
		Name:       req.Name,
		Role:       req.Role,
		NationalID: req.NationalID,
		Branch:     req.Branch,
		Age:        req.Age,
		Faculty:    req.Faculty,
		Password:   req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrEmployeeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Employee not found", nil)
		case errors.Is(err, errs.ErrDuplicateNationalID):
			httperr.AbortWithError(c, http.StatusConflict, err, "National ID already exists", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Employee updated"})
}

// @Summary Delete an employee
// @Tags employees
// @Produce json
// @Security BearerAuth
// @Param id path int true "Employee ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid employee ID format", nil)
		return
	}

	if err := h.employeeUseCase.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, errs.ErrEmployeeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Employee not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Employee deleted"})
}

// @Summary List employees
// @Tags employees
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.EmployeeView
// @Router /employees [get]
func (h *EmployeeHandler) List(c *gin.Context) {
	views, err := h.employeeQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Count employees
// @Tags employees
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CountResponse
// @Router /employees/count [get]
func (h *EmployeeHandler) Count(c *gin.Context) {
	count, err := h.employeeQueries.Count(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.CountResponse{Count: count})
}
