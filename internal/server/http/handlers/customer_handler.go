package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/customersystem/internal/domain/errors"
	"github.com/polkiloo/customersystem/internal/server/http/dto"
)

// CustomerHandler manages customer CRUD endpoints.
type CustomerHandler struct {
	facade CustomerFacade
}

// NewCustomerHandler constructs CustomerHandler.
func NewCustomerHandler(facade CustomerFacade) *CustomerHandler {
	registerValidators()
	return &CustomerHandler{facade: facade}
}

// List handles GET /customers.
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.facade.Customers(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, dto.Failure("Failed to fetch customers"))
		return
	}
	c.JSON(http.StatusOK, dto.NewCustomerListResponse(customers))
}

// Create handles POST /customers.
func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Failure(validationMessage(err)))
		return
	}
	customer, err := req.ToModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Failure(err.Error()))
		return
	}

	result, err := h.facade.CreateCustomer(c.Request.Context(), customer)
	if err != nil {
		h.fail(c, err, "Failed to create customer")
		return
	}
	c.JSON(http.StatusCreated, dto.NewMutationResponse(result))
}

// Delete handles DELETE /customers/:id. Deleting an absent id is not an error.
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		return
	}

	result, err := h.facade.DeleteCustomer(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Failed to delete customer")
		return
	}
	c.JSON(http.StatusOK, dto.NewMutationResponse(result))
}

// Update handles PUT /customers/:id, replacing every mutable field.
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		return
	}
	var req dto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Failure(validationMessage(err)))
		return
	}
	customer, err := req.ToModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Failure(err.Error()))
		return
	}

	result, err := h.facade.UpdateCustomer(c.Request.Context(), id, customer)
	if err != nil {
		h.fail(c, err, "Failed to update customer")
		return
	}
	c.JSON(http.StatusOK, dto.UpdateResponse{Success: true, AffectedRows: result.RowsAffected})
}

func (h *CustomerHandler) fail(c *gin.Context, err error, message string) {
	if errors.Is(err, domainErrors.ErrInvalidInput) {
		c.JSON(http.StatusBadRequest, dto.Failure("name and email are required"))
		return
	}
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, dto.Failure(message))
}

func customerID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Failure("invalid customer id"))
		return 0, false
	}
	return id, true
}
