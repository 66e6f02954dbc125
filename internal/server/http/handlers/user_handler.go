package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/customersystem/internal/domain/errors"
	"github.com/polkiloo/customersystem/internal/server/http/dto"
)

// UserHandler serves user listing, registration and login.
type UserHandler struct {
	facade UserFacade
}

// NewUserHandler creates UserHandler instance.
func NewUserHandler(facade UserFacade) *UserHandler {
	registerValidators()
	return &UserHandler{facade: facade}
}

// List handles GET /users.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.facade.Users(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserListResponse(users))
}

// ByName handles GET /users/:name.
func (h *UserHandler) ByName(c *gin.Context) {
	users, err := h.facade.UsersByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserListResponse(users))
}

// Register handles POST /users/register.
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Failure(validationMessage(err)))
		return
	}

	result, err := h.facade.RegisterUser(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, dto.Failure("name, email and password are required"))
		default:
			_ = c.Error(err)
		}
		return
	}

	c.JSON(http.StatusCreated, dto.NewMutationResponse(result))
}

// Login handles POST /users/login.
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Failure(validationMessage(err)))
		return
	}

	user, err := h.facade.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, dto.Failure("Invalid email or password"))
		default:
			_ = c.Error(err)
		}
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Success: true, User: dto.NewUserResponse(*user)})
}
