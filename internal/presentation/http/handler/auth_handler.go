package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopkart/admin-api/internal/application/service"
	"github.com/shopkart/admin-api/internal/presentation/http/dto/request"
	"github.com/shopkart/admin-api/internal/presentation/http/dto/response"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates a user and returns the bearer token as the raw
// response body; the admin frontend reads it with response.text().
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	token, err := h.authService.Login(c.Request.Context(), &service.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.String(http.StatusOK, token)
}

// Provision creates a new staff credential
func (h *AuthHandler) Provision(c *gin.Context) {
	var req request.ProvisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	_, err := h.authService.Provision(c.Request.Context(), &service.ProvisionInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.String(http.StatusOK, "User added successfully")
}
