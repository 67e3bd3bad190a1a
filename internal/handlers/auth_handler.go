package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleamarket_backend/internal/services"
	"fleamarket_backend/internal/services/dto"
)

type AuthHandler struct {
	*BaseHandler
	authService  *services.AuthService
	resetService *services.PasswordResetService
}

func NewAuthHandler(base *BaseHandler, authService *services.AuthService, resetService *services.PasswordResetService) *AuthHandler {
	return &AuthHandler{
		BaseHandler:  base,
		authService:  authService,
		resetService: resetService,
	}
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/refresh", h.Refresh)
		auth.POST("/forget-password", h.ForgetPassword)
		auth.POST("/reset-password", h.ResetPassword)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.authService.Register(req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.authService.Login(req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	pair, err := h.authService.Refresh(req.RefreshToken)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, pair)
}

func (h *AuthHandler) ForgetPassword(c *gin.Context) {
	var req dto.ForgetPasswordRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.resetService.StartReset(req.Email); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reset code sent to your email"})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ConfirmResetRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.resetService.ConfirmReset(req.Code); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "New password sent to your email"})
}
