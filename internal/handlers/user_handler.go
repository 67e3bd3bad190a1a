package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fleamarket_backend/internal/config"
	"fleamarket_backend/internal/middleware"
	"fleamarket_backend/internal/services"
	"fleamarket_backend/internal/services/dto"
	"fleamarket_backend/pkg/apperrors"
)

type UserHandler struct {
	*BaseHandler
	userService *services.UserService
	authService *services.AuthService
	uploadCfg   config.UploadConfig
}

func NewUserHandler(base *BaseHandler, userService *services.UserService, authService *services.AuthService, uploadCfg config.UploadConfig) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
		authService: authService,
		uploadCfg:   uploadCfg,
	}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.Use(middleware.AuthMiddleware(h.authService))
	{
		users.GET("/me", h.Me)
		users.PUT("/me", h.UpdateProfile)
		users.PUT("/me/password", h.ChangePassword)
		users.PUT("/me/icon", h.UploadIcon)
		users.DELETE("/me/icon", h.RemoveIcon)
		users.DELETE("/me", h.DeleteAccount)
	}
}

func (h *UserHandler) Me(c *gin.Context) {
	user, ok := h.RequireCurrentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.userService.Profile(user))
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	user, ok := h.RequireCurrentUser(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	updated, err := h.userService.UpdateProfile(user, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	user, ok := h.RequireCurrentUser(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.userService.ChangePassword(user, req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password changed"})
}

// UploadIcon принимает jpeg/png, сохраняет под случайным именем
// и записывает имя файла в профиль.
func (h *UserHandler) UploadIcon(c *gin.Context) {
	user, ok := h.RequireCurrentUser(c)
	if !ok {
		return
	}

	file, err := c.FormFile("icon")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Icon file is required"))
		return
	}
	if file.Size > h.uploadCfg.MaxIconSize {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Icon file is too large"))
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Icon must be a jpeg or png image"))
		return
	}

	filename := uuid.NewString() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(h.uploadCfg.IconPath, filename)); err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}

	if err := h.userService.UpdateIcon(user, filename); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"icon": filename})
}

// RemoveIcon сбрасывает иконку; сам файл на диске не трогаем.
func (h *UserHandler) RemoveIcon(c *gin.Context) {
	user, ok := h.RequireCurrentUser(c)
	if !ok {
		return
	}

	if err := h.userService.RemoveIcon(user); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Icon removed"})
}

func (h *UserHandler) DeleteAccount(c *gin.Context) {
	user, ok := h.RequireCurrentUser(c)
	if !ok {
		return
	}

	if err := h.userService.DeleteAccount(user); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}
