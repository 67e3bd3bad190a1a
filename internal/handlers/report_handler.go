package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleamarket_backend/internal/middleware"
	"fleamarket_backend/internal/services"
	"fleamarket_backend/internal/services/dto"
)

type ReportHandler struct {
	*BaseHandler
	reportService *services.ReportService
	authService   *services.AuthService
}

func NewReportHandler(base *BaseHandler, reportService *services.ReportService, authService *services.AuthService) *ReportHandler {
	return &ReportHandler{
		BaseHandler:   base,
		reportService: reportService,
		authService:   authService,
	}
}

func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	reports.Use(middleware.AuthMiddleware(h.authService))
	{
		reports.POST("/users", h.ReportUser)
		reports.POST("/items", h.ReportItem)
	}
}

func (h *ReportHandler) ReportUser(c *gin.Context) {
	user, ok := h.RequireCurrentUser(c)
	if !ok {
		return
	}

	var req dto.ReportUserRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.reportService.ReportUser(user, req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Report submitted"})
}

func (h *ReportHandler) ReportItem(c *gin.Context) {
	user, ok := h.RequireCurrentUser(c)
	if !ok {
		return
	}

	var req dto.ReportItemRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.reportService.ReportItem(user, req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Report submitted"})
}
