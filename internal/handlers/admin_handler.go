package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleamarket_backend/internal/middleware"
	"fleamarket_backend/internal/services"
	"fleamarket_backend/internal/services/dto"
)

type AdminHandler struct {
	*BaseHandler
	adminService  *services.AdminService
	reportService *services.ReportService
	authService   *services.AuthService
}

func NewAdminHandler(base *BaseHandler, adminService *services.AdminService, reportService *services.ReportService, authService *services.AuthService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:   base,
		adminService:  adminService,
		reportService: reportService,
		authService:   authService,
	}
}

func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(h.authService))
	admin.Use(middleware.AdminMiddleware())
	{
		admin.GET("/users", h.ListUsers)
		admin.PUT("/users/:id", h.UpdateUserFlags)
		admin.DELETE("/users/:id", h.DeleteUser)

		admin.GET("/reports/users", h.ListUserReports)
		admin.GET("/reports/items", h.ListItemReports)
		admin.DELETE("/reports/users/:id", h.DismissUserReport)
		admin.DELETE("/reports/items/:id", h.DismissItemReport)

		admin.POST("/ads", h.CreateAd)
		admin.DELETE("/ads/:id", h.DeleteAd)

		admin.POST("/cities", h.CreateCity)
		admin.DELETE("/cities/:id", h.DeleteCity)
		admin.POST("/districts", h.CreateDistrict)
		admin.DELETE("/districts/:id", h.DeleteDistrict)
	}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	var query dto.AdminUserListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	page, err := h.adminService.ListUsers(query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *AdminHandler) UpdateUserFlags(c *gin.Context) {
	userID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateUserFlagsRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.adminService.UpdateUserFlags(userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	userID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.adminService.DeleteUser(userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

func (h *AdminHandler) ListUserReports(c *gin.Context) {
	var page dto.PageQuery
	if !h.BindAndValidate_Query(c, &page) {
		return
	}

	reports, err := h.reportService.ListUserReports(page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

func (h *AdminHandler) ListItemReports(c *gin.Context) {
	var page dto.PageQuery
	if !h.BindAndValidate_Query(c, &page) {
		return
	}

	reports, err := h.reportService.ListItemReports(page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

func (h *AdminHandler) DismissUserReport(c *gin.Context) {
	reportID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.reportService.DismissUserReport(reportID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Report dismissed"})
}

func (h *AdminHandler) DismissItemReport(c *gin.Context) {
	reportID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.reportService.DismissItemReport(reportID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Report dismissed"})
}

func (h *AdminHandler) CreateAd(c *gin.Context) {
	var req dto.CreateAdRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	ad, err := h.adminService.CreateAd(req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ad)
}

func (h *AdminHandler) DeleteAd(c *gin.Context) {
	adID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.adminService.DeleteAd(adID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ad deleted"})
}

func (h *AdminHandler) CreateCity(c *gin.Context) {
	var req dto.CreateCityRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	city, err := h.adminService.CreateCity(req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, city)
}

func (h *AdminHandler) DeleteCity(c *gin.Context) {
	cityID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.adminService.DeleteCity(cityID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "City deleted"})
}

func (h *AdminHandler) CreateDistrict(c *gin.Context) {
	var req dto.CreateDistrictRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	district, err := h.adminService.CreateDistrict(req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, district)
}

func (h *AdminHandler) DeleteDistrict(c *gin.Context) {
	districtID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.adminService.DeleteDistrict(districtID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "District deleted"})
}
