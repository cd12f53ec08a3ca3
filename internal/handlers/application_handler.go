package handlers

import (
	"net/http"

	"jobbridge_backend/internal/middleware"
	"jobbridge_backend/internal/services"
	"jobbridge_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	applications := rg.Group("/applications")
	applications.Use(middleware.AuthMiddleware())
	{
		applications.POST("", h.Create)
		applications.GET("", h.List)
		applications.GET("/:id", h.Get)
		applications.PATCH("/:id", h.UpdateStatus)
	}
}

// Create godoc
// @Summary      Apply for a job
// @Description  Job seekers with an active subscription only; one
// @Description  application per job post.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateApplicationRequest true "Application data"
// @Success      201 {object} models.Application
// @Failure      403 {object} apperrors.ErrorResponse
// @Failure      404 {object} apperrors.ErrorResponse
// @Failure      409 {object} apperrors.ErrorResponse
// @Router       /applications [post]
func (h *ApplicationHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	application, err := h.applicationService.Create(db, userID, h.CallerRole(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, application)
}

// List godoc
// @Summary      List applications visible to the caller
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        jobPostId query string false "Narrow to one job post"
// @Success      200 {array} models.Application
// @Failure      403 {object} apperrors.ErrorResponse
// @Router       /applications [get]
func (h *ApplicationHandler) List(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var query dto.ApplicationsQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	db := h.GetDB(c)

	applications, err := h.applicationService.List(db, userID, h.CallerRole(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, applications)
}

// Get godoc
// @Summary      Get one application
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Application ID"
// @Success      200 {object} models.Application
// @Failure      403 {object} apperrors.ErrorResponse
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /applications/{id} [get]
func (h *ApplicationHandler) Get(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	application, err := h.applicationService.Get(db, userID, h.CallerRole(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, application)
}

// UpdateStatus godoc
// @Summary      Review an application
// @Description  The organization that owns the job post moves the
// @Description  application through its statuses.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Application ID"
// @Param        request body dto.UpdateApplicationStatusRequest true "New status"
// @Success      200 {object} models.Application
// @Failure      403 {object} apperrors.ErrorResponse
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /applications/{id} [patch]
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	application, err := h.applicationService.UpdateStatus(db, userID, h.CallerRole(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, application)
}
