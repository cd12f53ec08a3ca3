package handlers

import (
	"net/http"

	"jobbridge_backend/internal/middleware"
	"jobbridge_backend/internal/services"
	"jobbridge_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	profiles := rg.Group("/profiles")
	{
		// Public directory, no auth required.
		profiles.GET("/public", h.ListPublic)

		authed := profiles.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.GET("/job-seeker", h.GetJobSeeker)
			authed.POST("/job-seeker", h.UpsertJobSeeker)
			authed.GET("/company", h.GetCompany)
			authed.POST("/company", h.UpsertCompany)
			authed.GET("/organization", h.GetOrganization)
			authed.POST("/organization", h.UpsertOrganization)
		}
	}
}

// ListPublic godoc
// @Summary      Browse public profiles
// @Description  Lists visible job seeker or company profiles whose owners
// @Description  are in good standing and hold an active subscription.
// @Tags         profiles
// @Produce      json
// @Param        type query string false "all (default), job-seekers or companies"
// @Param        category query string false "Category filter"
// @Param        location query string false "Location filter"
// @Param        search query string false "Free text search"
// @Param        page query int false "Page, starting at 1"
// @Param        limit query int false "Page size, default 12"
// @Success      200 {object} services.PublicProfilesResponse
// @Router       /profiles/public [get]
func (h *ProfileHandler) ListPublic(c *gin.Context) {
	var query dto.PublicProfilesQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	db := h.GetDB(c)

	response, err := h.profileService.ListPublicProfiles(db, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetJobSeeker godoc
// @Summary      Get the caller's job seeker profile
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} models.JobSeekerProfile
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /profiles/job-seeker [get]
func (h *ProfileHandler) GetJobSeeker(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	profile, err := h.profileService.GetJobSeekerProfile(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpsertJobSeeker godoc
// @Summary      Create or replace the caller's job seeker profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.UpsertJobSeekerProfileRequest true "Profile data"
// @Success      200 {object} models.JobSeekerProfile
// @Failure      403 {object} apperrors.ErrorResponse
// @Router       /profiles/job-seeker [post]
func (h *ProfileHandler) UpsertJobSeeker(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpsertJobSeekerProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	profile, err := h.profileService.UpsertJobSeekerProfile(db, userID, h.CallerRole(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetCompany godoc
// @Summary      Get the caller's company profile
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} models.CompanyProfile
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /profiles/company [get]
func (h *ProfileHandler) GetCompany(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	profile, err := h.profileService.GetCompanyProfile(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpsertCompany godoc
// @Summary      Create or replace the caller's company profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.UpsertCompanyProfileRequest true "Profile data"
// @Success      200 {object} models.CompanyProfile
// @Failure      403 {object} apperrors.ErrorResponse
// @Router       /profiles/company [post]
func (h *ProfileHandler) UpsertCompany(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpsertCompanyProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	profile, err := h.profileService.UpsertCompanyProfile(db, userID, h.CallerRole(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetOrganization godoc
// @Summary      Get the caller's organization profile
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} models.OrganizationProfile
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /profiles/organization [get]
func (h *ProfileHandler) GetOrganization(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	profile, err := h.profileService.GetOrganizationProfile(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpsertOrganization godoc
// @Summary      Create or replace the caller's organization profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.UpsertOrganizationProfileRequest true "Profile data"
// @Success      200 {object} models.OrganizationProfile
// @Failure      403 {object} apperrors.ErrorResponse
// @Router       /profiles/organization [post]
func (h *ProfileHandler) UpsertOrganization(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpsertOrganizationProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	profile, err := h.profileService.UpsertOrganizationProfile(db, userID, h.CallerRole(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
