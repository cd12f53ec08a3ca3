package handlers

import (
	"net/http"

	"jobbridge_backend/internal/middleware"
	"jobbridge_backend/internal/services"
	"jobbridge_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	jobs := rg.Group("/jobs")
	{
		// Reads are public; an optional token switches an organization to the
		// owner view of its own posts.
		jobs.GET("", middleware.OptionalAuthMiddleware(), h.List)
		jobs.GET("/:id", h.Get)

		authed := jobs.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.POST("", h.Create)
			authed.PATCH("/:id", h.Update)
			authed.DELETE("/:id", h.Delete)
		}
	}
}

// List godoc
// @Summary      Browse job posts
// @Description  Active posts only, unless an organization requests its own
// @Description  posts with organizationId and a valid token.
// @Tags         jobs
// @Produce      json
// @Param        organizationId query string false "Organization filter"
// @Param        search query string false "Free text search"
// @Param        location query string false "Location filter"
// @Param        jobType query string false "FULL_TIME, PART_TIME, CONTRACT or INTERNSHIP"
// @Param        category query string false "Category filter"
// @Success      200 {array} models.JobPost
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	var query dto.JobPostsQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	db := h.GetDB(c)

	posts, err := h.jobService.List(db, middleware.GetUserID(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// Get godoc
// @Summary      Get a job post
// @Tags         jobs
// @Produce      json
// @Param        id path string true "Job post ID"
// @Success      200 {object} models.JobPost
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /jobs/{id} [get]
func (h *JobHandler) Get(c *gin.Context) {
	db := h.GetDB(c)

	post, err := h.jobService.Get(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// Create godoc
// @Summary      Post a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateJobPostRequest true "Job post data"
// @Success      201 {object} models.JobPost
// @Failure      400 {object} apperrors.ErrorResponse
// @Failure      403 {object} apperrors.ErrorResponse
// @Router       /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobPostRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	post, err := h.jobService.Create(db, userID, h.CallerRole(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// Update godoc
// @Summary      Update a job post
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Job post ID"
// @Param        request body dto.UpdateJobPostRequest true "Fields to change"
// @Success      200 {object} models.JobPost
// @Failure      403 {object} apperrors.ErrorResponse
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /jobs/{id} [patch]
func (h *JobHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateJobPostRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	post, err := h.jobService.Update(db, userID, h.CallerRole(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// Delete godoc
// @Summary      Delete a job post
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Job post ID"
// @Success      204
// @Failure      403 {object} apperrors.ErrorResponse
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /jobs/{id} [delete]
func (h *JobHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.jobService.Delete(db, userID, h.CallerRole(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
