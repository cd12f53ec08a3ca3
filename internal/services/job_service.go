package services

import (
	"errors"

	"jobbridge_backend/internal/models"
	"jobbridge_backend/internal/repositories"
	"jobbridge_backend/internal/services/dto"
	"jobbridge_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// ErrOrganizationProfileRequired is returned when an organization tries to
// post a job before filling in its profile.
var ErrOrganizationProfileRequired = apperrors.ErrInvalidOperation(
	"job_post",
	"Create an organization profile before posting jobs",
)

type JobService interface {
	Create(db *gorm.DB, userID string, role models.UserRole, req *dto.CreateJobPostRequest) (*models.JobPost, error)
	Get(db *gorm.DB, id string) (*models.JobPost, error)
	List(db *gorm.DB, callerID string, query *dto.JobPostsQuery) ([]models.JobPost, error)
	Update(db *gorm.DB, userID string, role models.UserRole, id string, req *dto.UpdateJobPostRequest) (*models.JobPost, error)
	Delete(db *gorm.DB, userID string, role models.UserRole, id string) error
}

type JobServiceImpl struct {
	jobRepo     repositories.JobRepository
	profileRepo repositories.ProfileRepository
}

func NewJobService(jobRepo repositories.JobRepository, profileRepo repositories.ProfileRepository) JobService {
	return &JobServiceImpl{jobRepo: jobRepo, profileRepo: profileRepo}
}

func (s *JobServiceImpl) Create(db *gorm.DB, userID string, role models.UserRole, req *dto.CreateJobPostRequest) (*models.JobPost, error) {
	if role != models.UserRoleOrganization {
		return nil, apperrors.ErrInsufficientPermissions
	}

	org, err := s.profileRepo.FindOrganizationByUserID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, ErrOrganizationProfileRequired
		}
		return nil, apperrors.InternalError(err)
	}

	jobType := req.JobType
	if jobType == "" {
		jobType = models.JobTypeFullTime
	}

	post := &models.JobPost{
		OrganizationID:      org.ID,
		UserID:              userID,
		Title:               req.Title,
		Description:         req.Description,
		Requirements:        req.Requirements,
		Location:            req.Location,
		JobType:             jobType,
		SalaryRange:         req.SalaryRange,
		Category:            req.Category,
		ApplicationDeadline: req.ApplicationDeadline,
		IsActive:            true,
	}

	if err := s.jobRepo.Create(db, post); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.Get(db, post.ID)
}

func (s *JobServiceImpl) Get(db *gorm.DB, id string) (*models.JobPost, error) {
	post, err := s.jobRepo.FindByIDWithOrganization(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrJobPostNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	count, err := s.jobRepo.CountApplications(db, post.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	post.ApplicationsCount = count

	return post, nil
}

// List serves the public job board. The active-only restriction is lifted
// only when an organization browses its own posts ("organizationId=current"
// or its own concrete id); anyone else asking for an organization's posts
// still sees just the active ones.
func (s *JobServiceImpl) List(db *gorm.DB, callerID string, query *dto.JobPostsQuery) ([]models.JobPost, error) {
	filter := repositories.JobFilter{
		OrganizationID: query.OrganizationID,
		OnlyActive:     true,
		Search:         query.Search,
		Location:       query.Location,
		JobType:        query.JobType,
		Category:       query.Category,
	}

	if query.OrganizationID == "current" {
		if callerID == "" {
			return nil, apperrors.NewUnauthorizedError("Authentication required for the owner view")
		}
		org, err := s.profileRepo.FindOrganizationByUserID(db, callerID)
		if err != nil {
			if errors.Is(err, repositories.ErrProfileNotFound) {
				return []models.JobPost{}, nil
			}
			return nil, apperrors.InternalError(err)
		}
		filter.OrganizationID = org.ID
		filter.OnlyActive = false
	} else if query.OrganizationID != "" && callerID != "" {
		org, err := s.profileRepo.FindOrganizationByID(db, query.OrganizationID)
		if err != nil && !errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.InternalError(err)
		}
		if err == nil && org.UserID == callerID {
			filter.OnlyActive = false
		}
	}

	posts, err := s.jobRepo.List(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return posts, nil
}

func (s *JobServiceImpl) Update(db *gorm.DB, userID string, role models.UserRole, id string, req *dto.UpdateJobPostRequest) (*models.JobPost, error) {
	post, err := s.jobRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrJobPostNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if !s.canManage(post, userID, role) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Description != nil {
		post.Description = *req.Description
	}
	if req.Requirements != nil {
		post.Requirements = *req.Requirements
	}
	if req.Location != nil {
		post.Location = *req.Location
	}
	if req.JobType != nil {
		post.JobType = *req.JobType
	}
	if req.SalaryRange != nil {
		post.SalaryRange = *req.SalaryRange
	}
	if req.Category != nil {
		post.Category = *req.Category
	}
	if req.ApplicationDeadline != nil {
		post.ApplicationDeadline = req.ApplicationDeadline
	}
	if req.IsActive != nil {
		post.IsActive = *req.IsActive
	}

	if err := s.jobRepo.Save(db, post); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.Get(db, post.ID)
}

func (s *JobServiceImpl) Delete(db *gorm.DB, userID string, role models.UserRole, id string) error {
	post, err := s.jobRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrJobPostNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if !s.canManage(post, userID, role) {
		return apperrors.ErrInsufficientPermissions
	}

	if err := s.jobRepo.Delete(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// canManage allows the posting organization's owner and admins.
func (s *JobServiceImpl) canManage(post *models.JobPost, userID string, role models.UserRole) bool {
	if role == models.UserRoleAdmin {
		return true
	}
	return role == models.UserRoleOrganization && post.UserID == userID
}
