package services

import (
	"errors"
	"time"

	"jobbridge_backend/internal/models"
	"jobbridge_backend/internal/repositories"
	"jobbridge_backend/internal/services/dto"
	"jobbridge_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ApplicationService interface {
	Create(db *gorm.DB, userID string, role models.UserRole, req *dto.CreateApplicationRequest) (*models.Application, error)
	Get(db *gorm.DB, userID string, role models.UserRole, id string) (*models.Application, error)
	List(db *gorm.DB, userID string, role models.UserRole, query *dto.ApplicationsQuery) ([]models.Application, error)
	UpdateStatus(db *gorm.DB, userID string, role models.UserRole, id string, req *dto.UpdateApplicationStatusRequest) (*models.Application, error)
}

type ApplicationServiceImpl struct {
	applicationRepo  repositories.ApplicationRepository
	jobRepo          repositories.JobRepository
	subscriptionRepo repositories.SubscriptionRepository
	profileRepo      repositories.ProfileRepository
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	subscriptionRepo repositories.SubscriptionRepository,
	profileRepo repositories.ProfileRepository,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo:  applicationRepo,
		jobRepo:          jobRepo,
		subscriptionRepo: subscriptionRepo,
		profileRepo:      profileRepo,
	}
}

// Create runs the application gate: job seekers only, active subscription
// required, job post live, no prior application for the same post. The
// duplicate pre-check is advisory; the unique index catches the race.
func (s *ApplicationServiceImpl) Create(db *gorm.DB, userID string, role models.UserRole, req *dto.CreateApplicationRequest) (*models.Application, error) {
	if role != models.UserRoleJobSeeker {
		return nil, apperrors.ErrInsufficientPermissions
	}

	post, err := s.jobRepo.FindByID(db, req.JobPostID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobPostNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if !post.IsActive {
		return nil, apperrors.ErrJobPostInactive
	}

	active, err := s.subscriptionRepo.HasActiveSubscription(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !active {
		return nil, apperrors.ErrSubscriptionRequired
	}

	applied, err := s.applicationRepo.ExistsForUserAndJob(db, userID, req.JobPostID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if applied {
		return nil, apperrors.ErrAlreadyApplied
	}

	application := &models.Application{
		UserID:      userID,
		JobPostID:   req.JobPostID,
		CoverLetter: req.CoverLetter,
		Status:      models.ApplicationStatusPending,
	}

	if err := s.applicationRepo.Create(db, application); err != nil {
		if errors.Is(err, repositories.ErrDuplicateApplication) {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, apperrors.InternalError(err)
	}

	return s.findByID(db, application.ID)
}

func (s *ApplicationServiceImpl) Get(db *gorm.DB, userID string, role models.UserRole, id string) (*models.Application, error) {
	application, err := s.findByID(db, id)
	if err != nil {
		return nil, err
	}

	if !s.canView(application, userID, role) {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return application, nil
}

// List scopes the result to the caller: job seekers see their own
// applications, organizations see applications to their posts, admins see
// everything.
func (s *ApplicationServiceImpl) List(db *gorm.DB, userID string, role models.UserRole, query *dto.ApplicationsQuery) ([]models.Application, error) {
	filter := repositories.ApplicationFilter{JobPostID: query.JobPostID}

	switch role {
	case models.UserRoleJobSeeker:
		filter.UserID = userID
	case models.UserRoleOrganization:
		org, err := s.profileRepo.FindOrganizationByUserID(db, userID)
		if err != nil {
			if errors.Is(err, repositories.ErrProfileNotFound) {
				return []models.Application{}, nil
			}
			return nil, apperrors.InternalError(err)
		}
		filter.OrganizationID = org.ID
	case models.UserRoleAdmin:
		// unrestricted
	default:
		return nil, apperrors.ErrInsufficientPermissions
	}

	applications, err := s.applicationRepo.List(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return applications, nil
}

// UpdateStatus is the organization's review of an application. ReviewedAt is
// stamped on the first transition away from PENDING and left alone after.
func (s *ApplicationServiceImpl) UpdateStatus(db *gorm.DB, userID string, role models.UserRole, id string, req *dto.UpdateApplicationStatusRequest) (*models.Application, error) {
	application, err := s.findByID(db, id)
	if err != nil {
		return nil, err
	}

	if !s.canReview(application, userID, role) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	application.Status = req.Status
	if req.Notes != "" {
		application.Notes = &req.Notes
	}
	if application.ReviewedAt == nil && req.Status != models.ApplicationStatusPending {
		now := time.Now()
		application.ReviewedAt = &now
	}

	if err := s.applicationRepo.Save(db, application); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return application, nil
}

func (s *ApplicationServiceImpl) findByID(db *gorm.DB, id string) (*models.Application, error) {
	application, err := s.applicationRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return application, nil
}

func (s *ApplicationServiceImpl) canView(application *models.Application, userID string, role models.UserRole) bool {
	switch role {
	case models.UserRoleAdmin:
		return true
	case models.UserRoleJobSeeker:
		return application.UserID == userID
	case models.UserRoleOrganization:
		return s.ownsJobPost(application, userID)
	default:
		return false
	}
}

func (s *ApplicationServiceImpl) canReview(application *models.Application, userID string, role models.UserRole) bool {
	if role == models.UserRoleAdmin {
		return true
	}
	return role == models.UserRoleOrganization && s.ownsJobPost(application, userID)
}

func (s *ApplicationServiceImpl) ownsJobPost(application *models.Application, userID string) bool {
	if application.JobPost == nil {
		return false
	}
	if application.JobPost.UserID == userID {
		return true
	}
	org := application.JobPost.Organization
	return org != nil && org.UserID == userID
}
