package repositories

import (
	"errors"

	"jobbridge_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("application already exists for this job post")
)

// ApplicationFilter scopes application listings to the caller: a job seeker
// sees their own, an organization sees applications to its posts, an admin
// sees everything. JobPostID additionally narrows any view.
type ApplicationFilter struct {
	UserID         string
	OrganizationID string
	JobPostID      string
}

type ApplicationRepository interface {
	Create(db *gorm.DB, application *models.Application) error
	ExistsForUserAndJob(db *gorm.DB, userID, jobPostID string) (bool, error)
	FindByID(db *gorm.DB, id string) (*models.Application, error)
	List(db *gorm.DB, filter ApplicationFilter) ([]models.Application, error)
	Save(db *gorm.DB, application *models.Application) error
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

func (r *ApplicationRepositoryImpl) Create(db *gorm.DB, application *models.Application) error {
	err := db.Create(application).Error
	if err != nil {
		// The composite unique index on (user_id, job_post_id) is what
		// actually guarantees single application per pair under concurrent
		// submissions.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateApplication
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) ExistsForUserAndJob(db *gorm.DB, userID, jobPostID string) (bool, error) {
	var count int64
	err := db.Model(&models.Application{}).
		Where("user_id = ? AND job_post_id = ?", userID, jobPostID).
		Count(&count).Error
	return count > 0, err
}

func (r *ApplicationRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Application, error) {
	var application models.Application
	err := db.
		Preload("JobPost.Organization").
		Preload("JobPost").
		Preload("User.JobSeekerProfile.Experiences").
		Preload("User.JobSeekerProfile.Educations").
		Preload("User.JobSeekerProfile.Competencies").
		Preload("User.JobSeekerProfile.References").
		Preload("User.JobSeekerProfile.Languages").
		Preload("User.JobSeekerProfile").
		Preload("User").
		First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) List(db *gorm.DB, filter ApplicationFilter) ([]models.Application, error) {
	query := db.Model(&models.Application{})

	if filter.UserID != "" {
		query = query.Where("applications.user_id = ?", filter.UserID)
	}
	if filter.OrganizationID != "" {
		query = query.
			Joins("JOIN job_posts ON job_posts.id = applications.job_post_id").
			Where("job_posts.organization_id = ?", filter.OrganizationID)
	}
	if filter.JobPostID != "" {
		query = query.Where("applications.job_post_id = ?", filter.JobPostID)
	}

	var applications []models.Application
	err := query.
		Preload("JobPost.Organization").
		Preload("JobPost").
		Preload("User.JobSeekerProfile").
		Preload("User").
		Order("applications.created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) Save(db *gorm.DB, application *models.Application) error {
	return db.Save(application).Error
}
