package repositories

import (
	"errors"

	"jobbridge_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobPostNotFound = errors.New("job post not found")

// JobFilter narrows job post listings. OnlyActive is forced for every view
// except an organization browsing its own posts.
type JobFilter struct {
	OrganizationID string
	OnlyActive     bool
	Search         string
	Location       string
	JobType        models.JobType
	Category       string
}

type JobRepository interface {
	Create(db *gorm.DB, post *models.JobPost) error
	FindByID(db *gorm.DB, id string) (*models.JobPost, error)
	FindByIDWithOrganization(db *gorm.DB, id string) (*models.JobPost, error)
	List(db *gorm.DB, filter JobFilter) ([]models.JobPost, error)
	Save(db *gorm.DB, post *models.JobPost) error
	Delete(db *gorm.DB, id string) error
	CountApplications(db *gorm.DB, jobPostID string) (int64, error)
}

type JobRepositoryImpl struct{}

func NewJobRepository() JobRepository {
	return &JobRepositoryImpl{}
}

func (r *JobRepositoryImpl) Create(db *gorm.DB, post *models.JobPost) error {
	return db.Create(post).Error
}

func (r *JobRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.JobPost, error) {
	var post models.JobPost
	err := db.First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *JobRepositoryImpl) FindByIDWithOrganization(db *gorm.DB, id string) (*models.JobPost, error) {
	var post models.JobPost
	err := db.Preload("Organization").First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *JobRepositoryImpl) List(db *gorm.DB, filter JobFilter) ([]models.JobPost, error) {
	query := db.Model(&models.JobPost{})

	if filter.OrganizationID != "" {
		query = query.Where("organization_id = ?", filter.OrganizationID)
	}
	if filter.OnlyActive {
		query = query.Where("is_active = ?", true)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"title ILIKE ? OR description ILIKE ? OR requirements ILIKE ?",
			pattern, pattern, pattern,
		)
	}
	if filter.Location != "" {
		query = query.Where("location ILIKE ?", "%"+filter.Location+"%")
	}
	if filter.JobType != "" {
		query = query.Where("job_type = ?", filter.JobType)
	}
	if filter.Category != "" {
		query = query.Where("category ILIKE ?", "%"+filter.Category+"%")
	}

	var posts []models.JobPost
	err := query.
		Preload("Organization").
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

func (r *JobRepositoryImpl) Save(db *gorm.DB, post *models.JobPost) error {
	return db.Save(post).Error
}

func (r *JobRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.JobPost{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobPostNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) CountApplications(db *gorm.DB, jobPostID string) (int64, error) {
	var count int64
	err := db.Model(&models.Application{}).Where("job_post_id = ?", jobPostID).Count(&count).Error
	return count, err
}
