package repositories

import (
	"errors"

	"jobbridge_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserFilter narrows admin user listings.
type UserFilter struct {
	UserType models.UserRole
	// Status is "active" (isActive AND NOT isSuspended), "suspended"
	// (isSuspended) or empty.
	Status string
}

type UserRepository interface {
	Create(db *gorm.DB, user *models.User) error
	FindByID(db *gorm.DB, id string) (*models.User, error)
	FindByIDFull(db *gorm.DB, id string) (*models.User, error)
	FindByEmail(db *gorm.DB, email string) (*models.User, error)
	List(db *gorm.DB, filter UserFilter) ([]models.User, error)
	UpdateFlags(db *gorm.DB, id string, isActive, isSuspended *bool) (*models.User, error)
	Delete(db *gorm.DB, id string) error
}

type UserRepositoryImpl struct{}

func NewUserRepository() UserRepository {
	return &UserRepositoryImpl{}
}

func (r *UserRepositoryImpl) Create(db *gorm.DB, user *models.User) error {
	err := db.Create(user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (r *UserRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByIDFull loads the user with profiles, subscriptions and payments for
// the admin detail view.
func (r *UserRepositoryImpl) FindByIDFull(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	err := db.
		Preload("JobSeekerProfile.Experiences").
		Preload("JobSeekerProfile.Educations").
		Preload("JobSeekerProfile.Competencies").
		Preload("JobSeekerProfile.References").
		Preload("JobSeekerProfile.Languages").
		Preload("JobSeekerProfile").
		Preload("CompanyProfile").
		Preload("OrganizationProfile").
		Preload("Subscriptions.Payments").
		Preload("Subscriptions").
		First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) List(db *gorm.DB, filter UserFilter) ([]models.User, error) {
	query := db.Model(&models.User{})

	if filter.UserType != "" {
		query = query.Where("user_type = ?", filter.UserType)
	}
	switch filter.Status {
	case "active":
		query = query.Where("is_active = ? AND is_suspended = ?", true, false)
	case "suspended":
		query = query.Where("is_suspended = ?", true)
	}

	var users []models.User
	err := query.
		Preload("JobSeekerProfile").
		Preload("CompanyProfile").
		Preload("OrganizationProfile").
		Preload("Subscriptions").
		Order("created_at DESC").
		Find(&users).Error
	return users, err
}

func (r *UserRepositoryImpl) UpdateFlags(db *gorm.DB, id string, isActive, isSuspended *bool) (*models.User, error) {
	updates := map[string]interface{}{}
	if isActive != nil {
		updates["is_active"] = *isActive
	}
	if isSuspended != nil {
		updates["is_suspended"] = *isSuspended
	}

	if len(updates) > 0 {
		result := db.Model(&models.User{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, ErrUserNotFound
		}
	}

	return r.FindByID(db, id)
}

func (r *UserRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.User{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
