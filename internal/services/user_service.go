package services

import (
	"errors"

	"jobbridge_backend/internal/models"
	"jobbridge_backend/internal/repositories"
	"jobbridge_backend/internal/services/dto"
	"jobbridge_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// UserService backs the admin user management endpoints.
type UserService interface {
	List(db *gorm.DB, filter *dto.AdminUserFilter) ([]dto.AdminUserResponse, error)
	Get(db *gorm.DB, id string) (*models.User, error)
	UpdateStatus(db *gorm.DB, callerID, id string, req *dto.UpdateUserStatusRequest) (*models.User, error)
	Delete(db *gorm.DB, callerID, id string) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) List(db *gorm.DB, filter *dto.AdminUserFilter) ([]dto.AdminUserResponse, error) {
	users, err := s.userRepo.List(db, repositories.UserFilter{
		UserType: filter.UserType,
		Status:   filter.Status,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.AdminUserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, dto.NewAdminUserResponse(&users[i]))
	}
	return responses, nil
}

func (s *UserServiceImpl) Get(db *gorm.DB, id string) (*models.User, error) {
	user, err := s.userRepo.FindByIDFull(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// UpdateStatus flips the moderation flags. Admins cannot moderate their own
// account, that would allow locking out the last administrator.
func (s *UserServiceImpl) UpdateStatus(db *gorm.DB, callerID, id string, req *dto.UpdateUserStatusRequest) (*models.User, error) {
	if callerID == id {
		return nil, apperrors.ErrCannotModifySelf
	}

	user, err := s.userRepo.UpdateFlags(db, id, req.IsActive, req.IsSuspended)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *UserServiceImpl) Delete(db *gorm.DB, callerID, id string) error {
	if callerID == id {
		return apperrors.ErrCannotModifySelf
	}

	if err := s.userRepo.Delete(db, id); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}
