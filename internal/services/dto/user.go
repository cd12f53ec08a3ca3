package dto

import "jobbridge_backend/internal/models"

// AdminUserFilter filters the admin user listing.
type AdminUserFilter struct {
	UserType models.UserRole `form:"userType" validate:"omitempty,is-user-role"`
	Status   string          `form:"status" validate:"omitempty,oneof=active suspended"`
}

// UpdateUserStatusRequest toggles the moderation flags. Nil fields are left
// untouched.
type UpdateUserStatusRequest struct {
	IsActive    *bool `json:"isActive"`
	IsSuspended *bool `json:"isSuspended"`
}

// AdminUserResponse is the admin view of an account, profiles and
// subscriptions included.
type AdminUserResponse struct {
	UserDTO
	JobSeekerProfile    *models.JobSeekerProfile    `json:"jobSeekerProfile,omitempty"`
	CompanyProfile      *models.CompanyProfile      `json:"companyProfile,omitempty"`
	OrganizationProfile *models.OrganizationProfile `json:"organizationProfile,omitempty"`
	Subscriptions       []models.Subscription       `json:"subscriptions,omitempty"`
}

func NewAdminUserResponse(user *models.User) AdminUserResponse {
	return AdminUserResponse{
		UserDTO:             NewUserDTO(user),
		JobSeekerProfile:    user.JobSeekerProfile,
		CompanyProfile:      user.CompanyProfile,
		OrganizationProfile: user.OrganizationProfile,
		Subscriptions:       user.Subscriptions,
	}
}
