package dto

import "jobbridge_backend/internal/models"

type CreateApplicationRequest struct {
	JobPostID   string  `json:"jobPostId" validate:"required,uuid4"`
	CoverLetter *string `json:"coverLetter" validate:"omitempty,max=5000"`
}

type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" validate:"required,is-application-status"`
	Notes  string                   `json:"notes" validate:"omitempty,max=2000"`
}

type ApplicationsQuery struct {
	JobPostID string `form:"jobPostId" validate:"omitempty,uuid4"`
}
