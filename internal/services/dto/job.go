package dto

import (
	"time"

	"jobbridge_backend/internal/models"
)

type CreateJobPostRequest struct {
	Title               string         `json:"title" validate:"required"`
	Description         string         `json:"description" validate:"required"`
	Requirements        string         `json:"requirements"`
	Location            string         `json:"location"`
	JobType             models.JobType `json:"jobType" validate:"omitempty,is-job-type"`
	SalaryRange         string         `json:"salaryRange"`
	Category            string         `json:"category"`
	ApplicationDeadline *time.Time     `json:"applicationDeadline"`
}

type UpdateJobPostRequest struct {
	Title               *string         `json:"title,omitempty"`
	Description         *string         `json:"description,omitempty"`
	Requirements        *string         `json:"requirements,omitempty"`
	Location            *string         `json:"location,omitempty"`
	JobType             *models.JobType `json:"jobType,omitempty" validate:"omitempty,is-job-type"`
	SalaryRange         *string         `json:"salaryRange,omitempty"`
	Category            *string         `json:"category,omitempty"`
	ApplicationDeadline *time.Time      `json:"applicationDeadline,omitempty"`
	IsActive            *bool           `json:"isActive,omitempty"`
}

// JobPostsQuery filters the job board. OrganizationID takes a concrete
// organization id, or "current" for the caller's own organization; the owner
// view lifts the active-only restriction.
type JobPostsQuery struct {
	OrganizationID string         `form:"organizationId"`
	Search         string         `form:"search"`
	Location       string         `form:"location"`
	JobType        models.JobType `form:"jobType" validate:"omitempty,is-job-type"`
	Category       string         `form:"category"`
}
