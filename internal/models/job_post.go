package models

import (
	"time"
)

type JobPost struct {
	BaseModel
	OrganizationID string `gorm:"not null;index" json:"organizationId"`
	// UserID is the creating user; job post mutations are authorized against
	// this id, not the organization profile id.
	UserID              string     `gorm:"not null;index" json:"userId"`
	Title               string     `gorm:"not null" json:"title"`
	Description         string     `gorm:"not null" json:"description"`
	Requirements        string     `json:"requirements"`
	Location            string     `json:"location"`
	JobType             JobType    `gorm:"type:varchar(20);default:'FULL_TIME'" json:"jobType"`
	SalaryRange         string     `json:"salaryRange"`
	Category            string     `json:"category"`
	ApplicationDeadline *time.Time `json:"applicationDeadline"`
	IsActive            bool       `gorm:"default:true" json:"isActive"`

	// ApplicationsCount is filled on the detail endpoint, not stored.
	ApplicationsCount int64 `gorm:"-" json:"applicationsCount"`

	// Relations
	Organization *OrganizationProfile `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
	Applications []Application        `gorm:"foreignKey:JobPostID;constraint:OnDelete:CASCADE" json:"applications,omitempty"`
}
