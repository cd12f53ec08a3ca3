package models

import (
	"time"
)

type Application struct {
	BaseModel
	// The composite unique index is the authoritative duplicate guard; the
	// service pre-check only exists to produce a friendly error message.
	UserID      string            `gorm:"not null;uniqueIndex:idx_applications_user_job" json:"userId"`
	JobPostID   string            `gorm:"not null;uniqueIndex:idx_applications_user_job" json:"jobPostId"`
	CoverLetter *string           `json:"coverLetter"`
	Status      ApplicationStatus `gorm:"type:varchar(20);default:'PENDING'" json:"status"`
	Notes       *string           `json:"notes"`
	ReviewedAt  *time.Time        `json:"reviewedAt"`

	// Relations
	JobPost *JobPost `gorm:"foreignKey:JobPostID" json:"jobPost,omitempty"`
	User    *User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}
