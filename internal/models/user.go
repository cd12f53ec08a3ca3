package models

type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	UserType     UserRole `gorm:"type:varchar(20);not null" json:"userType"`
	IsActive     bool     `gorm:"default:true" json:"isActive"`
	IsSuspended  bool     `gorm:"default:false" json:"isSuspended"`

	// Relations
	JobSeekerProfile    *JobSeekerProfile    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"jobSeekerProfile,omitempty"`
	CompanyProfile      *CompanyProfile      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"companyProfile,omitempty"`
	OrganizationProfile *OrganizationProfile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"organizationProfile,omitempty"`
	Subscriptions       []Subscription       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"subscriptions,omitempty"`
}
