package models

import (
	"time"

	"gorm.io/datatypes"
)

type JobSeekerProfile struct {
	BaseModel
	UserID          string   `gorm:"uniqueIndex;not null" json:"userId"`
	FirstName       string   `json:"firstName"`
	LastName        string   `json:"lastName"`
	Phone           string   `json:"phone"`
	Bio             string   `json:"bio"`
	Location        string   `json:"location"`
	Category        string   `json:"category"`
	Availability    string   `json:"availability"`
	CurrentJobTitle string   `json:"currentJobTitle"`
	ExpectedSalary  *float64 `json:"expectedSalary"`
	ProfilePicture  string   `json:"profilePicture"`
	IsVisible       bool     `gorm:"default:true" json:"isVisible"`

	// Relations
	Experiences  []Experience    `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"experiences,omitempty"`
	Educations   []Education     `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"educations,omitempty"`
	Competencies []Competency    `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"competencies,omitempty"`
	References   []Reference     `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"references,omitempty"`
	Languages    []LanguageSkill `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"languages,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

type Experience struct {
	BaseModel
	ProfileID   string     `gorm:"not null;index" json:"profileId"`
	JobTitle    string     `gorm:"not null" json:"jobTitle"`
	Company     string     `gorm:"not null" json:"company"`
	Location    string     `json:"location"`
	StartDate   time.Time  `gorm:"not null" json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Current     bool       `gorm:"default:false" json:"current"`
	Description string     `json:"description"`
}

type Education struct {
	BaseModel
	ProfileID    string     `gorm:"not null;index" json:"profileId"`
	Institution  string     `gorm:"not null" json:"institution"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldOfStudy"`
	StartDate    time.Time  `gorm:"not null" json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
	Description  string     `json:"description"`
}

type Competency struct {
	BaseModel
	ProfileID string `gorm:"not null;index" json:"profileId"`
	Name      string `gorm:"not null" json:"name"`
	Level     string `json:"level"`
}

type Reference struct {
	BaseModel
	ProfileID string `gorm:"not null;index" json:"profileId"`
	Name      string `gorm:"not null" json:"name"`
	Company   string `json:"company"`
	Position  string `json:"position"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type LanguageSkill struct {
	BaseModel
	ProfileID   string `gorm:"not null;index" json:"profileId"`
	Name        string `gorm:"not null" json:"name"`
	Proficiency string `json:"proficiency"`
}

type CompanyProfile struct {
	BaseModel
	UserID             string         `gorm:"uniqueIndex;not null" json:"userId"`
	CompanyName        string         `gorm:"not null" json:"companyName"`
	RegistrationNumber string         `json:"registrationNumber"`
	Phone              string         `json:"phone"`
	Email              string         `json:"email"`
	Website            string         `json:"website"`
	Logo               string         `json:"logo"`
	Description        string         `json:"description"`
	Industry           string         `json:"industry"`
	Location           string         `json:"location"`
	YearEstablished    *int           `json:"yearEstablished"`
	EmployeeCount      string         `json:"employeeCount"`
	Services           datatypes.JSON `gorm:"type:jsonb" json:"services"`
	IsVisible          bool           `gorm:"default:true" json:"isVisible"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

type OrganizationProfile struct {
	BaseModel
	UserID           string `gorm:"uniqueIndex;not null" json:"userId"`
	OrganizationName string `gorm:"not null" json:"organizationName"`
	Type             string `gorm:"not null" json:"type"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	Website          string `json:"website"`
	Logo             string `json:"logo"`
	Description      string `json:"description"`
	Industry         string `json:"industry"`
	Location         string `json:"location"`
	EmployeeCount    string `json:"employeeCount"`
	IsVisible        bool   `gorm:"default:true" json:"isVisible"`

	User     *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	JobPosts []JobPost `gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE" json:"jobPosts,omitempty"`
}
